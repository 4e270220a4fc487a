package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sitewise/sitebot"
)

// Duration decodes YAML values like "20s" or "24h".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config is the YAML configuration file format.
type Config struct {
	Site struct {
		// Name appears in chat templates.
		Name string `yaml:"name"`

		// URL is the site root, used for URL discovery when no
		// explicit page list is given.
		URL string `yaml:"url"`

		// URLs pins the exact pages to index. When set, discovery
		// is skipped.
		URLs []string `yaml:"urls"`
	} `yaml:"site"`

	Fetch struct {
		Timeout   Duration `yaml:"timeout"`
		UserAgent string   `yaml:"user_agent"`

		// Browser switches to headless-browser fetching for
		// JavaScript-rendered sites.
		Browser bool `yaml:"browser"`

		// Extractor picks the content extraction strategy:
		// "goquery" (default), "trafilatura", or "readability".
		Extractor string `yaml:"extractor"`

		// RPS is the per-domain request rate limit.
		RPS float64 `yaml:"rps"`

		Concurrency int `yaml:"concurrency"`
	} `yaml:"fetch"`

	Cache struct {
		// Path is the SQLite page cache location. Empty disables
		// persistent caching.
		Path string   `yaml:"path"`
		TTL  Duration `yaml:"ttl"`
	} `yaml:"cache"`

	Discover struct {
		// MaxPages caps a link walk when the site has no sitemap.
		MaxPages int `yaml:"max_pages"`
	} `yaml:"discover"`

	Chunk struct {
		MaxSentences int `yaml:"max_sentences"`
		MaxWords     int `yaml:"max_words"`
		MinWords     int `yaml:"min_words"`
	} `yaml:"chunk"`

	Index struct {
		MaxFeatures int     `yaml:"max_features"`
		MinDocFreq  int     `yaml:"min_doc_freq"`
		MaxDocShare float64 `yaml:"max_doc_share"`
	} `yaml:"index"`

	Retrieval struct {
		TopK     int     `yaml:"top_k"`
		MinScore float64 `yaml:"min_score"`
	} `yaml:"retrieval"`
}

// DefaultConfig returns a config with usable defaults for everything
// except the site itself.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Fetch.Timeout = Duration(sitebot.DefaultFetchTimeout)
	cfg.Fetch.UserAgent = sitebot.DefaultUserAgent
	cfg.Fetch.Extractor = "goquery"
	cfg.Fetch.RPS = 2.0
	cfg.Fetch.Concurrency = 4
	cfg.Cache.TTL = Duration(24 * time.Hour)
	cfg.Retrieval.TopK = sitebot.DefaultTopK
	cfg.Retrieval.MinScore = sitebot.DefaultMinScore
	return cfg
}

// LoadConfig reads a YAML config file over the defaults. An empty
// path returns the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	switch c.Fetch.Extractor {
	case "", "goquery", "trafilatura", "readability":
	default:
		return fmt.Errorf("unknown extractor %q", c.Fetch.Extractor)
	}
	return nil
}

// pageURLs reports the configured page list and whether discovery is
// needed to produce one.
func (c *Config) pageURLs() ([]string, bool) {
	if len(c.Site.URLs) > 0 {
		return c.Site.URLs, false
	}
	return nil, c.Site.URL != ""
}
