package sitebot

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Page represents a fetched and extracted website page. Content holds
// the main page content as Markdown, suitable for caching and for
// re-deriving text fragments without a network fetch.
type Page struct {
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Content   string    `json:"content"` // Markdown
	FetchedAt time.Time `json:"fetchedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	if p.Content == "" {
		return Errorf(EINVALID, "page content required")
	}
	return nil
}

// PageStore persists fetched pages so repeated corpus builds can reuse
// content without refetching. The retrieval index itself is never
// persisted; only raw page content is.
type PageStore interface {
	// SavePage inserts or replaces the stored page for its URL.
	SavePage(ctx context.Context, page *Page) error

	// FindPageByURL retrieves a stored page.
	// Returns ENOTFOUND if no page is stored for the URL.
	FindPageByURL(ctx context.Context, url string) (*Page, error)

	// DeletePagesBefore removes pages fetched before the cutoff and
	// returns the number removed.
	DeletePagesBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// Fragment is one ordered piece of extracted page text. Level is the
// heading level (1-6) when the fragment came from a heading element,
// and zero for body text.
type Fragment struct {
	Level int    `json:"level,omitempty"`
	Text  string `json:"text"`
}

// JoinFragments flattens ordered fragments into a single text suitable
// for sentence-based chunking. Fragments without terminal punctuation
// get a period appended so sentence boundaries survive the join.
func JoinFragments(frags []Fragment) string {
	parts := make([]string, 0, len(frags))
	for _, f := range frags {
		text := NormalizeSpace(f.Text)
		if text == "" {
			continue
		}
		if !strings.ContainsAny(text[len(text)-1:], ".!?") {
			text += "."
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " ")
}

var markdownHeadingRe = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)

// FragmentsFromMarkdown converts cached Markdown content back into
// ordered fragments. Headings map to leveled fragments; consecutive
// body lines of a paragraph merge into one fragment. Fenced code
// blocks are skipped.
func FragmentsFromMarkdown(markdown string) []Fragment {
	var frags []Fragment
	var para []string

	flush := func() {
		if len(para) > 0 {
			frags = append(frags, Fragment{Text: strings.Join(para, " ")})
			para = para[:0]
		}
	}

	inCode := false
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inCode = !inCode
			continue
		}
		if inCode {
			continue
		}
		if trimmed == "" {
			flush()
			continue
		}
		if m := markdownHeadingRe.FindStringSubmatch(trimmed); m != nil {
			flush()
			if title := NormalizeSpace(m[2]); title != "" {
				frags = append(frags, Fragment{Level: len(m[1]), Text: title})
			}
			continue
		}
		para = append(para, strings.TrimPrefix(trimmed, "- "))
	}
	flush()

	return frags
}

// PageLabel derives a human-readable label from a page URL's last path
// segment, e.g. "https://x.com/about-us" becomes "About Us". The site
// root maps to "Home".
func PageLabel(rawURL string) string {
	trimmed := strings.TrimRight(rawURL, "/")
	if i := strings.Index(trimmed, "://"); i != -1 {
		trimmed = trimmed[i+3:]
	}
	if i := strings.IndexAny(trimmed, "?#"); i != -1 {
		trimmed = trimmed[:i]
	}
	segment := ""
	if i := strings.LastIndex(trimmed, "/"); i != -1 {
		segment = trimmed[i+1:]
	}
	if i := strings.LastIndex(segment, "."); i > 0 {
		segment = segment[:i]
	}
	segment = strings.NewReplacer("-", " ", "_", " ").Replace(segment)
	segment = NormalizeSpace(segment)
	if segment == "" {
		return "Home"
	}

	words := strings.Fields(segment)
	for i, w := range words {
		if _, err := strconv.Atoi(w); err == nil {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
