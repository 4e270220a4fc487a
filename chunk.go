package sitebot

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Chunk is a bounded span of cleaned page text, the atomic retrieval
// unit. Immutable once created.
type Chunk struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	SourceURL string `json:"sourceUrl"`

	// Key is the normalized dedup key for the text.
	Key string `json:"-"`
}

// QueryResult is a single retrieval hit. Score is cosine similarity
// in [0, 1]. Ephemeral, produced per query, never persisted.
type QueryResult struct {
	Chunk Chunk   `json:"chunk"`
	Score float64 `json:"score"`
}

// ChunkOptions bounds chunk construction.
type ChunkOptions struct {
	// MaxSentences is the most consecutive sentences accumulated into
	// one chunk.
	MaxSentences int

	// MaxWords closes out a candidate once its running word count
	// would exceed this value.
	MaxWords int

	// MinWords discards candidates below this word count.
	MinWords int
}

// DefaultChunkOptions returns the standard chunking bounds.
func DefaultChunkOptions() ChunkOptions {
	return ChunkOptions{
		MaxSentences: 3,
		MaxWords:     200,
		MinWords:     40,
	}
}

func (o ChunkOptions) withDefaults() ChunkOptions {
	def := DefaultChunkOptions()
	if o.MaxSentences <= 0 {
		o.MaxSentences = def.MaxSentences
	}
	if o.MaxWords <= 0 {
		o.MaxWords = def.MaxWords
	}
	if o.MinWords <= 0 {
		o.MinWords = def.MinWords
	}
	return o
}

var sentenceRe = regexp.MustCompile(`(?:[.!?]+)(?:\s+|$)`)

// SplitSentences splits text on terminal punctuation boundaries,
// keeping the punctuation with its sentence. Empty pieces are dropped.
func SplitSentences(text string) []string {
	text = NormalizeSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	last := 0
	for _, loc := range sentenceRe.FindAllStringIndex(text, -1) {
		s := strings.TrimSpace(text[last:loc[1]])
		if s != "" {
			sentences = append(sentences, s)
		}
		last = loc[1]
	}
	if tail := strings.TrimSpace(text[last:]); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

// boilerplatePhrases marks navigation, legal, and call-to-action text
// that carries no answerable content.
var boilerplatePhrases = []string{
	"privacy policy", "terms of service", "copyright", "all rights reserved",
	"cookie", "accept cookies", "menu", "navigation", "home page",
	"follow us", "get in touch", "click here", "learn more", "read more",
	"subscribe", "sign up", "back to top", "login", "signin", "sign in",
}

// Meaningful reports whether text is worth indexing: at least 25
// characters and 3 words, free of boilerplate phrases, with an
// alphanumeric ratio of at least 0.5.
func Meaningful(text string) bool {
	if len(text) < 25 {
		return false
	}
	lower := strings.ToLower(text)
	for _, phrase := range boilerplatePhrases {
		if strings.Contains(lower, phrase) {
			return false
		}
	}
	if len(strings.Fields(text)) < 3 {
		return false
	}
	return AlphanumericRatio(text) >= 0.5
}

// SplitChunks converts page text into bounded, sentence-aligned chunks
// for indexing. Sentences accumulate greedily up to MaxSentences while
// the running word count stays under MaxWords; closed-out candidates
// survive only when they reach MinWords and pass the Meaningful
// filter. The trailing candidate is flushed under the same rule.
func SplitChunks(text, sourceURL string, opts ChunkOptions) []Chunk {
	opts = opts.withDefaults()

	var chunks []Chunk
	var current []string
	words := 0

	flush := func() {
		if len(current) == 0 {
			return
		}
		candidate := CleanText(strings.Join(current, " "))
		if words >= opts.MinWords && Meaningful(candidate) {
			chunks = append(chunks, Chunk{
				ID:        uuid.NewString(),
				Text:      candidate,
				SourceURL: sourceURL,
				Key:       NormalizedKey(candidate),
			})
		}
		current = current[:0]
		words = 0
	}

	for _, sentence := range SplitSentences(text) {
		n := len(strings.Fields(sentence))
		if words+n > opts.MaxWords {
			flush()
		}
		current = append(current, sentence)
		words += n
		if len(current) >= opts.MaxSentences {
			flush()
		}
	}
	flush()

	return chunks
}
