// Package tfidf implements a sparse term-frequency/inverse-document-
// frequency vector index with cosine-similarity search. Documents and
// queries share one vector space; fitting is a one-shot operation and
// the resulting index is read-only, so concurrent searches are safe.
package tfidf

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/sitewise/sitebot"
)

// Options tunes vocabulary construction.
type Options struct {
	// MaxFeatures caps the vocabulary size. Terms with the highest
	// corpus frequency are kept. Defaults to 1000.
	MaxFeatures int

	// MinDocFreq drops terms appearing in fewer than this many
	// documents. Defaults to 2.
	MinDocFreq int

	// MaxDocShare drops terms appearing in more than this share of
	// documents. Defaults to 0.8.
	MaxDocShare float64
}

func (o Options) withDefaults() Options {
	if o.MaxFeatures <= 0 {
		o.MaxFeatures = 1000
	}
	if o.MinDocFreq <= 0 {
		o.MinDocFreq = 2
	}
	if o.MaxDocShare <= 0 || o.MaxDocShare > 1 {
		o.MaxDocShare = 0.8
	}
	return o
}

// Hit is a single search result: the fitted document's position and
// its cosine similarity to the query.
type Hit struct {
	Doc   int
	Score float64
}

// vector is a sparse term-weight vector keyed by vocabulary column.
type vector map[int]float64

// Index is a fitted TF-IDF index over a fixed document sequence.
// Row i corresponds exactly to document i.
type Index struct {
	docs  []string
	vocab map[string]int
	idf   []float64
	rows  []vector
}

// tokenRe matches word tokens of two or more characters, the
// conventional vectorizer token pattern.
var tokenRe = regexp.MustCompile(`\b\w\w+\b`)

// tokenize lowercases text, extracts word tokens, and removes English
// stop words.
func tokenize(text string) []string {
	raw := tokenRe.FindAllString(strings.ToLower(text), -1)
	tokens := raw[:0]
	for _, tok := range raw {
		if !englishStopWords[tok] {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// terms produces unigrams and bigrams from the token stream. Bigrams
// join adjacent post-stop-word tokens with a space.
func terms(text string) []string {
	tokens := tokenize(text)
	out := make([]string, 0, len(tokens)*2)
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}

// Fit builds an index over the document sequence. Returns EEMPTY when
// no document yields any term.
func Fit(docs []string, opts Options) (*Index, error) {
	opts = opts.withDefaults()

	docTerms := make([]map[string]int, len(docs))
	df := make(map[string]int)
	corpusCount := make(map[string]int)
	for i, doc := range docs {
		counts := make(map[string]int)
		for _, term := range terms(doc) {
			counts[term]++
			corpusCount[term]++
		}
		for term := range counts {
			df[term]++
		}
		docTerms[i] = counts
	}
	if len(df) == 0 {
		return nil, sitebot.Errorf(sitebot.EEMPTY, "no indexable terms in %d documents", len(docs))
	}

	// Apply document-frequency bounds. Tiny corpora can fail both
	// bounds at once; fall back to the unpruned vocabulary rather
	// than fitting an empty index.
	maxDF := int(opts.MaxDocShare * float64(len(docs)))
	kept := make([]string, 0, len(df))
	for term, n := range df {
		if n < opts.MinDocFreq || n > maxDF {
			continue
		}
		kept = append(kept, term)
	}
	if len(kept) == 0 {
		kept = kept[:0]
		for term := range df {
			kept = append(kept, term)
		}
	}

	// Cap the vocabulary by corpus frequency, ties resolved
	// alphabetically for determinism.
	if len(kept) > opts.MaxFeatures {
		sort.Slice(kept, func(i, j int) bool {
			if corpusCount[kept[i]] != corpusCount[kept[j]] {
				return corpusCount[kept[i]] > corpusCount[kept[j]]
			}
			return kept[i] < kept[j]
		})
		kept = kept[:opts.MaxFeatures]
	}
	sort.Strings(kept)

	ix := &Index{
		docs:  docs,
		vocab: make(map[string]int, len(kept)),
		idf:   make([]float64, len(kept)),
	}
	n := float64(len(docs))
	for col, term := range kept {
		ix.vocab[term] = col
		// Smoothed IDF keeps weights finite for terms present in
		// every document.
		ix.idf[col] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	ix.rows = make([]vector, len(docs))
	for i, counts := range docTerms {
		row := make(vector)
		for term, count := range counts {
			if col, ok := ix.vocab[term]; ok {
				row[col] = float64(count) * ix.idf[col]
			}
		}
		normalize(row)
		ix.rows[i] = row
	}

	return ix, nil
}

// VocabularySize returns the number of vocabulary dimensions.
func (ix *Index) VocabularySize() int {
	return len(ix.vocab)
}

// Len returns the number of indexed documents.
func (ix *Index) Len() int {
	return len(ix.docs)
}

// Transform maps a query into the index's vector space. Terms outside
// the vocabulary contribute zero weight.
func (ix *Index) Transform(query string) map[int]float64 {
	row := make(vector)
	for _, term := range terms(query) {
		if col, ok := ix.vocab[term]; ok {
			row[col] += ix.idf[col]
		}
	}
	normalize(row)
	return row
}

// Search ranks documents by cosine similarity to the query. The
// candidate pool is the 3k highest-scoring documents; from the pool,
// only documents with score >= minScore survive, duplicates (by exact
// document text) are dropped, and at most k results return, sorted by
// descending score with ties broken by document order.
func (ix *Index) Search(query string, k int, minScore float64) []Hit {
	if ix == nil || k <= 0 || len(ix.rows) == 0 {
		return nil
	}

	qv := ix.Transform(query)
	if len(qv) == 0 {
		return nil
	}

	hits := make([]Hit, 0, len(ix.rows))
	for i, row := range ix.rows {
		hits = append(hits, Hit{Doc: i, Score: cosine(qv, row)})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if pool := 3 * k; len(hits) > pool {
		hits = hits[:pool]
	}

	seen := make(map[string]bool, k)
	out := make([]Hit, 0, k)
	for _, h := range hits {
		if h.Score < minScore {
			continue
		}
		text := ix.docs[h.Doc]
		if seen[text] {
			continue
		}
		seen[text] = true
		out = append(out, h)
		if len(out) == k {
			break
		}
	}
	return out
}

// normalize scales a vector to unit L2 length in place.
func normalize(v vector) {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for col, w := range v {
		v[col] = w / norm
	}
}

// cosine returns the dot product of two unit vectors, iterating the
// smaller one.
func cosine(a, b vector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for col, w := range a {
		dot += w * b[col]
	}
	return dot
}
