// Package corpus builds and serves the site knowledge base: it fetches
// pages, extracts and chunks their text, classifies structured facts,
// and fits the retrieval index. A built corpus is swapped in atomically
// as an immutable snapshot, so queries stay safe during rebuilds.
package corpus

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/sitewise/sitebot"
	"github.com/sitewise/sitebot/tfidf"
)

// State is the corpus lifecycle phase.
type State string

const (
	StateEmpty    State = "empty"
	StateBuilding State = "building"
	StateReady    State = "ready"
	StateFailed   State = "failed"
)

// Stats summarizes the corpus for the status surface.
type Stats struct {
	State          State                    `json:"state"`
	Failure        string                   `json:"failure,omitempty"`
	URLCount       int                      `json:"urlCount"`
	ChunkCount     int                      `json:"chunkCount"`
	VocabularySize int                      `json:"vocabularySize"`
	Categories     map[sitebot.Category]int `json:"categories"`
}

// Corpus owns the fetch-extract-chunk-index pipeline and the current
// snapshot. Collaborator fields must be set before the first Build;
// optional fields may stay nil.
type Corpus struct {
	Fetcher    sitebot.Fetcher
	Extractor  sitebot.Extractor
	Fragmenter sitebot.Fragmenter

	// Converter and Pages together enable the persistent page cache:
	// extracted content is stored as Markdown and reused on rebuilds
	// within CacheTTL. Both optional.
	Converter sitebot.Converter
	Pages     sitebot.PageStore
	CacheTTL  time.Duration

	// Limiter, when set, paces fetches per domain.
	Limiter sitebot.DomainLimiter

	Logger *slog.Logger

	// Rules defaults to sitebot.DefaultCategoryRules.
	Rules []sitebot.CategoryRule

	ChunkOptions sitebot.ChunkOptions
	IndexOptions tfidf.Options

	// Concurrency bounds parallel page loads. Defaults to 4.
	Concurrency int

	mu      sync.Mutex
	state   State
	failure string
	snap    *snapshot
	pages   map[uint64]*pageData
}

// snapshot is one immutable build result.
type snapshot struct {
	urlCount   int
	chunks     []sitebot.Chunk
	index      *tfidf.Index
	categories *sitebot.CategoryStore
}

// pageData is the in-process per-URL cache entry.
type pageData struct {
	url   string
	title string
	frags []sitebot.Fragment
}

// State returns the current lifecycle phase.
func (c *Corpus) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == "" {
		return StateEmpty
	}
	return c.state
}

// Build fetches the given URLs and replaces the corpus snapshot. Only
// one build runs at a time; a concurrent call returns EUNAVAILABLE
// without starting a second build. Individual page failures are
// logged and skipped; the build fails only when no URL yields usable
// content (EEMPTY) or the context is canceled.
func (c *Corpus) Build(ctx context.Context, urls []string) error {
	c.mu.Lock()
	if c.state == StateBuilding {
		c.mu.Unlock()
		return sitebot.Errorf(sitebot.EUNAVAILABLE, "A corpus build is already in progress.")
	}
	c.state = StateBuilding
	c.failure = ""
	if c.pages == nil {
		c.pages = make(map[uint64]*pageData)
	}
	c.mu.Unlock()

	pages := make([]*pageData, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency())
	for i, pageURL := range urls {
		g.Go(func() error {
			page, err := c.loadPage(gctx, pageURL)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				c.logger().Warn("page load failed", "url", pageURL, "err", err)
				return nil
			}
			pages[i] = page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return c.fail(sitebot.Errorf(sitebot.EUNAVAILABLE, "The corpus build was canceled."))
	}

	// Aggregate in input URL order so chunk order, and therefore index
	// row order, is deterministic.
	rules := c.rules()
	store := sitebot.NewCategoryStore()
	var all []sitebot.Chunk
	for _, page := range pages {
		if page == nil {
			continue
		}
		store.AddMatches(sitebot.Classify(page.url, page.frags, rules))
		all = append(all, sitebot.SplitChunks(sitebot.JoinFragments(page.frags), page.url, c.ChunkOptions)...)
	}

	seen := make(map[string]bool, len(all))
	chunks := make([]sitebot.Chunk, 0, len(all))
	for _, ch := range all {
		if len(ch.Text) < sitebot.MinChunkLen || seen[ch.Key] {
			continue
		}
		seen[ch.Key] = true
		chunks = append(chunks, ch)
	}
	if len(chunks) == 0 {
		return c.fail(sitebot.Errorf(sitebot.EEMPTY, "No usable content was found on the site."))
	}

	store.Finalize(rules)

	texts := make([]string, len(chunks))
	for i, ch := range chunks {
		texts[i] = ch.Text
	}
	index, err := tfidf.Fit(texts, c.IndexOptions)
	if err != nil {
		return c.fail(err)
	}

	c.mu.Lock()
	c.snap = &snapshot{
		urlCount:   len(urls),
		chunks:     chunks,
		index:      index,
		categories: store,
	}
	c.state = StateReady
	c.mu.Unlock()

	c.logger().Info("corpus ready",
		"urls", len(urls),
		"chunks", len(chunks),
		"vocabulary", index.VocabularySize(),
	)
	return nil
}

// Retrieve ranks chunks by cosine similarity to the query. Returns nil
// before the first successful build.
func (c *Corpus) Retrieve(query string, k int, minScore float64) []sitebot.QueryResult {
	snap := c.snapshot()
	if snap == nil {
		return nil
	}
	hits := snap.index.Search(query, k, minScore)
	results := make([]sitebot.QueryResult, 0, len(hits))
	for _, h := range hits {
		results = append(results, sitebot.QueryResult{Chunk: snap.chunks[h.Doc], Score: h.Score})
	}
	return results
}

// Category returns the structured collection for the category, or nil
// before the first successful build.
func (c *Corpus) Category(cat sitebot.Category) []string {
	snap := c.snapshot()
	if snap == nil {
		return nil
	}
	return snap.categories.Items(cat)
}

// Chunks returns all indexed chunks in corpus order.
func (c *Corpus) Chunks() []sitebot.Chunk {
	snap := c.snapshot()
	if snap == nil {
		return nil
	}
	return snap.chunks
}

// Stats reports the corpus state and, once built, its sizes.
func (c *Corpus) Stats() Stats {
	c.mu.Lock()
	state, failure, snap := c.state, c.failure, c.snap
	c.mu.Unlock()

	if state == "" {
		state = StateEmpty
	}
	stats := Stats{State: state, Failure: failure}
	if snap != nil && state == StateReady {
		stats.URLCount = snap.urlCount
		stats.ChunkCount = len(snap.chunks)
		stats.VocabularySize = snap.index.VocabularySize()
		stats.Categories = snap.categories.Counts()
	}
	return stats
}

// PrunePages removes persisted pages older than CacheTTL. No-op
// without a page store or TTL.
func (c *Corpus) PrunePages(ctx context.Context) (int, error) {
	if c.Pages == nil || c.CacheTTL <= 0 {
		return 0, nil
	}
	return c.Pages.DeletePagesBefore(ctx, time.Now().Add(-c.CacheTTL))
}

// loadPage resolves a URL to fragments, consulting the in-process
// cache, then the page store, then the network.
func (c *Corpus) loadPage(ctx context.Context, pageURL string) (*pageData, error) {
	key := xxhash.Sum64String(pageURL)
	c.mu.Lock()
	if page, ok := c.pages[key]; ok {
		c.mu.Unlock()
		return page, nil
	}
	c.mu.Unlock()

	if c.Pages != nil && c.CacheTTL > 0 {
		if stored, err := c.Pages.FindPageByURL(ctx, pageURL); err == nil && time.Since(stored.FetchedAt) < c.CacheTTL {
			page := &pageData{
				url:   pageURL,
				title: stored.Title,
				frags: sitebot.FragmentsFromMarkdown(stored.Content),
			}
			c.remember(key, page)
			return page, nil
		}
	}

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx, pageURL); err != nil {
			return nil, err
		}
	}
	html, err := c.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	res, err := c.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}
	frags, err := c.Fragmenter.Fragments(res.ContentHTML)
	if err != nil {
		return nil, err
	}

	page := &pageData{url: pageURL, title: res.Title, frags: frags}
	c.remember(key, page)

	if c.Pages != nil && c.Converter != nil {
		c.savePage(ctx, pageURL, res)
	}
	return page, nil
}

func (c *Corpus) savePage(ctx context.Context, pageURL string, res *sitebot.ExtractResult) {
	markdown, err := c.Converter.Convert(res.ContentHTML)
	if err != nil || markdown == "" {
		return
	}
	page := &sitebot.Page{
		URL:       pageURL,
		Title:     res.Title,
		Content:   markdown,
		FetchedAt: time.Now(),
	}
	if err := c.Pages.SavePage(ctx, page); err != nil {
		c.logger().Warn("page cache write failed", "url", pageURL, "err", err)
	}
}

func (c *Corpus) remember(key uint64, page *pageData) {
	c.mu.Lock()
	c.pages[key] = page
	c.mu.Unlock()
}

// fail records the failure and clears any previous snapshot; a failed
// build leaves the corpus unavailable, not serving stale results.
func (c *Corpus) fail(err error) error {
	c.mu.Lock()
	c.state = StateFailed
	c.failure = sitebot.ErrorMessage(err)
	c.snap = nil
	c.mu.Unlock()
	return err
}

func (c *Corpus) snapshot() *snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateReady {
		return nil
	}
	return c.snap
}

func (c *Corpus) rules() []sitebot.CategoryRule {
	if len(c.Rules) > 0 {
		return c.Rules
	}
	return sitebot.DefaultCategoryRules()
}

func (c *Corpus) concurrency() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return 4
}

func (c *Corpus) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}
