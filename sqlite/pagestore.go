package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/sitewise/sitebot"
)

// Compile-time interface verification.
var _ sitebot.PageStore = (*PageStore)(nil)

// PageStore implements sitebot.PageStore using SQLite. Pages are keyed
// by a hash of their URL, one row per URL.
type PageStore struct {
	db *DB
}

// NewPageStore creates a new PageStore.
func NewPageStore(db *DB) *PageStore {
	return &PageStore{db: db}
}

// hashURL computes the xxHash of a URL as a hex string.
func hashURL(url string) string {
	h := xxhash.Sum64String(url)
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// SavePage inserts or replaces the stored page for its URL. A zero
// FetchedAt is set to the current time.
func (s *PageStore) SavePage(ctx context.Context, page *sitebot.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}
	if page.FetchedAt.IsZero() {
		page.FetchedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (url_hash, url, title, content, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url_hash) DO UPDATE SET
			url = excluded.url,
			title = excluded.title,
			content = excluded.content,
			fetched_at = excluded.fetched_at
	`, hashURL(page.URL), page.URL, page.Title, page.Content, page.FetchedAt.UTC().Format(time.RFC3339))

	return err
}

// FindPageByURL retrieves a stored page.
// Returns ENOTFOUND if no page is stored for the URL.
func (s *PageStore) FindPageByURL(ctx context.Context, url string) (*sitebot.Page, error) {
	var page sitebot.Page
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT url, title, content, fetched_at
		FROM pages
		WHERE url_hash = ?
	`, hashURL(url)).Scan(&page.URL, &page.Title, &page.Content, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, sitebot.Errorf(sitebot.ENOTFOUND, "page not found")
	}
	if err != nil {
		return nil, err
	}

	page.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, sitebot.Errorf(sitebot.EINTERNAL, "invalid fetched_at for %s", url)
	}
	return &page, nil
}

// DeletePagesBefore removes pages fetched before the cutoff and
// returns the number removed.
func (s *PageStore) DeletePagesBefore(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM pages WHERE fetched_at < ?
	`, cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
