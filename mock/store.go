package mock

import (
	"context"
	"time"

	"github.com/sitewise/sitebot"
)

var _ sitebot.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of sitebot.PageStore.
type PageStore struct {
	SavePageFn          func(ctx context.Context, page *sitebot.Page) error
	FindPageByURLFn     func(ctx context.Context, url string) (*sitebot.Page, error)
	DeletePagesBeforeFn func(ctx context.Context, cutoff time.Time) (int, error)
}

func (s *PageStore) SavePage(ctx context.Context, page *sitebot.Page) error {
	return s.SavePageFn(ctx, page)
}

func (s *PageStore) FindPageByURL(ctx context.Context, url string) (*sitebot.Page, error) {
	return s.FindPageByURLFn(ctx, url)
}

func (s *PageStore) DeletePagesBefore(ctx context.Context, cutoff time.Time) (int, error) {
	return s.DeletePagesBeforeFn(ctx, cutoff)
}
