package mock

import (
	"context"

	tagesschau "github.com/Kaschi14/TagesschauScraper"
)

var _ tagesschau.TeaserService = (*TeaserService)(nil)

// TeaserService is a mock implementation of tagesschau.TeaserService.
type TeaserService struct {
	CreateTeaserFn   func(ctx context.Context, t *tagesschau.Teaser) error
	FindTeaserByIDFn func(ctx context.Context, id string) (*tagesschau.Teaser, error)
	FindTeasersFn    func(ctx context.Context, filter tagesschau.TeaserFilter) ([]*tagesschau.Teaser, error)
}

func (s *TeaserService) CreateTeaser(ctx context.Context, t *tagesschau.Teaser) error {
	return s.CreateTeaserFn(ctx, t)
}

func (s *TeaserService) FindTeaserByID(ctx context.Context, id string) (*tagesschau.Teaser, error) {
	return s.FindTeaserByIDFn(ctx, id)
}

func (s *TeaserService) FindTeasers(ctx context.Context, filter tagesschau.TeaserFilter) ([]*tagesschau.Teaser, error) {
	return s.FindTeasersFn(ctx, filter)
}
