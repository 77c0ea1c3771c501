package tagesschau

import (
	"context"
	"time"
)

// TeaserFilter represents a filter for FindTeasers.
type TeaserFilter struct {
	ID   *string
	Day  *time.Time // match on calendar day of publication
	Link *string

	Offset int
	Limit  int
}

// TeaserService manages persisted teaser records.
type TeaserService interface {
	// CreateTeaser persists a teaser. Because the ID is content-derived,
	// replaying the same record is a no-op rather than a duplicate.
	CreateTeaser(ctx context.Context, t *Teaser) error

	// FindTeaserByID retrieves a teaser by ID.
	// Returns ENOTFOUND if the teaser does not exist.
	FindTeaserByID(ctx context.Context, id string) (*Teaser, error)

	// FindTeasers retrieves teasers matching the filter, most recently
	// published first.
	FindTeasers(ctx context.Context, filter TeaserFilter) ([]*Teaser, error)
}
