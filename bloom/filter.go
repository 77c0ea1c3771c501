// Package bloom provides per-run article link deduplication using Bloom
// filters. During tag enrichment the same article can be teased on
// several archive pages; the filter keeps each link from being fetched
// more than once per scrape run.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// SeenLinks tracks article links already visited in this run.
type SeenLinks struct {
	f *bloom.BloomFilter
}

// NewSeenLinks creates a filter sized for n expected links with the
// given false positive rate. A false positive means one article's tags
// stay empty; a false negative cannot occur.
func NewSeenLinks(n uint, fpRate float64) *SeenLinks {
	return &SeenLinks{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Visit marks a link as seen and reports whether it had been seen
// before.
func (s *SeenLinks) Visit(link string) bool {
	return s.f.TestAndAddString(link)
}

// Seen reports whether the link might have been visited already.
func (s *SeenLinks) Seen(link string) bool {
	return s.f.TestString(link)
}

// EstimatedCount returns the approximate number of links in the filter.
func (s *SeenLinks) EstimatedCount() uint {
	return uint(s.f.ApproximatedSize())
}
