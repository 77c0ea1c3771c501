package tagesschau

import (
	"net/url"
	"time"
)

// BaseURL is the site origin used to resolve relative teaser links.
const BaseURL = "https://www.tagesschau.de"

// Category filters archive listings by news section. Values are passed
// through to the archive endpoint without validation; CategoryAll omits
// the filter parameter entirely.
type Category string

// Site sections with dedicated archive filters.
const (
	CategoryAll        Category = ""
	CategoryWirtschaft Category = "wirtschaft"
	CategoryInland     Category = "inland"
	CategoryAusland    Category = "ausland"
)

// ArchiveQuery identifies one archive listing page: all teasers published
// on Date, optionally narrowed to Category. It exists only to construct
// the listing URL.
type ArchiveQuery struct {
	Date     time.Time
	Category Category
}

// URL returns the canonical archive listing URL for the query.
func (q ArchiveQuery) URL() string {
	return ArchiveURL(q.Date, q.Category)
}

// ArchiveURL builds the canonical archive listing URL for a date and
// category, e.g.
//
//	https://www.tagesschau.de/archiv/?datum=2022-03-01&ressort=wirtschaft
//
// Pure and total: identical inputs always yield the identical URL string.
func ArchiveURL(date time.Time, category Category) string {
	v := url.Values{}
	v.Set("datum", date.Format("2006-01-02"))
	if category != CategoryAll {
		v.Set("ressort", string(category))
	}
	return BaseURL + "/archiv/?" + v.Encode()
}
