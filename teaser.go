package tagesschau

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"strings"
	"time"
)

// TimeLayout is the canonical teaser timestamp format: site-local time at
// minute precision with zeroed seconds, e.g. "2022-03-01 22:23:00".
const TimeLayout = "2006-01-02 15:04:05"

// IDLength is the length of a content-derived teaser identifier in hex
// characters.
const IDLength = 40

// Teaser represents one entry on an archive listing page pointing to a
// full article. Teasers are constructed once per parse and immutable
// afterwards; parsing the same page twice yields field-for-field
// identical teasers, including identical IDs.
type Teaser struct {
	ID          string
	PublishedAt time.Time
	Topline     string
	Headline    string
	Shorttext   string
	Link        string
	Tags        []string
}

// Validate returns an error if the teaser is missing a required field.
func (t *Teaser) Validate() error {
	if t.PublishedAt.IsZero() {
		return Errorf(EINVALID, "teaser publication timestamp required")
	}
	if t.Headline == "" {
		return Errorf(EINVALID, "teaser headline required")
	}
	if t.Link == "" {
		return Errorf(EINVALID, "teaser link required")
	}
	return nil
}

// TeaserRecord is the flat serialized shape of a teaser: the timestamp
// formatted with TimeLayout and the tags comma-joined. This is the shape
// persisted by external collaborators.
type TeaserRecord struct {
	Date      string `json:"date"`
	Topline   string `json:"topline"`
	Headline  string `json:"headline"`
	Shorttext string `json:"shorttext"`
	Link      string `json:"link"`
	Tags      string `json:"tags"`
	ID        string `json:"id"`
}

// Record returns the flat persisted shape of the teaser.
func (t *Teaser) Record() TeaserRecord {
	return TeaserRecord{
		Date:      t.PublishedAt.Format(TimeLayout),
		Topline:   t.Topline,
		Headline:  t.Headline,
		Shorttext: t.Shorttext,
		Link:      t.Link,
		Tags:      strings.Join(t.Tags, ","),
		ID:        t.ID,
	}
}

// DeriveID computes the content-derived identifier for a teaser from its
// link and publication timestamp. The field basis is a contract: the link
// alone is not unique when the same article is re-teased on a later
// archive page, so the timestamp disambiguates. Fields are hashed as a
// length-prefixed tuple rather than a plain concatenation so that no two
// distinct (link, publishedAt) pairs share a hash input. The result is a
// SHA-256 digest truncated to IDLength hex characters.
func DeriveID(link string, publishedAt time.Time) string {
	h := sha256.New()
	hashField(h, link)
	hashField(h, publishedAt.Format(TimeLayout))
	return hex.EncodeToString(h.Sum(nil))[:IDLength]
}

func hashField(h hash.Hash, s string) {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(len(s)))
	h.Write(n[:])
	h.Write([]byte(s))
}

// SkippedTeaser records a teaser element dropped during parsing together
// with the reason. Skips are record-level tolerance, not errors: a teaser
// without a parseable timestamp or a headline is not actionable, but its
// absence must not fail the page.
type SkippedTeaser struct {
	// Index is the position of the teaser element in document order.
	Index int

	Reason string
}

// ArchivePage is the parse result for one archive listing page. Teasers
// preserve the document order of the source markup (the site presents
// them reverse-chronologically; the parser does not re-sort). Skipped
// entries preserve their relative order too.
type ArchivePage struct {
	// Headline is the archive page heading, e.g. "1. März 2022".
	Headline string

	// ResultCount is the site's result count text, verbatim.
	ResultCount string

	Teasers []*Teaser
	Skipped []SkippedTeaser
}

// Records returns the flat serialized shape of all teasers on the page.
func (p *ArchivePage) Records() []TeaserRecord {
	records := make([]TeaserRecord, 0, len(p.Teasers))
	for _, t := range p.Teasers {
		records = append(records, t.Record())
	}
	return records
}

// TeaserParser parses raw archive listing HTML into teaser records.
type TeaserParser interface {
	// ParseTeasers extracts all teasers from an archive listing page in
	// document order. It returns EUNPROCESSABLE if the listing container
	// is absent; individual malformed teasers are collected as skips,
	// never surfaced as errors.
	ParseTeasers(html string) (*ArchivePage, error)
}
