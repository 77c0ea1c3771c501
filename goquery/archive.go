// Package goquery implements Tagesschau markup parsing with
// github.com/PuerkitoBio/goquery selections: the archive teaser parser
// and the article content extractor.
package goquery

import (
	"net/url"
	"strings"
	"time"

	tagesschau "github.com/Kaschi14/TagesschauScraper"
	"github.com/PuerkitoBio/goquery"
)

// Archive listing markup anchors. The headline doubles as the structural
// validation element: a page without it is not an archive listing.
const (
	archiveHeadlineSelector = ".archive__headline"
	resultCountSelector     = ".ergebnisse__anzahl"
	teaserSelector          = ".teaser-right"
)

// Teaser sub-element selectors.
const (
	teaserDateSelector      = ".teaser-right__date"
	teaserToplineSelector   = ".teaser-right__topline"
	teaserHeadlineSelector  = ".teaser-right__headline"
	teaserShorttextSelector = ".teaser-right__shorttext"
	teaserLinkSelector      = ".teaser-right__link"
)

// Ensure Parser implements tagesschau.TeaserParser at compile time.
var _ tagesschau.TeaserParser = (*Parser)(nil)

// Parser parses archive listing pages into teaser records. The zero
// value is ready to use; Parser holds no cross-call state.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseTeasers extracts all teasers from an archive listing page in
// document order. Teasers missing a parseable timestamp, a headline, or a
// link are collected as skips; a page without the listing container fails
// with EUNPROCESSABLE.
func (p *Parser) ParseTeasers(html string) (*tagesschau.ArchivePage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, tagesschau.Errorf(tagesschau.EINVALID, "failed to parse HTML: %v", err)
	}

	headline := doc.Find(archiveHeadlineSelector).First()
	if headline.Length() == 0 {
		return nil, tagesschau.Errorf(tagesschau.EUNPROCESSABLE, "archive listing container not found")
	}

	page := &tagesschau.ArchivePage{
		Headline:    collapseSpace(headline.Text()),
		ResultCount: collapseSpace(doc.Find(resultCountSelector).First().Text()),
	}

	doc.Find(teaserSelector).Each(func(i int, sel *goquery.Selection) {
		teaser, reason := parseTeaser(sel)
		if teaser == nil {
			page.Skipped = append(page.Skipped, tagesschau.SkippedTeaser{Index: i, Reason: reason})
			return
		}
		page.Teasers = append(page.Teasers, teaser)
	})

	return page, nil
}

// parseTeaser extracts a single teaser. It returns a nil teaser and a
// reason when a required field (timestamp, headline, link) is unusable.
func parseTeaser(sel *goquery.Selection) (*tagesschau.Teaser, string) {
	publishedAt, err := ParseTimestamp(sel.Find(teaserDateSelector).First().Text())
	if err != nil {
		return nil, "unparseable timestamp: " + tagesschau.ErrorMessage(err)
	}

	headline := collapseSpace(sel.Find(teaserHeadlineSelector).First().Text())
	if headline == "" {
		return nil, "missing headline"
	}

	href, ok := sel.Find(teaserLinkSelector).First().Attr("href")
	href = strings.TrimSpace(href)
	if !ok || href == "" {
		return nil, "missing link"
	}

	teaser := &tagesschau.Teaser{
		PublishedAt: publishedAt,
		Topline:     collapseSpace(sel.Find(teaserToplineSelector).First().Text()),
		Headline:    headline,
		Shorttext:   collapseSpace(sel.Find(teaserShorttextSelector).First().Text()),
		Link:        resolveLink(href),
		Tags:        teaserTags(sel),
	}
	teaser.ID = tagesschau.DeriveID(teaser.Link, teaser.PublishedAt)
	return teaser, ""
}

// teaserTags extracts tag labels from a taglist inside the teaser
// element, if the markup carries one. Trimmed, deduplicated, document
// order.
func teaserTags(sel *goquery.Selection) []string {
	return tagLabels(sel.Find(taglistSelector))
}

// ParseTimestamp normalizes the site's teaser timestamp text, e.g.
// "30.01.2021 - 18:04 Uhr" becomes 2021-01-30 18:04:00. The site uses a
// plain hyphen as separator but em and en dashes appear in syndicated
// markup; whitespace runs around the separator vary.
func ParseTimestamp(s string) (time.Time, error) {
	s = collapseSpace(s)
	if s == "" {
		return time.Time{}, tagesschau.Errorf(tagesschau.EINVALID, "empty timestamp")
	}

	normalized := strings.NewReplacer("—", "-", "–", "-").Replace(s)
	parts := strings.SplitN(normalized, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, tagesschau.Errorf(tagesschau.EINVALID, "unrecognized timestamp %q", s)
	}

	datePart := strings.TrimSpace(parts[0])
	timePart := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(parts[1]), "Uhr"))

	t, err := time.Parse("2.1.2006 15:04", datePart+" "+timePart)
	if err != nil {
		return time.Time{}, tagesschau.Errorf(tagesschau.EINVALID, "unrecognized timestamp %q", s)
	}
	return t, nil
}

// resolveLink resolves a teaser href against the site origin. Absolute
// URLs pass through unchanged.
func resolveLink(href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return tagesschau.BaseURL + href
	}
	if ref.IsAbs() {
		return href
	}
	base, _ := url.Parse(tagesschau.BaseURL)
	return base.ResolveReference(ref).String()
}

// collapseSpace trims a string and collapses interior whitespace runs to
// single spaces, matching how the site's text nodes are displayed.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
