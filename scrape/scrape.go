// Package scrape coordinates fetching, parsing, and rendering of
// Tagesschau archive and article pages. It owns the run-level concerns
// the pure parsing core stays free of: concurrency, rate limiting,
// per-run link deduplication, and persistence hand-off.
package scrape

import (
	"context"
	"fmt"
	"net/url"
	"time"

	tagesschau "github.com/Kaschi14/TagesschauScraper"
	"github.com/Kaschi14/TagesschauScraper/bloom"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"
)

// Seen-link filter sizing. A multi-week scrape stays well under the
// expected count; a false positive only leaves one article's tags empty.
const (
	seenLinksExpected = 100000
	seenLinksFPRate   = 0.001
)

// Scraper orchestrates archive and article scraping. All fields except
// Fetcher, Parser, Extractor, and Renderer are optional.
type Scraper struct {
	Fetcher   tagesschau.Fetcher
	Parser    tagesschau.TeaserParser
	Extractor tagesschau.ArticleExtractor
	Renderer  tagesschau.Renderer

	// Store receives parsed teasers when set.
	Store tagesschau.TeaserService

	// Limiter throttles requests per domain when set.
	Limiter tagesschau.DomainLimiter

	// EnrichTags fetches each teaser's article page to fill in missing
	// tags, the way the archive itself does not carry them.
	EnrichTags bool

	// Concurrency bounds parallel tag-enrichment fetches. Defaults to 4.
	Concurrency int

	seen *bloom.SeenLinks
}

// RenderedArticle pairs an extracted article with its structured-text
// rendering and a content fingerprint for change detection.
type RenderedArticle struct {
	Article     *tagesschau.Article
	Document    *tagesschau.RenderedDocument
	ContentHash string
	FetchedAt   time.Time
}

// Archive scrapes one archive listing page and returns its teasers in
// document order. Tag enrichment failures degrade to empty tags rather
// than failing the record; structural parse failures propagate with
// their error code unchanged.
func (s *Scraper) Archive(ctx context.Context, query tagesschau.ArchiveQuery) (*tagesschau.ArchivePage, error) {
	pageURL := query.URL()
	if err := s.wait(ctx, pageURL); err != nil {
		return nil, err
	}

	html, err := s.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch archive %s: %w", pageURL, err)
	}

	page, err := s.Parser.ParseTeasers(html)
	if err != nil {
		return nil, err
	}

	if s.EnrichTags {
		s.enrichTags(ctx, page.Teasers)
	}

	if s.Store != nil {
		for _, teaser := range page.Teasers {
			if err := s.Store.CreateTeaser(ctx, teaser); err != nil {
				return nil, fmt.Errorf("store teaser %s: %w", teaser.ID, err)
			}
		}
	}

	return page, nil
}

// Article fetches one article page and renders its body as structured
// text. Live pages are rejected before any network traffic happens.
func (s *Scraper) Article(ctx context.Context, articleURL string) (*RenderedArticle, error) {
	if tagesschau.IsLiveURL(articleURL) {
		return nil, tagesschau.Errorf(tagesschau.EUNSUPPORTED, "live page not supported: %s", articleURL)
	}

	if err := s.wait(ctx, articleURL); err != nil {
		return nil, err
	}

	html, err := s.Fetcher.Fetch(ctx, articleURL)
	if err != nil {
		return nil, fmt.Errorf("fetch article %s: %w", articleURL, err)
	}

	article, err := s.Extractor.Extract(html, articleURL)
	if err != nil {
		return nil, err
	}

	doc, err := s.Renderer.Render(article.ContentHTML)
	if err != nil {
		return nil, err
	}

	return &RenderedArticle{
		Article:     article,
		Document:    doc,
		ContentHash: contentHash(doc.String()),
		FetchedAt:   time.Now().UTC(),
	}, nil
}

// enrichTags fetches article pages for teasers whose markup carried no
// tags. Each link is visited at most once per run; fetch errors are
// tolerated and leave the tags empty.
func (s *Scraper) enrichTags(ctx context.Context, teasers []*tagesschau.Teaser) {
	if s.seen == nil {
		s.seen = bloom.NewSeenLinks(seenLinksExpected, seenLinksFPRate)
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, teaser := range teasers {
		if len(teaser.Tags) > 0 {
			continue
		}
		if s.seen.Visit(teaser.Link) {
			continue
		}

		teaser := teaser
		g.Go(func() error {
			if err := s.wait(gctx, teaser.Link); err != nil {
				return err
			}
			html, err := s.Fetcher.Fetch(gctx, teaser.Link)
			if err != nil {
				return nil
			}
			teaser.Tags = s.Extractor.Tags(html)
			return nil
		})
	}

	_ = g.Wait()
}

// wait applies the per-domain rate limit, if one is configured.
func (s *Scraper) wait(ctx context.Context, rawURL string) error {
	if s.Limiter == nil {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return tagesschau.Errorf(tagesschau.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	return s.Limiter.Wait(ctx, u.Host)
}

// DateRange returns every calendar day from from to to, inclusive, for
// multi-day archive scrapes. Reversed bounds yield an empty range.
func DateRange(from, to time.Time) []time.Time {
	from = truncateDay(from)
	to = truncateDay(to)

	var days []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// contentHash computes an xxHash fingerprint of rendered content.
func contentHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
