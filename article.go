package tagesschau

import (
	"net/url"
	"strings"
)

// livePathMarkers identify live-ticker and liveblog pages by URL path.
// These pages have an incrementally updated structure the extractor does
// not support.
var livePathMarkers = []string{"liveblog", "liveticker"}

// IsLiveURL reports whether a URL points at a live-ticker or liveblog
// page. Unparseable URLs are matched on the raw string so that the guard
// never lets a marked URL through.
func IsLiveURL(rawURL string) bool {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		path = u.Path
	}
	for _, marker := range livePathMarkers {
		if strings.Contains(path, marker) {
			return true
		}
	}
	return false
}

// Article holds the extracted content of one article page. ContentHTML is
// the article body container subtree only: chrome, ads, and related-links
// widgets outside the container are never part of it.
type Article struct {
	SourceURL   string
	Topline     string
	Headline    string
	ContentHTML string
	Tags        []string
}

// Validate returns an error if the article is missing required fields.
func (a *Article) Validate() error {
	if a.SourceURL == "" {
		return Errorf(EINVALID, "article source URL required")
	}
	if a.ContentHTML == "" {
		return Errorf(EINVALID, "article content required")
	}
	return nil
}

// ArticleExtractor locates the article body within a full page.
type ArticleExtractor interface {
	// Extract returns the article's content subtree. It returns
	// EUNSUPPORTED for live-ticker/liveblog URLs regardless of the HTML
	// body, and ENOTFOUND when no body container exists in the markup
	// (site markup change or non-article URL).
	Extract(html string, sourceURL string) (*Article, error)

	// Tags returns the article's tag labels in document order, trimmed,
	// with empty entries and duplicates removed. A missing tag list
	// yields an empty slice, not an error.
	Tags(html string) []string
}

// RenderedDocument is the structured-text rendering of an article body.
// Blocks preserve document order and are trimmed; no block is empty.
// The block sequence is the canonical result; String is a convenience
// view.
type RenderedDocument struct {
	Blocks []string
}

// String joins the blocks with exactly one blank line between them.
func (d *RenderedDocument) String() string {
	return strings.Join(d.Blocks, "\n\n")
}

// Renderer converts extracted content HTML into structured text.
type Renderer interface {
	// Render walks the content tree in document order and emits one
	// block per top-level semantic unit (heading, paragraph, list,
	// quote). Elements with no recognized role are skipped together
	// with their descendants.
	Render(contentHTML string) (*RenderedDocument, error)
}
