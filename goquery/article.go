package goquery

import (
	"strings"

	tagesschau "github.com/Kaschi14/TagesschauScraper"
	"github.com/PuerkitoBio/goquery"
)

// contentSelectors locate the article body container. The site has
// shuffled its content classes across relaunches; the first match wins.
var contentSelectors = []string{
	"article.container",
	"div.storywrapper article",
	"article",
}

// Tag list markup anchors.
const (
	taglistSelector = ".taglist"
	tagSelector     = ".tag-btn"
)

// Ensure Extractor implements tagesschau.ArticleExtractor at compile time.
var _ tagesschau.ArticleExtractor = (*Extractor)(nil)

// Extractor locates the article body container within a full article
// page. The zero value is ready to use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the article body subtree for a page. Live-ticker and
// liveblog URLs are rejected with EUNSUPPORTED before the HTML is
// looked at; pages without a body container fail with ENOTFOUND. Only
// descendants of the body container end up in ContentHTML, so chrome,
// ads, and related-links widgets outside it are never visited.
func (e *Extractor) Extract(html string, sourceURL string) (*tagesschau.Article, error) {
	if tagesschau.IsLiveURL(sourceURL) {
		return nil, tagesschau.Errorf(tagesschau.EUNSUPPORTED, "live page not supported: %s", sourceURL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, tagesschau.Errorf(tagesschau.EINVALID, "failed to parse HTML: %v", err)
	}

	var body *goquery.Selection
	for _, selector := range contentSelectors {
		if s := doc.Find(selector).First(); s.Length() > 0 {
			body = s
			break
		}
	}
	if body == nil {
		return nil, tagesschau.Errorf(tagesschau.ENOTFOUND, "article body container not found: %s", sourceURL)
	}

	contentHTML, err := goquery.OuterHtml(body)
	if err != nil {
		return nil, err
	}

	article := &tagesschau.Article{
		SourceURL:   sourceURL,
		ContentHTML: contentHTML,
		Tags:        tagLabels(body.Find(taglistSelector)),
	}

	// The article h1 carries topline and headline in separate spans.
	h1 := body.Find("h1").First()
	if spans := h1.Find("span"); spans.Length() >= 2 {
		article.Topline = collapseSpace(spans.Eq(0).Text())
		article.Headline = collapseSpace(spans.Eq(1).Text())
	} else {
		article.Headline = collapseSpace(h1.Text())
	}

	return article, nil
}

// Tags extracts the article's tag labels from the taglist element.
func (e *Extractor) Tags(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	return tagLabels(doc.Find(taglistSelector))
}

// tagLabels collects tag button texts under a taglist selection in
// document order, trimmed, with empty entries and duplicates removed.
func tagLabels(taglist *goquery.Selection) []string {
	var tags []string
	seen := make(map[string]bool)
	taglist.Find(tagSelector).Each(func(_ int, sel *goquery.Selection) {
		tag := collapseSpace(sel.Text())
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	})
	return tags
}
