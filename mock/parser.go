package mock

import tagesschau "github.com/Kaschi14/TagesschauScraper"

var _ tagesschau.TeaserParser = (*TeaserParser)(nil)

// TeaserParser is a mock implementation of tagesschau.TeaserParser.
type TeaserParser struct {
	ParseTeasersFn func(html string) (*tagesschau.ArchivePage, error)
}

func (p *TeaserParser) ParseTeasers(html string) (*tagesschau.ArchivePage, error) {
	return p.ParseTeasersFn(html)
}

var _ tagesschau.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of tagesschau.ArticleExtractor.
type ArticleExtractor struct {
	ExtractFn func(html string, sourceURL string) (*tagesschau.Article, error)
	TagsFn    func(html string) []string
}

func (e *ArticleExtractor) Extract(html string, sourceURL string) (*tagesschau.Article, error) {
	return e.ExtractFn(html, sourceURL)
}

func (e *ArticleExtractor) Tags(html string) []string {
	if e.TagsFn == nil {
		return nil
	}
	return e.TagsFn(html)
}

var _ tagesschau.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of tagesschau.Renderer.
type Renderer struct {
	RenderFn func(contentHTML string) (*tagesschau.RenderedDocument, error)
}

func (r *Renderer) Render(contentHTML string) (*tagesschau.RenderedDocument, error) {
	return r.RenderFn(contentHTML)
}
