package goquery_test

import (
	"testing"

	tagesschau "github.com/Kaschi14/TagesschauScraper"
	tsgoquery "github.com/Kaschi14/TagesschauScraper/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!DOCTYPE html>
<html><body>
<header><nav>Hauptnavigation</nav></header>
<article class="container">
  <h1><span class="seitenkopf__topline">Marktbericht</span>
      <span class="seitenkopf__headline">Der Krieg lastet auf der Wall Street</span></h1>
  <p class="textabsatz"><strong>Die Sorge vor den Kriegsfolgen drückt die Kurse.</strong></p>
  <p class="textabsatz">Der DAX verlor deutlich.</p>
  <div class="taglist">
    <span class="tag-btn tag-btn--light-grey">Börse</span>
    <span class="tag-btn tag-btn--light-grey"> DAX </span>
    <span class="tag-btn tag-btn--light-grey">Börse</span>
    <span class="tag-btn tag-btn--light-grey"></span>
  </div>
</article>
<aside>Verwandte Artikel</aside>
<footer>Impressum</footer>
</body></html>`

const articleURL = "https://www.tagesschau.de/wirtschaft/finanzen/marktberichte/marktbericht-dax-dow-jones-213.html"

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("scopes content to the body container", func(t *testing.T) {
		t.Parallel()

		extractor := tsgoquery.NewExtractor()
		article, err := extractor.Extract(articleHTML, articleURL)

		require.NoError(t, err)
		assert.Equal(t, articleURL, article.SourceURL)
		assert.Contains(t, article.ContentHTML, "Der DAX verlor deutlich.")
		assert.NotContains(t, article.ContentHTML, "Hauptnavigation")
		assert.NotContains(t, article.ContentHTML, "Verwandte Artikel")
		assert.NotContains(t, article.ContentHTML, "Impressum")
	})

	t.Run("splits topline and headline from the h1 spans", func(t *testing.T) {
		t.Parallel()

		extractor := tsgoquery.NewExtractor()
		article, err := extractor.Extract(articleHTML, articleURL)

		require.NoError(t, err)
		assert.Equal(t, "Marktbericht", article.Topline)
		assert.Equal(t, "Der Krieg lastet auf der Wall Street", article.Headline)
	})

	t.Run("falls back to the full h1 text without spans", func(t *testing.T) {
		t.Parallel()

		html := `<article class="container"><h1>Nur eine Überschrift</h1><p>Text.</p></article>`

		extractor := tsgoquery.NewExtractor()
		article, err := extractor.Extract(html, articleURL)

		require.NoError(t, err)
		assert.Empty(t, article.Topline)
		assert.Equal(t, "Nur eine Überschrift", article.Headline)
	})

	t.Run("collects tags trimmed, deduplicated, in document order", func(t *testing.T) {
		t.Parallel()

		extractor := tsgoquery.NewExtractor()
		article, err := extractor.Extract(articleHTML, articleURL)

		require.NoError(t, err)
		assert.Equal(t, []string{"Börse", "DAX"}, article.Tags)
	})

	t.Run("rejects liveblog URLs regardless of the body", func(t *testing.T) {
		t.Parallel()

		extractor := tsgoquery.NewExtractor()
		_, err := extractor.Extract(articleHTML, "https://www.tagesschau.de/newsticker/liveblog-ukraine-dienstag-101.html")

		require.Error(t, err)
		assert.Equal(t, tagesschau.EUNSUPPORTED, tagesschau.ErrorCode(err))
	})

	t.Run("fails with ENOTFOUND when no body container exists", func(t *testing.T) {
		t.Parallel()

		extractor := tsgoquery.NewExtractor()
		_, err := extractor.Extract("<html><body><div>Kein Artikel</div></body></html>", articleURL)

		require.Error(t, err)
		assert.Equal(t, tagesschau.ENOTFOUND, tagesschau.ErrorCode(err))
	})
}

func TestExtractor_Tags(t *testing.T) {
	t.Parallel()

	t.Run("extracts labels from a full page", func(t *testing.T) {
		t.Parallel()

		extractor := tsgoquery.NewExtractor()

		assert.Equal(t, []string{"Börse", "DAX"}, extractor.Tags(articleHTML))
	})

	t.Run("returns nothing when the taglist is missing", func(t *testing.T) {
		t.Parallel()

		extractor := tsgoquery.NewExtractor()

		assert.Empty(t, extractor.Tags("<html><body><article><p>Text</p></article></body></html>"))
	})
}
