package markdown_test

import (
	"testing"

	tagesschau "github.com/Kaschi14/TagesschauScraper"
	"github.com/Kaschi14/TagesschauScraper/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, contentHTML string) *tagesschau.RenderedDocument {
	t.Helper()
	doc, err := markdown.NewRenderer().Render(contentHTML)
	require.NoError(t, err)
	return doc
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders headings with matching marker depth", func(t *testing.T) {
		t.Parallel()

		doc := render(t, `<h1>Titel</h1><h2>Zwischentitel</h2><h3>Abschnitt</h3>`)

		assert.Equal(t, []string{"# Titel", "## Zwischentitel", "### Abschnitt"}, doc.Blocks)
	})

	t.Run("renders paragraphs with inline markup", func(t *testing.T) {
		t.Parallel()

		doc := render(t, `<p><strong>Fett</strong> und <em>kursiv</em> im Text.</p>`)

		require.Len(t, doc.Blocks, 1)
		assert.Equal(t, "**Fett** und *kursiv* im Text.", doc.Blocks[0])
	})

	t.Run("preserves link text and target in one block", func(t *testing.T) {
		t.Parallel()

		doc := render(t, `<p>Mehr im <a href="https://www.tagesschau.de/wirtschaft/boerse-101.html">Marktbericht</a> lesen.</p>`)

		require.Len(t, doc.Blocks, 1)
		assert.Contains(t, doc.Blocks[0], "Marktbericht")
		assert.Contains(t, doc.Blocks[0], "https://www.tagesschau.de/wirtschaft/boerse-101.html")
		assert.Equal(t, "Mehr im [Marktbericht](https://www.tagesschau.de/wirtschaft/boerse-101.html) lesen.", doc.Blocks[0])
	})

	t.Run("renders unordered lists as one block", func(t *testing.T) {
		t.Parallel()

		doc := render(t, `<ul><li>Erstens</li><li>Zweitens</li></ul>`)

		assert.Equal(t, []string{"- Erstens\n- Zweitens"}, doc.Blocks)
	})

	t.Run("renders ordered lists with numeric markers", func(t *testing.T) {
		t.Parallel()

		doc := render(t, `<ol><li>Erstens</li><li>Zweitens</li><li>Drittens</li></ol>`)

		assert.Equal(t, []string{"1. Erstens\n2. Zweitens\n3. Drittens"}, doc.Blocks)
	})

	t.Run("renders nested lists depth-first with indentation", func(t *testing.T) {
		t.Parallel()

		doc := render(t, `<ul><li>A<ul><li>B1</li><li>B2</li></ul></li><li>C</li></ul>`)

		require.Len(t, doc.Blocks, 1)
		assert.Equal(t, "- A\n  - B1\n  - B2\n- C", doc.Blocks[0])
	})

	t.Run("renders blockquotes with quote markers per line", func(t *testing.T) {
		t.Parallel()

		doc := render(t, `<blockquote><p>Erster Satz.</p><p>Zweiter Satz.</p></blockquote>`)

		assert.Equal(t, []string{"> Erster Satz.\n> Zweiter Satz."}, doc.Blocks)
	})

	t.Run("prunes unrecognized elements with their descendants", func(t *testing.T) {
		t.Parallel()

		doc := render(t, `<p>Sichtbar.</p><script>var x = "unsichtbar";</script><table><tr><td>auch unsichtbar</td></tr></table><p>Wieder sichtbar.</p>`)

		assert.Equal(t, []string{"Sichtbar.", "Wieder sichtbar."}, doc.Blocks)
	})

	t.Run("wraps stray container text into an implicit paragraph", func(t *testing.T) {
		t.Parallel()

		doc := render(t, `<article>Loser Text am Anfang.<p>Ein Absatz.</p></article>`)

		assert.Equal(t, []string{"Loser Text am Anfang.", "Ein Absatz."}, doc.Blocks)
	})

	t.Run("collapses whitespace runs and trims blocks", func(t *testing.T) {
		t.Parallel()

		doc := render(t, "<p>  Viel \n\t zu   viel  Platz.  </p>")

		assert.Equal(t, []string{"Viel zu viel Platz."}, doc.Blocks)
	})

	t.Run("emits no empty blocks", func(t *testing.T) {
		t.Parallel()

		doc := render(t, `<p>   </p><h2></h2><ul><li>  </li></ul><p>Inhalt.</p>`)

		assert.Equal(t, []string{"Inhalt."}, doc.Blocks)
	})

	t.Run("descends through wrapper chains to the content", func(t *testing.T) {
		t.Parallel()

		doc := render(t, `<div class="storywrapper"><article class="container"><p>Innen.</p><p>Auch innen.</p></article></div>`)

		assert.Equal(t, []string{"Innen.", "Auch innen."}, doc.Blocks)
	})

	t.Run("renders span-wrapped headline parts", func(t *testing.T) {
		t.Parallel()

		doc := render(t, `<h1><span class="seitenkopf__topline">Marktbericht</span><span class="seitenkopf__headline">Kurse unter Druck</span></h1>`)

		assert.Equal(t, []string{"# Marktbericht Kurse unter Druck"}, doc.Blocks)
	})

	t.Run("joined output separates blocks with one blank line", func(t *testing.T) {
		t.Parallel()

		doc := render(t, `<h2>Titel</h2><p>Absatz.</p>`)

		assert.Equal(t, "## Titel\n\nAbsatz.", doc.String())
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := markdown.NewRenderer().Render("   ")

		require.Error(t, err)
		assert.Equal(t, tagesschau.EINVALID, tagesschau.ErrorCode(err))
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		const html = `<article><h2>Titel</h2><p>Ein <strong>wichtiger</strong> Absatz.</p><ul><li>eins</li></ul></article>`

		first := render(t, html)
		second := render(t, html)

		assert.Equal(t, first.Blocks, second.Blocks)
	})
}
