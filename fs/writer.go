// Package fs persists scrape results to the local filesystem: archive
// pages as JSON teaser files in a year/month directory tree and rendered
// articles as markdown files.
package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf16"

	tagesschau "github.com/Kaschi14/TagesschauScraper"
	"github.com/gosimple/slug"
)

// Writer writes teaser records and rendered articles below a base
// directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer rooted at baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// teaserFile is the persisted JSON shape of one archive page.
type teaserFile struct {
	Teaser []tagesschau.TeaserRecord `json:"teaser"`
}

// WriteTeasers persists an archive page's teasers as JSON under
// <base>/YYYY/MM/YYYY-MM-DD_<category>.json and returns the written
// path. Non-ASCII characters are escaped so the files are
// byte-comparable across locales.
func (w *Writer) WriteTeasers(page *tagesschau.ArchivePage, query tagesschau.ArchiveQuery) (string, error) {
	data, err := json.MarshalIndent(teaserFile{Teaser: page.Records()}, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(w.baseDir, TeaserPath(query))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, escapeNonASCII(data), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteArticle persists a rendered article as a markdown file named by
// its slugified headline and returns the written path.
func (w *Writer) WriteArticle(article *tagesschau.Article, doc *tagesschau.RenderedDocument) (string, error) {
	if err := article.Validate(); err != nil {
		return "", err
	}

	path := filepath.Join(w.baseDir, ArticlePath(article))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(FormatArticle(article, doc)), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// TeaserPath returns the relative teaser file path for a query,
// e.g. "2022/03/2022-03-01_wirtschaft.json".
func TeaserPath(query tagesschau.ArchiveQuery) string {
	category := string(query.Category)
	if category == "" {
		category = "all"
	}
	return filepath.Join(
		query.Date.Format("2006"),
		query.Date.Format("01"),
		fmt.Sprintf("%s_%s.json", query.Date.Format("2006-01-02"), category),
	)
}

// ArticlePath returns the relative markdown file path for an article.
// The headline makes a readable name; articles without one fall back to
// the URL's last path element.
func ArticlePath(article *tagesschau.Article) string {
	name := slug.Make(article.Headline)
	if name == "" {
		name = slug.Make(strings.TrimSuffix(filepath.Base(article.SourceURL), ".html"))
	}
	if name == "" {
		name = "article"
	}
	return name + ".md"
}

// FormatArticle formats a rendered article with YAML frontmatter.
func FormatArticle(article *tagesschau.Article, doc *tagesschau.RenderedDocument) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(article.SourceURL)
	if article.Headline != "" {
		b.WriteString("\ntitle: ")
		b.WriteString(article.Headline)
	}
	if len(article.Tags) > 0 {
		b.WriteString("\ntags: ")
		b.WriteString(strings.Join(article.Tags, ","))
	}
	b.WriteString("\n---\n\n")
	b.WriteString(doc.String())
	b.WriteString("\n")
	return b.String()
}

// escapeNonASCII rewrites every non-ASCII rune in JSON output as a
// \uXXXX escape (surrogate pairs for runes above the basic plane).
// encoding/json leaves valid UTF-8 alone, so this pass runs on the
// marshaled bytes.
func escapeNonASCII(data []byte) []byte {
	var b strings.Builder
	b.Grow(len(data))
	for _, r := range string(data) {
		switch {
		case r < 0x80:
			b.WriteRune(r)
		case r > 0xFFFF:
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(&b, `\u%04x\u%04x`, r1, r2)
		default:
			fmt.Fprintf(&b, `\u%04x`, r)
		}
	}
	return []byte(b.String())
}
