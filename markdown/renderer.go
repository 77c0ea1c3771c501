// Package markdown renders extracted article content into structured
// text. The renderer walks the content tree in document order,
// classifying every node into a closed set of element kinds and
// dispatching exhaustively on the kind; anything unclassified is pruned
// together with its subtree so stray markup never leaks into the output.
package markdown

import (
	"strconv"
	"strings"

	tagesschau "github.com/Kaschi14/TagesschauScraper"
	"golang.org/x/net/html"
)

// listIndent is the indentation added per list nesting level.
const listIndent = "  "

// Ensure Renderer implements tagesschau.Renderer at compile time.
var _ tagesschau.Renderer = (*Renderer)(nil)

// Renderer converts content HTML into a markdown block sequence. The
// zero value is ready to use; rendering holds no cross-call state.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// kind is the closed set of element roles the renderer understands.
type kind int

const (
	kindUnrecognized kind = iota
	kindText
	kindHeading
	kindParagraph
	kindListOrdered
	kindListUnordered
	kindListItem
	kindQuote
	kindEmphasis
	kindStrong
	kindLink
	kindSpan  // transparent inline wrapper, site headlines use these
	kindBreak // line break, rendered as a single space
)

// classify maps a node to its element kind. Headings also report their
// level. Classification happens once per node at traversal entry.
func classify(n *html.Node) (kind, int) {
	switch n.Type {
	case html.TextNode:
		return kindText, 0
	case html.ElementNode:
		switch n.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			return kindHeading, int(n.Data[1] - '0')
		case "p":
			return kindParagraph, 0
		case "ol":
			return kindListOrdered, 0
		case "ul":
			return kindListUnordered, 0
		case "li":
			return kindListItem, 0
		case "blockquote":
			return kindQuote, 0
		case "em", "i":
			return kindEmphasis, 0
		case "strong", "b":
			return kindStrong, 0
		case "a":
			return kindLink, 0
		case "span":
			return kindSpan, 0
		case "br":
			return kindBreak, 0
		}
	}
	return kindUnrecognized, 0
}

// Render converts content HTML into the canonical block sequence.
// Blocks preserve document order; none is empty after trimming.
func (r *Renderer) Render(contentHTML string) (*tagesschau.RenderedDocument, error) {
	if strings.TrimSpace(contentHTML) == "" {
		return nil, tagesschau.Errorf(tagesschau.EINVALID, "empty content HTML")
	}

	doc, err := html.Parse(strings.NewReader(contentHTML))
	if err != nil {
		return nil, tagesschau.Errorf(tagesschau.EINVALID, "failed to parse content HTML: %v", err)
	}

	return &tagesschau.RenderedDocument{Blocks: renderBlocks(containerNode(doc))}, nil
}

// containerNode locates the content container to walk. html.Parse wraps
// fragments in html/body; single unrecognized wrapper elements (the body
// container itself, nested layout divs) are descended through until the
// node whose children are the content sequence.
func containerNode(doc *html.Node) *html.Node {
	container := findBody(doc)
	if container == nil {
		return doc
	}

	for {
		child := soleElementChild(container)
		if child == nil {
			return container
		}
		if k, _ := classify(child); k != kindUnrecognized {
			return container
		}
		container = child
	}
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if body := findBody(c); body != nil {
			return body
		}
	}
	return nil
}

// soleElementChild returns the node's only element child, or nil if the
// node has multiple element children or any non-whitespace text.
func soleElementChild(n *html.Node) *html.Node {
	var sole *html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				return nil
			}
		case html.ElementNode:
			if sole != nil {
				return nil
			}
			sole = c
		}
	}
	return sole
}

// renderBlocks walks the container's children in document order and
// emits one string per block. Text and inline elements directly inside
// the container accumulate into an implicit paragraph that is flushed
// when a block element begins.
func renderBlocks(container *html.Node) []string {
	var blocks []string
	var implicit strings.Builder

	flush := func() {
		if s := collapseSpace(implicit.String()); s != "" {
			blocks = append(blocks, s)
		}
		implicit.Reset()
	}
	emit := func(block string) {
		if block != "" {
			blocks = append(blocks, block)
		}
	}

	for n := container.FirstChild; n != nil; n = n.NextSibling {
		k, level := classify(n)
		switch k {
		case kindText:
			implicit.WriteString(n.Data)
		case kindEmphasis, kindStrong, kindLink, kindSpan, kindBreak:
			implicit.WriteString(renderInline(n))
		case kindHeading:
			flush()
			if text := collapseSpace(renderInlineChildren(n)); text != "" {
				emit(strings.Repeat("#", level) + " " + text)
			}
		case kindParagraph:
			flush()
			emit(collapseSpace(renderInlineChildren(n)))
		case kindListOrdered, kindListUnordered:
			flush()
			emit(strings.Join(renderList(n, 0, k == kindListOrdered), "\n"))
		case kindQuote:
			flush()
			emit(renderQuote(n))
		case kindListItem, kindUnrecognized:
			// Pruned: the subtree is not visited.
		}
	}
	flush()

	return blocks
}

// renderInlineChildren concatenates the inline rendering of a node's
// children. Non-inline descendants are pruned.
func renderInlineChildren(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		k, _ := classify(c)
		switch k {
		case kindText:
			b.WriteString(c.Data)
		case kindEmphasis, kindStrong, kindLink, kindSpan, kindBreak:
			b.WriteString(renderInline(c))
		}
	}
	return b.String()
}

// renderInline renders one inline element with its markup markers.
// Markers wrap the trimmed inner text so surrounding whitespace stays
// outside the emphasis.
func renderInline(n *html.Node) string {
	switch k, _ := classify(n); k {
	case kindText:
		return n.Data
	case kindSpan:
		return " " + renderInlineChildren(n) + " "
	case kindBreak:
		return " "
	case kindEmphasis:
		if inner := collapseSpace(renderInlineChildren(n)); inner != "" {
			return " *" + inner + "* "
		}
	case kindStrong:
		if inner := collapseSpace(renderInlineChildren(n)); inner != "" {
			return " **" + inner + "** "
		}
	case kindLink:
		inner := collapseSpace(renderInlineChildren(n))
		href := attrValue(n, "href")
		if href == "" {
			return inner
		}
		if inner == "" {
			inner = href
		}
		return "[" + inner + "](" + href + ")"
	}
	return ""
}

// renderList renders a list element as one line per item, dash-marked
// for unordered lists and number-marked for ordered ones. Nested lists
// are rendered depth-first, indented one level, directly after their
// parent item's line.
func renderList(n *html.Node, depth int, ordered bool) []string {
	var lines []string
	indent := strings.Repeat(listIndent, depth)
	index := 0

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if k, _ := classify(c); k != kindListItem {
			continue
		}
		index++

		marker := "- "
		if ordered {
			marker = strconv.Itoa(index) + ". "
		}

		var text strings.Builder
		var nested []string
		for g := c.FirstChild; g != nil; g = g.NextSibling {
			k, _ := classify(g)
			switch k {
			case kindListOrdered, kindListUnordered:
				nested = append(nested, renderList(g, depth+1, k == kindListOrdered)...)
			case kindText:
				text.WriteString(g.Data)
			case kindEmphasis, kindStrong, kindLink, kindSpan, kindBreak:
				text.WriteString(renderInline(g))
			case kindParagraph:
				text.WriteString(" " + renderInlineChildren(g) + " ")
			}
		}

		if line := collapseSpace(text.String()); line != "" {
			lines = append(lines, indent+marker+line)
		}
		lines = append(lines, nested...)
	}

	return lines
}

// renderQuote renders a blockquote as its contained blocks with every
// line prefixed by the quote marker.
func renderQuote(n *html.Node) string {
	inner := renderBlocks(n)
	if len(inner) == 0 {
		return ""
	}

	var lines []string
	for _, block := range inner {
		for _, line := range strings.Split(block, "\n") {
			lines = append(lines, "> "+line)
		}
	}
	return strings.Join(lines, "\n")
}

func attrValue(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

// collapseSpace trims the string and collapses interior whitespace runs
// to single spaces. This is the whitespace policy for all inline text.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
