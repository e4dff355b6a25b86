// Package mdansi renders Markdown as ANSI-styled terminal text.
//
// Backend replies are Markdown-ish (headings, lists, emphasis, the odd code
// span). Viewports render plain strings, so this package parses the Markdown
// and flattens it into styled lines. Unsupported constructs degrade to
// readable approximations: images become links, tables become their cell
// text, horizontal rules become a dashed line.
package mdansi

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	italicStyle  = lipgloss.NewStyle().Italic(true)
	codeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))  // yellow
	quoteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // dim gray
	linkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))  // blue
)

// Render converts Markdown into terminal text.
func Render(markdown string) string {
	source := []byte(markdown)
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(source))

	r := &renderer{source: source}
	r.walkBlocks(doc)
	return strings.TrimRight(r.buf.String(), "\n ")
}

type renderer struct {
	source    []byte
	buf       bytes.Buffer
	listDepth int
}

func (r *renderer) walkBlocks(n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		r.block(c)
	}
}

func (r *renderer) block(node ast.Node) {
	switch n := node.(type) {
	case *ast.Document:
		r.walkBlocks(n)

	case *ast.Heading:
		r.buf.WriteString(headingStyle.Render(r.inlineText(n)))
		r.buf.WriteString("\n\n")

	case *ast.Paragraph:
		r.inlines(n)
		r.buf.WriteString("\n\n")

	case *ast.TextBlock:
		r.inlines(n)
		r.buf.WriteString("\n")

	case *ast.Blockquote:
		sub := &renderer{source: r.source}
		sub.walkBlocks(n)
		for _, line := range strings.Split(strings.TrimRight(sub.buf.String(), "\n "), "\n") {
			r.buf.WriteString(quoteStyle.Render("│ " + line))
			r.buf.WriteString("\n")
		}
		r.buf.WriteString("\n")

	case *ast.List:
		r.list(n)

	case *ast.FencedCodeBlock:
		r.codeLines(n)

	case *ast.CodeBlock:
		r.codeLines(n)

	case *ast.ThematicBreak:
		r.buf.WriteString(quoteStyle.Render(strings.Repeat("─", 24)))
		r.buf.WriteString("\n\n")

	default:
		if node.Type() == ast.TypeBlock {
			r.inlines(node)
			r.buf.WriteString("\n")
		}
	}
}

func (r *renderer) list(n *ast.List) {
	r.listDepth++
	indent := strings.Repeat("  ", r.listDepth-1)
	index := n.Start
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "• "
		if n.IsOrdered() {
			marker = fmt.Sprintf("%d. ", index)
			index++
		}
		sub := &renderer{source: r.source, listDepth: r.listDepth}
		sub.walkBlocks(item)
		body := strings.TrimRight(sub.buf.String(), "\n ")
		for i, line := range strings.Split(body, "\n") {
			if i == 0 {
				r.buf.WriteString(indent + marker + line)
			} else if line != "" {
				r.buf.WriteString(indent + strings.Repeat(" ", len(marker)) + line)
			}
			r.buf.WriteString("\n")
		}
	}
	r.listDepth--
	if r.listDepth == 0 {
		r.buf.WriteString("\n")
	}
}

func (r *renderer) codeLines(n interface {
	Lines() *text.Segments
}) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimRight(string(seg.Value(r.source)), "\n")
		r.buf.WriteString("  " + codeStyle.Render(line))
		r.buf.WriteString("\n")
	}
	r.buf.WriteString("\n")
}

// inlineText flattens a node's inline content without styling, for contexts
// that apply one style to the whole line.
func (r *renderer) inlineText(n ast.Node) string {
	sub := &renderer{source: r.source}
	sub.inlines(n)
	return sub.buf.String()
}

func (r *renderer) inlines(n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		r.inline(c)
	}
}

func (r *renderer) inline(node ast.Node) {
	switch n := node.(type) {
	case *ast.Text:
		r.buf.Write(n.Segment.Value(r.source))
		if n.SoftLineBreak() || n.HardLineBreak() {
			r.buf.WriteString("\n")
		}

	case *ast.String:
		r.buf.Write(n.Value)

	case *ast.Emphasis:
		style := italicStyle
		if n.Level >= 2 {
			style = boldStyle
		}
		r.buf.WriteString(style.Render(r.inlineText(n)))

	case *ast.CodeSpan:
		r.buf.WriteString(codeStyle.Render(r.inlineText(n)))

	case *ast.Link:
		label := r.inlineText(n)
		dest := string(n.Destination)
		if label == "" || label == dest {
			r.buf.WriteString(linkStyle.Render(dest))
		} else {
			r.buf.WriteString(label + " " + linkStyle.Render("("+dest+")"))
		}

	case *ast.Image:
		r.buf.WriteString(linkStyle.Render(string(n.Destination)))

	case *ast.AutoLink:
		r.buf.WriteString(linkStyle.Render(string(n.URL(r.source))))

	default:
		r.inlines(node)
	}
}
