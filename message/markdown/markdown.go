// Package markdown converts CommonMark text into Slack's mrkdwn markup.
package markdown

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

const (
	bulletMarker = "•   "
	listIndent   = "    "
	quotePrefix  = "> "
	ruleMarker   = "---"
	codeFence    = "```"
)

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Converter renders markdown as mrkdwn
type Converter struct {
	md goldmark.Markdown
}

// New creates a converter with strikethrough and autolink support
func New() *Converter {
	return &Converter{
		md: goldmark.New(goldmark.WithExtensions(extension.Strikethrough, extension.Linkify)),
	}
}

// Convert parses src as markdown and returns the equivalent mrkdwn text
func (c *Converter) Convert(src string) string {
	source := []byte(src)
	doc := c.md.Parser().Parse(text.NewReader(source))
	r := renderer{source: source}
	return strings.TrimSpace(r.children(doc, "\n\n"))
}

type renderer struct {
	source []byte
}

// children renders each block child of n and joins them with sep
func (r renderer) children(n ast.Node, sep string) string {
	var parts []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if out := r.block(c); out != "" {
			parts = append(parts, out)
		}
	}
	return strings.Join(parts, sep)
}

func (r renderer) block(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Paragraph:
		return r.inlines(n)
	case *ast.TextBlock:
		return r.inlines(n)
	case *ast.Heading:
		return "*" + r.inlines(n) + "*"
	case *ast.ThematicBreak:
		return ruleMarker
	case *ast.FencedCodeBlock:
		return codeFence + "\n" + r.lines(n) + codeFence
	case *ast.CodeBlock:
		return codeFence + "\n" + r.lines(n) + codeFence
	case *ast.HTMLBlock:
		return strings.TrimRight(r.lines(n), "\n")
	case *ast.Blockquote:
		return prefixLines(r.children(n, "\n\n"), quotePrefix, quotePrefix)
	case *ast.List:
		return r.list(n)
	default:
		return r.children(n, "\n\n")
	}
}

func (r renderer) list(n *ast.List) string {
	var items []string
	index := n.Start
	if index == 0 {
		index = 1
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		marker := bulletMarker
		if n.IsOrdered() {
			marker = fmt.Sprintf("%d. ", index)
			index++
		}
		body := r.children(c, "\n")
		items = append(items, prefixLines(body, marker, listIndent))
	}
	return strings.Join(items, "\n")
}

func (r renderer) lines(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(r.source))
	}
	return b.String()
}

func (r renderer) inlines(n ast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		r.inline(&b, c)
	}
	return b.String()
}

func (r renderer) inline(b *strings.Builder, n ast.Node) {
	switch n := n.(type) {
	case *ast.Text:
		b.WriteString(escaper.Replace(string(n.Segment.Value(r.source))))
		if n.SoftLineBreak() || n.HardLineBreak() {
			b.WriteByte('\n')
		}
	case *ast.String:
		b.WriteString(escaper.Replace(string(n.Value)))
	case *ast.CodeSpan:
		b.WriteString("`" + r.inlines(n) + "`")
	case *ast.Emphasis:
		mark := "_"
		if n.Level >= 2 {
			mark = "*"
		}
		b.WriteString(mark + r.inlines(n) + mark)
	case *extast.Strikethrough:
		b.WriteString("~" + r.inlines(n) + "~")
	case *ast.Link:
		b.WriteString(link(string(n.Destination), r.inlines(n)))
	case *ast.Image:
		b.WriteString(link(string(n.Destination), r.inlines(n)))
	case *ast.AutoLink:
		b.WriteString(link(string(n.URL(r.source)), escaper.Replace(string(n.Label(r.source)))))
	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			b.Write(seg.Value(r.source))
		}
	default:
		b.WriteString(r.inlines(n))
	}
}

func link(url, label string) string {
	if label == "" || label == url {
		return "<" + url + ">"
	}
	return "<" + url + "|" + label + ">"
}

// prefixLines prefixes the first line of s with first and every following line with rest
func prefixLines(s, first, rest string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if i == 0 {
			lines[i] = first + line
			continue
		}
		if line == "" && rest != quotePrefix {
			continue
		}
		lines[i] = rest + line
	}
	return strings.Join(lines, "\n")
}
