package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Placeholder is shown in a pane that has no content.
const Placeholder = "Select a file to see content."

// DefaultTheme is the chroma style used for fenced code blocks.
const DefaultTheme = "github"

// Renderer converts markdown into HTML for a pane.
type Renderer struct {
	md    goldmark.Markdown
	theme string
}

// New creates a Renderer. An empty theme uses DefaultTheme.
func New(theme string) *Renderer {
	if theme == "" {
		theme = DefaultTheme
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(theme),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
	return &Renderer{md: md, theme: theme}
}

// Theme returns the code highlighting style name.
func (r *Renderer) Theme() string { return r.theme }

// Render converts text to HTML. Raw HTML inside the document is omitted.
func (r *Renderer) Render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Pane returns the HTML for a pane: rendered markup for non-empty text, or
// the placeholder paragraph. It reports whether the placeholder was used.
func (r *Renderer) Pane(src string) (template.HTML, bool, error) {
	if src == "" {
		return PlaceholderHTML(), true, nil
	}
	out, err := r.Render(src)
	if err != nil {
		return PlaceholderHTML(), true, err
	}
	return out, false, nil
}

// PlaceholderHTML is the markup for an empty pane.
func PlaceholderHTML() template.HTML {
	return template.HTML("<p>" + template.HTMLEscapeString(Placeholder) + "</p>")
}

// Title returns the text of the first level-one heading, or "".
func (r *Renderer) Title(src string) string {
	source := []byte(src)
	doc := r.md.Parser().Parse(text.NewReader(source))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			title = strings.TrimSpace(nodeText(h, source))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}

func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
