package render

import (
	"strings"
	"testing"
)

func TestPaneEmptyShowsPlaceholder(t *testing.T) {
	r := New("")
	out, placeholder, err := r.Pane("")
	if err != nil {
		t.Fatalf("Pane: %v", err)
	}
	if !placeholder {
		t.Error("expected placeholder for empty text")
	}
	if string(out) != "<p>Select a file to see content.</p>" {
		t.Errorf("Pane(\"\") = %q", out)
	}
}

func TestPaneRendersHeading(t *testing.T) {
	r := New("")
	out, placeholder, err := r.Pane("# Title\n...")
	if err != nil {
		t.Fatalf("Pane: %v", err)
	}
	if placeholder {
		t.Error("unexpected placeholder")
	}
	html := string(out)
	if !strings.Contains(html, "<h1") || !strings.Contains(html, ">Title</h1>") {
		t.Errorf("expected top-level heading Title, got %q", html)
	}
	if !strings.Contains(html, `id="title"`) {
		t.Errorf("expected auto heading id, got %q", html)
	}
}

func TestRenderGFMAndHighlighting(t *testing.T) {
	r := New("monokai")
	src := "| a | b |\n|---|---|\n| 1 | 2 |\n\n```go\nfunc main() {}\n```\n\n~~gone~~\n"
	out, err := r.Render(src)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)
	for _, want := range []string{"<table>", "<del>gone</del>", "<pre"} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q: %s", want, html)
		}
	}
	if r.Theme() != "monokai" {
		t.Errorf("Theme = %q", r.Theme())
	}
}

func TestRenderOmitsRawHTML(t *testing.T) {
	r := New("")
	out, err := r.Render("<script>alert(1)</script>\n\ntext")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(out), "<script>") {
		t.Errorf("raw html passed through: %s", out)
	}
}

func TestTitle(t *testing.T) {
	r := New("")
	tests := []struct {
		src, want string
	}{
		{"# Title\n...", "Title"},
		{"intro\n\n## Sub\n\n# Main *thing*\n", "Main thing"},
		{"no heading", ""},
	}
	for _, tt := range tests {
		if got := r.Title(tt.src); got != tt.want {
			t.Errorf("Title(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}
