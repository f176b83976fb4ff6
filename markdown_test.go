package scribe

import (
	"strings"
	"testing"
)

func TestMarkdownRendererBasics(t *testing.T) {
	r := newMarkdownRenderer()

	html := r.render([]byte("# Heading\n\nSome *emphasis* here."))
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "<em>emphasis</em>") {
		t.Fatalf("basic markdown not rendered: %q", html)
	}
}

func TestMarkdownRendererExtensions(t *testing.T) {
	r := newMarkdownRenderer()

	html := r.render([]byte("```go\nfmt.Println(\"hi\")\n```\n"))
	if !strings.Contains(html, "<pre>") || !strings.Contains(html, "language-go") {
		t.Fatalf("fenced code not rendered: %q", html)
	}

	html = r.render([]byte("~~gone~~"))
	if !strings.Contains(html, "<del>gone</del>") {
		t.Fatalf("strikethrough not rendered: %q", html)
	}

	html = r.render([]byte("a | b\n---|---\n1 | 2\n"))
	if !strings.Contains(html, "<table>") {
		t.Fatalf("tables not rendered: %q", html)
	}
}
