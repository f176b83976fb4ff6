package scribe

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func baseParam() templateParam {
	return templateParam{
		SiteTitle: "Test Site",
		TagsDir:   "tags",
		Social: []SocialLink{
			{Name: "GitHub", URL: "https://github.com/joeuser", Icon: "static/icons/github.svg"},
		},
		FeedID: "index",
	}
}

func TestRenderPostWithDefaultTemplates(t *testing.T) {
	engine := newTemplateEngine(newMarkdownRenderer(), "")

	p := &Post{
		ID:    3,
		Title: "Hello World",
		Slug:  "hello-world",
		Date:  day(2025, 1, 2),
		Body:  []byte("Some **bold** text."),
		Tags:  []Tag{"go"},
	}
	tp := baseParam()
	tp.PageTitle = p.Title
	tp.FileID = p.Slug

	var b bytes.Buffer
	rendered, err := engine.renderPost(tp, p, &b)
	if err != nil {
		t.Fatalf("renderPost: %v", err)
	}

	out := b.String()
	if !strings.Contains(out, "<title>Hello World</title>") {
		t.Fatalf("page title missing:\n%s", out)
	}
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Fatalf("markdown body missing:\n%s", out)
	}
	if !strings.Contains(out, "January 2, 2025") {
		t.Fatalf("human-readable date missing:\n%s", out)
	}
	if !strings.Contains(out, `href="tags/go.html"`) {
		t.Fatalf("tag link missing:\n%s", out)
	}
	if !strings.Contains(out, `<img src="static/icons/github.svg"`) {
		t.Fatalf("social icon missing:\n%s", out)
	}
	if !strings.Contains(rendered, "<strong>bold</strong>") {
		t.Fatalf("renderPost should return the rendered body, got %q", rendered)
	}
}

func TestRenderPostList(t *testing.T) {
	engine := newTemplateEngine(newMarkdownRenderer(), "")

	ps := []*Post{
		{ID: 2, Title: "Second", Slug: "second", Date: day(2025, 3, 4)},
		{ID: 1, Title: "First", Slug: "first", Date: day(2025, 1, 2)},
	}
	tp := baseParam()
	tp.PageTitle = "Test Site"
	tp.FileID = "index"

	var b bytes.Buffer
	if err := engine.renderPostList(tp, ps, true, "", &b); err != nil {
		t.Fatalf("renderPostList: %v", err)
	}

	out := b.String()
	if !strings.Contains(out, `<a href="second.html">Second</a>`) {
		t.Fatalf("post link missing:\n%s", out)
	}
	if !strings.Contains(out, "Mar 4, 2025") {
		t.Fatalf("short date missing:\n%s", out)
	}
	if strings.Index(out, "Second") > strings.Index(out, "First") {
		t.Fatalf("list order does not follow input order:\n%s", out)
	}
	if !strings.Contains(out, `topics.html`) {
		t.Fatalf("topics link missing:\n%s", out)
	}
}

func TestRenderTopics(t *testing.T) {
	engine := newTemplateEngine(newMarkdownRenderer(), "")

	ps := posts{
		{ID: 1, Title: "a", Date: day(2024, 1, 1), Tags: []Tag{"go"}},
		{ID: 2, Title: "b", Date: day(2025, 1, 1), Tags: []Tag{"go"}},
	}
	tp := baseParam()
	tp.PageTitle = "Topics"
	tp.FileID = "topics"

	var b bytes.Buffer
	if err := engine.renderTopics(tp, groupByTag(ps), &b); err != nil {
		t.Fatalf("renderTopics: %v", err)
	}

	out := b.String()
	if !strings.Contains(out, `href="tags/go.html"`) {
		t.Fatalf("tag page link missing:\n%s", out)
	}
	if !strings.Contains(out, "2 posts") {
		t.Fatalf("post count missing:\n%s", out)
	}
}

func TestTemplateDirOverridesFileByFile(t *testing.T) {
	dir := t.TempDir()
	custom := `{{define "content"}}CUSTOM LIST {{len .Posts}}{{end}}`
	if err := os.WriteFile(filepath.Join(dir, "list.html"), []byte(custom), 0o664); err != nil {
		t.Fatalf("write template: %v", err)
	}

	engine := newTemplateEngine(newMarkdownRenderer(), dir)

	tp := baseParam()
	tp.PageTitle = "Index"

	var b bytes.Buffer
	err := engine.renderPostList(tp, []*Post{{ID: 1, Title: "x", Slug: "x", Date: day(2025, 1, 1)}}, false, "", &b)
	if err != nil {
		t.Fatalf("renderPostList: %v", err)
	}

	out := b.String()
	if !strings.Contains(out, "CUSTOM LIST 1") {
		t.Fatalf("custom list template not used:\n%s", out)
	}
	// global.html still comes from the embedded defaults.
	if !strings.Contains(out, "<title>Index</title>") {
		t.Fatalf("embedded global template not used:\n%s", out)
	}
}

func TestTemplateCacheReuse(t *testing.T) {
	engine := newTemplateEngine(newMarkdownRenderer(), "")

	first, err := engine.getTemplate("list.html")
	if err != nil {
		t.Fatalf("getTemplate: %v", err)
	}
	second, err := engine.getTemplate("list.html")
	if err != nil {
		t.Fatalf("getTemplate: %v", err)
	}
	if first != second {
		t.Fatalf("template cache not reused")
	}
}
