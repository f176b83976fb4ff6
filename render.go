package scribe

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"time"
)

//go:embed templates
var defaultTemplates embed.FS

func formatDate(d time.Time) string {
	return d.Format("January 2, 2006")
}

func formatDateShort(d time.Time) string {
	return d.Format("Jan 2, 2006")
}

type templateParam struct {
	PageTitle    string
	SiteTitle    string
	FrequentTags []Tag
	Social       []SocialLink
	TagsDir      string
	// Root prefixes site-root-relative links; "../" for pages in a subdirectory.
	Root string
	// A short id such as a tag slug or "index"
	FileID string
	FeedID string
}

func (t templateParam) IdIs(id string) bool {
	return t.FileID == id
}

// FeedPath is the atom feed the current page advertises in its head.
func (t templateParam) FeedPath() string {
	if t.FeedID == "" || t.FeedID == "index" {
		return "index.xml"
	}
	return t.TagsDir + "/" + t.FeedID + ".xml"
}

type postTemplateParam struct {
	templateParam
	*Post
	RenderedBody template.HTML
}

type postListTemplateParam struct {
	templateParam
	PageHeading    string
	Posts          []*Post
	ShowTopicsLink bool
}

type topicsTemplateParam struct {
	templateParam
	PostsByTag postsByTag
}

type renderer interface {
	render(in []byte) string
}

type templateEngine struct {
	toHTML        renderer
	templateDir   string
	templateCache map[string]*template.Template
}

func newTemplateEngine(r renderer, dir string) templateEngine {
	return templateEngine{
		toHTML:        r,
		templateDir:   dir,
		templateCache: make(map[string]*template.Template),
	}
}

func (te *templateEngine) renderPost(tp templateParam, p *Post, w io.Writer) (string, error) {
	renderedBody := template.HTML(te.toHTML.render(p.Body))
	param := postTemplateParam{
		templateParam: tp,
		Post:          p,
		RenderedBody:  renderedBody,
	}

	t, err := te.getTemplate("post.html")
	if err != nil {
		return "", err
	}
	return string(renderedBody), t.Execute(w, param)
}

func (te *templateEngine) renderPostList(tp templateParam, ps []*Post, showTopicsLink bool, pageHeading string, w io.Writer) error {
	param := postListTemplateParam{
		templateParam:  tp,
		PageHeading:    pageHeading,
		Posts:          ps,
		ShowTopicsLink: showTopicsLink,
	}
	t, err := te.getTemplate("list.html")
	if err != nil {
		return err
	}
	return t.Execute(w, param)
}

func (te *templateEngine) renderTopics(tp templateParam, topics postsByTag, w io.Writer) error {
	param := topicsTemplateParam{
		templateParam: tp,
		PostsByTag:    topics,
	}
	t, err := te.getTemplate("topics.html")
	if err != nil {
		return err
	}
	return t.Execute(w, param)
}

func (te *templateEngine) getTemplate(filename string) (*template.Template, error) {
	if t, ok := te.templateCache[filename]; ok {
		return t, nil
	}

	globalSrc, err := te.templateSource("global.html")
	if err != nil {
		return nil, err
	}
	pageSrc, err := te.templateSource(filename)
	if err != nil {
		return nil, err
	}

	t := template.New("global.html")
	if _, err := t.Parse(globalSrc); err != nil {
		return nil, fmt.Errorf("parse template global.html: %w", err)
	}
	if _, err := t.New(filename).Parse(pageSrc); err != nil {
		return nil, fmt.Errorf("parse template %v: %w", filename, err)
	}

	te.templateCache[filename] = t
	return t, nil
}

// templateSource prefers the configured template dir, falling back to the
// embedded defaults file by file.
func (te *templateEngine) templateSource(filename string) (string, error) {
	if te.templateDir != "" {
		src, err := os.ReadFile(filepath.Join(te.templateDir, filename))
		if err == nil {
			return string(src), nil
		}
		if !os.IsNotExist(err) {
			return "", err
		}
	}

	src, err := defaultTemplates.ReadFile("templates/" + filename)
	if err != nil {
		return "", fmt.Errorf("no template named %v: %w", filename, err)
	}
	return string(src), nil
}
