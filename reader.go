package scribe

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

func findPostFiles(dir, fileExtension string) ([]string, error) {
	files := make([]string, 0, 100)

	myWalkFunc := func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("walk %v: %w", path, err)
		}

		if !info.IsDir() && strings.HasSuffix(path, fileExtension) {
			files = append(files, path)
		}
		return nil
	}

	err := filepath.Walk(dir, myWalkFunc)
	return files, err
}

// postFrontMatter is the YAML envelope at the top of every post file. ID is
// a pointer so a missing id can be told apart from id 0.
type postFrontMatter struct {
	ID     *int      `yaml:"id"`
	Title  string    `yaml:"title"`
	Slug   string    `yaml:"slug"`
	Blurb  string    `yaml:"blurb"`
	Date   time.Time `yaml:"date"`
	Tags   []string  `yaml:"tags"`
	Draft  bool      `yaml:"draft"`
	Static bool      `yaml:"static"`
}

func readPostFromFile(path string) (*Post, error) {
	fileContent, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var meta postFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(fileContent), &meta)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter of %v: %w", path, err)
	}

	if meta.ID == nil {
		return nil, fmt.Errorf("post %v: missing id", path)
	}
	if *meta.ID < 0 {
		return nil, fmt.Errorf("post %v: negative id %d", path, *meta.ID)
	}
	if strings.TrimSpace(meta.Title) == "" {
		return nil, fmt.Errorf("post %v: missing title", path)
	}
	if meta.Date.IsZero() && !meta.Static {
		return nil, fmt.Errorf("post %v: missing date", path)
	}

	postSlug := strings.TrimSpace(meta.Slug)
	if postSlug == "" {
		postSlug = Slugify(meta.Title)
	}
	if postSlug == "" {
		return nil, fmt.Errorf("post %v: cannot derive a slug from title %q", path, meta.Title)
	}

	p := &Post{
		ID:     *meta.ID,
		Title:  meta.Title,
		Slug:   postSlug,
		Blurb:  meta.Blurb,
		Date:   meta.Date,
		Path:   path,
		Body:   body,
		Tags:   make([]Tag, 0, len(meta.Tags)),
		Draft:  meta.Draft,
		Static: meta.Static,
	}

	for _, t := range meta.Tags {
		if t = strings.TrimSpace(t); t != "" {
			p.Tags = append(p.Tags, Tag(t))
		}
	}

	return p, nil
}
