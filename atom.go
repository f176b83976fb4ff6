package scribe

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	atom "github.com/thomas11/atomgenerator"
)

const maxFeedItems = 100

// RenderAtom writes the site-wide feed to index.xml plus one feed per tag
// under the tags output directory.
func (s *Site) RenderAtom() error {
	filePath := filepath.Join(s.conf.OutDir, "index.xml")
	if err := s.renderAndSaveFeed(s.conf.SiteTitle, "", filePath, s.posts); err != nil {
		return err
	}

	return s.renderAndSaveTagFeeds()
}

func (s *Site) renderFeed(title, relURL string, ps []*Post) ([]byte, error) {
	feedURL := s.conf.BaseURL
	if len(relURL) > 0 {
		if relURL[0] == '/' {
			relURL = relURL[1:]
		}
		feedURL += relURL
	}

	feed := atom.Feed{
		Title:   title,
		Link:    feedURL,
		PubDate: time.Now(),
	}
	feed.AddAuthor(atom.Author{
		Name: s.conf.Author,
		Uri:  s.conf.AuthorURI,
	})

	items := 0
	for _, p := range ps {
		if p.Static {
			continue
		}
		if items == maxFeedItems {
			break
		}
		feed.AddEntry(s.entryForPost(p))
		items++
	}

	errs := feed.Validate()
	if len(errs) > 0 {
		for _, e := range errs {
			s.log.Error("invalid atom feed", "feed", title, "problem", e.Error())
		}
		return nil, fmt.Errorf("atom feed %q is not valid: %w", title, errs[0])
	}

	return feed.GenXml()
}

func (s *Site) entryForPost(p *Post) *atom.Entry {
	e := &atom.Entry{
		Title:       p.Title,
		Description: p.Blurb,
		Link:        s.conf.BaseURL + p.Route(),
		PubDate:     p.Date,
	}

	for _, t := range p.Tags {
		e.AddCategory(atom.Category{Term: string(t)})
	}

	if renderedBody, ok := s.renderCache[p.Slug]; ok {
		e.Content = renderedBody
	}

	return e
}

func (s *Site) renderAndSaveFeed(title, relURL, filePath string, ps []*Post) error {
	atomXML, err := s.renderFeed(title, relURL, ps)
	if err != nil {
		return err
	}

	return os.WriteFile(filePath, atomXML, os.FileMode(0664))
}

func (s *Site) renderAndSaveTagFeeds() error {
	for _, tagPosts := range groupByTag(s.posts) {
		tag := tagPosts.Tag
		title := s.conf.SiteTitle + ` Tag "` + tag.String() + `."`
		urlPath := s.conf.TagsOutDir + "/" + tag.Slug() + "/"
		filePath := filepath.Join(s.conf.OutDir, s.conf.TagsOutDir, tag.Slug()+".xml")

		if err := s.renderAndSaveFeed(title, urlPath, filePath, tagPosts.Posts); err != nil {
			return err
		}
	}
	return nil
}
