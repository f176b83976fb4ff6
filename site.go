// Package scribe is a static blog generator. Posts are markdown files with
// YAML frontmatter; the numeric id field orders the whole site, newest first.
// Tags, atom feeds, a sitemap, and a themed stylesheet come out of the box,
// templates can be overridden per file.
package scribe

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goliatone/go-logger/glog"
	"github.com/otiai10/copy"
)

type Site struct {
	posts       posts
	conf        *SiteConf
	renderCache map[string]string
	log         glog.Logger
	generatedAt time.Time
	routes      []pageRoute
}

// pageRoute records a generated page for the sitemap.
type pageRoute struct {
	Route   string
	LastMod time.Time
}

// ReadSite loads and validates every post under the writing directory. Posts
// flagged draft are skipped unless drafts is true. A nil logger is replaced
// with a default console logger.
func ReadSite(conf *SiteConf, drafts bool, log glog.Logger) (*Site, error) {
	if log == nil {
		log = NewLogger("info").GetLogger("site")
	}

	files, err := findPostFiles(conf.WritingDir, conf.WritingFileExtension)
	if err != nil {
		return nil, err
	}

	thisSite := Site{
		posts:       make(posts, 0, 100),
		conf:        conf,
		renderCache: make(map[string]string),
		log:         log,
		generatedAt: time.Now(),
	}

	idSeen := make(map[int]string, len(files))
	slugSeen := make(map[string]string, len(files))

	for _, f := range files {
		p, err := readPostFromFile(f)
		if err != nil {
			return nil, err
		}
		// Drafts claim their ids and slugs too, so a clash surfaces no
		// matter which flags the site is built with.
		if prev, ok := idSeen[p.ID]; ok {
			return nil, fmt.Errorf("duplicate post id %d in %v and %v", p.ID, prev, f)
		}
		if prev, ok := slugSeen[p.Slug]; ok {
			return nil, fmt.Errorf("duplicate post slug %q in %v and %v", p.Slug, prev, f)
		}
		idSeen[p.ID] = f
		slugSeen[p.Slug] = f
		if p.Draft && !drafts {
			log.Debug("skipping draft", "path", f)
			continue
		}
		thisSite.posts = append(thisSite.posts, p)
	}

	// Order posts by descending id. The date field plays no part in this.
	thisSite.posts.sort()

	return &thisSite, nil
}

// Posts returns the site's posts in their rendered order.
func (s *Site) Posts() []*Post {
	return s.posts
}

func (s *Site) RenderHTML() error {
	engine := newTemplateEngine(newMarkdownRenderer(), s.conf.TemplateDir)

	if err := os.MkdirAll(s.conf.OutDir, os.FileMode(0775)); err != nil {
		return err
	}

	// Create a global template parameter holder. We'll re-use it for all
	// pages, overwriting the title and ids.
	minPostDate := time.Now().AddDate(0, -s.conf.MaxFrequentTagAgeMonths, 0)
	recentEnough := s.posts.pruneOlderThan(minPostDate)
	globalTP := templateParam{
		SiteTitle: s.conf.SiteTitle,
		Social:    s.conf.Social,
		TagsDir:   s.conf.TagsOutDir,
		FrequentTags: groupByTag(recentEnough).frequentTags(
			s.conf.NumFrequentTags,
			s.conf.MinPostsForFrequentTags),
	}

	// Render the posts.
	for _, p := range s.posts {
		outHTMLName := filepath.Join(s.conf.OutDir, p.Route())
		var b bytes.Buffer
		globalTP.PageTitle = p.Title
		globalTP.FeedID = "index"
		globalTP.FileID = p.Slug
		globalTP.Root = ""
		renderedBody, err := engine.renderPost(globalTP, p, &b)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outHTMLName, b.Bytes(), os.FileMode(0664)); err != nil {
			return err
		}
		s.log.Debug("rendered post", "id", p.ID, "route", p.Route())

		s.renderCache[p.Slug] = renderedBody
		s.addRoute(p.Route(), p.Date)
	}

	// Render the tag pages.
	byTag := groupByTag(s.posts)

	tagDir := filepath.Join(s.conf.OutDir, s.conf.TagsOutDir)
	if err := os.MkdirAll(tagDir, os.FileMode(0775)); err != nil {
		return err
	}

	for _, t := range byTag {
		tagSlug := t.Tag.Slug()
		outHTMLName := filepath.Join(tagDir, tagSlug+".html")
		globalTP.PageTitle = t.Tag.String()
		globalTP.FeedID = tagSlug
		globalTP.FileID = tagSlug
		globalTP.Root = "../"
		err := renderPostListToFile(t.Posts, outHTMLName, globalTP, false, t.Tag.String(), engine)
		if err != nil {
			return err
		}
		s.addRoute(s.conf.TagsOutDir+"/"+tagSlug+".html", t.Posts.latestDate())
	}

	// Render the topics overview page.
	var b bytes.Buffer
	globalTP.PageTitle = "Topics"
	globalTP.FeedID = "index"
	globalTP.FileID = "topics"
	globalTP.Root = ""
	if err := engine.renderTopics(globalTP, byTag, &b); err != nil {
		return err
	}
	outHTMLName := filepath.Join(s.conf.OutDir, "topics.html")
	if err := os.WriteFile(outHTMLName, b.Bytes(), os.FileMode(0664)); err != nil {
		return err
	}
	s.addRoute("topics.html", s.generatedAt)

	// Render index.html with the newest MaxPostsOnIndex posts.
	postsForIndex := s.posts
	haveMorePosts := len(s.posts) > s.conf.MaxPostsOnIndex
	if haveMorePosts {
		postsForIndex = postsForIndex[:s.conf.MaxPostsOnIndex]
	}
	globalTP.PageTitle = s.conf.SiteTitle
	globalTP.FeedID = "index"
	globalTP.FileID = "index"
	globalTP.Root = ""
	outHTMLName = filepath.Join(s.conf.OutDir, "index.html")
	if err := renderPostListToFile(postsForIndex, outHTMLName, globalTP, haveMorePosts, "", engine); err != nil {
		return err
	}
	s.addRoute("index.html", s.posts.latestDate())

	// Emit the themed stylesheet next to the pages.
	css, err := renderStylesheet(s.conf.Theme, s.conf.TemplateDir)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.conf.OutDir, "style.css"), css, os.FileMode(0664))
}

func renderPostListToFile(ps []*Post, path string, tp templateParam, showTopicsLink bool, pageHeading string, engine templateEngine) error {
	outFile, err := os.Create(path)
	if err != nil {
		return err
	}
	defer outFile.Close()

	return engine.renderPostList(tp, ps, showTopicsLink, pageHeading, outFile)
}

func (s *Site) addRoute(route string, lastMod time.Time) {
	if lastMod.IsZero() {
		lastMod = s.generatedAt
	}
	s.routes = append(s.routes, pageRoute{Route: route, LastMod: lastMod})
}

func (s *Site) RenderAll() error {
	if err := s.RenderHTML(); err != nil {
		return err
	}
	if err := s.RenderAtom(); err != nil {
		return err
	}
	return s.RenderSitemap()
}

func (s *Site) CopyStaticFiles() error {
	srcDir := s.conf.StaticFilesDir
	if _, err := os.Stat(srcDir); os.IsNotExist(err) {
		s.log.Debug("no static files dir", "path", srcDir)
		return nil
	}
	dirName := filepath.Base(srcDir)
	dest := filepath.Join(s.conf.OutDir, dirName)
	s.log.Info("copying static files", "from", srcDir, "to", dest)
	return copy.Copy(srcDir, dest)
}

// Build runs the full pipeline: read, render, copy static files.
func Build(conf *SiteConf, drafts bool, log glog.Logger) error {
	site, err := ReadSite(conf, drafts, log)
	if err != nil {
		return err
	}
	site.log.Info("writing site", "out", conf.OutDir, "posts", len(site.posts))
	if err = site.RenderAll(); err != nil {
		return err
	}
	return site.CopyStaticFiles()
}
