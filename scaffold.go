package scribe

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goliatone/go-logger/glog"
)

// NewPost scaffolds a post file in the writing directory: next free id,
// today's date, draft flag set. Drafts count toward the next id, their ids
// are taken too. Returns the path of the created file.
func NewPost(conf *SiteConf, title string, log glog.Logger) (string, error) {
	if log == nil {
		log = NewLogger("info").GetLogger("site")
	}

	site, err := ReadSite(conf, true, log)
	if err != nil {
		return "", err
	}

	nextID := 1
	for _, p := range site.Posts() {
		if p.ID >= nextID {
			nextID = p.ID + 1
		}
	}

	postSlug := Slugify(title)
	if postSlug == "" {
		return "", fmt.Errorf("cannot derive a slug from title %q", title)
	}
	path := filepath.Join(conf.WritingDir, postSlug+conf.WritingFileExtension)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%v already exists", path)
	}

	content := fmt.Sprintf("---\nid: %d\ntitle: %s\ndate: %s\ntags: []\ndraft: true\n---\n\n",
		nextID, title, time.Now().Format("2006-01-02"))
	if err := os.WriteFile(path, []byte(content), os.FileMode(0664)); err != nil {
		return "", err
	}

	log.Info("created post", "id", nextID, "path", path)
	return path, nil
}
