package scribe

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-logger/glog"
	"github.com/radovskyb/watcher"
)

// WatchAndRebuild re-renders the site whenever the writing, template, or
// static directories change. onRebuild, when non-nil, runs after every
// successful rebuild. Blocks until the watcher fails or is closed.
func WatchAndRebuild(conf *SiteConf, drafts bool, log glog.Logger, onRebuild func()) error {
	if log == nil {
		log = NewLogger("info").GetLogger("watch")
	}
	log.Info("watching for changes", "dir", conf.WritingDir)

	w := watcher.New()
	w.SetMaxEvents(1)

	go func() {
		for {
			select {
			case <-w.Event:
				if err := Build(conf, drafts, log); err != nil {
					log.Error("rebuild failed", "error", err)
					continue
				}
				if onRebuild != nil {
					onRebuild()
				}
			case err := <-w.Error:
				log.Error("watch error", "error", err)
			case <-w.Closed:
				return
			}
		}
	}()

	if err := w.AddRecursive(conf.WritingDir); err != nil {
		return err
	}
	if conf.TemplateDir != "" {
		if err := w.AddRecursive(conf.TemplateDir); err != nil {
			return err
		}
	}
	// The static dir may live outside the writing dir; only then does it
	// need its own watch.
	if _, err := os.Stat(conf.StaticFilesDir); err == nil && !dirContains(conf.WritingDir, conf.StaticFilesDir) {
		if err := w.AddRecursive(conf.StaticFilesDir); err != nil {
			return err
		}
	}

	return w.Start(time.Millisecond * 200)
}

// dirContains reports whether child is parent or lives under it. A plain
// prefix test would claim "writing-static" is inside "writing".
func dirContains(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
