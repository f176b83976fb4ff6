package scribe

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDirContains(t *testing.T) {
	sep := string(filepath.Separator)
	writing := filepath.Join(sep+"srv", "site", "writing")

	cases := []struct {
		child string
		want  bool
	}{
		{writing, true},
		{filepath.Join(writing, "static"), true},
		{filepath.Join(writing, "static", "icons"), true},
		{writing + "-static", false},
		{filepath.Join(sep+"srv", "site", "static"), false},
	}
	for _, c := range cases {
		if got := dirContains(writing, c.child); got != c.want {
			t.Fatalf("dirContains(%q, %q) = %v, want %v", writing, c.child, got, c.want)
		}
	}
}

func TestWatchRebuildsOnChange(t *testing.T) {
	conf := testSiteConf(t)
	if err := Build(conf, false, nil); err != nil {
		t.Fatalf("Build: %v", err)
	}

	rebuilt := make(chan struct{}, 1)
	go func() {
		err := WatchAndRebuild(conf, false, nil, func() {
			select {
			case rebuilt <- struct{}{}:
			default:
			}
		})
		if err != nil {
			t.Errorf("WatchAndRebuild: %v", err)
		}
	}()

	// Keep touching a new post until the polling watcher picks it up; the
	// first write can land before the watcher's initial scan.
	deadline := time.After(10 * time.Second)
	tick := time.NewTicker(300 * time.Millisecond)
	defer tick.Stop()

	revision := 0
waiting:
	for {
		select {
		case <-rebuilt:
			break waiting
		case <-deadline:
			t.Fatalf("rebuild never triggered")
		case <-tick.C:
			revision++
			writePost(t, conf.WritingDir, "added.md", fmt.Sprintf(`---
id: 10
title: Added Later
date: 2026-07-01
---

Revision %d.
`, revision))
		}
	}

	// The rebuild may still be re-running for trailing events; poll until
	// the regenerated index carries the new post.
	readDeadline := time.Now().Add(5 * time.Second)
	for {
		index, err := os.ReadFile(filepath.Join(conf.OutDir, "index.html"))
		if err == nil && strings.Contains(string(index), "Added Later") {
			return
		}
		if time.Now().After(readDeadline) {
			t.Fatalf("index not regenerated with the new post:\n%s", index)
		}
		time.Sleep(100 * time.Millisecond)
	}
}
