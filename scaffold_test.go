package scribe

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func emptySiteConf(t *testing.T) *SiteConf {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "writing"), 0o775); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := writeConfFile(t, root, `
writing_dir: writing
out_dir: out
`)
	conf, err := ReadConf(path)
	if err != nil {
		t.Fatalf("ReadConf: %v", err)
	}
	return conf
}

func TestNewPostEmptySite(t *testing.T) {
	conf := emptySiteConf(t)

	path, err := NewPost(conf, "Hello World", nil)
	if err != nil {
		t.Fatalf("NewPost: %v", err)
	}
	if filepath.Base(path) != "hello-world.md" {
		t.Fatalf("scaffold file name mismatch: %v", path)
	}

	p, err := readPostFromFile(path)
	if err != nil {
		t.Fatalf("scaffolded post does not parse: %v", err)
	}
	if p.ID != 1 {
		t.Fatalf("empty site should start at id 1, got %d", p.ID)
	}
	if p.Title != "Hello World" {
		t.Fatalf("title mismatch, got %q", p.Title)
	}
	if !p.Draft {
		t.Fatalf("scaffolded post should start as a draft")
	}
	if p.Date.IsZero() {
		t.Fatalf("scaffolded post should carry today's date")
	}
}

func TestNewPostSkipsTakenIDs(t *testing.T) {
	// testSiteConf's highest id is the draft (id 4); drafts count too.
	conf := testSiteConf(t)

	path, err := NewPost(conf, "Another Post", nil)
	if err != nil {
		t.Fatalf("NewPost: %v", err)
	}

	p, err := readPostFromFile(path)
	if err != nil {
		t.Fatalf("scaffolded post does not parse: %v", err)
	}
	if p.ID != 5 {
		t.Fatalf("next free id should be 5, got %d", p.ID)
	}
}

func TestNewPostRefusesExistingFile(t *testing.T) {
	conf := emptySiteConf(t)

	if _, err := NewPost(conf, "Hello World", nil); err != nil {
		t.Fatalf("NewPost: %v", err)
	}
	_, err := NewPost(conf, "Hello World", nil)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected already-exists error, got %v", err)
	}
}
