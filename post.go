package scribe

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"time"
)

// Post is one markdown file from the writing directory. ID is the numeric
// frontmatter id that orders the whole site; Date is display-only.
type Post struct {
	ID           int
	Title, Blurb string
	Slug         string
	Date         time.Time
	Path         string
	Body         []byte
	Tags         []Tag
	Static       bool
	Draft        bool
}

// Route is the post's path relative to the site root.
func (p *Post) Route() string {
	return p.Slug + ".html"
}

// Called from templates
func (p *Post) FormatDate() string {
	return formatDate(p.Date)
}

// Called from templates
func (p *Post) FormatDateShort() string {
	return formatDateShort(p.Date)
}

func (p *Post) String() string {
	b := new(bytes.Buffer)
	fmt.Fprintf(b, "id: %d", p.ID)
	b.WriteString("\ntitle: ")
	b.WriteString(p.Title)
	b.WriteString("\ndate: ")
	b.WriteString(p.Date.String())
	b.WriteString("\nblurb: ")
	b.WriteString(p.Blurb)
	b.WriteString("\ntags: ")
	fmt.Fprintln(b, p.Tags)

	body := p.Body
	if len(body) > 200 {
		// Copy before truncating so the post's body stays untouched.
		body = append(append([]byte(nil), body[:200]...), "..."...)
	}
	b.WriteString("\nbody: ")
	b.Write(body)

	return b.String()
}

type posts []*Post

// sort orders posts by descending id, newest-authored first. The sort is
// stable and ignores the date field entirely.
func (ps posts) sort() {
	slices.SortStableFunc(ps, func(a, b *Post) int {
		return cmp.Compare(b.ID, a.ID)
	})
}

func (ps posts) earliestDate() time.Time {
	t := time.Now()
	for _, p := range ps {
		if p.Date.Before(t) {
			t = p.Date
		}
	}
	return t
}

func (ps posts) latestDate() time.Time {
	var t time.Time
	for _, p := range ps {
		if p.Date.After(t) {
			t = p.Date
		}
	}
	return t
}

func (ps posts) newestID() int {
	id := 0
	for _, p := range ps {
		if p.ID > id {
			id = p.ID
		}
	}
	return id
}

func (ps posts) pruneOlderThan(from time.Time) posts {
	pruned := make(posts, 0, len(ps))
	for _, p := range ps {
		if !p.Date.Before(from) {
			pruned = append(pruned, p)
		}
	}
	return pruned
}
