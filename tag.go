package scribe

import (
	"bytes"
	"cmp"
	"slices"
	"strings"

	slug "github.com/goliatone/go-slug"
)

type Tag string

func (t Tag) String() string { return string(t) }

// Slug is the tag's URL-safe form, used for tag page and feed file names.
func (t Tag) Slug() string {
	return Slugify(string(t))
}

// Slugify returns the URL-safe form of s.
func Slugify(s string) string {
	normalized, err := slug.Normalize(s)
	if err != nil || normalized == "" {
		return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
	}
	return normalized
}

type tagWithPosts struct {
	Tag   Tag
	Posts posts
}

func (t tagWithPosts) EarliestDateFormatted() string {
	return formatDateShort(t.Posts.earliestDate())
}

func (t tagWithPosts) LatestDateFormatted() string {
	return formatDateShort(t.Posts.latestDate())
}

// Posts grouped by tag. Sorted by number of posts per tag, then by newest
// post id. Create using groupByTag which sorts like this.
type postsByTag []tagWithPosts

func (pt *postsByTag) addPost(t Tag, p *Post) {
	for i, tag := range *pt {
		if tag.Tag == t {
			tag.Posts = append(tag.Posts, p)
			(*pt)[i] = tag
			return
		}
	}

	newTagWithPosts := tagWithPosts{t, make(posts, 1, 10)}
	newTagWithPosts.Posts[0] = p
	*pt = append(*pt, newTagWithPosts)
}

func (pt postsByTag) String() string {
	b := new(bytes.Buffer)
	for _, t := range pt {
		b.WriteString(t.Tag.String())
		b.WriteString(": ")
		for i, p := range t.Posts {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.Title)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Return the most frequent n tags.
func (pt postsByTag) frequentTags(n, minPosts int) []Tag {
	frequent := make([]Tag, 0, n)
	for i, t := range pt {
		if i == n || len(t.Posts) < minPosts {
			break
		}
		frequent = append(frequent, t.Tag)
	}

	return frequent
}

func groupByTag(ps posts) postsByTag {
	byTag := make(postsByTag, 0, 20)

	for _, p := range ps {
		for _, t := range p.Tags {
			byTag.addPost(t, p)
		}
	}

	// Order tags by the number of posts in them, then by newest post.
	slices.SortFunc(byTag, func(a, b tagWithPosts) int {
		// More posts = comes first (descending order)
		if c := cmp.Compare(len(b.Posts), len(a.Posts)); c != 0 {
			return c
		}
		// If equal post count, newer comes first
		return cmp.Compare(b.Posts.newestID(), a.Posts.newestID())
	})

	return byTag
}
