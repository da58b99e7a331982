package model

import (
	"fmt"
	"strings"
	"time"
)

// Post is the frontmatter header of one content item. Slug and Path are
// derived from the file location and never serialized.
type Post struct {
	Title string    `toml:"title" yaml:"title"`
	Date  time.Time `toml:"date" yaml:"date"`
	Draft bool      `toml:"draft,omitempty" yaml:"draft,omitempty"`

	Slug string `toml:"-" yaml:"-"`
	Path string `toml:"-" yaml:"-"`
}

func (p *Post) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("post title is required")
	}
	if p.Date.IsZero() {
		return fmt.Errorf("post date is required")
	}
	return nil
}

// Published reports whether the post appears in production output.
func (p *Post) Published() bool {
	return !p.Draft
}

func (p *Post) Status() string {
	if p.Draft {
		return "draft"
	}
	return "published"
}
