package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gosimple/slug"

	"github.com/jdwhite/blogctl/internal/markdown"
	"github.com/jdwhite/blogctl/internal/model"
)

// Store is the content store: one markdown file per post under the content
// directory. The store never mutates a file except through Write and Publish.
type Store struct {
	Root       string
	ContentDir string
}

func New(root, contentDir string) *Store {
	return &Store{Root: root, ContentDir: contentDir}
}

func (s *Store) Dir() string {
	return filepath.Join(s.Root, s.ContentDir)
}

func (s *Store) PostPath(postSlug string) string {
	return filepath.Join(s.Dir(), postSlug+".md")
}

// Files lists every markdown file in the content directory, sorted.
func (s *Store) Files() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.Dir(), "*.md"))
	if err != nil {
		return nil, fmt.Errorf("globbing content dir: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}

// List returns every post whose header parses, newest first. Unparseable
// files are skipped here; `blogctl check` reports them.
func (s *Store) List() ([]model.Post, error) {
	files, err := s.Files()
	if err != nil {
		return nil, err
	}
	var posts []model.Post
	for _, f := range files {
		p, _, err := readPost(f)
		if err != nil {
			continue
		}
		posts = append(posts, *p)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
	return posts, nil
}

// Get returns the post and its body for a slug.
func (s *Store) Get(postSlug string) (*model.Post, string, error) {
	path := s.PostPath(postSlug)
	if _, err := os.Stat(path); err != nil {
		return nil, "", fmt.Errorf("post %s not found", postSlug)
	}
	p, body, err := readPost(path)
	if err != nil {
		return nil, "", err
	}
	return p, body, nil
}

// ResolvePath returns the content file path for a slug, verifying presence.
func (s *Store) ResolvePath(postSlug string) (string, error) {
	path := s.PostPath(postSlug)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("post %s not found", postSlug)
	}
	return path, nil
}

// Create scaffolds a new post: draft by default, dated now, slug derived
// from the title.
func (s *Store) Create(title, body string) (*model.Post, error) {
	p := &model.Post{
		Title: title,
		Date:  now(),
		Draft: true,
		Slug:  slug.Make(title),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	path := s.PostPath(p.Slug)
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("post %s already exists at %s", p.Slug, path)
	}
	p.Path = path

	if err := s.Write(p, body); err != nil {
		return nil, fmt.Errorf("writing post: %w", err)
	}
	return p, nil
}

// Write serializes a post header and body to its content file.
func (s *Store) Write(p *model.Post, body string) error {
	data, err := markdown.Marshal(p, body)
	if err != nil {
		return err
	}
	path := p.Path
	if path == "" {
		path = s.PostPath(p.Slug)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating content dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Publish clears the draft flag and stamps the publication date so the post
// appears in the next production build. Dates already in the past are kept.
func (s *Store) Publish(postSlug string) (*model.Post, error) {
	p, body, err := s.Get(postSlug)
	if err != nil {
		return nil, err
	}
	if !p.Draft {
		return nil, fmt.Errorf("post %s is already published", postSlug)
	}
	p.Draft = false
	if p.Date.After(time.Now()) || p.Date.IsZero() {
		p.Date = now()
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.Write(p, body); err != nil {
		return nil, err
	}
	return p, nil
}

func readPost(path string) (*model.Post, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	p, body, err := markdown.Parse[model.Post](f)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	p.Path = path
	p.Slug = slugOf(path)
	return &p, body, nil
}

func slugOf(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

// Dates carry the local offset so the generator renders them as authored.
func now() time.Time {
	return time.Now().Truncate(time.Second)
}
