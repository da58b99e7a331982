package store

import (
	"strings"
)

type SearchResult struct {
	Slug    string
	Title   string
	Snippet string
}

// Search matches query case-insensitively against post titles and bodies.
func (s *Store) Search(query string) ([]SearchResult, error) {
	q := strings.ToLower(query)
	files, err := s.Files()
	if err != nil {
		return nil, err
	}

	var results []SearchResult
	for _, f := range files {
		p, body, err := readPost(f)
		if err != nil {
			continue
		}
		if matchesQuery(q, p.Title) {
			results = append(results, SearchResult{Slug: p.Slug, Title: p.Title})
			continue
		}
		if matchesQuery(q, body) {
			results = append(results, SearchResult{
				Slug: p.Slug, Title: p.Title,
				Snippet: snippet(body, q),
			})
		}
	}
	return results, nil
}

func matchesQuery(q, text string) bool {
	return strings.Contains(strings.ToLower(text), q)
}

func snippet(body, query string) string {
	lower := strings.ToLower(body)
	idx := strings.Index(lower, query)
	if idx < 0 {
		return ""
	}
	start := idx - 40
	if start < 0 {
		start = 0
	}
	end := idx + len(query) + 40
	if end > len(body) {
		end = len(body)
	}
	s := body[start:end]
	if start > 0 {
		s = "..." + s
	}
	if end < len(body) {
		s = s + "..."
	}
	return strings.ReplaceAll(s, "\n", " ")
}
