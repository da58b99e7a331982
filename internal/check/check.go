// Package check validates the content store: every post header must parse
// with a non-empty title and a valid date. Duplicate titles and dangling
// local image references are reported as warnings since both can be
// intentional authoring states.
package check

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jdwhite/blogctl/internal/markdown"
	"github.com/jdwhite/blogctl/internal/model"
	"github.com/jdwhite/blogctl/internal/store"
)

type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
)

type Diagnostic struct {
	File    string
	Level   Level
	Rule    string
	Message string
}

type Report struct {
	Checked     int
	Diagnostics []Diagnostic
}

func (r *Report) Errors() int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Level == LevelError {
			n++
		}
	}
	return n
}

// Failed reports whether the corpus check should exit non-zero. Warnings
// only fail the check in strict mode.
func (r *Report) Failed(strict bool) bool {
	if strict {
		return len(r.Diagnostics) > 0
	}
	return r.Errors() > 0
}

// Run validates every post file in the store. Nothing is mutated.
func Run(st *store.Store) (*Report, error) {
	files, err := st.Files()
	if err != nil {
		return nil, err
	}

	report := &Report{Checked: len(files)}
	byTitle := make(map[string][]string)

	for _, path := range files {
		rel := relTo(st.Root, path)

		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		p, body, perr := markdown.Parse[model.Post](f)
		f.Close()
		if perr != nil {
			report.add(rel, LevelError, "header", perr.Error())
			continue
		}

		if err := p.Validate(); err != nil {
			report.add(rel, LevelError, "header", err.Error())
		}

		title := strings.TrimSpace(strings.ToLower(p.Title))
		if title != "" {
			byTitle[title] = append(byTitle[title], rel)
		}

		checkImages(st.Root, path, body, rel, report)
	}

	for _, paths := range byTitle {
		if len(paths) < 2 {
			continue
		}
		for _, rel := range paths {
			report.add(rel, LevelWarning, "duplicate-title",
				fmt.Sprintf("title shared by %d posts (%s)", len(paths), strings.Join(paths, ", ")))
		}
	}

	return report, nil
}

// checkImages verifies that local image destinations resolve against the
// static directory or the post's own directory, the two places the
// generator serves page resources from.
func checkImages(root, postPath, body, rel string, report *Report) {
	refs := markdown.ExtractRefs(body)
	for _, img := range refs.Images {
		if !markdown.IsLocal(img) {
			continue
		}
		candidates := []string{
			filepath.Join(root, "static", strings.TrimPrefix(img, "/")),
			filepath.Join(filepath.Dir(postPath), img),
		}
		found := false
		for _, c := range candidates {
			if _, err := os.Stat(c); err == nil {
				found = true
				break
			}
		}
		if !found {
			report.add(rel, LevelWarning, "image-missing",
				fmt.Sprintf("image %q not found under static/ or the post directory", img))
		}
	}
}

func (r *Report) add(file string, level Level, rule, msg string) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		File: file, Level: level, Rule: rule, Message: msg,
	})
}

func relTo(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
