package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ResourceRefs holds the destinations referenced from a post body.
type ResourceRefs struct {
	Images []string
	Links  []string
}

// ExtractRefs walks the markdown AST and collects image and link destinations.
func ExtractRefs(body string) ResourceRefs {
	var refs ResourceRefs
	doc := goldmark.New().Parser().Parse(text.NewReader([]byte(body)))
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Image:
			refs.Images = append(refs.Images, string(v.Destination))
		case *ast.Link:
			refs.Links = append(refs.Links, string(v.Destination))
		}
		return ast.WalkContinue, nil
	})
	return refs
}

// IsLocal reports whether a destination points into the site itself rather
// than at an external URL or anchor.
func IsLocal(dest string) bool {
	if dest == "" {
		return false
	}
	if strings.HasPrefix(dest, "#") || strings.HasPrefix(dest, "//") {
		return false
	}
	if strings.Contains(dest, "://") || strings.HasPrefix(dest, "mailto:") {
		return false
	}
	return true
}
