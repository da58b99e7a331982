package markdown

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/pelletier/go-toml/v2"
)

// Parse reads the frontmatter header and body from r into T. Both TOML (+++)
// and YAML (---) headers are accepted, matching what the generator allows.
func Parse[T any](r io.Reader) (T, string, error) {
	var meta T
	body, err := frontmatter.Parse(r, &meta)
	if err != nil {
		return meta, "", fmt.Errorf("parsing frontmatter: %w", err)
	}
	return meta, strings.TrimSpace(string(body)), nil
}

// Marshal serializes meta as TOML frontmatter followed by body. TOML is the
// blog's native header format; parsing still accepts either.
func Marshal[T any](meta T, body string) ([]byte, error) {
	tomlBytes, err := toml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("+++\n")
	buf.Write(tomlBytes)
	buf.WriteString("+++\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}
	return buf.Bytes(), nil
}
