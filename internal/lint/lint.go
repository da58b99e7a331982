// Package lint wraps the containerized markdown linter. The check mounts
// the blog root read-only and never mutates a content file.
package lint

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

type Runner struct {
	Root    string
	Runtime string
	Image   string

	Stdout io.Writer
	Stderr io.Writer
}

func NewRunner(root, runtime, image string) *Runner {
	return &Runner{
		Root:    root,
		Runtime: runtime,
		Image:   image,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Run lints the files matching glob, resolved inside the container against
// the mounted blog root. A non-zero linter exit means at least one style
// violation; the diagnostics have already been written to Stdout/Stderr.
func (r *Runner) Run(glob string) error {
	args := []string{
		"run", "--rm",
		"-v", r.Root + ":/workdir:ro",
		r.Image,
		glob,
	}
	cmd := exec.Command(r.Runtime, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("container runtime %q not found on PATH: %w", r.Runtime, err)
		}
		return fmt.Errorf("lint %q: %w", glob, err)
	}
	return nil
}
