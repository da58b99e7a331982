// Package site wraps the external static-site generator. blogctl never
// renders markdown to HTML itself; it shells out to the generator binary
// and surfaces its exit status.
package site

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

type Runner struct {
	Root      string
	Generator string

	// Command output passes through to the operator's terminal unless
	// redirected (tests capture it here).
	Stdout io.Writer
	Stderr io.Writer
}

type BuildOptions struct {
	// Drafts includes posts whose draft flag is set.
	Drafts bool
	// Destination of the rendered tree, relative to Root. Empty means the
	// generator's default ("public").
	Destination string
}

func NewRunner(root, generator string) *Runner {
	return &Runner{
		Root:      root,
		Generator: generator,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}
}

// Build renders the production output tree. The generator exits non-zero
// when any content file fails to parse; that surfaces here as an error.
func (r *Runner) Build(opts BuildOptions) error {
	dest := opts.Destination
	if dest == "" {
		dest = "public"
	}
	args := []string{"--destination", dest, "--cleanDestinationDir"}
	if opts.Drafts {
		args = append(args, "-D")
	}
	return r.run(args...)
}

// Serve starts the local preview server, drafts included. It blocks until
// the server exits.
func (r *Runner) Serve() error {
	cmd := r.command("server", "-D")
	cmd.Stdin = os.Stdin
	if err := cmd.Run(); err != nil {
		return r.wrap(err)
	}
	return nil
}

func (r *Runner) run(args ...string) error {
	if err := r.command(args...).Run(); err != nil {
		return r.wrap(err)
	}
	return nil
}

func (r *Runner) command(args ...string) *exec.Cmd {
	cmd := exec.Command(r.Generator, args...)
	cmd.Dir = r.Root
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd
}

func (r *Runner) wrap(err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("generator %q not found on PATH, see https://gohugo.io/installation/: %w", r.Generator, err)
	}
	return fmt.Errorf("generator %s: %w", r.Generator, err)
}
