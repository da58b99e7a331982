package cmd

import (
	"fmt"
	"os"

	mtp "github.com/modeltoolsprotocol/go-sdk"
	"github.com/spf13/cobra"

	"github.com/jdwhite/blogctl/internal/blogroot"
	"github.com/jdwhite/blogctl/internal/config"
	"github.com/jdwhite/blogctl/internal/store"
)

var (
	version = "dev"
	blogDir string
	st      *store.Store
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:     "blogctl",
	Short:   "Content pipeline for a markdown blog",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		root := blogDir
		if root == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("resolving working directory: %w", err)
			}
			root, err = blogroot.Find(cwd)
			if err != nil {
				return fmt.Errorf("locating blog root: %w", err)
			}
			if root == "" {
				root = cwd
			}
		}

		var err error
		cfg, err = config.Load(root)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		st = store.New(root, cfg.ContentDir)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&blogDir, "blog-dir", "", "blog root directory (default: nearest site root above the working directory)")

	mtpOpts := &mtp.DescribeOptions{
		Commands: map[string]*mtp.CommandAnnotation{
			"new": {
				Stdin: &mtp.IODescriptor{
					ContentType: "text/markdown",
					Description: "Markdown body content for the new post",
				},
				Examples: []mtp.Example{
					{Description: "Scaffold a draft post", Command: "blogctl new \"Optimizing CI Builds\""},
					{Description: "Scaffold with piped body", Command: "echo '# Intro' | blogctl new \"Optimizing CI Builds\""},
				},
			},
			"list": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Table of posts with slug, title, date, and draft status",
				},
				Examples: []mtp.Example{
					{Description: "List every post", Command: "blogctl list"},
					{Description: "List only drafts", Command: "blogctl list --drafts"},
				},
			},
			"show": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Post header fields followed by the rendered body",
				},
				Examples: []mtp.Example{
					{Description: "Show a post", Command: "blogctl show optimizing-ci-builds"},
				},
			},
			"publish": {
				Examples: []mtp.Example{
					{Description: "Publish a draft (interactive confirm)", Command: "blogctl publish optimizing-ci-builds"},
					{Description: "Publish without confirmation", Command: "blogctl publish optimizing-ci-builds --force"},
				},
			},
			"check": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Table of corpus diagnostics with file, level, rule, and message",
				},
				Examples: []mtp.Example{
					{Description: "Validate every post header", Command: "blogctl check"},
					{Description: "Fail on warnings too", Command: "blogctl check --strict"},
				},
			},
			"build": {
				Examples: []mtp.Example{
					{Description: "Render the production site", Command: "blogctl build"},
					{Description: "Render including drafts", Command: "blogctl build --drafts"},
				},
			},
			"lint": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Linter diagnostics, one violation per line",
				},
				Examples: []mtp.Example{
					{Description: "Lint root-level markdown files", Command: "blogctl lint"},
					{Description: "Lint the content directory", Command: "blogctl lint \"content/posts/*.md\""},
				},
			},
			"search": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Matching posts with slug, title, and snippet",
				},
				Examples: []mtp.Example{
					{Description: "Search titles and bodies", Command: "blogctl search \"connection pooling\""},
				},
			},
		},
	}

	mtp.WithDescribe(rootCmd, mtpOpts)
}

func Execute() error {
	return rootCmd.Execute()
}
