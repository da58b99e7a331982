package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jdwhite/blogctl/internal/lint"
)

var lintCmd = &cobra.Command{
	Use:   "lint [glob]",
	Short: "Run the containerized markdown linter",
	Long: `Run the containerized markdown linter over files matching the glob,
resolved against the blog root. The default glob covers root-level markdown
files; pass "content/posts/*.md" to lint the content store.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		glob := cfg.LintGlob
		if len(args) == 1 {
			glob = args[0]
		}
		runner := lint.NewRunner(st.Root, cfg.ContainerRuntime, cfg.LintImage)
		return runner.Run(glob)
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
