package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdwhite/blogctl/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the static output tree via the generator",
	RunE: func(cmd *cobra.Command, args []string) error {
		drafts, _ := cmd.Flags().GetBool("drafts")
		dest, _ := cmd.Flags().GetString("destination")

		runner := site.NewRunner(st.Root, cfg.Generator)
		if err := runner.Build(site.BuildOptions{Drafts: drafts, Destination: dest}); err != nil {
			return err
		}
		fmt.Println("Build complete")
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local preview server (drafts included)",
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := site.NewRunner(st.Root, cfg.Generator)
		return runner.Serve()
	},
}

func init() {
	buildCmd.Flags().BoolP("drafts", "D", false, "include drafts in the output")
	buildCmd.Flags().StringP("destination", "d", "", "output directory (default \"public\")")
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(serveCmd)
}
