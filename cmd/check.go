package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdwhite/blogctl/internal/check"
	"github.com/jdwhite/blogctl/internal/markdown"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every post header and embedded resource reference",
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")

		report, err := check.Run(st)
		if err != nil {
			return err
		}

		if len(report.Diagnostics) > 0 {
			rows := make([][]string, len(report.Diagnostics))
			for i, d := range report.Diagnostics {
				level := markdown.LevelStyle(string(d.Level)).Render(string(d.Level))
				rows[i] = []string{d.File, level, d.Rule, d.Message}
			}
			fmt.Println(markdown.RenderTable([]string{"File", "Level", "Rule", "Message"}, rows))
		}

		fmt.Printf("%d posts checked, %d errors, %d warnings\n",
			report.Checked, report.Errors(), len(report.Diagnostics)-report.Errors())

		if report.Failed(strict) {
			return fmt.Errorf("corpus check failed")
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().Bool("strict", false, "treat warnings as failures")
	rootCmd.AddCommand(checkCmd)
}
