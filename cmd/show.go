package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jdwhite/blogctl/internal/markdown"
)

var showCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show a post's header and rendered body",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, body, err := st.Get(args[0])
		if err != nil {
			return err
		}
		fields := []string{
			markdown.RenderField("Slug", p.Slug),
			markdown.RenderField("Date", p.Date.Format(time.RFC3339)),
			markdown.RenderField("Status", markdown.RenderStatus(p.Status())),
			markdown.RenderField("File", p.Path),
		}
		fmt.Print(markdown.RenderEntityHeader(p.Title, fields))
		if body != "" {
			rendered, err := markdown.RenderMarkdown(body)
			if err != nil {
				return err
			}
			fmt.Print(rendered)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
