package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdwhite/blogctl/internal/markdown"
	"github.com/jdwhite/blogctl/internal/model"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		draftsOnly, _ := cmd.Flags().GetBool("drafts")

		posts, err := st.List()
		if err != nil {
			return err
		}
		if draftsOnly {
			var drafts []model.Post
			for _, p := range posts {
				if p.Draft {
					drafts = append(drafts, p)
				}
			}
			posts = drafts
		}
		fmt.Println(markdown.RenderPostTable(posts))
		return nil
	},
}

func init() {
	listCmd.Flags().BoolP("drafts", "D", false, "show only drafts")
	rootCmd.AddCommand(listCmd)
}
