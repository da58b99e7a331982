package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var publishCmd = &cobra.Command{
	Use:   "publish <slug>",
	Short: "Clear a post's draft flag and stamp its publication date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if !force {
			p, _, err := st.Get(args[0])
			if err != nil {
				return err
			}
			confirm := false
			msg := fmt.Sprintf("Publish %q? It will appear in the next production build.", p.Title)
			if err := huh.NewConfirm().Title(msg).Value(&confirm).Run(); err != nil || !confirm {
				fmt.Println("Cancelled")
				return nil
			}
		}

		p, err := st.Publish(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Published %s (%s)\n", p.Slug, p.Date.Format(time.RFC3339))
		return nil
	},
}

func init() {
	publishCmd.Flags().BoolP("force", "f", false, "skip confirmation")
	rootCmd.AddCommand(publishCmd)
}
