package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Scaffold a new draft post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := readStdin()

		p, err := st.Create(args[0], body)
		if err != nil {
			return err
		}
		fmt.Printf("Created draft %s (%s)\n", p.Slug, p.Path)

		if edit, _ := cmd.Flags().GetBool("edit"); edit {
			return openEditor(p.Path)
		}
		return nil
	},
}

func init() {
	newCmd.Flags().BoolP("edit", "e", false, "open the new post in $EDITOR")
	rootCmd.AddCommand(newCmd)
}

func readStdin() string {
	info, err := os.Stdin.Stat()
	if err != nil {
		return ""
	}
	// Only read if stdin is explicitly a pipe (not a terminal, not a socket)
	if info.Mode()&os.ModeNamedPipe == 0 && info.Size() == 0 {
		return ""
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return ""
	}
	return string(data)
}
