package main

import (
	"github.com/aretw0/taskboard/internal/cli"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the full-screen board",
	Long: `Opens the board in the terminal. Use ←/→ to select a list, space to grab it,
←/→ again to drag it and space to drop. 'a' adds a list, 't' adds a task, 'q' quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunTUI(cfg)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
