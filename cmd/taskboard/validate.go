package main

import (
	"fmt"

	"github.com/aretw0/taskboard/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a board document",
	Long:  `Parses a YAML or JSON board document, checks it against the board schema and reports duplicate IDs or a dangling drag marker.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := *cfg
		if len(args) > 0 {
			c.Seed = args[0]
			c.Empty = false
		}
		if c.Seed == "" {
			return fmt.Errorf("no board document: pass a file or --seed")
		}

		b, err := cli.LoadBoard(cmd.Context(), &c)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		tasks := 0
		for _, l := range b.Lists {
			tasks += len(l.Tasks)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Board is valid! ✅ (%d lists, %d tasks)\n", len(b.Lists), tasks)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
