package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/taskboard"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of taskboard",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "taskboard version %s\n", strings.TrimSpace(taskboard.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
