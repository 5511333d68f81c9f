package main

import (
	"github.com/aretw0/taskboard/internal/cli"
	"github.com/spf13/cobra"
)

var runOpts cli.SessionOptions

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Edit the board from a prompt",
	Long: `Starts an interactive prompt over the board. Type 'help' for the command list.
With --json the prompt is replaced by NDJSON: one action envelope per input line,
one board per output line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOpts
		opts.In = cmd.InOrStdin()
		opts.Out = cmd.OutOrStdout()
		return cli.RunSession(cfg, opts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runOpts.JSON, "json", false, "Run in JSON mode (NDJSON input/output)")
	runCmd.Flags().BoolVarP(&runOpts.Quiet, "quiet", "q", false, "Only print the board when asked with 'show'")

	// 'run' is the default when no command is given.
	rootCmd.RunE = runCmd.RunE
}
