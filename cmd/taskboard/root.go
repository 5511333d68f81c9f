package main

import (
	"fmt"
	"os"

	"github.com/aretw0/taskboard/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "taskboard",
	Short: "Taskboard is a Trello-style board of ordered lists",
	Long: `Taskboard keeps a board of lists and tasks and changes it only through actions
(ADD_LIST, ADD_TASK, MOVE_LIST, SET_DRAGGED_ITEM). The same board can be driven
from a prompt, a terminal UI, an HTTP API or an MCP client.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "TOML config file (default ./"+config.DefaultFile+" if present)")
	pf.String("seed", "", "YAML or JSON board document to start from")
	pf.Bool("empty", false, "Start from a board with no lists")
	pf.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	pf.String("log-format", config.DefaultLogFormat, "Log format: text or json")
	pf.Bool("debug", false, "Log every dispatch at debug level")
}

// loadConfig resolves the config file and environment, then applies explicit flags on top.
func loadConfig(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		c.Seed, _ = flags.GetString("seed")
	}
	if flags.Changed("empty") {
		c.Empty, _ = flags.GetBool("empty")
	}
	if flags.Changed("log-level") {
		c.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		c.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("debug") {
		c.Debug, _ = flags.GetBool("debug")
	}

	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = c
	return nil
}
