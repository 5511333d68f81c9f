package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/taskboard/internal/cli"
	"github.com/aretw0/taskboard/internal/presentation/document"
	"github.com/aretw0/taskboard/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var (
	showMarkdown bool
	exportFormat string
	exportOutput string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the initial board",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := cli.LoadBoard(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		if !showMarkdown {
			return cli.Export(cmd.OutOrStdout(), b, cli.FormatText)
		}
		rendered, err := tui.NewRenderer(80)(document.GenerateMarkdown(b))
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
		return err
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the initial board as text, Markdown, JSON, PDF or Mermaid",
	Example: `  taskboard export --format mermaid
  taskboard export --seed board.yaml --format pdf -o board.pdf`,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := cli.LoadBoard(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()
		if exportOutput != "" && exportOutput != "-" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		return cli.Export(w, b, exportFormat)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)

	showCmd.Flags().BoolVar(&showMarkdown, "markdown", false, "Render the board as Markdown")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", cli.FormatMarkdown, "Output format: "+strings.Join(cli.ExportFormats, ", "))
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "-", "File to write, - for stdout")
}
