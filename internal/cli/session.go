package cli

import (
	"context"
	"io"
	"os"

	"github.com/aretw0/taskboard"
	"github.com/aretw0/taskboard/internal/config"
	"github.com/aretw0/taskboard/internal/presentation/document"
	"github.com/aretw0/taskboard/internal/presentation/tui"
	"github.com/aretw0/taskboard/pkg/runner"
)

// SessionOptions configures an interactive or NDJSON session.
type SessionOptions struct {
	JSON  bool
	Quiet bool

	// In and Out default to Stdin and Stdout.
	In  io.Reader
	Out io.Writer
}

// RunSession drives the board from line input until EOF, quit or a signal.
// On a terminal the board is shown as rendered Markdown.
func RunSession(cfg *config.Config, opts SessionOptions) error {
	in, out := opts.In, opts.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	logger, err := sessionLogger(cfg)
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	store, err := BuildStore(sigCtx, cfg, logger)
	if err != nil {
		return err
	}

	var handler runner.IOHandler
	if opts.JSON {
		handler = runner.NewJSONHandler(in, out)
	} else {
		var textOpts []runner.TextHandlerOption
		if isTerminal(out) {
			tui.PrintBanner(out, taskboard.Version)
			textOpts = append(textOpts,
				runner.WithTextHandlerFormatter(document.GenerateMarkdown),
				runner.WithTextHandlerRenderer(tui.NewRenderer(80)),
			)
		}
		handler = runner.NewTextHandler(in, out, textOpts...)
	}

	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithInputHandler(handler),
		runner.WithQuiet(opts.Quiet),
	)

	runErr := r.Run(sigCtx, store)
	if sigCtx.Err() != nil && runErr == nil {
		runErr = sigCtx.Err()
	}

	logCompletion(out, runErr, sigCtx.Signal(), opts.JSON || opts.Quiet)
	return handleExecutionError(runErr)
}

// RunTUI opens the full-screen board.
func RunTUI(cfg *config.Config) error {
	logger, err := sessionLogger(cfg)
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	store, err := BuildStore(sigCtx, cfg, logger)
	if err != nil {
		return err
	}

	if err := tui.Run(sigCtx, store); err != nil && sigCtx.Err() == nil {
		return err
	}
	return nil
}
