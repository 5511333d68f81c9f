package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/taskboard"
	"github.com/aretw0/taskboard/pkg/domain"
	"github.com/aretw0/taskboard/pkg/ports"
)

// Runner handles the read-execute-print loop over a Dispatcher.
// It uses an IOHandler strategy to abstract the interaction mode (Text vs JSON).
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler on Stdin/Stdout is used.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Quiet suppresses the initial board and the board printed after each change.
	// Boards are still printed on "show".
	Quiet bool
}

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run prints the current board and then executes commands until the input ends,
// a quit command is read or ctx is cancelled. Rejected actions and malformed
// commands are reported through the handler and do not stop the loop.
func (r *Runner) Run(ctx context.Context, d ports.Dispatcher) error {
	handler := r.resolveHandler()

	if !r.Quiet {
		if err := handler.Output(ctx, d.GetState()); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}

	for {
		cmd, err := handler.Input(ctx)
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				return nil
			case ctx.Err() != nil:
				r.Logger.Debug("Runner input: Context cancelled", "err", ctx.Err())
				return ctx.Err()
			case errors.Is(err, ErrInvalidCommand):
				if err := handler.SystemOutput(ctx, err.Error()); err != nil {
					return fmt.Errorf("output error: %w", err)
				}
				continue
			default:
				return fmt.Errorf("input error: %w", err)
			}
		}

		if cmd.Name == CmdQuit {
			return nil
		}

		before := d.GetState()
		if err := r.execute(ctx, handler, d, cmd); err != nil {
			r.Logger.Debug("Runner: command failed", "command", cmd.Name, "err", err)
			if err := handler.SystemOutput(ctx, err.Error()); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
			continue
		}

		after := d.GetState()
		if cmd.Name == CmdShow || (!r.Quiet && after != before) {
			if err := handler.Output(ctx, after); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
		}
	}
}

func (r *Runner) execute(ctx context.Context, h IOHandler, d ports.Dispatcher, cmd Command) error {
	switch cmd.Name {
	case CmdDispatch:
		if cmd.Action == nil {
			return fmt.Errorf("%w: no action", ErrInvalidCommand)
		}
		return d.Dispatch(ctx, cmd.Action)
	case CmdGrabList:
		return taskboard.BeginListDrag(ctx, d, cmd.ID)
	case CmdGrabTask:
		return taskboard.BeginTaskDrag(ctx, d, cmd.ID)
	case CmdHover:
		item := d.GetState().DraggedItem
		if item == nil || item.Type != domain.DragList {
			return fmt.Errorf("nothing to hover: grab a list first")
		}
		return taskboard.HoverList(ctx, d, cmd.Index)
	case CmdDrop:
		return taskboard.EndDrag(ctx, d)
	case CmdShow:
		return nil
	case CmdHelp:
		return h.SystemOutput(ctx, HelpText)
	}
	return fmt.Errorf("%w: %s", ErrInvalidCommand, cmd.Name)
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler == nil {
		// Memoize to prevent creating new pumps on subsequent Run() calls
		r.Handler = NewTextHandler(os.Stdin, os.Stdout)
	}
	return r.Handler
}
