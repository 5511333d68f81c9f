package runner

import (
	"context"
	"errors"

	"github.com/aretw0/taskboard/pkg/domain"
)

// ErrInvalidCommand wraps input that could not be turned into a Command.
// The runner reports it and keeps reading.
var ErrInvalidCommand = errors.New("invalid command")

// CommandName identifies what a Command does.
type CommandName string

const (
	CmdDispatch CommandName = "dispatch"
	CmdGrabList CommandName = "grab"
	CmdGrabTask CommandName = "grab-task"
	CmdHover    CommandName = "hover"
	CmdDrop     CommandName = "drop"
	CmdShow     CommandName = "show"
	CmdHelp     CommandName = "help"
	CmdQuit     CommandName = "quit"
)

// Command is one parsed unit of input.
type Command struct {
	Name CommandName

	// Action is set for CmdDispatch.
	Action domain.Action

	// ID is the list or task for grab commands.
	ID string

	// Index is the hover target.
	Index int
}

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (REPL) and JSON (Structured) modes.
type IOHandler interface {
	// Output presents the board.
	Output(ctx context.Context, board *domain.Board) error

	// Input reads the next command. It returns io.EOF when the stream ends.
	Input(ctx context.Context) (Command, error)

	// SystemOutput presents a meta-message to the user (errors, help).
	// This is distinct from board rendering.
	SystemOutput(ctx context.Context, msg string) error
}
