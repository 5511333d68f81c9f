package runtime

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/taskboard/pkg/domain"
	"github.com/aretw0/taskboard/pkg/ports"
	"github.com/google/uuid"
)

// Engine is the core board reducer.
// It holds no board state: every call takes the current Board and returns the next one.
type Engine struct {
	ids    ports.IDGenerator
	logger *slog.Logger
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithIDGenerator sets the source of identifiers for new lists and tasks.
func WithIDGenerator(ids ports.IDGenerator) EngineOption {
	return func(e *Engine) {
		if ids != nil {
			e.ids = ids
		}
	}
}

// WithLogger sets a structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates a new engine.
// Without WithIDGenerator, new entities get random (v4) UUIDs.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		ids:    ports.IDFunc(uuid.NewString),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reduce applies the action and returns the next board.
// Failed lookups and invalid moves return the input board unchanged.
func (e *Engine) Reduce(board *domain.Board, action domain.Action) *domain.Board {
	next, _ := e.Apply(board, action)
	return next
}

// Apply applies the action and returns the next board together with the
// reason a transition was rejected. On error the returned board is the input
// board, never a partially updated copy.
// The input board is treated as read-only.
func (e *Engine) Apply(board *domain.Board, action domain.Action) (*domain.Board, error) {
	if board == nil {
		board = domain.NewBoard()
	}

	switch a := action.(type) {
	case domain.AddList:
		return e.addList(board, a), nil
	case domain.AddTask:
		return e.addTask(board, a)
	case domain.MoveList:
		return e.moveList(board, a)
	case domain.SetDraggedItem:
		return setDraggedItem(board, a), nil
	default:
		kind := "<nil>"
		if action != nil {
			kind = string(action.Kind())
		}
		e.logger.Debug("Ignoring unrecognized action", "action", kind)
		return board, nil
	}
}

func (e *Engine) addList(board *domain.Board, a domain.AddList) *domain.Board {
	lists := make([]*domain.List, len(board.Lists), len(board.Lists)+1)
	copy(lists, board.Lists)
	lists = append(lists, domain.NewList(e.ids.NewID(), a.Text))

	next := *board
	next.Lists = lists
	return &next
}

func (e *Engine) addTask(board *domain.Board, a domain.AddTask) (*domain.Board, error) {
	target := board.ListOfTask(a.TaskID)
	if target < 0 {
		return board, fmt.Errorf("no list contains task %q: %w", a.TaskID, domain.ErrNotFound)
	}

	old := board.Lists[target]
	tasks := make([]domain.Task, len(old.Tasks), len(old.Tasks)+1)
	copy(tasks, old.Tasks)
	tasks = append(tasks, domain.Task{ID: e.ids.NewID(), Text: a.Text})

	lists := make([]*domain.List, len(board.Lists))
	copy(lists, board.Lists)
	lists[target] = &domain.List{ID: old.ID, Text: old.Text, Tasks: tasks}

	next := *board
	next.Lists = lists
	return &next, nil
}

func (e *Engine) moveList(board *domain.Board, a domain.MoveList) (*domain.Board, error) {
	n := len(board.Lists)
	if !domain.InBounds(a.DragIndex, n) || !domain.InBounds(a.HoverIndex, n) {
		return board, fmt.Errorf("move %d -> %d with %d lists: %w", a.DragIndex, a.HoverIndex, n, domain.ErrIndexOutOfRange)
	}

	next := *board
	next.Lists = domain.MoveItem(board.Lists, a.DragIndex, a.HoverIndex)
	return &next, nil
}

func setDraggedItem(board *domain.Board, a domain.SetDraggedItem) *domain.Board {
	next := *board
	if a.Item != nil {
		item := *a.Item
		next.DraggedItem = &item
	} else {
		next.DraggedItem = nil
	}
	return &next
}
