package memory

import (
	"context"

	"github.com/aretw0/taskboard/pkg/domain"
)

// Loader implements ports.BoardLoader over an in-memory board.
type Loader struct {
	board *domain.Board
}

// NewLoader creates a loader serving a private copy of b.
func NewLoader(b *domain.Board) *Loader {
	return &Loader{board: b.Clone()}
}

// LoadBoard returns a fresh copy of the configured board, so two stores seeded
// from the same loader never share lists.
func (l *Loader) LoadBoard(ctx context.Context) (*domain.Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.board == nil {
		return domain.NewBoard(), nil
	}
	return l.board.Clone(), nil
}

// DefaultBoard returns the starter board shown on first launch.
func DefaultBoard() *domain.Board {
	return domain.NewBoard(
		domain.NewList("0", "To Do", domain.Task{ID: "c0", Text: "Generate app"}),
		domain.NewList("1", "In Progress", domain.Task{ID: "c2", Text: "Learn typescript"}),
		domain.NewList("2", "Done", domain.Task{ID: "c3", Text: "build a site"}),
	)
}
