package ports

import (
	"context"

	"github.com/aretw0/taskboard/pkg/domain"
)

// BoardLoader defines how the store retrieves its initial board.
// This allows the seed source (file, memory) to be decoupled.
type BoardLoader interface {
	LoadBoard(ctx context.Context) (*domain.Board, error)
}

// IDGenerator supplies identifiers that are unique for the process lifetime.
type IDGenerator interface {
	NewID() string
}

// IDFunc adapts a plain function to IDGenerator.
type IDFunc func() string

// NewID implements IDGenerator.
func (f IDFunc) NewID() string { return f() }
