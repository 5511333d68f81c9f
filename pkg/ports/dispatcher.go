package ports

import (
	"context"

	"github.com/aretw0/taskboard/pkg/domain"
)

// Observer is notified after every transition that produced a new Board.
// Both boards are immutable snapshots and must not be modified.
type Observer func(oldBoard, newBoard *domain.Board)

// Dispatcher is the in-process API exposed to presentation collaborators.
type Dispatcher interface {
	// GetState returns the current Board snapshot.
	GetState() *domain.Board

	// Dispatch applies one action. Lookup and bounds failures are returned as
	// domain.ErrNotFound / domain.ErrIndexOutOfRange and leave the Board untouched.
	Dispatch(ctx context.Context, action domain.Action) error

	// Subscribe registers an observer and returns a function that removes it.
	Subscribe(fn Observer) (unsubscribe func())
}
