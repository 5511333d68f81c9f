package ports

import (
	"context"
	"testing"

	"github.com/aretw0/taskboard/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunDispatcherContract runs a suite of tests to verify that a Dispatcher implementation
// adheres to the defined interface contract.
// newDispatcher must return a fresh Dispatcher seeded with the given board.
func RunDispatcherContract(t *testing.T, newDispatcher func(seed *domain.Board) Dispatcher) {
	ctx := context.Background()
	seed := func() *domain.Board {
		return domain.NewBoard(
			domain.NewList("0", "To Do", domain.Task{ID: "c0", Text: "Generate app"}),
			domain.NewList("1", "In Progress", domain.Task{ID: "c2", Text: "Learn typescript"}),
		)
	}

	t.Run("Dispatch Replaces State", func(t *testing.T) {
		d := newDispatcher(seed())
		before := d.GetState()

		err := d.Dispatch(ctx, domain.AddList{Text: "Backlog"})
		require.NoError(t, err)

		after := d.GetState()
		assert.NotSame(t, before, after, "state must be replaced, not mutated")
		assert.Len(t, before.Lists, 2, "previous snapshot must be untouched")
		require.Len(t, after.Lists, 3)
		assert.Equal(t, "Backlog", after.Lists[2].Text)
	})

	t.Run("Observers Receive Snapshots", func(t *testing.T) {
		d := newDispatcher(seed())

		var calls int
		var gotOld, gotNew *domain.Board
		unsubscribe := d.Subscribe(func(oldBoard, newBoard *domain.Board) {
			calls++
			gotOld, gotNew = oldBoard, newBoard
		})

		before := d.GetState()
		require.NoError(t, d.Dispatch(ctx, domain.AddTask{Text: "Write spec", TaskID: "c0"}))
		assert.Equal(t, 1, calls)
		assert.Same(t, before, gotOld)
		assert.Same(t, d.GetState(), gotNew)

		unsubscribe()
		require.NoError(t, d.Dispatch(ctx, domain.AddList{Text: "Done"}))
		assert.Equal(t, 1, calls, "unsubscribed observer must not be called")
	})

	t.Run("Lookup Failure Leaves State", func(t *testing.T) {
		d := newDispatcher(seed())
		before := d.GetState()

		err := d.Dispatch(ctx, domain.AddTask{Text: "x", TaskID: "missing"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Same(t, before, d.GetState())
	})

	t.Run("Bounds Failure Leaves State", func(t *testing.T) {
		d := newDispatcher(seed())
		before := d.GetState()

		err := d.Dispatch(ctx, domain.MoveList{DragIndex: 0, HoverIndex: 7})
		assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
		assert.Same(t, before, d.GetState())
	})

	t.Run("Unknown Action Is Identity", func(t *testing.T) {
		d := newDispatcher(seed())
		before := d.GetState()

		var calls int
		d.Subscribe(func(_, _ *domain.Board) { calls++ })

		require.NoError(t, d.Dispatch(ctx, domain.Unrecognized{Type: "UNKNOWN"}))
		assert.Same(t, before, d.GetState())
		assert.Zero(t, calls, "identity transitions do not notify")
	})
}
