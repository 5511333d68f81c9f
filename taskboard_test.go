package taskboard_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/aretw0/taskboard"
	"github.com/aretw0/taskboard/pkg/adapters/memory"
	"github.com/aretw0/taskboard/pkg/domain"
	"github.com/aretw0/taskboard/pkg/observability"
	"github.com/aretw0/taskboard/pkg/ports"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingLoader struct{ err error }

func (l failingLoader) LoadBoard(context.Context) (*domain.Board, error) { return nil, l.err }

func newStore(t *testing.T, opts ...taskboard.Option) *taskboard.Store {
	t.Helper()
	opts = append([]taskboard.Option{taskboard.WithLoader(memory.NewLoader(memory.DefaultBoard()))}, opts...)
	store, err := taskboard.New(context.Background(), opts...)
	require.NoError(t, err)
	return store
}

func TestStore_Contract(t *testing.T) {
	ports.RunDispatcherContract(t, func(seed *domain.Board) ports.Dispatcher {
		store, err := taskboard.New(context.Background(), taskboard.WithBoard(seed))
		require.NoError(t, err)
		return store
	})
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty By Default", func(t *testing.T) {
		store, err := taskboard.New(ctx)
		require.NoError(t, err)
		assert.Empty(t, store.GetState().Lists)
		assert.Nil(t, store.GetState().DraggedItem)
	})

	t.Run("Loader Wins Over Board", func(t *testing.T) {
		store, err := taskboard.New(ctx,
			taskboard.WithBoard(domain.NewBoard()),
			taskboard.WithLoader(memory.NewLoader(memory.DefaultBoard())),
		)
		require.NoError(t, err)
		assert.Len(t, store.GetState().Lists, 3)
	})

	t.Run("Loader Failure", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := taskboard.New(ctx, taskboard.WithLoader(failingLoader{err: boom}))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("Invalid Initial Board", func(t *testing.T) {
		dup := domain.NewBoard(domain.NewList("a", "One"), domain.NewList("a", "Two"))
		_, err := taskboard.New(ctx, taskboard.WithBoard(dup))
		assert.ErrorContains(t, err, "invalid initial board")
	})
}

func TestStore_Scenario(t *testing.T) {
	ctx := context.Background()
	n := 0
	store := newStore(t, taskboard.WithIDGenerator(ports.IDFunc(func() string {
		n++
		return fmt.Sprintf("new-%d", n)
	})))

	require.NoError(t, store.Dispatch(ctx, domain.AddList{Text: "Backlog"}))
	b := store.GetState()
	require.Len(t, b.Lists, 4)
	assert.Equal(t, "new-1", b.Lists[3].ID)

	require.NoError(t, store.Dispatch(ctx, domain.AddTask{Text: "Write spec", TaskID: "c0"}))
	b = store.GetState()
	assert.Equal(t, domain.Task{ID: "new-2", Text: "Write spec"}, b.Lists[0].Tasks[1])

	require.NoError(t, store.Dispatch(ctx, domain.MoveList{DragIndex: 0, HoverIndex: 3}))
	b = store.GetState()

	var texts []string
	for _, l := range b.Lists {
		texts = append(texts, l.Text)
	}
	assert.Equal(t, []string{"In Progress", "Done", "Backlog", "To Do"}, texts)
	assert.Len(t, b.Lists[3].Tasks, 2)
}

func TestStore_ObserversInOrder(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	var calls []string
	store.Subscribe(func(_, _ *domain.Board) { calls = append(calls, "first") })
	unsubscribe := store.Subscribe(func(_, _ *domain.Board) { calls = append(calls, "second") })
	store.Subscribe(func(_, _ *domain.Board) { calls = append(calls, "third") })

	require.NoError(t, store.Dispatch(ctx, domain.AddList{Text: "x"}))
	assert.Equal(t, []string{"first", "second", "third"}, calls)

	unsubscribe()
	unsubscribe()
	calls = nil
	require.NoError(t, store.Dispatch(ctx, domain.AddList{Text: "y"}))
	assert.Equal(t, []string{"first", "third"}, calls)
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	var seen []int
	store.Subscribe(func(_, newBoard *domain.Board) {
		seen = append(seen, len(newBoard.Lists))
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Dispatch(ctx, domain.AddList{Text: "x"}))
		}()
	}
	wg.Wait()

	require.Len(t, store.GetState().Lists, 23)
	require.Len(t, seen, 20)
	for i, n := range seen {
		assert.Equal(t, 4+i, n, "notifications arrive in dispatch order")
	}
	assert.NoError(t, domain.Validate(store.GetState()))
}

func TestStore_Hooks(t *testing.T) {
	ctx := context.Background()
	metrics := observability.NewMetrics()

	var rejected []domain.ActionType
	hooks := observability.Chain(metrics.Hooks(), domain.LifecycleHooks{
		OnReject: func(_ context.Context, e *domain.DispatchEvent) {
			rejected = append(rejected, e.Action)
		},
	})
	store := newStore(t, taskboard.WithLifecycleHooks(hooks))

	require.NoError(t, store.Dispatch(ctx, domain.AddList{Text: "Backlog"}))
	require.NoError(t, store.Dispatch(ctx, domain.Unrecognized{Type: "NOPE"}))
	assert.ErrorIs(t, store.Dispatch(ctx, domain.MoveList{DragIndex: 9, HoverIndex: 0}), domain.ErrIndexOutOfRange)

	assert.Equal(t, []domain.ActionType{domain.ActionMoveList}, rejected)
	dispatched, err := testutil.GatherAndCount(metrics.Registry(), "taskboard_dispatch_total")
	require.NoError(t, err)
	assert.Equal(t, 2, dispatched)
	rejections, err := testutil.GatherAndCount(metrics.Registry(), "taskboard_dispatch_rejected_total")
	require.NoError(t, err)
	assert.Equal(t, 1, rejections)
}

func TestDragHelpers(t *testing.T) {
	ctx := context.Background()

	t.Run("List Drag", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, taskboard.BeginListDrag(ctx, store, "1"))
		item := store.GetState().DraggedItem
		require.NotNil(t, item)
		assert.Equal(t, domain.DragItem{Type: domain.DragList, ID: "1", Index: 1, Text: "In Progress"}, *item)

		require.NoError(t, taskboard.HoverList(ctx, store, 0))
		b := store.GetState()
		assert.Equal(t, "1", b.Lists[0].ID)
		assert.Equal(t, 0, b.DraggedItem.Index)

		before := store.GetState()
		require.NoError(t, taskboard.HoverList(ctx, store, 0))
		assert.Same(t, before, store.GetState(), "hovering the current slot is a no-op")

		require.NoError(t, taskboard.EndDrag(ctx, store))
		assert.Nil(t, store.GetState().DraggedItem)
		require.NoError(t, taskboard.EndDrag(ctx, store))
	})

	t.Run("Task Drag", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, taskboard.BeginTaskDrag(ctx, store, "c3"))
		item := store.GetState().DraggedItem
		require.NotNil(t, item)
		assert.Equal(t, domain.DragTask, item.Type)
		assert.Equal(t, "2", item.ListID)
		assert.Equal(t, "build a site", item.Text)

		before := store.GetState()
		require.NoError(t, taskboard.HoverList(ctx, store, 0))
		assert.Same(t, before, store.GetState(), "task drags do not move lists")
	})

	t.Run("Unknown IDs", func(t *testing.T) {
		store := newStore(t)
		assert.ErrorIs(t, taskboard.BeginListDrag(ctx, store, "missing"), domain.ErrNotFound)
		assert.ErrorIs(t, taskboard.BeginTaskDrag(ctx, store, "missing"), domain.ErrNotFound)
	})

	t.Run("Hover Out Of Range", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, taskboard.BeginListDrag(ctx, store, "0"))
		assert.ErrorIs(t, taskboard.HoverList(ctx, store, 5), domain.ErrIndexOutOfRange)
		assert.Equal(t, 0, store.GetState().DraggedItem.Index)
	})

	t.Run("Stale Index", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, taskboard.BeginListDrag(ctx, store, "0"))
		require.NoError(t, store.Dispatch(ctx, domain.MoveList{DragIndex: 0, HoverIndex: 2}))
		assert.Equal(t, 0, store.GetState().DraggedItem.Index, "plain moves leave the marker alone")

		require.NoError(t, taskboard.HoverList(ctx, store, 1))
		b := store.GetState()
		assert.Equal(t, []string{"1", "0", "2"}, listIDs(b))
		assert.Equal(t, "0", b.DraggedItem.ID)
		assert.Equal(t, 1, b.DraggedItem.Index)
	})

	t.Run("Seeded Marker Without Index", func(t *testing.T) {
		seed := domain.NewBoard(domain.NewList("a", "A"), domain.NewList("b", "B"), domain.NewList("c", "C"))
		seed.DraggedItem = &domain.DragItem{Type: domain.DragList, ID: "c"}
		store, err := taskboard.New(ctx, taskboard.WithBoard(seed))
		require.NoError(t, err)

		require.NoError(t, taskboard.HoverList(ctx, store, 1))
		b := store.GetState()
		assert.Equal(t, []string{"a", "c", "b"}, listIDs(b))
		assert.Equal(t, 1, b.DraggedItem.Index)
	})

	t.Run("Marker Already At Target", func(t *testing.T) {
		seed := domain.NewBoard(domain.NewList("a", "A"), domain.NewList("b", "B"))
		seed.DraggedItem = &domain.DragItem{Type: domain.DragList, ID: "a", Index: 1}
		store, err := taskboard.New(ctx, taskboard.WithBoard(seed))
		require.NoError(t, err)

		require.NoError(t, taskboard.HoverList(ctx, store, 0))
		b := store.GetState()
		assert.Equal(t, []string{"a", "b"}, listIDs(b), "list is already there")
		assert.Equal(t, 0, b.DraggedItem.Index, "marker is resynchronised")
	})
}

func listIDs(b *domain.Board) []string {
	ids := make([]string, len(b.Lists))
	for i, l := range b.Lists {
		ids[i] = l.ID
	}
	return ids
}
