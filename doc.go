/*
Package taskboard is an in-memory, Trello-style task board: ordered lists of ordered
tasks, reordered by drag-and-drop.

The board is a single immutable value replaced on every action. A pure reducer
(see internal/runtime) maps (board, action) to the next board, and the Store in this
package owns the current value, serialises dispatches and notifies observers.
Presentation surfaces (browser page, terminal, MCP tools) only read snapshots and
dispatch actions.

# Usage

	store, err := taskboard.New(ctx, taskboard.WithLoader(memory.NewLoader(memory.DefaultBoard())))
	if err != nil {
		log.Fatal(err)
	}

	unsubscribe := store.Subscribe(func(oldBoard, newBoard *domain.Board) {
		render(newBoard)
	})
	defer unsubscribe()

	_ = store.Dispatch(ctx, domain.AddList{Text: "Backlog"})
	_ = store.Dispatch(ctx, domain.AddTask{Text: "Write spec", TaskID: "c0"})

	// Drag the first list to the end.
	_ = taskboard.BeginListDrag(ctx, store, "0")
	_ = taskboard.HoverList(ctx, store, 3)
	_ = taskboard.EndDrag(ctx, store)

# Actions

  - AddList: appends an empty list with a fresh ID.
  - AddTask: appends a task to the list that contains the referenced task.
  - MoveList: splice-reorders the lists. Invalid indices are a no-op.
  - SetDraggedItem: sets or clears the drag marker.

Unknown actions are identity transitions. Failed lookups and invalid moves leave the
board untouched and are reported as domain.ErrNotFound and domain.ErrIndexOutOfRange.
*/
package taskboard
