package taskboard

import (
	"context"
	"fmt"

	"github.com/aretw0/taskboard/pkg/domain"
	"github.com/aretw0/taskboard/pkg/ports"
)

// BeginListDrag marks the list with the given ID as being dragged.
func BeginListDrag(ctx context.Context, d ports.Dispatcher, listID string) error {
	board := d.GetState()
	idx := board.ListIndex(listID)
	if idx < 0 {
		return fmt.Errorf("list %q: %w", listID, domain.ErrNotFound)
	}
	return d.Dispatch(ctx, domain.SetDraggedItem{Item: &domain.DragItem{
		Type:  domain.DragList,
		ID:    listID,
		Index: idx,
		Text:  board.Lists[idx].Text,
	}})
}

// BeginTaskDrag marks the task with the given ID as being dragged.
// Tasks cannot be reordered yet; the marker only drives presentation.
func BeginTaskDrag(ctx context.Context, d ports.Dispatcher, taskID string) error {
	board := d.GetState()
	li := board.ListOfTask(taskID)
	if li < 0 {
		return fmt.Errorf("task %q: %w", taskID, domain.ErrNotFound)
	}
	list := board.Lists[li]
	ti := domain.FindItemIndexByID(list.Tasks, taskID)
	return d.Dispatch(ctx, domain.SetDraggedItem{Item: &domain.DragItem{
		Type:   domain.DragTask,
		ID:     taskID,
		Index:  ti,
		ListID: list.ID,
		Text:   list.Tasks[ti].Text,
	}})
}

// HoverList moves the dragged list to hoverIndex and records its new position
// on the drag marker, the way a drag-and-drop host reacts to a hover event.
// The list is located by ID, so the marker's Index may be stale.
// It does nothing when no list is being dragged or the list is already there.
func HoverList(ctx context.Context, d ports.Dispatcher, hoverIndex int) error {
	board := d.GetState()
	item := board.DraggedItem
	if item == nil || item.Type != domain.DragList {
		return nil
	}

	from := board.ListIndex(item.ID)
	if from < 0 {
		return fmt.Errorf("list %q: %w", item.ID, domain.ErrNotFound)
	}
	if from == hoverIndex && item.Index == hoverIndex {
		return nil
	}

	if from != hoverIndex {
		if err := d.Dispatch(ctx, domain.MoveList{DragIndex: from, HoverIndex: hoverIndex}); err != nil {
			return err
		}
	}

	moved := *item
	moved.Index = hoverIndex
	return d.Dispatch(ctx, domain.SetDraggedItem{Item: &moved})
}

// EndDrag clears the drag marker.
func EndDrag(ctx context.Context, d ports.Dispatcher) error {
	if d.GetState().DraggedItem == nil {
		return nil
	}
	return d.Dispatch(ctx, domain.SetDraggedItem{Item: nil})
}
