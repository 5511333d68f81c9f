package domain

import (
	"errors"
	"fmt"
)

// Validate checks the board invariants: list IDs and task IDs are unique
// across the board and the dragged item, if any, refers to a present entity.
// All violations are joined into the returned error.
func Validate(b *Board) error {
	if b == nil {
		return nil
	}

	var errs []error
	lists := make(map[string]struct{}, len(b.Lists))
	tasks := make(map[string]struct{})

	for i, l := range b.Lists {
		if l == nil {
			errs = append(errs, fmt.Errorf("list %d is nil", i))
			continue
		}
		if _, dup := lists[l.ID]; dup {
			errs = append(errs, fmt.Errorf("list %q: %w", l.ID, ErrDuplicateID))
		}
		lists[l.ID] = struct{}{}

		for _, t := range l.Tasks {
			if _, dup := tasks[t.ID]; dup {
				errs = append(errs, fmt.Errorf("task %q: %w", t.ID, ErrDuplicateID))
			}
			tasks[t.ID] = struct{}{}
		}
	}

	if item := b.DraggedItem; item != nil {
		var present bool
		switch item.Type {
		case DragList:
			_, present = lists[item.ID]
		case DragTask:
			_, present = tasks[item.ID]
		}
		if !present {
			errs = append(errs, fmt.Errorf("%s %q: %w", item.Type, item.ID, ErrDanglingDrag))
		}
	}

	return errors.Join(errs...)
}
