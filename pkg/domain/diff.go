package domain

// BoardDiff represents the changes between two boards.
// It is designed to be serialized to JSON for partial updates on the client.
type BoardDiff struct {
	// Order is the full list ID order, present only when it changed.
	Order []string `json:"order,omitempty"`

	// Lists contains lists that were added or replaced.
	// Unchanged lists are detected by pointer identity and omitted.
	Lists []*List `json:"lists,omitempty"`

	// Removed contains IDs of lists that disappeared.
	Removed []string `json:"removed,omitempty"`

	// DraggedItem is the new dragged item when it changed.
	DraggedItem *DragItem `json:"draggedItem,omitempty"`

	// DragCleared is true when the dragged item went from set to nil.
	DragCleared bool `json:"dragCleared,omitempty"`
}

// Diff calculates the difference between oldBoard and newBoard.
// If oldBoard is nil, it returns a diff representing the entire newBoard (initial load).
// It returns nil when nothing changed.
func Diff(oldBoard, newBoard *Board) *BoardDiff {
	if newBoard == nil || oldBoard == newBoard {
		return nil
	}
	if oldBoard == nil {
		oldBoard = &Board{}
	}

	diff := &BoardDiff{}

	// 1. Lists, by identity
	oldByID := make(map[string]*List, len(oldBoard.Lists))
	for _, l := range oldBoard.Lists {
		oldByID[l.ID] = l
	}
	newIDs := make(map[string]struct{}, len(newBoard.Lists))
	for _, l := range newBoard.Lists {
		newIDs[l.ID] = struct{}{}
		if prev, ok := oldByID[l.ID]; !ok || prev != l {
			diff.Lists = append(diff.Lists, l)
		}
	}
	for _, l := range oldBoard.Lists {
		if _, ok := newIDs[l.ID]; !ok {
			diff.Removed = append(diff.Removed, l.ID)
		}
	}

	// 2. Order
	if !sameOrder(oldBoard.Lists, newBoard.Lists) {
		diff.Order = make([]string, len(newBoard.Lists))
		for i, l := range newBoard.Lists {
			diff.Order[i] = l.ID
		}
	}

	// 3. Dragged item
	switch {
	case newBoard.DraggedItem == nil && oldBoard.DraggedItem != nil:
		diff.DragCleared = true
	case newBoard.DraggedItem != nil && (oldBoard.DraggedItem == nil || *oldBoard.DraggedItem != *newBoard.DraggedItem):
		diff.DraggedItem = newBoard.DraggedItem
	}

	if diff.IsEmpty() {
		return nil
	}
	return diff
}

func sameOrder(a, b []*List) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

// IsEmpty checks if the diff contains any actionable changes.
func (d *BoardDiff) IsEmpty() bool {
	return len(d.Order) == 0 &&
		len(d.Lists) == 0 &&
		len(d.Removed) == 0 &&
		d.DraggedItem == nil &&
		!d.DragCleared
}
