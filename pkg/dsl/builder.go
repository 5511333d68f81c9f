package dsl

import (
	"fmt"

	"github.com/aretw0/taskboard/pkg/adapters/memory"
	"github.com/aretw0/taskboard/pkg/domain"
)

// Builder manages the board construction. Lists keep the order they were added in.
type Builder struct {
	lists []*ListBuilder
	index map[string]*ListBuilder
	drag  *domain.DragItem
}

// New creates a new board builder.
func New() *Builder {
	return &Builder{
		index: make(map[string]*ListBuilder),
	}
}

// Add appends a new list to the board.
// If the list already exists, it returns the existing builder.
func (b *Builder) Add(id string) *ListBuilder {
	if lb, ok := b.index[id]; ok {
		return lb
	}
	lb := &ListBuilder{
		list:    domain.List{ID: id, Tasks: []domain.Task{}},
		builder: b,
	}
	b.lists = append(b.lists, lb)
	b.index[id] = lb
	return lb
}

// Drag marks the list or task with the given ID as the dragged item.
// Index, owning list and text are filled in by Board.
func (b *Builder) Drag(kind domain.DragType, id string) *Builder {
	b.drag = &domain.DragItem{Type: kind, ID: id}
	return b
}

// Board assembles the board without validating it.
func (b *Builder) Board() *domain.Board {
	lists := make([]*domain.List, 0, len(b.lists))
	for _, lb := range b.lists {
		l := lb.Build()
		lists = append(lists, &l)
	}
	board := domain.NewBoard(lists...)

	if b.drag != nil {
		item := *b.drag
		item.Index = -1
		switch item.Type {
		case domain.DragList:
			if i := board.ListIndex(item.ID); i >= 0 {
				item.Index = i
				item.Text = board.Lists[i].Text
			}
		case domain.DragTask:
			if li := board.ListOfTask(item.ID); li >= 0 {
				list := board.Lists[li]
				item.Index = domain.FindItemIndexByID(list.Tasks, item.ID)
				item.ListID = list.ID
				item.Text = list.Tasks[item.Index].Text
			}
		}
		board.DraggedItem = &item
	}
	return board
}

// Build validates the board and wraps it in a memory loader.
func (b *Builder) Build() (*memory.Loader, error) {
	board := b.Board()
	if err := domain.Validate(board); err != nil {
		return nil, fmt.Errorf("failed to build board: %w", err)
	}
	return memory.NewLoader(board), nil
}
