package domain

// Task is a leaf work item owned by exactly one List.
type Task struct {
	ID   string `json:"id" yaml:"id" mapstructure:"id"`
	Text string `json:"text" yaml:"text" mapstructure:"text"`
}

// List is an ordered column of tasks.
type List struct {
	ID    string `json:"id" yaml:"id" mapstructure:"id"`
	Text  string `json:"text" yaml:"text" mapstructure:"text"`
	Tasks []Task `json:"tasks" yaml:"tasks" mapstructure:"tasks"`
}

// Board represents the current snapshot of the task board.
// A Board is never mutated once published; transitions return a new value.
type Board struct {
	// Lists holds the columns in display order.
	Lists []*List `json:"lists" yaml:"lists" mapstructure:"lists"`

	// DraggedItem is set between drag start and drag end, nil otherwise.
	DraggedItem *DragItem `json:"draggedItem,omitempty" yaml:"draggedItem,omitempty" mapstructure:"draggedItem"`
}

// DragType identifies the kind of entity being dragged.
type DragType string

const (
	DragList DragType = "LIST"
	DragTask DragType = "TASK"
)

// DragItem describes the entity currently being dragged.
type DragItem struct {
	Type DragType `json:"type" yaml:"type" mapstructure:"type"`
	ID   string   `json:"id" yaml:"id" mapstructure:"id"`

	// Index is the position the item currently occupies.
	// Drag hosts update it after every hover move.
	Index int `json:"index" yaml:"index" mapstructure:"index"`

	// ListID is the owning list for task drags.
	ListID string `json:"listId,omitempty" yaml:"listId,omitempty" mapstructure:"listId"`

	Text string `json:"text,omitempty" yaml:"text,omitempty" mapstructure:"text"`
}

// NewBoard creates a board holding the given lists.
func NewBoard(lists ...*List) *Board {
	if lists == nil {
		lists = []*List{}
	}
	return &Board{Lists: lists}
}

// NewList creates a list with the given tasks.
func NewList(id, text string, tasks ...Task) *List {
	if tasks == nil {
		tasks = []Task{}
	}
	return &List{ID: id, Text: text, Tasks: tasks}
}

// ListIndex returns the position of the list with the given ID, or -1.
func (b *Board) ListIndex(id string) int {
	if b == nil {
		return -1
	}
	return FindItemIndexByID(b.Lists, id)
}

// ListOfTask returns the position of the list owning the task with the given ID, or -1.
func (b *Board) ListOfTask(taskID string) int {
	if b == nil {
		return -1
	}
	for i, l := range b.Lists {
		if FindItemIndexByID(l.Tasks, taskID) >= 0 {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the board.
// Callers that need a private, mutable tree (decoders, builders) use it; the
// reducer never does.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	out := &Board{Lists: make([]*List, len(b.Lists))}
	for i, l := range b.Lists {
		tasks := make([]Task, len(l.Tasks))
		copy(tasks, l.Tasks)
		out.Lists[i] = &List{ID: l.ID, Text: l.Text, Tasks: tasks}
	}
	if b.DraggedItem != nil {
		item := *b.DraggedItem
		out.DraggedItem = &item
	}
	return out
}

// GetID implements Identifiable.
func (t Task) GetID() string { return t.ID }

// GetID implements Identifiable.
func (l *List) GetID() string { return l.ID }
