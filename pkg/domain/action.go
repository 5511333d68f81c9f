package domain

// ActionType is the discriminator of an Action.
type ActionType string

// Standard Action Types
const (
	// ActionAddList appends a new, empty list.
	ActionAddList ActionType = "ADD_LIST"

	// ActionAddTask appends a task to the list containing a reference task.
	ActionAddTask ActionType = "ADD_TASK"

	// ActionMoveList reorders the lists.
	ActionMoveList ActionType = "MOVE_LIST"

	// ActionSetDraggedItem replaces (or clears) the dragged item marker.
	ActionSetDraggedItem ActionType = "SET_DRAGGED_ITEM"
)

// Action is a request to transition the board.
// The reducer matches the concrete types below; any other implementation is
// treated as an identity transition.
type Action interface {
	Kind() ActionType
}

// AddList appends a list with a fresh ID and the given text.
type AddList struct {
	Text string `json:"text" mapstructure:"text"`
}

// AddTask appends a task with a fresh ID to the list that currently contains
// the task identified by TaskID.
type AddTask struct {
	Text string `json:"text" mapstructure:"text"`

	// TaskID references a task already inside the target list.
	// It resolves the list; it does not name the task being created.
	TaskID string `json:"taskId" mapstructure:"taskId"`
}

// MoveList removes the list at DragIndex and reinserts it at HoverIndex.
type MoveList struct {
	DragIndex  int `json:"dragIndex" mapstructure:"dragIndex"`
	HoverIndex int `json:"hoverIndex" mapstructure:"hoverIndex"`
}

// SetDraggedItem replaces the board's dragged item. A nil Item clears it.
type SetDraggedItem struct {
	Item *DragItem `json:"item" mapstructure:"item"`
}

// Unrecognized carries an action type the reducer does not know.
// Decoders produce it instead of failing so that unknown actions stay identity transitions.
type Unrecognized struct {
	Type string `json:"type"`
}

func (AddList) Kind() ActionType        { return ActionAddList }
func (AddTask) Kind() ActionType        { return ActionAddTask }
func (MoveList) Kind() ActionType       { return ActionMoveList }
func (SetDraggedItem) Kind() ActionType { return ActionSetDraggedItem }
func (u Unrecognized) Kind() ActionType { return ActionType(u.Type) }
