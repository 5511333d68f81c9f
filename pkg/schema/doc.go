// Package schema defines the wire formats of the task board and validates them.
//
// Actions travel as an envelope mirroring the reducer's discriminated union:
//
//	{"type": "ADD_LIST", "payload": "Backlog"}
//	{"type": "ADD_TASK", "payload": {"text": "Write spec", "taskId": "c0"}}
//	{"type": "MOVE_LIST", "payload": {"dragIndex": 0, "hoverIndex": 3}}
//	{"type": "SET_DRAGGED_ITEM", "payload": {"type": "LIST", "id": "0", "index": 0}}
//	{"type": "SET_DRAGGED_ITEM", "payload": null}
//
// Unknown type strings decode to domain.Unrecognized so that they remain identity
// transitions instead of errors.
//
// Board documents (seed files) are checked against an embedded JSON Schema before
// they are decoded; every violation is reported in a single AggregateError.
package schema
