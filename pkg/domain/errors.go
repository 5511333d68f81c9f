package domain

import "errors"

// ErrNotFound is returned when a referenced list or task ID is not on the board.
var ErrNotFound = errors.New("item not found")

// ErrIndexOutOfRange is returned when a move references a position outside the lists.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrDuplicateID is returned by Validate when two entities share an ID.
var ErrDuplicateID = errors.New("duplicate id")

// ErrDanglingDrag is returned by Validate when the dragged item is not on the board.
var ErrDanglingDrag = errors.New("dragged item not on board")
