/*
Package domain contains the core domain model of the task board.

It defines the board state tree, the closed set of actions that transform it and
the lookup and reorder primitives the reducer is built on. This package is kept
pure and free of external dependencies like I/O or persistence, following
Hexagonal Architecture principles.

# Key Entities

  - Board: The root snapshot (ordered Lists plus the optional DraggedItem).
  - List: An ordered column owning its Tasks.
  - Task: A leaf work item.
  - DragItem: Transient descriptor of the entity being dragged.
  - Action: The tagged variant applied by the reducer (AddList, AddTask, MoveList, SetDraggedItem).

Boards are immutable snapshots. Every transition returns a new Board and copies
each level from the touched leaf up to the root, so untouched lists keep their
pointer identity and observers can detect changes by reference comparison.
*/
package domain
