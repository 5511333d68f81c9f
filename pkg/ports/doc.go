/*
Package ports defines the driven and driving ports (interfaces) of the task board.

These interfaces decouple the reducer and the store from the surfaces that read the
board and dispatch actions (HTTP, MCP, terminal), and from the sources the initial
board comes from.

# Key Interfaces

  - Dispatcher: Read the current Board, dispatch Actions and observe changes.
  - BoardLoader: Provides the initial Board (e.g., from a seed file or memory).
  - IDGenerator: Supplies collision-resistant identifiers for new lists and tasks.
*/
package ports
