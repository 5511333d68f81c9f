package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/taskboard"
	"github.com/aretw0/taskboard/internal/logging"
	"github.com/aretw0/taskboard/pkg/adapters/memory"
	"github.com/aretw0/taskboard/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *taskboard.Store) {
	t.Helper()
	store, err := taskboard.New(context.Background(), taskboard.WithBoard(memory.DefaultBoard()))
	require.NoError(t, err)
	return NewServer(store, logging.NewNop()), store
}

func TestTools_Scenario(t *testing.T) {
	s, store := newTestServer(t)
	ctx := context.Background()
	req := mcp.CallToolRequest{}

	res, err := s.handleAddList(ctx, req, map[string]interface{}{"text": "Backlog"})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	require.Len(t, res.Board.Lists, 4)

	res, err = s.handleAddTask(ctx, req, map[string]interface{}{"task_id": "c0", "text": "Write spec"})
	require.NoError(t, err)
	assert.Len(t, res.Board.Lists[0].Tasks, 2)

	// Numbers arrive as float64 from JSON-RPC.
	res, err = s.handleMoveList(ctx, req, map[string]interface{}{"drag_index": float64(0), "hover_index": float64(3)})
	require.NoError(t, err)
	assert.Equal(t, "To Do", res.Board.Lists[3].Text)
	assert.Same(t, store.GetState(), res.Board)
}

func TestTools_Errors(t *testing.T) {
	s, store := newTestServer(t)
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	before := store.GetState()

	_, err := s.handleAddTask(ctx, req, map[string]interface{}{"task_id": "nope", "text": "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.handleMoveList(ctx, req, map[string]interface{}{"drag_index": float64(0), "hover_index": float64(10)})
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)

	_, err = s.handleMoveList(ctx, req, map[string]interface{}{"drag_index": float64(0)})
	assert.ErrorContains(t, err, "invalid arguments")

	_, err = s.handleDispatch(ctx, req, map[string]interface{}{"action": "{"})
	assert.ErrorContains(t, err, "invalid action")

	assert.Same(t, before, store.GetState())
}

func TestTools_SetDraggedItem(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()
	req := mcp.CallToolRequest{}

	res, err := s.handleSetDraggedItem(ctx, req, map[string]interface{}{
		"type":  "LIST",
		"id":    "1",
		"index": float64(1),
		"text":  "In Progress",
	})
	require.NoError(t, err)
	require.NotNil(t, res.Board.DraggedItem)
	assert.Equal(t, domain.DragItem{Type: domain.DragList, ID: "1", Index: 1, Text: "In Progress"}, *res.Board.DraggedItem)

	res, err = s.handleSetDraggedItem(ctx, req, map[string]interface{}{})
	require.NoError(t, err)
	assert.Nil(t, res.Board.DraggedItem)

	_, err = s.handleSetDraggedItem(ctx, req, map[string]interface{}{"type": "CARD", "id": "1"})
	assert.Error(t, err)
}

func TestTools_Dispatch(t *testing.T) {
	s, _ := newTestServer(t)

	res, err := s.handleDispatch(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"action": `{"type":"UNKNOWN"}`,
	})
	require.NoError(t, err)
	assert.False(t, res.Changed)

	res, err = s.handleDispatch(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"action": `{"type":"ADD_LIST","payload":"Backlog"}`,
	})
	require.NoError(t, err)
	assert.True(t, res.Changed)
}

func TestBoardResponseJSON(t *testing.T) {
	data, err := json.Marshal(BoardResponse{Board: memory.DefaultBoard(), Changed: true})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"changed":true`)
	assert.Contains(t, string(data), `"Generate app"`)
}
