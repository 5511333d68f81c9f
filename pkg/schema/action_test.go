package schema_test

import (
	"math"
	"testing"

	"github.com/aretw0/taskboard/pkg/domain"
	"github.com/aretw0/taskboard/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAction(t *testing.T) {
	tests := []struct {
		name string
		json string
		want domain.Action
	}{
		{
			name: "ADD_LIST string payload",
			json: `{"type":"ADD_LIST","payload":"Backlog"}`,
			want: domain.AddList{Text: "Backlog"},
		},
		{
			name: "ADD_LIST object payload",
			json: `{"type":"ADD_LIST","payload":{"text":""}}`,
			want: domain.AddList{Text: ""},
		},
		{
			name: "ADD_TASK",
			json: `{"type":"ADD_TASK","payload":{"text":"Write spec","taskId":"c0"}}`,
			want: domain.AddTask{Text: "Write spec", TaskID: "c0"},
		},
		{
			name: "MOVE_LIST",
			json: `{"type":"MOVE_LIST","payload":{"dragIndex":0,"hoverIndex":3}}`,
			want: domain.MoveList{DragIndex: 0, HoverIndex: 3},
		},
		{
			name: "SET_DRAGGED_ITEM",
			json: `{"type":"SET_DRAGGED_ITEM","payload":{"type":"LIST","id":"0","index":2,"text":"To Do"}}`,
			want: domain.SetDraggedItem{Item: &domain.DragItem{Type: domain.DragList, ID: "0", Index: 2, Text: "To Do"}},
		},
		{
			name: "SET_DRAGGED_ITEM clear",
			json: `{"type":"SET_DRAGGED_ITEM","payload":null}`,
			want: domain.SetDraggedItem{},
		},
		{
			name: "Unknown type",
			json: `{"type":"UNKNOWN"}`,
			want: domain.Unrecognized{Type: "UNKNOWN"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schema.DecodeAction([]byte(tt.json))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeAction_Errors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"not json", `ADD_LIST`},
		{"missing type", `{"payload":"x"}`},
		{"ADD_TASK missing taskId", `{"type":"ADD_TASK","payload":{"text":"x"}}`},
		{"ADD_TASK unknown key", `{"type":"ADD_TASK","payload":{"text":"x","taskId":"c0","listId":"0"}}`},
		{"MOVE_LIST missing hover", `{"type":"MOVE_LIST","payload":{"dragIndex":1}}`},
		{"MOVE_LIST fractional index", `{"type":"MOVE_LIST","payload":{"dragIndex":1.5,"hoverIndex":0}}`},
		{"MOVE_LIST scalar payload", `{"type":"MOVE_LIST","payload":3}`},
		{"SET_DRAGGED_ITEM bad type", `{"type":"SET_DRAGGED_ITEM","payload":{"type":"COLUMN","id":"0"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schema.DecodeAction([]byte(tt.json))
			assert.Error(t, err)
		})
	}
}

func TestDecodeAction_ReportsAllMissingKeys(t *testing.T) {
	_, err := schema.DecodeAction([]byte(`{"type":"MOVE_LIST","payload":{}}`))
	require.Error(t, err)

	var aggr *schema.AggregateError
	require.ErrorAs(t, err, &aggr)
	assert.Len(t, aggr.Errors, 2)
}

func TestActionFromPayload_FloatArgs(t *testing.T) {
	// MCP and browser clients hand over float64 numbers.
	got, err := schema.ActionFromPayload(domain.ActionMoveList, map[string]any{"dragIndex": float64(2), "hoverIndex": float64(0)})
	require.NoError(t, err)
	assert.Equal(t, domain.MoveList{DragIndex: 2, HoverIndex: 0}, got)
}

func TestActionFromPayload_FractionalArgs(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"Positive Fraction", map[string]any{"dragIndex": 1.7, "hoverIndex": float64(0)}},
		{"Negative Fraction", map[string]any{"dragIndex": float64(0), "hoverIndex": -0.5}},
		{"Not A Number", map[string]any{"dragIndex": math.NaN(), "hoverIndex": float64(0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schema.ActionFromPayload(domain.ActionMoveList, tt.payload)
			assert.Nil(t, got)
			assert.ErrorContains(t, err, "not a whole number")
		})
	}

	t.Run("Drag Marker Index", func(t *testing.T) {
		_, err := schema.ActionFromPayload(domain.ActionSetDraggedItem, map[string]any{"type": "LIST", "id": "0", "index": 2.5})
		assert.ErrorContains(t, err, "not a whole number")
	})
}

func TestEncodeAction(t *testing.T) {
	actions := []domain.Action{
		domain.AddList{Text: "Backlog"},
		domain.AddTask{Text: "Write spec", TaskID: "c0"},
		domain.MoveList{DragIndex: 0, HoverIndex: 3},
		domain.SetDraggedItem{Item: &domain.DragItem{Type: domain.DragTask, ID: "c0", ListID: "0", Text: "Generate app"}},
		domain.SetDraggedItem{},
	}

	for _, a := range actions {
		t.Run(string(a.Kind()), func(t *testing.T) {
			data, err := schema.EncodeAction(a)
			require.NoError(t, err)

			back, err := schema.DecodeAction(data)
			require.NoError(t, err)
			assert.Equal(t, a, back)
		})
	}

	data, err := schema.EncodeAction(domain.AddList{Text: "Backlog"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"ADD_LIST","payload":"Backlog"}`, string(data))

	_, err = schema.EncodeAction(nil)
	assert.Error(t, err)
}
