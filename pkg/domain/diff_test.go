package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	todo := NewList("0", "To Do", Task{ID: "c0"})
	done := NewList("2", "Done", Task{ID: "c3"})
	base := NewBoard(todo, done)

	t.Run("Initial Load (Old is Nil)", func(t *testing.T) {
		d := Diff(nil, base)
		require.NotNil(t, d)
		assert.Equal(t, []string{"0", "2"}, d.Order)
		assert.Len(t, d.Lists, 2)
	})

	t.Run("Same Value", func(t *testing.T) {
		assert.Nil(t, Diff(base, base))
	})

	t.Run("Structurally Shared Copy", func(t *testing.T) {
		next := &Board{Lists: []*List{todo, done}}
		assert.Nil(t, Diff(base, next))
	})

	t.Run("Replaced List", func(t *testing.T) {
		grown := NewList("0", "To Do", Task{ID: "c0"}, Task{ID: "c9"})
		next := &Board{Lists: []*List{grown, done}}

		d := Diff(base, next)
		require.NotNil(t, d)
		assert.Nil(t, d.Order)
		require.Len(t, d.Lists, 1)
		assert.Same(t, grown, d.Lists[0])
	})

	t.Run("Reorder", func(t *testing.T) {
		next := &Board{Lists: []*List{done, todo}}

		d := Diff(base, next)
		require.NotNil(t, d)
		assert.Equal(t, []string{"2", "0"}, d.Order)
		assert.Empty(t, d.Lists)
	})

	t.Run("Removed", func(t *testing.T) {
		next := &Board{Lists: []*List{todo}}

		d := Diff(base, next)
		require.NotNil(t, d)
		assert.Equal(t, []string{"2"}, d.Removed)
	})

	t.Run("Drag Set And Cleared", func(t *testing.T) {
		item := &DragItem{Type: DragList, ID: "0"}
		dragging := &Board{Lists: base.Lists, DraggedItem: item}

		d := Diff(base, dragging)
		require.NotNil(t, d)
		assert.Equal(t, item, d.DraggedItem)

		d = Diff(dragging, base)
		require.NotNil(t, d)
		assert.True(t, d.DragCleared)
	})
}

func TestDiffJSONSerialization(t *testing.T) {
	b := base()
	next := &Board{Lists: []*List{b.Lists[1], b.Lists[0]}}
	d := Diff(b, next)
	require.NotNil(t, d)

	bytes, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(bytes), `"order":["1","0"]`)
	assert.False(t, strings.Contains(string(bytes), `"removed"`), "empty fields must be omitted")
}

func base() *Board {
	return NewBoard(NewList("0", "To Do"), NewList("1", "Done"))
}
