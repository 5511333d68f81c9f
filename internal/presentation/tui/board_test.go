package tui

import (
	"bytes"
	"context"
	"testing"

	"github.com/aretw0/taskboard"
	"github.com/aretw0/taskboard/pkg/adapters/memory"
	"github.com/aretw0/taskboard/pkg/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) (*BoardModel, *taskboard.Store) {
	t.Helper()
	store, err := taskboard.New(context.Background(), taskboard.WithBoard(memory.DefaultBoard()))
	require.NoError(t, err)
	m := NewBoardModel(context.Background(), store)
	t.Cleanup(m.Close)
	return m, store
}

func press(m *BoardModel, keys ...tea.KeyMsg) {
	for _, k := range keys {
		m.Update(k)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func listTexts(b *domain.Board) []string {
	out := make([]string, len(b.Lists))
	for i, l := range b.Lists {
		out[i] = l.Text
	}
	return out
}

func TestBoardModel_DragList(t *testing.T) {
	m, store := newModel(t)

	press(m, keySpace)
	require.NotNil(t, store.GetState().DraggedItem)
	assert.Equal(t, "0", store.GetState().DraggedItem.ID)

	press(m, keyRight, keyRight, keyRight)
	assert.Equal(t, []string{"In Progress", "Done", "To Do"}, listTexts(store.GetState()))
	assert.Equal(t, 2, m.selected)
	assert.Equal(t, 2, store.GetState().DraggedItem.Index)

	press(m, keySpace)
	assert.Nil(t, store.GetState().DraggedItem)

	press(m, keyLeft)
	assert.Equal(t, 1, m.selected)
	assert.Equal(t, []string{"In Progress", "Done", "To Do"}, listTexts(store.GetState()), "moving without a grab only selects")
}

func TestBoardModel_EscCancelsDrag(t *testing.T) {
	m, store := newModel(t)

	press(m, runes("l"), keySpace, keyEsc)
	assert.Nil(t, store.GetState().DraggedItem)
	assert.Equal(t, []string{"To Do", "In Progress", "Done"}, listTexts(store.GetState()))
}

func TestBoardModel_AddListAndTask(t *testing.T) {
	m, store := newModel(t)

	press(m, runes("a"), runes("Back"), keySpace, runes("log"), keyEnter)
	board := store.GetState()
	require.Len(t, board.Lists, 4)
	assert.Equal(t, "Back log", board.Lists[3].Text)

	press(m, runes("t"), runes("Write spec"), keyEnter)
	assert.Equal(t, "Write spec", store.GetState().Lists[0].Tasks[1].Text)

	// The new list has no reference task.
	press(m, keyRight, keyRight, keyRight, runes("t"))
	assert.Equal(t, inputNone, m.input)
	assert.Contains(t, m.View(), "this list has none")
}

func TestBoardModel_InputEditing(t *testing.T) {
	m, store := newModel(t)

	press(m, runes("a"), runes("abc"), tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Contains(t, m.View(), "New list: ab")

	press(m, keyEsc)
	assert.Equal(t, inputNone, m.input)
	assert.Len(t, store.GetState().Lists, 3)
}

func TestBoardModel_ExternalChanges(t *testing.T) {
	m, store := newModel(t)

	require.NoError(t, store.Dispatch(context.Background(), domain.AddList{Text: "From elsewhere"}))

	msg := m.waitForBoard()()
	_, cmd := m.Update(msg)
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "From elsewhere")
}

func TestBoardModel_Quit(t *testing.T) {
	m, _ := newModel(t)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3\n")
	assert.Contains(t, buf.String(), "v1.2.3")
}

func TestNewRenderer(t *testing.T) {
	render := NewRenderer(80)
	out, err := render("# Title")
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
}
