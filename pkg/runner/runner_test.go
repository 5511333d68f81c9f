package runner_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/taskboard"
	"github.com/aretw0/taskboard/pkg/adapters/memory"
	"github.com/aretw0/taskboard/pkg/domain"
	"github.com/aretw0/taskboard/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *taskboard.Store {
	t.Helper()
	store, err := taskboard.New(context.Background(), taskboard.WithBoard(memory.DefaultBoard()))
	require.NoError(t, err)
	return store
}

func listTexts(b *domain.Board) []string {
	out := make([]string, len(b.Lists))
	for i, l := range b.Lists {
		out[i] = l.Text
	}
	return out
}

func TestRunner_TextScenario(t *testing.T) {
	store := newStore(t)
	input := strings.Join([]string{
		"add-list Backlog",
		"add-task c0 Write spec",
		"move 0 3",
		"quit",
		"add-list never read",
	}, "\n")
	out := &bytes.Buffer{}

	r := runner.NewRunner(runner.WithInputHandler(runner.NewTextHandler(strings.NewReader(input), out)))
	require.NoError(t, r.Run(context.Background(), store))

	board := store.GetState()
	assert.Equal(t, []string{"In Progress", "Done", "Backlog", "To Do"}, listTexts(board))
	assert.Len(t, board.Lists[3].Tasks, 2)
	assert.Contains(t, out.String(), "- Write spec")
}

func TestRunner_ReportsErrorsAndContinues(t *testing.T) {
	store := newStore(t)
	input := strings.Join([]string{
		"move 0 9",
		"add-task nope x",
		"frobnicate",
		"add-list Still works",
	}, "\n")
	out := &bytes.Buffer{}

	r := runner.NewRunner(runner.WithInputHandler(runner.NewTextHandler(strings.NewReader(input), out)))
	require.NoError(t, r.Run(context.Background(), store))

	output := out.String()
	assert.Contains(t, output, "[System]")
	assert.Contains(t, output, domain.ErrIndexOutOfRange.Error())
	assert.Contains(t, output, domain.ErrNotFound.Error())
	assert.Contains(t, output, "unknown command")
	assert.Len(t, store.GetState().Lists, 4)
}

func TestRunner_DragSequence(t *testing.T) {
	store := newStore(t)
	input := "grab 0\nhover 1\nhover 2\ndrop\nhover 0\n"
	out := &bytes.Buffer{}

	r := runner.NewRunner(
		runner.WithQuiet(true),
		runner.WithInputHandler(runner.NewTextHandler(strings.NewReader(input), out)),
	)
	require.NoError(t, r.Run(context.Background(), store))

	board := store.GetState()
	assert.Equal(t, []string{"In Progress", "Done", "To Do"}, listTexts(board))
	assert.Nil(t, board.DraggedItem)
	assert.Contains(t, out.String(), "nothing to hover")
	assert.NotContains(t, out.String(), "[0]", "quiet mode prints no boards")
}

func TestRunner_JSON(t *testing.T) {
	store := newStore(t)
	input := `{"type":"ADD_LIST","payload":"Backlog"}
{"type":"UNKNOWN"}
{"type":"MOVE_LIST","payload":{"dragIndex":5,"hoverIndex":0}}
`
	out := &bytes.Buffer{}

	r := runner.NewRunner(runner.WithInputHandler(runner.NewJSONHandler(strings.NewReader(input), out)))
	require.NoError(t, r.Run(context.Background(), store))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// initial board, board after ADD_LIST, nothing for UNKNOWN, error for MOVE_LIST
	require.Len(t, lines, 3)

	var board domain.Board
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &board))
	assert.Len(t, board.Lists, 4)

	var errLine map[string]string
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &errLine))
	assert.Contains(t, errLine["error"], "out of range")
}

func TestRunner_ContextCancelled(t *testing.T) {
	store := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := runner.NewRunner(
		runner.WithQuiet(true),
		runner.WithInputHandler(runner.NewJSONHandler(strings.NewReader(`{"type":"ADD_LIST","payload":"x"}`), &bytes.Buffer{})),
	)
	err := r.Run(ctx, store)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, store.GetState().Lists, 3)
}
