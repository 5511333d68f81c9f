package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/taskboard/pkg/domain"
	"github.com/aretw0/taskboard/pkg/schema"
)

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
// Each input line is an action envelope; each output line is a board or an error object.
type JSONHandler struct {
	Reader  *bufio.Reader
	Writer  io.Writer
	Encoder *json.Encoder
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) Output(ctx context.Context, board *domain.Board) error {
	return h.Encoder.Encode(board)
}

func (h *JSONHandler) Input(ctx context.Context) (Command, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Command{}, err
		}

		text, err := h.Reader.ReadString('\n')
		text = strings.TrimSpace(text)
		if text == "" {
			if err != nil {
				return Command{}, err
			}
			continue
		}

		action, decodeErr := schema.DecodeAction([]byte(text))
		if decodeErr != nil {
			return Command{}, fmt.Errorf("%w: %v", ErrInvalidCommand, decodeErr)
		}
		return Command{Name: CmdDispatch, Action: action}, nil
	}
}

// SystemOutput emits {"error": msg} so consumers can tell it from a board.
func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(map[string]string{"error": msg})
}
