package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/aretw0/taskboard/pkg/domain"
	"github.com/aretw0/taskboard/pkg/schema"
)

// HelpText lists the commands understood by TextHandler.
const HelpText = `Commands:
  add-list <text>              append a new list
  add-task <taskId> <text>     add a task to the list holding taskId
  move <from> <to>             move the list at index from to index to
  grab <listId>                start dragging a list
  grab-task <taskId>           start dragging a task
  hover <index>                move the dragged list over index
  drop                         end the drag
  show                         print the board
  {"type":...,"payload":...}   dispatch a raw action
  help, quit`

// ContentRenderer is a function that transforms the content before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

// BoardFormatter turns a board into displayable text.
type BoardFormatter func(*domain.Board) string

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Reader    *bufio.Reader
	Writer    io.Writer
	Formatter BoardFormatter
	Renderer  ContentRenderer

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerFormatter configures how boards are turned into text.
func WithTextHandlerFormatter(f BoardFormatter) TextHandlerOption {
	return func(h *TextHandler) {
		h.Formatter = f
	}
}

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader:    bufio.NewReader(r),
		Writer:    w,
		Formatter: FormatBoard,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

// pump reads lines in the background so Input can honour ctx cancellation.
func (h *TextHandler) pump() {
	for {
		text, err := h.Reader.ReadString('\n')
		if text != "" {
			h.inputChan <- inputResult{text: text}
		}
		if err != nil {
			if err != io.EOF {
				h.inputChan <- inputResult{err: err}
			}
			close(h.inputChan)
			return
		}
	}
}

func (h *TextHandler) Output(ctx context.Context, board *domain.Board) error {
	output := h.Formatter(board)
	if h.Renderer != nil {
		if rendered, err := h.Renderer(output); err == nil {
			output = rendered
		}
	}
	_, err := fmt.Fprintln(h.Writer, strings.TrimRight(output, "\n"))
	return err
}

func (h *TextHandler) Input(ctx context.Context) (Command, error) {
	h.initPump()

	for {
		select {
		case <-ctx.Done():
			return Command{}, ctx.Err()
		default:
			fmt.Fprint(h.Writer, "> ")
		}

		select {
		case <-ctx.Done():
			return Command{}, ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return Command{}, io.EOF
			}
			if res.err != nil {
				return Command{}, res.err
			}

			line := strings.TrimSpace(res.text)
			if line == "" {
				continue
			}
			clean, err := SanitizeInput(line)
			if err != nil {
				return Command{}, fmt.Errorf("%w: %v", ErrInvalidCommand, err)
			}
			return ParseCommand(clean)
		}
	}
}

func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	_, err := fmt.Fprintf(h.Writer, "[System] %s\n", msg)
	return err
}

// ParseCommand turns one REPL line into a Command.
func ParseCommand(line string) (Command, error) {
	if strings.HasPrefix(line, "{") {
		action, err := schema.DecodeAction([]byte(line))
		if err != nil {
			return Command{}, fmt.Errorf("%w: %v", ErrInvalidCommand, err)
		}
		return Command{Name: CmdDispatch, Action: action}, nil
	}

	word, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(word) {
	case "add-list":
		return Command{Name: CmdDispatch, Action: domain.AddList{Text: rest}}, nil

	case "add-task":
		taskID, text, _ := strings.Cut(rest, " ")
		if taskID == "" {
			return Command{}, fmt.Errorf("%w: usage: add-task <taskId> <text>", ErrInvalidCommand)
		}
		return Command{Name: CmdDispatch, Action: domain.AddTask{TaskID: taskID, Text: strings.TrimSpace(text)}}, nil

	case "move":
		args := strings.Fields(rest)
		if len(args) != 2 {
			return Command{}, fmt.Errorf("%w: usage: move <from> <to>", ErrInvalidCommand)
		}
		from, err1 := strconv.Atoi(args[0])
		to, err2 := strconv.Atoi(args[1])
		if err1 != nil || err2 != nil {
			return Command{}, fmt.Errorf("%w: move expects two integers", ErrInvalidCommand)
		}
		return Command{Name: CmdDispatch, Action: domain.MoveList{DragIndex: from, HoverIndex: to}}, nil

	case "grab", "grab-task":
		if rest == "" {
			return Command{}, fmt.Errorf("%w: usage: %s <id>", ErrInvalidCommand, word)
		}
		name := CmdGrabList
		if strings.EqualFold(word, "grab-task") {
			name = CmdGrabTask
		}
		return Command{Name: name, ID: rest}, nil

	case "hover":
		idx, err := strconv.Atoi(rest)
		if err != nil {
			return Command{}, fmt.Errorf("%w: hover expects an integer", ErrInvalidCommand)
		}
		return Command{Name: CmdHover, Index: idx}, nil

	case "drop":
		return Command{Name: CmdDrop}, nil
	case "show", "ls":
		return Command{Name: CmdShow}, nil
	case "help", "?":
		return Command{Name: CmdHelp}, nil
	case "quit", "exit":
		return Command{Name: CmdQuit}, nil
	}
	return Command{}, fmt.Errorf("%w: unknown command %q (try help)", ErrInvalidCommand, word)
}

// FormatBoard renders a board as plain text, one list per block.
func FormatBoard(b *domain.Board) string {
	var sb strings.Builder
	for i, l := range b.Lists {
		marker := ""
		if d := b.DraggedItem; d != nil && d.Type == domain.DragList && d.ID == l.ID {
			marker = " (dragging)"
		}
		fmt.Fprintf(&sb, "[%d] %s #%s%s\n", i, l.Text, l.ID, marker)
		for _, t := range l.Tasks {
			marker := ""
			if d := b.DraggedItem; d != nil && d.Type == domain.DragTask && d.ID == t.ID {
				marker = " (dragging)"
			}
			fmt.Fprintf(&sb, "    - %s #%s%s\n", t.Text, t.ID, marker)
		}
	}
	if len(b.Lists) == 0 {
		sb.WriteString("(empty board)\n")
	}
	return sb.String()
}
