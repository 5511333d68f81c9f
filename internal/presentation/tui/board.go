package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/taskboard"
	"github.com/aretw0/taskboard/pkg/domain"
	"github.com/aretw0/taskboard/pkg/ports"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type inputKind int

const (
	inputNone inputKind = iota
	inputList
	inputTask
)

var columnStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1).
	Width(26)

var (
	selectedStyle = columnStyle.BorderForeground(lipgloss.Color("#818cf8"))
	draggingStyle = columnStyle.BorderForeground(lipgloss.Color("#f472b6")).Faint(true)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#fb7185"))
)

const helpLine = "←/→ select · space grab/drop · esc cancel drag · a add list · t add task · q quit"

// boardChangedMsg carries a board published by the dispatcher.
type boardChangedMsg struct {
	board *domain.Board
}

// BoardModel is an interactive view over a Dispatcher.
// Lists are moved by grabbing one, stepping left or right, and dropping it,
// which replays the same drag sequence a pointer-driven host would.
type BoardModel struct {
	ctx        context.Context
	dispatcher ports.Dispatcher
	updates    chan *domain.Board
	stop       func()

	board    *domain.Board
	selected int
	input    inputKind
	buffer   []rune
	status   string
	err      error
}

// NewBoardModel creates the model and subscribes it to board changes.
// Call Close once the program has exited.
func NewBoardModel(ctx context.Context, d ports.Dispatcher) *BoardModel {
	m := &BoardModel{
		ctx:        ctx,
		dispatcher: d,
		updates:    make(chan *domain.Board, 1),
		board:      d.GetState(),
	}
	m.stop = d.Subscribe(func(_, newBoard *domain.Board) {
		// Keep only the latest board; the view re-reads state anyway.
		select {
		case m.updates <- newBoard:
		default:
			select {
			case <-m.updates:
			default:
			}
			select {
			case m.updates <- newBoard:
			default:
			}
		}
	})
	return m
}

// Close stops listening for board changes.
func (m *BoardModel) Close() {
	m.stop()
}

func (m *BoardModel) waitForBoard() tea.Cmd {
	return func() tea.Msg {
		select {
		case b := <-m.updates:
			return boardChangedMsg{board: b}
		case <-m.ctx.Done():
			return tea.Quit()
		}
	}
}

func (m *BoardModel) Init() tea.Cmd {
	return m.waitForBoard()
}

func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardChangedMsg:
		m.board = m.dispatcher.GetState()
		m.clampSelection()
		return m, m.waitForBoard()
	case tea.KeyMsg:
		if m.input != inputNone {
			return m.updateInput(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m *BoardModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	m.status = ""

	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyLeft:
		m.step(-1)
	case tea.KeyRight:
		m.step(1)
	case tea.KeySpace, tea.KeyEnter:
		m.toggleGrab()
	case tea.KeyEsc:
		m.apply(taskboard.EndDrag(m.ctx, m.dispatcher))
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit
		case "h":
			m.step(-1)
		case "l":
			m.step(1)
		case "a":
			m.input = inputList
			m.buffer = m.buffer[:0]
		case "t":
			if len(m.board.Lists) == 0 || len(m.board.Lists[m.selected].Tasks) == 0 {
				m.status = "tasks are added next to an existing task; this list has none"
				break
			}
			m.input = inputTask
			m.buffer = m.buffer[:0]
		}
	}
	return m, nil
}

func (m *BoardModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.input = inputNone
	case tea.KeyBackspace:
		if len(m.buffer) > 0 {
			m.buffer = m.buffer[:len(m.buffer)-1]
		}
	case tea.KeySpace:
		m.buffer = append(m.buffer, ' ')
	case tea.KeyRunes:
		m.buffer = append(m.buffer, msg.Runes...)
	case tea.KeyEnter:
		text := strings.TrimSpace(string(m.buffer))
		kind := m.input
		m.input = inputNone
		switch kind {
		case inputList:
			m.apply(m.dispatcher.Dispatch(m.ctx, domain.AddList{Text: text}))
		case inputTask:
			ref := m.board.Lists[m.selected].Tasks[0].ID
			m.apply(m.dispatcher.Dispatch(m.ctx, domain.AddTask{Text: text, TaskID: ref}))
		}
	}
	return m, nil
}

// step moves the selection, dragging the grabbed list along with it.
func (m *BoardModel) step(delta int) {
	target := m.selected + delta
	if target < 0 || target >= len(m.board.Lists) {
		return
	}
	if d := m.board.DraggedItem; d != nil && d.Type == domain.DragList {
		m.apply(taskboard.HoverList(m.ctx, m.dispatcher, target))
		if m.err != nil {
			return
		}
	}
	m.selected = target
}

func (m *BoardModel) toggleGrab() {
	if len(m.board.Lists) == 0 {
		return
	}
	if m.board.DraggedItem != nil {
		m.apply(taskboard.EndDrag(m.ctx, m.dispatcher))
		return
	}
	m.apply(taskboard.BeginListDrag(m.ctx, m.dispatcher, m.board.Lists[m.selected].ID))
}

// apply records err and refreshes the local snapshot.
func (m *BoardModel) apply(err error) {
	m.err = err
	m.board = m.dispatcher.GetState()
	m.clampSelection()
}

func (m *BoardModel) clampSelection() {
	if m.selected >= len(m.board.Lists) {
		m.selected = len(m.board.Lists) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *BoardModel) View() string {
	var b strings.Builder

	cols := make([]string, 0, len(m.board.Lists))
	for i, list := range m.board.Lists {
		style := columnStyle
		if i == m.selected {
			style = selectedStyle
		}
		if d := m.board.DraggedItem; d != nil && d.Type == domain.DragList && d.ID == list.ID {
			style = draggingStyle
		}

		var col strings.Builder
		col.WriteString(titleStyle.Render(list.Text))
		for _, task := range list.Tasks {
			fmt.Fprintf(&col, "\n• %s", task.Text)
		}
		if len(list.Tasks) == 0 {
			col.WriteString("\n" + hintStyle.Render("no tasks"))
		}
		cols = append(cols, style.Render(col.String()))
	}
	if len(cols) == 0 {
		b.WriteString(hintStyle.Render("The board is empty. Press a to add a list."))
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}
	b.WriteString("\n\n")

	switch m.input {
	case inputList:
		fmt.Fprintf(&b, "New list: %s█\n", string(m.buffer))
	case inputTask:
		fmt.Fprintf(&b, "New task in %q: %s█\n", m.board.Lists[m.selected].Text, string(m.buffer))
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	}
	if m.status != "" {
		b.WriteString(hintStyle.Render(m.status) + "\n")
	}
	b.WriteString(hintStyle.Render(helpLine))
	return b.String()
}

// Run starts the interactive board on the terminal until the user quits or ctx ends.
func Run(ctx context.Context, d ports.Dispatcher) error {
	model := NewBoardModel(ctx, d)
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
