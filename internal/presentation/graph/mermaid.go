package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/taskboard/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of the board.
// Each list becomes a subgraph holding its tasks, and consecutive lists are
// chained left to right so the diagram keeps the board order.
// The dragged item, if any, is highlighted.
func GenerateMermaid(b *domain.Board) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, list := range b.Lists {
		fmt.Fprintf(&sb, "    subgraph %s[\"%s\"]\n", listNodeID(list.ID), sanitizeLabel(list.Text))
		if len(list.Tasks) == 0 {
			// Mermaid drops empty subgraphs, so keep a placeholder.
			fmt.Fprintf(&sb, "        %s_empty[\" \"]\n", listNodeID(list.ID))
		}
		for _, task := range list.Tasks {
			fmt.Fprintf(&sb, "        %s[\"%s\"]\n", taskNodeID(task.ID), sanitizeLabel(task.Text))
		}
		sb.WriteString("    end\n")
	}

	for i := 1; i < len(b.Lists); i++ {
		fmt.Fprintf(&sb, "    %s --> %s\n", listNodeID(b.Lists[i-1].ID), listNodeID(b.Lists[i].ID))
	}

	if d := b.DraggedItem; d != nil {
		sb.WriteString("\n    %% Drag Overlay\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef dragging fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		id := listNodeID(d.ID)
		if d.Type == domain.DragTask {
			id = taskNodeID(d.ID)
		}
		fmt.Fprintf(&sb, "    class %s dragging;\n", id)
	}

	return sb.String()
}

func listNodeID(id string) string { return "list_" + sanitizeMermaidID(id) }
func taskNodeID(id string) string { return "task_" + sanitizeMermaidID(id) }

// sanitizeMermaidID keeps letters, digits and underscores.
func sanitizeMermaidID(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, id)
}

func sanitizeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
