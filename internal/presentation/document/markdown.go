// Package document renders boards into shareable formats (Markdown, PDF).
package document

import (
	"fmt"
	"strings"

	"github.com/aretw0/taskboard/pkg/domain"
)

// GenerateMarkdown renders the board as a Markdown document, one section per list.
func GenerateMarkdown(b *domain.Board) string {
	var sb strings.Builder
	sb.WriteString("# Task Board\n")

	if len(b.Lists) == 0 {
		sb.WriteString("\n_No lists yet._\n")
		return sb.String()
	}

	drag := b.DraggedItem
	for _, list := range b.Lists {
		heading := list.Text
		if heading == "" {
			heading = "(untitled)"
		}
		if drag != nil && drag.Type == domain.DragList && drag.ID == list.ID {
			heading += " *(dragging)*"
		}
		fmt.Fprintf(&sb, "\n## %s\n\n", heading)

		if len(list.Tasks) == 0 {
			sb.WriteString("_No tasks_\n")
			continue
		}
		for _, task := range list.Tasks {
			line := task.Text
			if drag != nil && drag.Type == domain.DragTask && drag.ID == task.ID {
				line += " *(dragging)*"
			}
			fmt.Fprintf(&sb, "- %s `%s`\n", line, task.ID)
		}
	}
	return sb.String()
}
