package dsl

import "github.com/aretw0/taskboard/pkg/domain"

// ListBuilder provides a fluent API for configuring a list.
type ListBuilder struct {
	list    domain.List
	builder *Builder
}

// Text sets the list title.
func (l *ListBuilder) Text(text string) *ListBuilder {
	l.list.Text = text
	return l
}

// Task appends a task to the list.
func (l *ListBuilder) Task(id, text string) *ListBuilder {
	l.list.Tasks = append(l.list.Tasks, domain.Task{ID: id, Text: text})
	return l
}

// Add starts the next list, so whole boards read as one chain.
func (l *ListBuilder) Add(id string) *ListBuilder {
	return l.builder.Add(id)
}

// Build returns a copy of the underlying domain.List.
func (l *ListBuilder) Build() domain.List {
	out := l.list
	out.Tasks = append([]domain.Task{}, l.list.Tasks...)
	return out
}
