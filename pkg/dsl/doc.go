/*
Package dsl provides a fluent Go builder for taskboard boards.

It is an alternative to YAML or JSON seed documents when a board is assembled in
code: tests, demos and embedders that want type-checked fixtures.

Example usage:

	b := dsl.New()

	b.Add("todo").
		Text("To Do").
		Task("c0", "Generate app")

	b.Add("done").
		Text("Done")

	b.Drag(domain.DragList, "todo")

	// The result is a ports.BoardLoader for taskboard.WithLoader.
	loader, err := b.Build()
*/
package dsl
