package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/taskboard/internal/presentation/document"
	"github.com/aretw0/taskboard/internal/presentation/graph"
	"github.com/aretw0/taskboard/pkg/domain"
	"github.com/aretw0/taskboard/pkg/runner"
)

// Export formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatPDF      = "pdf"
	FormatMermaid  = "mermaid"
)

// ExportFormats lists the accepted values for Export, in help order.
var ExportFormats = []string{FormatText, FormatMarkdown, FormatJSON, FormatPDF, FormatMermaid}

// Export writes b to w in the named format. "md" is accepted for markdown.
func Export(w io.Writer, b *domain.Board, format string) error {
	switch strings.ToLower(format) {
	case FormatText, "":
		_, err := io.WriteString(w, runner.FormatBoard(b))
		return err
	case FormatMarkdown, "md":
		_, err := io.WriteString(w, document.GenerateMarkdown(b))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(b)
	case FormatPDF:
		return document.WritePDF(w, b)
	case FormatMermaid:
		_, err := io.WriteString(w, graph.GenerateMermaid(b))
		return err
	default:
		return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(ExportFormats, ", "))
	}
}
