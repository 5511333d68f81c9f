package document

import (
	"fmt"
	"io"

	"github.com/aretw0/taskboard/pkg/domain"
	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders the board as an A4 PDF report.
func WritePDF(w io.Writer, b *domain.Board) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Task Board")
	pdf.Ln(14)

	if len(b.Lists) == 0 {
		pdf.SetFont("Arial", "I", 11)
		pdf.Cell(40, 8, "No lists yet.")
		pdf.Ln(8)
	}

	for i, list := range b.Lists {
		pdf.SetFont("Arial", "B", 13)
		pdf.SetFillColor(235, 236, 240)
		pdf.CellFormat(0, 9, tr(fmt.Sprintf("%d. %s", i+1, list.Text)), "", 1, "L", true, 0, "")
		pdf.Ln(1)

		pdf.SetFont("Arial", "", 11)
		if len(list.Tasks) == 0 {
			pdf.SetFont("Arial", "I", 10)
			pdf.MultiCell(0, 6, "No tasks", "0", "L", false)
		}
		for _, task := range list.Tasks {
			pdf.MultiCell(0, 6, tr("- "+task.Text), "0", "L", false)
		}
		pdf.Ln(4)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to build pdf: %w", err)
	}
	return pdf.Output(w)
}
