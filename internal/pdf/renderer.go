package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/Abraxas-365/counsel/counseling/report"
)

// Renderer turns an assembled report document into PDF bytes.
type Renderer struct{}

// NewRenderer creates a new report renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render lays out the document blocks top to bottom on A4 pages.
func (r *Renderer) Render(doc report.Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	for _, block := range doc.Blocks {
		switch block.Kind {
		case report.BlockTitle:
			pdf.SetFont("Helvetica", "B", 18)
			pdf.MultiCell(0, 10, block.Text, "", "C", false)
			pdf.Ln(4)
		case report.BlockSubject:
			pdf.SetFont("Helvetica", "B", 13)
			pdf.MultiCell(0, 8, block.Text, "", "C", false)
			pdf.Ln(4)
		case report.BlockHeading:
			pdf.SetFont("Helvetica", "B", 13)
			pdf.MultiCell(0, 8, block.Text, "", "L", false)
			pdf.Ln(1)
		case report.BlockParagraph:
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(0, 6, block.Text, "", "L", false)
			pdf.Ln(3)
		default:
			return nil, fmt.Errorf("unknown block kind: %s", block.Kind)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}

	return buf.Bytes(), nil
}
