package export

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"
)

const (
	rowHeight    = 6.0
	bottomMargin = 15.0
)

// WritePDF writes t as a landscape A4 table. Columns share the page width evenly and the
// header row is repeated on every page.
func WritePDF(w io.Writer, t Table) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(false, bottomMargin)
	pdf.AddPage()

	// core fonts are cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, tr(t.Title), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	width := columnWidth(pdf, len(t.Headers))
	header := func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, h := range t.Headers {
			pdf.CellFormat(width, rowHeight, tr(fit(pdf, h, width)), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 8)
	}
	header()

	_, pageHeight := pdf.GetPageSize()
	for _, record := range t.Rows {
		if pdf.GetY()+rowHeight > pageHeight-bottomMargin {
			pdf.AddPage()
			header()
		}
		for i := range t.Headers {
			var text string
			if i < len(record) {
				text = record[i]
			}
			pdf.CellFormat(width, rowHeight, tr(fit(pdf, text, width)), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(t.Summary) > 0 {
		if pdf.GetY()+rowHeight*float64(len(t.Summary)+1) > pageHeight-bottomMargin {
			pdf.AddPage()
		}
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 10)
		for _, s := range t.Summary {
			pdf.CellFormat(0, rowHeight, tr(fmt.Sprintf("%s: %s", s.Label, s.Value)), "", 1, "L", false, 0, "")
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

func columnWidth(pdf *gofpdf.Fpdf, columns int) float64 {
	if columns == 0 {
		return 0
	}
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	return (pageWidth - left - right) / float64(columns)
}

// fit truncates text so it stays inside a cell of the given width
func fit(pdf *gofpdf.Fpdf, text string, width float64) string {
	limit := width - 2*pdf.GetCellMargin()
	if pdf.GetStringWidth(text) <= limit {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > limit {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
