// Package export renders tabular report data as downloadable xlsx or pdf documents.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Format is a supported export document type
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ParseFormat validates a requested format, case-insensitively
func ParseFormat(value string) (Format, bool) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatXLSX:
		return FormatXLSX, true
	case FormatPDF:
		return FormatPDF, true
	default:
		return "", false
	}
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Summary is one labeled figure printed below the table
type Summary struct {
	Label string
	Value string
}

// Table is a titled grid of text cells with its summary figures
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Summary []Summary
}

// Write renders t in the given format
func Write(w io.Writer, format Format, t Table) error {
	switch format {
	case FormatXLSX:
		return WriteXLSX(w, t)
	case FormatPDF:
		return WritePDF(w, t)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// Filename builds a download name such as "payment-report-20240305.xlsx"
func Filename(name string, format Format, now time.Time) string {
	return fmt.Sprintf("%s-report-%s.%s", name, now.Format("20060102"), format)
}
