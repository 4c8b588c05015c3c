// Package report renders a leg-history sheet as a PDF: one row per leg,
// with times, status, and timeline, plus the inferred status line.
package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/skypies/util/date"

	"github.com/skypies/wimp"
)

var colWidths = []float64{28, 24, 12, 12, 16, 16, 16, 30, 18, 22}

var colHeaders = []string{
	"Subject", "Date", "From", "To", "STD", "ATD", "STA", "Status", "Stat.time", "Timeline",
}

func NewLegSheetPdf(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(120, 8, title)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 8)
	for i, h := range colHeaders {
		pdf.CellFormat(colWidths[i], 6, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 8)

	return pdf
}

func drawLeg(pdf *gofpdf.Fpdf, leg wimp.FlightLeg) {
	atd := "-"
	if !leg.ATD.IsZero() {
		atd = leg.ATD.Format("15:04")
	}
	statusTime := "-"
	if !leg.StatusTime.IsZero() {
		statusTime = leg.StatusTime.Format("15:04")
	}

	cells := []string{
		leg.Subject,
		leg.STD.Format("02 Jan 2006"),
		leg.Origin,
		leg.Destination,
		leg.STD.Format("15:04"),
		atd,
		leg.STA.Format("15:04"),
		leg.Status,
		statusTime,
		leg.Timeline.String(),
	}

	for i, cell := range cells {
		pdf.CellFormat(colWidths[i], 5, cell, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

// WriteLegSheet renders the aircraft's legs plus the rendered status line
// into a one-page PDF.
func WriteLegSheet(output io.Writer, subject string, legs []wimp.FlightLeg, statusLine string) error {
	pdf := NewLegSheetPdf(fmt.Sprintf("Leg history: %s", subject))

	for _, leg := range legs {
		drawLeg(pdf, leg)
	}

	pdf.Ln(4)
	if statusLine != "" {
		pdf.SetFont("Courier", "", 8)
		pdf.Cell(180, 5, statusLine)
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "I", 7)
	pdf.Cell(180, 5, fmt.Sprintf("generated %s", date.NowInPdt().Format("2006.01.02 15:04:05 MST")))

	return pdf.Output(output)
}
