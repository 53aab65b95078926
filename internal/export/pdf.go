package export

import (
	"bytes"

	"github.com/phpdave11/gofpdf"

	"voyago/internal/formatter"
)

// Vertical layout of the exported page, in millimeters. A new page starts
// when the cursor would pass dayBreakAt before a day header or lineBreakAt
// before a bullet line.
const (
	topMargin   = 20.0
	dayBreakAt  = 250.0
	lineBreakAt = 280.0
)

// BuildPDF renders the exported itinerary from the displayed markup. Header
// fields are read from the rendered document first and fall back to the
// stored trip only when the markup carries none, so a hand-edited header is
// exported as displayed.
func BuildPDF(rendered string, trip formatter.TripHeader) ([]byte, error) {
	outline, err := parseRendered(rendered)
	if err != nil {
		return nil, err
	}

	if outline.Destination == "" {
		outline.Destination = trip.Destination
	}
	if outline.Dates == "" {
		outline.Dates = trip.StartDate + " to " + trip.EndDate
	}
	if outline.Preferences == "" {
		outline.Preferences = trip.Customization
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	writeOutline(pdf, outline)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeOutline(pdf *gofpdf.Fpdf, outline documentOutline) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	y := topMargin

	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(74, 111, 165)
	pdf.SetXY(0, y)
	pdf.CellFormat(210, 10, "Your Trip Itinerary", "", 0, "C", false, 0, "")
	y += 15

	pdf.SetFont("Arial", "", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(20, y, tr("Destination: "+outline.Destination))
	y += 10
	pdf.Text(20, y, tr("Dates: "+outline.Dates))
	y += 10
	pdf.Text(20, y, tr("Preferences: "+outline.Preferences))
	y += 20

	for _, day := range outline.Days {
		if y > dayBreakAt {
			pdf.AddPage()
			y = topMargin
		}
		pdf.SetFont("Arial", "B", 14)
		pdf.SetTextColor(74, 111, 165)
		pdf.Text(20, y, tr(day.Header))
		y += 10

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(0, 0, 0)
		for _, bullet := range day.Bullets {
			if y > lineBreakAt {
				pdf.AddPage()
				y = topMargin
			}
			pdf.Text(25, y, tr("- "+bullet))
			y += 7
		}
		y += 5
	}
}
