package formatter

import (
	"fmt"
	"html"
	"strings"
)

// Structural marker classes shared with the export walker. These names are a
// contract: the PDF exporter only descends into elements it can classify by
// them, so renaming one silently breaks export.
const (
	classTripHeader    = "trip-header"
	classContent       = "itinerary-content"
	classDaySection    = "day-section"
	classDayHeader     = "day-header"
	classDayContent    = "day-content"
	classSectionTitle  = "section-title"
	classSectionBody   = "section-content"
	classActivityList  = "activity-list"
	classPlain         = "plain-itinerary"
	idTripDestination  = "tripDestination"
	idTripDates        = "tripDates"
	idTripPreferences  = "tripCustomization"
	defaultPreferences = "Standard trip"
)

// RenderHTML produces the display markup for a structured itinerary. The trip
// header embeds destination, date range and preferences verbatim; the body is
// either day sections with labeled subsections or the plain fallback with
// line breaks preserved.
func (d *Document) RenderHTML() string {
	var b strings.Builder

	preferences := d.Header.Customization
	if strings.TrimSpace(preferences) == "" {
		preferences = defaultPreferences
	}

	fmt.Fprintf(&b, `<div class="%s">`, classTripHeader)
	fmt.Fprintf(&b, `<h2><i class="fas fa-map-marked-alt"></i> %s Itinerary</h2>`,
		html.EscapeString(d.Header.Destination))
	fmt.Fprintf(&b, `<p class="trip-meta"><span id="%s">%s</span> <span id="%s">%s to %s</span> <span id="%s">%s</span></p>`,
		idTripDestination, html.EscapeString(d.Header.Destination),
		idTripDates, html.EscapeString(d.Header.StartDate), html.EscapeString(d.Header.EndDate),
		idTripPreferences, html.EscapeString(preferences))
	b.WriteString(`</div>`)

	fmt.Fprintf(&b, `<div class="%s">`, classContent)
	if d.IsPlain() {
		fmt.Fprintf(&b, `<div class="%s">%s</div>`, classPlain, withLineBreaks(d.Plain))
	} else {
		for _, day := range d.Days {
			renderDay(&b, day)
		}
	}
	b.WriteString(`</div>`)

	return b.String()
}

func renderDay(b *strings.Builder, day DaySection) {
	fmt.Fprintf(b, `<div class="%s">`, classDaySection)
	fmt.Fprintf(b, `<div class="%s"><i class="far fa-sun"></i> %s</div>`,
		classDayHeader, html.EscapeString(day.Title))
	fmt.Fprintf(b, `<div class="%s">`, classDayContent)

	for _, p := range day.Paragraphs {
		fmt.Fprintf(b, `<p>%s</p>`, html.EscapeString(p))
	}
	for _, sub := range day.Subsections {
		fmt.Fprintf(b, `<h4 class="%s"><i class="fas fa-%s"></i> %s</h4>`,
			classSectionTitle, sub.Icon, html.EscapeString(sub.Title))
		fmt.Fprintf(b, `<div class="%s">`, classSectionBody)
		if len(sub.Bullets) > 0 {
			fmt.Fprintf(b, `<ul class="%s">`, classActivityList)
			for _, item := range sub.Bullets {
				fmt.Fprintf(b, `<li>%s</li>`, html.EscapeString(item))
			}
			b.WriteString(`</ul>`)
		} else if sub.Text != "" {
			fmt.Fprintf(b, `<p>%s</p>`, html.EscapeString(sub.Text))
		}
		b.WriteString(`</div>`)
	}

	b.WriteString(`</div></div>`)
}

func withLineBreaks(text string) string {
	escaped := html.EscapeString(text)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return strings.ReplaceAll(escaped, "\n", "<br>")
}
