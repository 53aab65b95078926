// Package formatter turns unstructured AI-generated travel plans into a
// day-segmented document ready for rendering and export. Formatting is best
// effort and never fails hard: text that resists structuring degrades to a
// single plain section with every byte of content preserved.
package formatter

import "strings"

// Format derives a structured itinerary from a raw AI response. The payload
// may be a bare string or a JSON object wrapping the text under one of the
// conventional field names; either way it is reduced to plain text first,
// then segmented into days and labeled subsections where markers are found.
func Format(raw []byte, trip TripHeader) *Document {
	text := Normalize(raw)
	doc := &Document{Header: trip}

	days := splitDays(text)
	if len(days) == 0 {
		doc.Plain = text
		return doc
	}

	for _, day := range days {
		section := DaySection{Title: day.title}
		for _, tok := range splitSections(day.body) {
			if tok.heading == "" {
				if tok.body != "" {
					section.Paragraphs = append(section.Paragraphs, tok.body)
				}
				continue
			}

			sub := Subsection{Title: tok.heading, Icon: IconFor(tok.heading)}
			if strings.Contains(tok.body, "\n") {
				for _, line := range strings.Split(tok.body, "\n") {
					if line = strings.TrimSpace(line); line != "" {
						sub.Bullets = append(sub.Bullets, line)
					}
				}
			} else {
				sub.Text = tok.body
			}
			section.Subsections = append(section.Subsections, sub)
		}
		doc.Days = append(doc.Days, section)
	}

	return doc
}
