package formatter

// TripHeader carries the trip metadata embedded verbatim in the header block
// of a formatted itinerary.
type TripHeader struct {
	Destination   string `json:"destination"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Customization string `json:"customization,omitempty"`
}

// Subsection is one labeled block inside a day. Content is either a single
// paragraph (Text) or a list of bullets, never both.
type Subsection struct {
	Title   string   `json:"title"`
	Icon    string   `json:"icon"`
	Text    string   `json:"text,omitempty"`
	Bullets []string `json:"bullets,omitempty"`
}

// DaySection is one "Day N" segment of the itinerary. Paragraphs holds bare
// text that appeared before the first subsection heading.
type DaySection struct {
	Title       string       `json:"title"`
	Paragraphs  []string     `json:"paragraphs,omitempty"`
	Subsections []Subsection `json:"subsections,omitempty"`
}

// Document is the structured itinerary derived from a raw AI response.
// When no day markers were detected, Days is empty and Plain holds the
// untouched text so no content is ever lost.
type Document struct {
	Header TripHeader   `json:"header"`
	Days   []DaySection `json:"days,omitempty"`
	Plain  string       `json:"plain,omitempty"`
}

// IsPlain reports whether the document fell back to the unsegmented
// representation.
func (d *Document) IsPlain() bool {
	return len(d.Days) == 0
}
