package formatter

import (
	"regexp"
	"strings"
)

// dayMarkerPattern matches a literal "Day"/"day"/"DAY" followed by a number.
var dayMarkerPattern = regexp.MustCompile(`(?i)day \d+`)

// headingPattern matches a short phrase flanked by one or two asterisks on a
// single line, the emphasis convention AI responses use for section labels.
var headingPattern = regexp.MustCompile(`\*{1,2}[A-Za-z ][^*\n]*?\*{1,2}`)

type dayToken struct {
	title string
	body  string
}

type sectionToken struct {
	// heading is empty for bare text preceding the first heading.
	heading string
	body    string
}

// splitDays is pass one of the tokenizer: it segments text on day markers,
// pairing each marker with the body that runs up to the next one. Returns nil
// when no marker is present. Text before the first marker is not part of any
// day and is discarded here.
func splitDays(text string) []dayToken {
	locs := dayMarkerPattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	tokens := make([]dayToken, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		tokens = append(tokens, dayToken{
			title: text[loc[0]:loc[1]],
			body:  text[loc[1]:end],
		})
	}
	return tokens
}

// splitSections is pass two: it segments one day's body on emphasis-marked
// headings. Bare text before the first heading becomes a headingless token
// when non-empty. Bodies are trimmed; empty bodies are kept so the caller can
// still render the heading.
func splitSections(body string) []sectionToken {
	locs := headingPattern.FindAllStringIndex(body, -1)
	if len(locs) == 0 {
		return []sectionToken{{body: strings.TrimSpace(body)}}
	}

	var tokens []sectionToken
	if lead := strings.TrimSpace(body[:locs[0][0]]); lead != "" {
		tokens = append(tokens, sectionToken{body: lead})
	}

	for i, loc := range locs {
		end := len(body)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		tokens = append(tokens, sectionToken{
			heading: strings.TrimSpace(strings.Trim(body[loc[0]:loc[1]], "*")),
			body:    strings.TrimSpace(body[loc[1]:end]),
		})
	}
	return tokens
}
