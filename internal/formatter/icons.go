package formatter

import "strings"

// defaultIcon is used when a subsection label matches no keyword group.
const defaultIcon = "file"

type iconRule struct {
	icon     string
	keywords []string
}

// iconRules maps subsection labels to display icons, first match wins.
// Presentational metadata only, content is never altered by this table.
var iconRules = []iconRule{
	{"bed", []string{"hotel", "accommodation"}},
	{"map-marker-alt", []string{"place", "sightseeing"}},
	{"utensils", []string{"food", "dining", "restaurant"}},
	{"star", []string{"activit", "thing", "experience"}},
	{"sticky-note", []string{"tip", "note"}},
	{"bus", []string{"transport", "travel"}},
}

// IconFor resolves the icon for a subsection label.
func IconFor(title string) string {
	lower := strings.ToLower(title)
	for _, rule := range iconRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.icon
			}
		}
	}
	return defaultIcon
}
