// Package export turns a rendered itinerary into a paginated PDF. It walks
// the display markup rather than the structured model so hand edits survive
// into the exported file, at the cost of silently skipping anything it cannot
// classify by the shared structural marker classes.
package export

import (
	"strings"

	"golang.org/x/net/html"
)

// documentOutline is what the walker recovers from the rendered markup: the
// currently displayed header fields (which may diverge from the stored trip
// if hand-edited) and, per day section, its header line and bullet items.
type documentOutline struct {
	Destination string
	Dates       string
	Preferences string
	Days        []dayOutline
}

type dayOutline struct {
	Header  string
	Bullets []string
}

// parseRendered walks the markup in document order. Only elements carrying
// the day-section / day-header / activity-list markers are descended into;
// plain paragraphs and anything else outside that convention are omitted.
func parseRendered(rendered string) (documentOutline, error) {
	root, err := html.Parse(strings.NewReader(rendered))
	if err != nil {
		return documentOutline{}, err
	}

	var out documentOutline
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case attrValue(n, "id") == "tripDestination":
				out.Destination = nodeText(n)
				return
			case attrValue(n, "id") == "tripDates":
				out.Dates = nodeText(n)
				return
			case attrValue(n, "id") == "tripCustomization":
				out.Preferences = nodeText(n)
				return
			case hasClass(n, "day-section"):
				out.Days = append(out.Days, parseDay(n))
				return
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)

	return out, nil
}

func parseDay(section *html.Node) dayOutline {
	var day dayOutline
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case hasClass(n, "day-header"):
				if day.Header == "" {
					day.Header = nodeText(n)
				}
				return
			case hasClass(n, "activity-list"):
				for li := n.FirstChild; li != nil; li = li.NextSibling {
					if li.Type == html.ElementNode && li.Data == "li" {
						if text := nodeText(li); text != "" {
							day.Bullets = append(day.Bullets, text)
						}
					}
				}
				return
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(section)
	return day
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, candidate := range strings.Fields(attrValue(n, "class")) {
		if candidate == class {
			return true
		}
	}
	return false
}

// nodeText concatenates the text content of a node, collapsing runs of
// whitespace the way a browser would render them.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
