package services

import (
	"fmt"
	"strings"

	"voyago/internal/models/request_models"
)

// BuildTripPrompt renders the generation prompt for a trip request. The
// shape of the reply this asks for (day headings, bold section labels) is
// what the formatter's tokenizer expects on the way back.
func BuildTripPrompt(req request_models.TripRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Plan a trip to %s from %s to %s.", req.Destination, req.StartDate, req.EndDate)
	if strings.TrimSpace(req.Customization) != "" {
		fmt.Fprintf(&b, " Custom preferences: %s.", req.Customization)
	}
	b.WriteString(` Provide detailed itinerary with:
    - Hotel recommendations
    - Places to visit each day
    - Food recommendations
    - Activities
    - Estimated costs
    - Travel tips`)
	return b.String()
}
