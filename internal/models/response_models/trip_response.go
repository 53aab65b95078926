package response_models

import "voyago/internal/formatter"

// TripPlanResponse is returned when a plan is created or fetched: the
// structured document for programmatic use and the rendered markup the
// client displays and later edits.
type TripPlanResponse struct {
	TripID   string               `json:"trip_id"`
	Trip     formatter.TripHeader `json:"trip"`
	Document *formatter.Document  `json:"document"`
	Rendered string               `json:"rendered"`
}

// TripSummary is the list-view shape: metadata only, no document.
type TripSummary struct {
	TripID        string `json:"trip_id"`
	Destination   string `json:"destination"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Customization string `json:"customization,omitempty"`
	CreatedAt     int64  `json:"created_at"`
}

// GenerateResponse mirrors the original AI-proxy shape: generated text under
// the message wrapper field.
type GenerateResponse struct {
	Message string `json:"message"`
}
