package request_models

// TripRequest carries the trip form fields. Dates stay strings end to end,
// the formatter embeds them verbatim in the itinerary header.
type TripRequest struct {
	Destination   string `json:"destination" binding:"required"`
	StartDate     string `json:"start_date" binding:"required"`
	EndDate       string `json:"end_date" binding:"required"`
	Customization string `json:"customization"`
}

// PromptRequest is the raw AI-proxy payload.
type PromptRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// SaveContentRequest carries the edited rendering to persist verbatim.
type SaveContentRequest struct {
	Content string `json:"content" binding:"required"`
}
