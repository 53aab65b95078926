package db_models

import "github.com/google/uuid"

// Trip is one planning request and the raw AI response it produced. The
// structured document is always re-derived from RawResponse, never stored.
type Trip struct {
	BaseModel
	AccountID     uuid.UUID `gorm:"type:uuid;index"`
	Destination   string
	StartDate     string
	EndDate       string
	Customization string
	RawResponse   string `gorm:"type:text"`
}
