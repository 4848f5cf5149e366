package trips

import (
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the wire and storage format for trip dates. Keeping them
// as ISO strings makes lexicographic order match chronological order,
// which the listing queries rely on.
const DateLayout = "2006-01-02"

// Trip is one logged travel event.
type Trip struct {
	ID         int64                       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title      string                      `gorm:"not null" json:"title"`
	Country    string                      `gorm:"not null" json:"country"`
	City       string                      `gorm:"not null" json:"city"`
	Place      string                      `json:"place"`
	StartDate  string                      `gorm:"size:10;not null" json:"startDate"`
	EndDate    string                      `gorm:"size:10" json:"endDate"`
	Notes      string                      `gorm:"type:text" json:"notes"`
	Tags       datatypes.JSONSlice[string] `json:"tags"`
	Favorite   bool                        `gorm:"not null;default:false" json:"favorite"`
	Lat        *float64                    `json:"lat,omitempty"`
	Lng        *float64                    `json:"lng,omitempty"`
	CoverPhoto string                      `gorm:"type:text" json:"coverPhoto,omitempty"`
	CreatedAt  time.Time                   `json:"createdAt"`
	UpdatedAt  time.Time                   `json:"updatedAt"`
}

// TripInput carries caller-supplied fields for create and update. The
// store owns id and the timestamps; both operations replace the record
// wholesale from this input.
type TripInput struct {
	Title      string
	Country    string
	City       string
	Place      string
	StartDate  string
	EndDate    string
	Notes      string
	Tags       []string
	Favorite   bool
	Lat        *float64
	Lng        *float64
	CoverPhoto string
}
