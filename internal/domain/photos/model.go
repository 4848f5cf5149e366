package photos

// Photo is one image attached to a trip. Data is opaque inline content
// (the capture layer sends data-URL strings); nothing here enforces a
// size or format.
type Photo struct {
	ID     int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	TripID int64  `gorm:"not null" json:"tripId"`
	Data   string `gorm:"type:text" json:"data"`
	Name   string `json:"name"`
	Type   string `json:"type"`
}

type PhotoInput struct {
	TripID int64
	Data   string
	Name   string
	Type   string
}
