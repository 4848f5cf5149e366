package backup

import (
	"triplog/internal/domain/photos"
	"triplog/internal/domain/trips"
)

// FormatVersion is stamped into every exported document and bumped
// whenever the document shape changes incompatibly.
const FormatVersion = 1

// Document is the portable backup: the full contents of both
// collections plus the version that produced them. It is both the
// export output and the import input.
type Document struct {
	Version    int            `json:"version"`
	ExportDate string         `json:"exportDate"`
	Trips      []trips.Trip   `json:"trips"`
	Photos     []photos.Photo `json:"photos"`
}

// Result summarizes a completed import.
type Result struct {
	ImportID string `json:"importId"`
	Trips    int    `json:"trips"`
	Photos   int    `json:"photos"`
}
