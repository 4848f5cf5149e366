package stats

// Overview is the dashboard counter block. Every value is recomputed
// from the live collections on each call; nothing incremental is kept.
type Overview struct {
	Trips     int64 `json:"trips"`
	Countries int64 `json:"countries"`
	Cities    int64 `json:"cities"`
	Places    int64 `json:"places"`
	Photos    int64 `json:"photos"`
}

// NameCount is one row of a ranked breakdown (countries or tags).
type NameCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
