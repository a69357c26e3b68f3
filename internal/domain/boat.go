package domain

import "time"

// Boat represents a rentable boat
type Boat struct {
	ID          int64
	Name        string
	Description string
	Active      bool
	Photos      []BoatPhoto

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BoatPhoto is a presentation photo of a boat
type BoatPhoto struct {
	ID          int64
	BoatID      int64
	URL         string
	Description string
}
