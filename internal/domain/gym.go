package domain

import "time"

// Gym represents a physical gym. Immutable after creation.
//
// Coordinates are stored as float64 degrees: GPS noise and the 100 m
// check-in radius dwarf ordinary floating-point error, so decimal types
// buy nothing here.
type Gym struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CreatedAt   time.Time `json:"created_at"`
}

// Coordinate returns the gym's location.
func (g *Gym) Coordinate() Coordinate {
	return Coordinate{Latitude: g.Latitude, Longitude: g.Longitude}
}
