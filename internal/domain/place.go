// Package domain contains the core data types for the TripCraft API.
// This package has zero external dependencies and is imported by every other
// internal package (planner, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Place is a catalog entry for a point of interest.
// Places are read-only reference data: the planning flow filters and schedules
// them but never mutates them. Identity is a DB-generated surrogate key, not
// the display attributes, so two cities may safely share a place name.
type Place struct {
	ID                 uuid.UUID `json:"id"`
	City               string    `json:"city"`
	Name               string    `json:"place_name"`
	Category           string    `json:"category"`
	Description        string    `json:"description,omitempty"`
	DistanceFromCenter float64   `json:"distance_from_center"` // kilometers from the city reference point
	RecommendedTime    string    `json:"recommended_time,omitempty"`
	EntryFee           float64   `json:"entry_fee"`
	Rating             float64   `json:"rating"`
	Latitude           *float64  `json:"latitude,omitempty"`
	Longitude          *float64  `json:"longitude,omitempty"`
	ImageURL           string    `json:"image_url,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
