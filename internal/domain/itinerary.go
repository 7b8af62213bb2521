package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItineraryStatus is the lifecycle state of a saved itinerary.
type ItineraryStatus string

const (
	StatusDraft     ItineraryStatus = "draft"
	StatusPublished ItineraryStatus = "published"
	StatusArchived  ItineraryStatus = "archived"
)

// Itinerary is the persisted aggregate root for one trip.
// It owns a list of DayPlan rows (stored separately); TotalEstimatedCost and
// TotalDistance are computed from the day-plan tree at save time and must equal
// the sums over all scheduled places at that moment.
//
// UserName is the free-text owner name supplied by the session collaborator —
// it is not a foreign key into an account system.
type Itinerary struct {
	ID                 uuid.UUID       `json:"id"`
	UserName           string          `json:"user_name"`
	Destination        string          `json:"destination"`
	Title              string          `json:"title"`
	NumDays            int             `json:"num_days"`
	TotalEstimatedCost float64         `json:"total_estimated_cost"`
	TotalDistance      float64         `json:"total_distance"`
	Interests          []string        `json:"interests"`
	TripType           string          `json:"trip_type"`
	StartDate          *time.Time      `json:"start_date,omitempty"`
	EndDate            *time.Time      `json:"end_date,omitempty"`
	IsPublic           bool            `json:"is_public"`
	Status             ItineraryStatus `json:"status"`
	ViewsCount         int             `json:"views_count"`
	LikesCount         int             `json:"likes_count"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
