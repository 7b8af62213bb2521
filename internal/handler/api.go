package handler

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/psharma/tripcraft/backend/internal/domain"
)

// Wire types for request and response bodies. Dates cross the wire as
// date-only strings ("2006-01-02") via openapi_types.Date; timestamps stay
// RFC 3339.

// GenerateRequest is the body of POST /plans.
type GenerateRequest struct {
	PlaceIDs []openapi_types.UUID `json:"place_ids"`
	NumDays  int                  `json:"num_days"`
	// Seed makes generation reproducible; omit for a fresh random plan.
	Seed *uint64 `json:"seed,omitempty"`
}

// PlaceInDayRequest schedules one catalog place within a day.
type PlaceInDayRequest struct {
	PlaceID     openapi_types.UUID `json:"place_id"`
	TimeSlot    string             `json:"time_slot"`
	OrderIndex  int                `json:"order_index"`
	CustomNotes string             `json:"custom_notes,omitempty"`
}

// DayPlanRequest is one day of a CreateItineraryRequest.
type DayPlanRequest struct {
	DayNumber int                 `json:"day_number"`
	Date      *openapi_types.Date `json:"date,omitempty"`
	Notes     string              `json:"notes,omitempty"`
	Places    []PlaceInDayRequest `json:"places"`
}

// CreateItineraryRequest is the body of POST /itineraries.
// The owner is taken from the session gate, never from the body.
type CreateItineraryRequest struct {
	Destination string              `json:"destination"`
	TripType    string              `json:"trip_type"`
	StartDate   *openapi_types.Date `json:"start_date,omitempty"`
	EndDate     *openapi_types.Date `json:"end_date,omitempty"`
	Interests   []string            `json:"interests"`
	Days        []DayPlanRequest    `json:"days"`
}

// ItineraryResponse is the wire shape of a persisted itinerary.
type ItineraryResponse struct {
	ID                 openapi_types.UUID     `json:"id"`
	UserName           string                 `json:"user_name"`
	Destination        string                 `json:"destination"`
	Title              string                 `json:"title"`
	NumDays            int                    `json:"num_days"`
	TotalEstimatedCost float64                `json:"total_estimated_cost"`
	TotalDistance      float64                `json:"total_distance"`
	Interests          []string               `json:"interests"`
	TripType           string                 `json:"trip_type"`
	StartDate          *openapi_types.Date    `json:"start_date,omitempty"`
	EndDate            *openapi_types.Date    `json:"end_date,omitempty"`
	IsPublic           bool                   `json:"is_public"`
	Status             domain.ItineraryStatus `json:"status"`
	ViewsCount         int                    `json:"views_count"`
	LikesCount         int                    `json:"likes_count"`
	CreatedAt          string                 `json:"created_at"`
	UpdatedAt          string                 `json:"updated_at"`
}

// DayPlanResponse is the wire shape of one day of an itinerary.
// Scheduled places embed the full catalog entry plus slot/order/notes.
type DayPlanResponse struct {
	DayNumber int                 `json:"day_number"`
	Date      *openapi_types.Date `json:"date,omitempty"`
	Notes     string              `json:"notes,omitempty"`
	Places    []domain.PlaceInDay `json:"places"`
}

// --- mapping helpers --------------------------------------------------------

func itineraryToResponse(it domain.Itinerary) ItineraryResponse {
	resp := ItineraryResponse{
		ID:                 it.ID,
		UserName:           it.UserName,
		Destination:        it.Destination,
		Title:              it.Title,
		NumDays:            it.NumDays,
		TotalEstimatedCost: it.TotalEstimatedCost,
		TotalDistance:      it.TotalDistance,
		Interests:          it.Interests,
		TripType:           it.TripType,
		IsPublic:           it.IsPublic,
		Status:             it.Status,
		ViewsCount:         it.ViewsCount,
		LikesCount:         it.LikesCount,
		CreatedAt:          it.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          it.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if it.Interests == nil {
		resp.Interests = []string{}
	}
	if it.StartDate != nil {
		d := openapi_types.Date{Time: *it.StartDate}
		resp.StartDate = &d
	}
	if it.EndDate != nil {
		d := openapi_types.Date{Time: *it.EndDate}
		resp.EndDate = &d
	}
	return resp
}

func dayPlanToResponse(d domain.DayPlan) DayPlanResponse {
	resp := DayPlanResponse{
		DayNumber: d.DayNumber,
		Notes:     d.Notes,
		Places:    d.Places,
	}
	if resp.Places == nil {
		resp.Places = []domain.PlaceInDay{}
	}
	if d.Date != nil {
		dt := openapi_types.Date{Time: *d.Date}
		resp.Date = &dt
	}
	return resp
}

func dayPlansToResponse(plans []domain.DayPlan) []DayPlanResponse {
	out := make([]DayPlanResponse, len(plans))
	for i, d := range plans {
		out[i] = dayPlanToResponse(d)
	}
	return out
}

// requestToPlans converts the day-plan section of a create request into
// domain day plans carrying only place IDs; the service resolves the rest of
// the place data from the catalog.
func requestToPlans(days []DayPlanRequest) []domain.DayPlan {
	plans := make([]domain.DayPlan, len(days))
	for i, d := range days {
		plan := domain.DayPlan{
			DayNumber: d.DayNumber,
			Notes:     d.Notes,
			Places:    make([]domain.PlaceInDay, len(d.Places)),
		}
		if d.Date != nil {
			dt := d.Date.Time
			plan.Date = &dt
		}
		for j, p := range d.Places {
			plan.Places[j] = domain.PlaceInDay{
				Place:       domain.Place{ID: p.PlaceID},
				TimeSlot:    domain.TimeSlot(p.TimeSlot),
				OrderIndex:  p.OrderIndex,
				CustomNotes: p.CustomNotes,
			}
		}
		plans[i] = plan
	}
	return plans
}
