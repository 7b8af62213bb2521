// Package handler implements the HTTP handlers for the TripCraft API.
// All handlers are methods on Server; routes are registered in Routes.
// Methods are split into resource-specific files (place.go, itinerary.go,
// etc.) but all share the same Server struct so they can access its
// dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/psharma/tripcraft/backend/internal/domain"
	"github.com/psharma/tripcraft/backend/internal/middleware"
	"github.com/psharma/tripcraft/backend/internal/service"
)

// CatalogServicer defines the catalog operations the handler depends on.
// Defining interfaces here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type CatalogServicer interface {
	ListByCity(ctx context.Context, city string) ([]domain.Place, error)
}

// PlannerServicer defines the generation operation the handler depends on.
type PlannerServicer interface {
	Generate(ctx context.Context, placeIDs []uuid.UUID, numDays int, seed *uint64) ([]domain.DayPlan, error)
}

// ItineraryServicer defines the itinerary operations the handler depends on.
type ItineraryServicer interface {
	Save(ctx context.Context, req service.SaveRequest) (domain.Itinerary, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Itinerary, error)
	LoadDayPlans(ctx context.Context, id uuid.UUID) ([]domain.DayPlan, error)
	Publish(ctx context.Context, id uuid.UUID, owner string) error
}

// FeedServicer defines the community-feed operation the handler depends on.
type FeedServicer interface {
	ListPublic(ctx context.Context, limit int) ([]domain.Itinerary, error)
}

// Server holds all handler dependencies. Wire it in main.go via NewServer
// and mount the result of Routes on the root router.
type Server struct {
	catalog     CatalogServicer
	planner     PlannerServicer
	itineraries ItineraryServicer
	feed        FeedServicer
	openapi     []byte
}

// NewServer constructs the Server with all its dependencies.
// openapi is the raw OpenAPI document served at /openapi.yaml; pass nil to
// disable that route.
func NewServer(catalog CatalogServicer, planner PlannerServicer, itineraries ItineraryServicer, feed FeedServicer, openapi []byte) *Server {
	return &Server{
		catalog:     catalog,
		planner:     planner,
		itineraries: itineraries,
		feed:        feed,
		openapi:     openapi,
	}
}

// Routes returns the chi router for the full API surface.
// Mutating routes sit behind the session gate: requests without an
// authenticated user are rejected before reaching a handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/places", s.ListPlaces)
	r.Get("/community", s.ListCommunity)
	r.Get("/itineraries/{id}", s.GetItinerary)
	r.Get("/itineraries/{id}/days", s.GetItineraryDays)

	if s.openapi != nil {
		r.Get("/openapi.yaml", s.GetOpenAPI)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Post("/plans", s.GeneratePlan)
		r.Post("/itineraries", s.CreateItinerary)
		r.Post("/itineraries/{id}/publish", s.PublishItinerary)
	})

	return r
}
