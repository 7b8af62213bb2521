package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/psharma/tripcraft/backend/internal/middleware"
	"github.com/psharma/tripcraft/backend/internal/service"
)

// CreateItinerary handles POST /itineraries. The authenticated user becomes
// the owner; derived fields (title, totals, day count) are computed server
// side and the whole tree is persisted atomically.
func (s *Server) CreateItinerary(w http.ResponseWriter, r *http.Request) {
	var req CreateItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	save := service.SaveRequest{
		Owner:       middleware.UserName(r.Context()),
		Destination: req.Destination,
		TripType:    req.TripType,
		Interests:   req.Interests,
		Plans:       requestToPlans(req.Days),
	}
	if req.StartDate != nil {
		t := req.StartDate.Time
		save.StartDate = &t
	}
	if req.EndDate != nil {
		t := req.EndDate.Time
		save.EndDate = &t
	}

	saved, err := s.itineraries.Save(r.Context(), save)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, itineraryToResponse(saved))
}

// GetItinerary handles GET /itineraries/{id}.
func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "id must be a UUID")
		return
	}

	it, err := s.itineraries.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, itineraryToResponse(it))
}

// GetItineraryDays handles GET /itineraries/{id}/days, returning the stored
// day-plan tree with full place details in day and slot order.
func (s *Server) GetItineraryDays(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "id must be a UUID")
		return
	}

	plans, err := s.itineraries.LoadDayPlans(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, dayPlansToResponse(plans))
}

// PublishItinerary handles POST /itineraries/{id}/publish. Only the owner can
// publish; anyone else sees the same 404 as for a nonexistent itinerary.
func (s *Server) PublishItinerary(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "id must be a UUID")
		return
	}

	if err := s.itineraries.Publish(r.Context(), id, middleware.UserName(r.Context())); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
