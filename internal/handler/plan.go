package handler

import (
	"encoding/json"
	"net/http"
)

// GeneratePlan handles POST /plans. It produces a fresh multi-day plan from
// the selected catalog places without persisting anything; the client reviews
// and edits the result before saving it as an itinerary.
func (s *Server) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	plans, err := s.planner.Generate(r.Context(), req.PlaceIDs, req.NumDays, req.Seed)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, dayPlansToResponse(plans))
}
