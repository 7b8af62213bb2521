package handler

import (
	"net/http"
	"strconv"

	"github.com/psharma/tripcraft/backend/internal/domain"
)

// ListCommunity handles GET /community?limit=. Only public, published
// itineraries appear, newest first. An absent or unparseable limit falls back
// to the default; values above the cap are clamped.
func (s *Server) ListCommunity(w http.ResponseWriter, r *http.Request) {
	var limit *int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondBadRequest(w, "limit must be an integer")
			return
		}
		limit = &n
	}

	items, err := s.feed.ListPublic(r.Context(), domain.NewFeedLimit(limit))
	if err != nil {
		respondError(w, r, err)
		return
	}

	out := make([]ItineraryResponse, len(items))
	for i, it := range items {
		out[i] = itineraryToResponse(it)
	}
	respond(w, http.StatusOK, out)
}
