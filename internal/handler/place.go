package handler

import "net/http"

// ListPlaces handles GET /places?city=. The city parameter is required;
// matching is case-insensitive.
func (s *Server) ListPlaces(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")

	places, err := s.catalog.ListByCity(r.Context(), city)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, places)
}
