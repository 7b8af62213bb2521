// Package service contains the business logic for the TripCraft API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/psharma/tripcraft/backend/internal/domain"
	"github.com/psharma/tripcraft/backend/internal/repo"
)

// CatalogService exposes the read-only place catalog.
type CatalogService struct {
	places repo.PlaceRepo
}

// NewCatalogService constructs a CatalogService backed by the provided repo.
func NewCatalogService(places repo.PlaceRepo) *CatalogService {
	return &CatalogService{places: places}
}

// ListByCity returns the catalog working set for a destination city.
// Returns domain.ErrValidation when city is empty or whitespace.
// Always returns a non-nil slice so callers can safely range over it.
func (s *CatalogService) ListByCity(ctx context.Context, city string) ([]domain.Place, error) {
	if strings.TrimSpace(city) == "" {
		return nil, fmt.Errorf("%w: city is required", domain.ErrValidation)
	}

	places, err := s.places.ListByCity(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.ListByCity: %w", err)
	}
	if places == nil {
		return []domain.Place{}, nil
	}
	return places, nil
}
