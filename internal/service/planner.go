package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/psharma/tripcraft/backend/internal/domain"
	"github.com/psharma/tripcraft/backend/internal/planner"
	"github.com/psharma/tripcraft/backend/internal/repo"
)

// PlannerService resolves a user's place selection against the catalog and
// runs the itinerary generator over it.
type PlannerService struct {
	places repo.PlaceRepo
}

// NewPlannerService constructs a PlannerService backed by the provided repo.
func NewPlannerService(places repo.PlaceRepo) *PlannerService {
	return &PlannerService{places: places}
}

// Generate produces day plans for the selected places.
//
// placeIDs must be non-empty and every ID must resolve to a catalog place;
// numDays must lie in [planner.MinDays, planner.MaxDays]. Violations return
// domain.ErrValidation.
//
// seed, when non-nil, makes generation deterministic; production callers leave
// it nil and get a time-seeded source.
func (s *PlannerService) Generate(ctx context.Context, placeIDs []uuid.UUID, numDays int, seed *uint64) ([]domain.DayPlan, error) {
	if len(placeIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one place must be selected", domain.ErrValidation)
	}
	if numDays < planner.MinDays || numDays > planner.MaxDays {
		return nil, fmt.Errorf("%w: num_days must be between %d and %d", domain.ErrValidation, planner.MinDays, planner.MaxDays)
	}

	places, err := s.places.GetByIDs(ctx, placeIDs)
	if err != nil {
		return nil, fmt.Errorf("service.PlannerService.Generate: %w", err)
	}
	if len(places) != len(uniqueIDs(placeIDs)) {
		return nil, fmt.Errorf("%w: selection contains unknown place ids", domain.ErrValidation)
	}

	var rng *rand.Rand
	if seed != nil {
		rng = rand.New(rand.NewPCG(*seed, *seed+1))
	}

	return planner.Generate(places, numDays, rng), nil
}

// uniqueIDs deduplicates the selection so a repeated ID cannot smuggle a place
// into two days.
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
