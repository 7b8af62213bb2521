package service

import (
	"context"
	"fmt"

	"github.com/psharma/tripcraft/backend/internal/domain"
	"github.com/psharma/tripcraft/backend/internal/repo"
)

// FeedService is the read-only projection of published public itineraries.
type FeedService struct {
	itineraries repo.ItineraryRepo
}

// NewFeedService constructs a FeedService backed by the provided repo.
func NewFeedService(itineraries repo.ItineraryRepo) *FeedService {
	return &FeedService{itineraries: itineraries}
}

// ListPublic returns up to limit published, public itineraries, most recent
// first. The limit is normalized through domain.NewFeedLimit by the handler;
// a non-positive value here falls back to the default as a safety net.
// Always returns a non-nil slice so callers can safely range over it.
func (s *FeedService) ListPublic(ctx context.Context, limit int) ([]domain.Itinerary, error) {
	if limit < 1 {
		limit = domain.DefaultFeedLimit
	}

	its, err := s.itineraries.ListPublic(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("service.FeedService.ListPublic: %w", err)
	}
	if its == nil {
		return []domain.Itinerary{}, nil
	}
	return its, nil
}
