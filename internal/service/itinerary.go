package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/psharma/tripcraft/backend/internal/domain"
	"github.com/psharma/tripcraft/backend/internal/planner"
	"github.com/psharma/tripcraft/backend/internal/repo"
)

// SaveRequest carries everything needed to persist an itinerary tree.
// Owner comes from the session gate, never from the request body.
type SaveRequest struct {
	Owner       string
	Destination string
	TripType    string
	StartDate   *time.Time
	EndDate     *time.Time
	Interests   []string
	Plans       []domain.DayPlan
}

// ItineraryService implements save, load, and publish for itineraries.
// It holds the place repo as well because saving re-resolves every scheduled
// place against the catalog: totals are computed from catalog data, never from
// client-supplied figures, and an unknown place ID fails validation up front
// instead of surfacing as a foreign-key error.
type ItineraryService struct {
	itineraries repo.ItineraryRepo
	places      repo.PlaceRepo
}

// NewItineraryService constructs an ItineraryService backed by the provided repos.
func NewItineraryService(itineraries repo.ItineraryRepo, places repo.PlaceRepo) *ItineraryService {
	return &ItineraryService{itineraries: itineraries, places: places}
}

// Save validates the request, resolves the scheduled places against the
// catalog, computes the derived itinerary fields (title, day count, total cost
// and distance), and persists the whole tree in one transaction.
// New itineraries are always private drafts.
func (s *ItineraryService) Save(ctx context.Context, req SaveRequest) (domain.Itinerary, error) {
	if err := validateSaveRequest(req); err != nil {
		return domain.Itinerary{}, err
	}

	plans, err := s.resolvePlans(ctx, req.Plans)
	if err != nil {
		return domain.Itinerary{}, err
	}

	interests := req.Interests
	if interests == nil {
		interests = []string{}
	}

	it := domain.Itinerary{
		UserName:           req.Owner,
		Destination:        req.Destination,
		Title:              fmt.Sprintf("%s - %d Day Adventure", req.Destination, len(plans)),
		NumDays:            len(plans),
		TotalEstimatedCost: planner.TotalCost(plans),
		TotalDistance:      planner.TotalDistance(plans),
		Interests:          interests,
		TripType:           req.TripType,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		IsPublic:           false,
		Status:             domain.StatusDraft,
	}

	saved, err := s.itineraries.SaveTree(ctx, it, plans)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Save: %w", err)
	}
	return saved, nil
}

// resolvePlans swaps each scheduled entry's place data for the catalog row
// with the same ID, keeping the scheduling fields (slot, order, notes) intact.
// Returns domain.ErrValidation when any ID has no catalog row.
func (s *ItineraryService) resolvePlans(ctx context.Context, plans []domain.DayPlan) ([]domain.DayPlan, error) {
	ids := make([]uuid.UUID, 0, 16)
	seen := map[uuid.UUID]struct{}{}
	for _, d := range plans {
		for _, p := range d.Places {
			if _, ok := seen[p.Place.ID]; ok {
				continue
			}
			seen[p.Place.ID] = struct{}{}
			ids = append(ids, p.Place.ID)
		}
	}

	catalog, err := s.places.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.Save: resolve places: %w", err)
	}
	byID := make(map[uuid.UUID]domain.Place, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	out := make([]domain.DayPlan, len(plans))
	for i, d := range plans {
		entries := make([]domain.PlaceInDay, len(d.Places))
		for j, p := range d.Places {
			cp, ok := byID[p.Place.ID]
			if !ok {
				return nil, fmt.Errorf("%w: unknown place id %s", domain.ErrValidation, p.Place.ID)
			}
			p.Place = cp
			entries[j] = p
		}
		d.Places = entries
		out[i] = d
	}
	return out, nil
}

// Get returns a single itinerary by ID.
// Returns domain.ErrNotFound if no itinerary with that ID exists.
func (s *ItineraryService) Get(ctx context.Context, id uuid.UUID) (domain.Itinerary, error) {
	it, err := s.itineraries.GetByID(ctx, id)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Get: %w", err)
	}
	return it, nil
}

// LoadDayPlans reconstructs the stored day-plan tree for an itinerary,
// preserving day numbers, per-day ordering, time slots, and custom notes.
// Returns domain.ErrNotFound when the itinerary itself does not exist.
// Always returns a non-nil slice.
func (s *ItineraryService) LoadDayPlans(ctx context.Context, id uuid.UUID) ([]domain.DayPlan, error) {
	if _, err := s.itineraries.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("service.ItineraryService.LoadDayPlans: %w", err)
	}

	plans, err := s.itineraries.LoadDayPlans(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.LoadDayPlans: %w", err)
	}
	if plans == nil {
		return []domain.DayPlan{}, nil
	}
	return plans, nil
}

// Publish makes an itinerary public and published, scoped to its owner.
// Returns domain.ErrNotFound when the itinerary does not exist or belongs to
// a different owner — the two cases are deliberately indistinguishable.
func (s *ItineraryService) Publish(ctx context.Context, id uuid.UUID, owner string) error {
	if strings.TrimSpace(owner) == "" {
		return fmt.Errorf("%w: owner is required", domain.ErrValidation)
	}
	if err := s.itineraries.Publish(ctx, id, owner); err != nil {
		return fmt.Errorf("service.ItineraryService.Publish: %w", err)
	}
	return nil
}

// validateSaveRequest checks every business rule and reports all violations
// at once, so a client fixing its request sees the full list in one round trip.
func validateSaveRequest(req SaveRequest) error {
	var errs error

	if strings.TrimSpace(req.Owner) == "" {
		errs = multierr.Append(errs, errors.New("owner is required"))
	}
	if strings.TrimSpace(req.Destination) == "" {
		errs = multierr.Append(errs, errors.New("destination is required"))
	}
	if len(req.Plans) == 0 {
		errs = multierr.Append(errs, errors.New("at least one day plan is required"))
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		errs = multierr.Append(errs, errors.New("end_date must not be before start_date"))
	}
	errs = multierr.Append(errs, validatePlans(req.Plans))

	if errs != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, errs)
	}
	return nil
}

// validatePlans enforces the structural invariants of a day-plan tree:
// day numbers contiguous from 1, order indices contiguous from 0, and known
// time slots throughout.
func validatePlans(plans []domain.DayPlan) error {
	var errs error
	for i, d := range plans {
		if d.DayNumber != i+1 {
			errs = multierr.Append(errs, fmt.Errorf("day numbers must be contiguous from 1; position %d holds day %d", i, d.DayNumber))
		}
		for j, p := range d.Places {
			if p.OrderIndex != j {
				errs = multierr.Append(errs, fmt.Errorf("day %d: order indices must be contiguous from 0; position %d holds index %d", d.DayNumber, j, p.OrderIndex))
			}
			if !domain.ValidTimeSlot(p.TimeSlot) {
				errs = multierr.Append(errs, fmt.Errorf("day %d: unknown time slot %q", d.DayNumber, p.TimeSlot))
			}
			if p.Place.ID == uuid.Nil {
				errs = multierr.Append(errs, fmt.Errorf("day %d: place at index %d has no id", d.DayNumber, j))
			}
		}
	}
	return errs
}
