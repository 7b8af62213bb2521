package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psharma/tripcraft/backend/internal/domain"
	"github.com/psharma/tripcraft/backend/internal/repo"
	"github.com/psharma/tripcraft/backend/internal/service"
)

// mockItineraryRepo is a hand-written test double for repo.ItineraryRepo.
// Each method is a function field — set only the ones your test needs.
type mockItineraryRepo struct {
	saveTree     func(ctx context.Context, it domain.Itinerary, plans []domain.DayPlan) (domain.Itinerary, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Itinerary, error)
	loadDayPlans func(ctx context.Context, itineraryID uuid.UUID) ([]domain.DayPlan, error)
	listPublic   func(ctx context.Context, limit int) ([]domain.Itinerary, error)
	publish      func(ctx context.Context, id uuid.UUID, owner string) error
}

func (m *mockItineraryRepo) SaveTree(ctx context.Context, it domain.Itinerary, plans []domain.DayPlan) (domain.Itinerary, error) {
	return m.saveTree(ctx, it, plans)
}
func (m *mockItineraryRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Itinerary, error) {
	return m.getByID(ctx, id)
}
func (m *mockItineraryRepo) LoadDayPlans(ctx context.Context, itineraryID uuid.UUID) ([]domain.DayPlan, error) {
	return m.loadDayPlans(ctx, itineraryID)
}
func (m *mockItineraryRepo) ListPublic(ctx context.Context, limit int) ([]domain.Itinerary, error) {
	return m.listPublic(ctx, limit)
}
func (m *mockItineraryRepo) Publish(ctx context.Context, id uuid.UUID, owner string) error {
	return m.publish(ctx, id, owner)
}

// compile-time check: mockItineraryRepo must satisfy repo.ItineraryRepo.
var _ repo.ItineraryRepo = (*mockItineraryRepo)(nil)

// ---- helpers ---------------------------------------------------------------

// echoSaveRepo echoes the itinerary it receives, with a fresh ID — useful for
// Save tests that only care about validation and derived fields.
func echoSaveRepo() *mockItineraryRepo {
	return &mockItineraryRepo{
		saveTree: func(_ context.Context, it domain.Itinerary, _ []domain.DayPlan) (domain.Itinerary, error) {
			it.ID = uuid.New()
			return it, nil
		},
	}
}

// placeRepoFor resolves exactly the places scheduled in the given request,
// standing in for the catalog during Save tests.
func placeRepoFor(req service.SaveRequest) *mockPlaceRepo {
	var all []domain.Place
	for _, d := range req.Plans {
		for _, p := range d.Places {
			all = append(all, p.Place)
		}
	}
	return &mockPlaceRepo{
		getByIDs: func(_ context.Context, ids []uuid.UUID) ([]domain.Place, error) {
			want := map[uuid.UUID]struct{}{}
			for _, id := range ids {
				want[id] = struct{}{}
			}
			out := []domain.Place{}
			for _, p := range all {
				if _, ok := want[p.ID]; ok {
					out = append(out, p)
				}
			}
			return out, nil
		},
	}
}

// newSaveService wires an ItineraryService whose catalog resolves the request.
func newSaveService(req service.SaveRequest) *service.ItineraryService {
	return service.NewItineraryService(echoSaveRepo(), placeRepoFor(req))
}

func scheduledPlace(name string, order int, fee, distance float64) domain.PlaceInDay {
	return domain.PlaceInDay{
		Place: domain.Place{
			ID:                 uuid.New(),
			City:               "Manali",
			Name:               name,
			EntryFee:           fee,
			DistanceFromCenter: distance,
		},
		TimeSlot:   domain.SlotForIndex(order),
		OrderIndex: order,
	}
}

func validSaveRequest() service.SaveRequest {
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)
	return service.SaveRequest{
		Owner:       "asha",
		Destination: "Manali",
		TripType:    "adventure",
		StartDate:   &start,
		EndDate:     &end,
		Interests:   []string{"mountains"},
		Plans: []domain.DayPlan{
			{DayNumber: 1, Places: []domain.PlaceInDay{
				scheduledPlace("Hadimba Temple", 0, 0, 2),
				scheduledPlace("Mall Road", 1, 30, 1),
			}},
			{DayNumber: 2, Places: []domain.PlaceInDay{
				scheduledPlace("Solang Valley", 0, 50, 14),
				scheduledPlace("Rohtang Pass", 1, 0, 51),
			}},
		},
	}
}

// ---- Save ------------------------------------------------------------------

func TestItineraryService_Save_DerivedFields(t *testing.T) {
	req := validSaveRequest()
	svc := newSaveService(req)

	got, err := svc.Save(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Manali - 2 Day Adventure", got.Title)
	assert.Equal(t, 2, got.NumDays)
	assert.InDelta(t, 80, got.TotalEstimatedCost, 1e-9)
	assert.InDelta(t, 68, got.TotalDistance, 1e-9)
	assert.Equal(t, domain.StatusDraft, got.Status)
	assert.False(t, got.IsPublic, "new itineraries are private drafts")
}

func TestItineraryService_Save_NilInterestsBecomeEmpty(t *testing.T) {
	req := validSaveRequest()
	svc := newSaveService(req)
	req.Interests = nil

	got, err := svc.Save(context.Background(), req)

	require.NoError(t, err)
	assert.NotNil(t, got.Interests)
	assert.Empty(t, got.Interests)
}

func TestItineraryService_Save_MissingOwner(t *testing.T) {
	req := validSaveRequest()
	svc := newSaveService(req)
	req.Owner = "  "

	_, err := svc.Save(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItineraryService_Save_MissingDestination(t *testing.T) {
	req := validSaveRequest()
	svc := newSaveService(req)
	req.Destination = ""

	_, err := svc.Save(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItineraryService_Save_NoPlans(t *testing.T) {
	req := validSaveRequest()
	svc := newSaveService(req)
	req.Plans = nil

	_, err := svc.Save(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItineraryService_Save_EndBeforeStart(t *testing.T) {
	req := validSaveRequest()
	svc := newSaveService(req)
	bad := req.StartDate.AddDate(0, 0, -1)
	req.EndDate = &bad

	_, err := svc.Save(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItineraryService_Save_NonContiguousDayNumbers(t *testing.T) {
	req := validSaveRequest()
	svc := newSaveService(req)
	req.Plans[1].DayNumber = 5

	_, err := svc.Save(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItineraryService_Save_NonContiguousOrderIndices(t *testing.T) {
	req := validSaveRequest()
	svc := newSaveService(req)
	req.Plans[0].Places[1].OrderIndex = 7

	_, err := svc.Save(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItineraryService_Save_UnknownTimeSlot(t *testing.T) {
	req := validSaveRequest()
	svc := newSaveService(req)
	req.Plans[0].Places[0].TimeSlot = "brunch"

	_, err := svc.Save(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItineraryService_Save_ReportsAllViolationsAtOnce(t *testing.T) {
	req := validSaveRequest()
	svc := newSaveService(req)
	req.Destination = ""
	req.Plans[0].Places[0].TimeSlot = "brunch"

	_, err := svc.Save(context.Background(), req)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "destination is required")
	assert.Contains(t, err.Error(), "brunch")
}

func TestItineraryService_Save_UnknownPlaceID(t *testing.T) {
	req := validSaveRequest()
	// Catalog that resolves nothing: every scheduled place is unknown.
	empty := &mockPlaceRepo{
		getByIDs: func(_ context.Context, _ []uuid.UUID) ([]domain.Place, error) {
			return []domain.Place{}, nil
		},
	}
	svc := service.NewItineraryService(echoSaveRepo(), empty)

	_, err := svc.Save(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItineraryService_Save_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	r := &mockItineraryRepo{
		saveTree: func(_ context.Context, _ domain.Itinerary, _ []domain.DayPlan) (domain.Itinerary, error) {
			return domain.Itinerary{}, repoErr
		},
	}
	req := validSaveRequest()
	svc := service.NewItineraryService(r, placeRepoFor(req))

	_, err := svc.Save(context.Background(), req)

	// The service should propagate repo errors unchanged.
	assert.ErrorIs(t, err, repoErr)
}

// ---- LoadDayPlans ----------------------------------------------------------

func TestItineraryService_LoadDayPlans(t *testing.T) {
	plans := validSaveRequest().Plans
	r := &mockItineraryRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Itinerary, error) {
			return domain.Itinerary{}, nil
		},
		loadDayPlans: func(_ context.Context, _ uuid.UUID) ([]domain.DayPlan, error) {
			return plans, nil
		},
	}
	svc := service.NewItineraryService(r, &mockPlaceRepo{})

	got, err := svc.LoadDayPlans(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, plans, got)
}

func TestItineraryService_LoadDayPlans_NotFound(t *testing.T) {
	r := &mockItineraryRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Itinerary, error) {
			return domain.Itinerary{}, domain.ErrNotFound
		},
	}
	svc := service.NewItineraryService(r, &mockPlaceRepo{})

	_, err := svc.LoadDayPlans(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItineraryService_LoadDayPlans_NilBecomesEmpty(t *testing.T) {
	r := &mockItineraryRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Itinerary, error) {
			return domain.Itinerary{}, nil
		},
		loadDayPlans: func(_ context.Context, _ uuid.UUID) ([]domain.DayPlan, error) {
			return nil, nil
		},
	}
	svc := service.NewItineraryService(r, &mockPlaceRepo{})

	got, err := svc.LoadDayPlans(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ---- Publish ---------------------------------------------------------------

func TestItineraryService_Publish(t *testing.T) {
	var gotOwner string
	r := &mockItineraryRepo{
		publish: func(_ context.Context, _ uuid.UUID, owner string) error {
			gotOwner = owner
			return nil
		},
	}
	svc := service.NewItineraryService(r, &mockPlaceRepo{})

	err := svc.Publish(context.Background(), uuid.New(), "asha")

	require.NoError(t, err)
	assert.Equal(t, "asha", gotOwner)
}

func TestItineraryService_Publish_MissingOwner(t *testing.T) {
	svc := service.NewItineraryService(&mockItineraryRepo{}, &mockPlaceRepo{})

	err := svc.Publish(context.Background(), uuid.New(), "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItineraryService_Publish_NotFound(t *testing.T) {
	r := &mockItineraryRepo{
		publish: func(_ context.Context, _ uuid.UUID, _ string) error {
			return domain.ErrNotFound
		},
	}
	svc := service.NewItineraryService(r, &mockPlaceRepo{})

	err := svc.Publish(context.Background(), uuid.New(), "asha")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
