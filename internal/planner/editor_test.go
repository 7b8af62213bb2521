package planner_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psharma/tripcraft/backend/internal/domain"
	"github.com/psharma/tripcraft/backend/internal/planner"
)

// dayFixture builds a day plan whose places carry the given names, with
// contiguous order indices and cycling time slots.
func dayFixture(dayNumber int, names ...string) domain.DayPlan {
	places := make([]domain.PlaceInDay, 0, len(names))
	for i, name := range names {
		places = append(places, domain.PlaceInDay{
			Place:      placeFixture(name, float64(i), 0),
			TimeSlot:   domain.SlotForIndex(i),
			OrderIndex: i,
		})
	}
	return domain.DayPlan{DayNumber: dayNumber, Places: places}
}

func planNames(d domain.DayPlan) []string {
	names := make([]string, len(d.Places))
	for i, p := range d.Places {
		names[i] = p.Place.Name
	}
	return names
}

// ---- AddDay ----------------------------------------------------------------

func TestAddDay_AppendsEmptyDay(t *testing.T) {
	plans := []domain.DayPlan{dayFixture(1, "A", "B")}

	got := planner.AddDay(plans)

	require.Len(t, got, 2)
	assert.Equal(t, 2, got[1].DayNumber)
	assert.Empty(t, got[1].Places)
	assert.NotNil(t, got[1].Places)
}

func TestAddDay_EmptyPlan(t *testing.T) {
	got := planner.AddDay(nil)

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].DayNumber)
}

// ---- RemoveDay -------------------------------------------------------------

func TestRemoveDay_RenumbersRemainder(t *testing.T) {
	plans := []domain.DayPlan{
		dayFixture(1, "A", "B"),
		dayFixture(2, "C"),
		dayFixture(3, "D", "E"),
	}

	got := planner.RemoveDay(plans, 2)

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].DayNumber)
	assert.Equal(t, []string{"A", "B"}, planNames(got[0]))
	assert.Equal(t, 2, got[1].DayNumber)
	assert.Equal(t, []string{"D", "E"}, planNames(got[1]))
}

func TestRemoveDay_UnknownNumberIsNoOp(t *testing.T) {
	plans := []domain.DayPlan{dayFixture(1, "A"), dayFixture(2, "B")}

	got := planner.RemoveDay(plans, 9)

	assert.Equal(t, plans, got)
}

func TestRemoveDay_DoesNotMutateInput(t *testing.T) {
	plans := []domain.DayPlan{dayFixture(1, "A"), dayFixture(2, "B"), dayFixture(3, "C")}

	_ = planner.RemoveDay(plans, 1)

	assert.Equal(t, 1, plans[0].DayNumber)
	assert.Equal(t, 3, plans[2].DayNumber)
}

// ---- RemovePlace -----------------------------------------------------------

func TestRemovePlace_RenormalizesOrderIndices(t *testing.T) {
	plans := []domain.DayPlan{dayFixture(1, "A", "B", "C")}
	target := plans[0].Places[1].Place.ID // remove "B"

	got := planner.RemovePlace(plans, 1, target)

	require.Len(t, got[0].Places, 2)
	assert.Equal(t, []string{"A", "C"}, planNames(got[0]))
	// Indices must stay contiguous after removal, not keep the old gap.
	assert.Equal(t, 0, got[0].Places[0].OrderIndex)
	assert.Equal(t, 1, got[0].Places[1].OrderIndex)
}

func TestRemovePlace_UnknownPlaceIsNoOp(t *testing.T) {
	plans := []domain.DayPlan{dayFixture(1, "A", "B")}

	got := planner.RemovePlace(plans, 1, uuid.New())

	assert.Equal(t, plans, got)
}

func TestRemovePlace_OnlyTouchesNamedDay(t *testing.T) {
	plans := []domain.DayPlan{dayFixture(1, "A"), dayFixture(2, "B")}
	target := plans[0].Places[0].Place.ID

	got := planner.RemovePlace(plans, 2, target)

	// "A" lives on day 1; removing its ID from day 2 changes nothing.
	assert.Equal(t, []string{"A"}, planNames(got[0]))
	assert.Equal(t, []string{"B"}, planNames(got[1]))
}

// ---- ReorderPlaces ---------------------------------------------------------

func TestReorderPlaces_RecomputesIndices(t *testing.T) {
	plans := []domain.DayPlan{dayFixture(1, "A", "B", "C")}
	day := plans[0]

	newOrder := []domain.PlaceInDay{day.Places[2], day.Places[0], day.Places[1]} // C, A, B

	got := planner.ReorderPlaces(plans, 1, newOrder)

	require.Len(t, got[0].Places, 3)
	assert.Equal(t, []string{"C", "A", "B"}, planNames(got[0]))
	for i, p := range got[0].Places {
		assert.Equal(t, i, p.OrderIndex)
	}
}

func TestReorderPlaces_UnknownDayIsNoOp(t *testing.T) {
	plans := []domain.DayPlan{dayFixture(1, "A", "B")}

	got := planner.ReorderPlaces(plans, 5, nil)

	assert.Equal(t, plans, got)
}

// ---- aggregates ------------------------------------------------------------

func TestTotals(t *testing.T) {
	d1 := dayFixture(1, "A", "B")
	d1.Places[0].EntryFee = 0
	d1.Places[1].EntryFee = 30
	d1.Places[0].DistanceFromCenter = 2
	d1.Places[1].DistanceFromCenter = 5

	d2 := dayFixture(2, "C", "D")
	d2.Places[0].EntryFee = 50
	d2.Places[1].EntryFee = 0
	d2.Places[0].DistanceFromCenter = 1
	d2.Places[1].DistanceFromCenter = 7

	plans := []domain.DayPlan{d1, d2}

	assert.InDelta(t, 80, planner.TotalCost(plans), 1e-9)
	assert.InDelta(t, 15, planner.TotalDistance(plans), 1e-9)
	assert.Equal(t, 4, planner.CountPlaces(plans))
}

func TestTotals_EmptyPlan(t *testing.T) {
	assert.Zero(t, planner.TotalCost(nil))
	assert.Zero(t, planner.TotalDistance(nil))
	assert.Zero(t, planner.CountPlaces(nil))
}
