package planner

import (
	"slices"

	"github.com/google/uuid"

	"github.com/psharma/tripcraft/backend/internal/domain"
)

// Editor operations. Each function is pure with respect to its input: the
// given slice is never modified and the result is a fresh slice, so callers
// holding the previous plan state (e.g. for undo) keep a consistent snapshot.

// AddDay appends a new empty day numbered len(plans)+1.
func AddDay(plans []domain.DayPlan) []domain.DayPlan {
	out := clonePlans(plans)
	return append(out, domain.DayPlan{
		DayNumber: len(out) + 1,
		Places:    []domain.PlaceInDay{},
	})
}

// RemoveDay removes the day with the matching number and renumbers the
// remaining days to a contiguous 1-based sequence in their existing relative
// order. Removing a day number that does not exist returns an unchanged copy.
func RemoveDay(plans []domain.DayPlan, dayNumber int) []domain.DayPlan {
	out := make([]domain.DayPlan, 0, len(plans))
	for _, d := range plans {
		if d.DayNumber == dayNumber {
			continue
		}
		c := cloneDay(d)
		c.DayNumber = len(out) + 1
		out = append(out, c)
	}
	return out
}

// RemovePlace removes the place with the given ID from the named day and
// re-normalizes the remaining order indices to 0..n-1, keeping the
// within-day contiguity invariant intact after every removal.
// Unknown day numbers or place IDs return an unchanged copy.
func RemovePlace(plans []domain.DayPlan, dayNumber int, placeID uuid.UUID) []domain.DayPlan {
	out := clonePlans(plans)
	for i, d := range out {
		if d.DayNumber != dayNumber {
			continue
		}
		kept := make([]domain.PlaceInDay, 0, len(d.Places))
		for _, p := range d.Places {
			if p.Place.ID == placeID {
				continue
			}
			p.OrderIndex = len(kept)
			kept = append(kept, p)
		}
		out[i].Places = kept
	}
	return out
}

// ReorderPlaces replaces the named day's place list with the given permutation
// and recomputes each entry's order index as its position in the new list.
// Unknown day numbers return an unchanged copy.
func ReorderPlaces(plans []domain.DayPlan, dayNumber int, newOrder []domain.PlaceInDay) []domain.DayPlan {
	out := clonePlans(plans)
	for i, d := range out {
		if d.DayNumber != dayNumber {
			continue
		}
		reordered := slices.Clone(newOrder)
		for j := range reordered {
			reordered[j].OrderIndex = j
		}
		out[i].Places = reordered
	}
	return out
}

// TotalCost returns the sum of entry fees over all places in all days.
// Recomputed on demand — never cached in editor state.
func TotalCost(plans []domain.DayPlan) float64 {
	var sum float64
	for _, d := range plans {
		for _, p := range d.Places {
			sum += p.EntryFee
		}
	}
	return sum
}

// TotalDistance returns the sum of distance-from-center over all places in
// all days.
func TotalDistance(plans []domain.DayPlan) float64 {
	var sum float64
	for _, d := range plans {
		for _, p := range d.Places {
			sum += p.DistanceFromCenter
		}
	}
	return sum
}

// CountPlaces returns the number of scheduled places across all days.
func CountPlaces(plans []domain.DayPlan) int {
	n := 0
	for _, d := range plans {
		n += len(d.Places)
	}
	return n
}

func cloneDay(d domain.DayPlan) domain.DayPlan {
	d.Places = slices.Clone(d.Places)
	return d
}

func clonePlans(plans []domain.DayPlan) []domain.DayPlan {
	out := make([]domain.DayPlan, len(plans))
	for i, d := range plans {
		out[i] = cloneDay(d)
	}
	return out
}
