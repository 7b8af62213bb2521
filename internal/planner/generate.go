// Package planner implements the itinerary generation algorithm and the pure
// in-memory editing operations on day plans. Nothing in this package touches
// the database — it operates on small in-memory slices and returns new values,
// never mutating its inputs.
package planner

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/psharma/tripcraft/backend/internal/domain"
)

// Day-count bounds enforced by the service layer before generation.
const (
	MinDays = 1
	MaxDays = 30
)

// Each generated day receives between minPlacesPerDay and maxPlacesPerDay
// places, chosen independently at random per day and capped by the remaining
// supply. Only the final day may end up below the minimum.
const (
	minPlacesPerDay = 2
	maxPlacesPerDay = 4
)

// newRand returns a time-seeded random source for production use.
// Tests pass their own fixed-seed source to Generate instead.
func newRand() *rand.Rand {
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, now>>32))
}

// Generate partitions the given places into a sequence of day plans.
//
// The places are shuffled, then stably re-sorted by ascending distance from
// the city center so that nearby places land on the same day; the shuffle only
// breaks ties between equidistant places. The sorted sequence is then walked
// greedily, assigning 2-4 places per day and cycling time slots in fixed order
// within each day. Generation stops once the supply is exhausted, so numDays
// is an upper bound on the result length, not a guarantee. A day that would
// receive zero places is never emitted.
//
// Every input place appears in exactly one output entry; order indices within
// each day are 0-based and contiguous.
//
// rng may be nil, in which case a time-seeded source is used.
func Generate(places []domain.Place, numDays int, rng *rand.Rand) []domain.DayPlan {
	if len(places) == 0 || numDays <= 0 {
		return []domain.DayPlan{}
	}
	if rng == nil {
		rng = newRand()
	}

	pool := slices.Clone(places)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	slices.SortStableFunc(pool, func(a, b domain.Place) int {
		switch {
		case a.DistanceFromCenter < b.DistanceFromCenter:
			return -1
		case a.DistanceFromCenter > b.DistanceFromCenter:
			return 1
		}
		return 0
	})

	days := make([]domain.DayPlan, 0, numDays)
	next := 0
	for day := 1; day <= numDays && next < len(pool); day++ {
		count := min(minPlacesPerDay+rng.IntN(maxPlacesPerDay-minPlacesPerDay+1), len(pool)-next)

		entries := make([]domain.PlaceInDay, 0, count)
		for i := range count {
			entries = append(entries, domain.PlaceInDay{
				Place:      pool[next],
				TimeSlot:   domain.SlotForIndex(i),
				OrderIndex: i,
			})
			next++
		}

		days = append(days, domain.DayPlan{DayNumber: day, Places: entries})
	}

	return days
}
