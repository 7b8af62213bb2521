package domain

import "time"

// TimeSlot groups places within a day.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

// timeSlots is the fixed cycle order used when filling a day:
// morning, afternoon, evening, morning, ...
var timeSlots = [...]TimeSlot{SlotMorning, SlotAfternoon, SlotEvening}

// SlotForIndex returns the time slot for the i-th place of a day (0-based).
func SlotForIndex(i int) TimeSlot {
	return timeSlots[i%len(timeSlots)]
}

// ValidTimeSlot reports whether s is one of the three known slots.
func ValidTimeSlot(s TimeSlot) bool {
	return s == SlotMorning || s == SlotAfternoon || s == SlotEvening
}

// PlaceInDay is a Place scheduled into a day: the catalog entry plus its time
// slot, its 0-based position within the day, and optional user notes.
// OrderIndex is unique and contiguous within its owning day.
type PlaceInDay struct {
	Place
	TimeSlot    TimeSlot `json:"time_slot"`
	OrderIndex  int      `json:"order_index"`
	CustomNotes string   `json:"custom_notes,omitempty"`
}

// DayPlan is one day of a trip: a 1-based day number, an optional calendar
// date, and the ordered list of scheduled places.
// Day numbers are contiguous starting at 1 within an itinerary; editor
// operations that remove days renumber the remainder to keep it so.
type DayPlan struct {
	DayNumber int          `json:"day_number"`
	Date      *time.Time   `json:"date,omitempty"`
	Notes     string       `json:"notes,omitempty"`
	Places    []PlaceInDay `json:"places"`
}
