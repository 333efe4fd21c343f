// File: services/occupancy/occupancy.go
package occupancy

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"barberpro/models"
)

// Slot is one already-committed (date, time) pair.
type Slot struct {
	Date       string // "YYYY-MM-DD"
	Time       string // "HH:mm"
	ClientName string
}

// Upcoming derives the busy-slot set from the full appointment list:
// everything with date+time at or after now whose status is not CANCELLED.
// Past appointments are irrelevant context, not conflicts; cancelled slots
// are free again immediately.
func Upcoming(appointments []models.Appointment, now time.Time) []Slot {
	var slots []Slot
	for _, a := range appointments {
		if a.Status == models.StatusCancelled {
			continue
		}
		starts := a.StartsAt(now.Location())
		if starts.IsZero() || starts.Before(now) {
			continue
		}
		slots = append(slots, Slot{Date: a.Date, Time: a.Time, ClientName: a.ClientName})
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Date != slots[j].Date {
			return slots[i].Date < slots[j].Date
		}
		return slots[i].Time < slots[j].Time
	})
	return slots
}

// Contains reports whether the exact (date, time) pair is already taken.
func Contains(slots []Slot, date, hhmm string) bool {
	for _, s := range slots {
		if s.Date == date && s.Time == hhmm {
			return true
		}
	}
	return false
}

// FormatContext renders the busy-slot list as the prompt block injected
// into the assistant so it does not double-book.
func FormatContext(slots []Slot) string {
	if len(slots) == 0 {
		return "No upcoming booked slots."
	}
	lines := make([]string, len(slots))
	for i, s := range slots {
		lines[i] = fmt.Sprintf("- %s at %s (%s)", s.Date, s.Time, s.ClientName)
	}
	return strings.Join(lines, "\n")
}
