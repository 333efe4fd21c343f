// File: services/schedule/schedule.go
package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"barberpro/models"
)

// ErrScheduleCorrupt is returned when a stored weekly schedule is missing
// one of the seven weekday keys. Callers must substitute the built-in
// default and persist the repair.
var ErrScheduleCorrupt = errors.New("weekly schedule is missing a weekday key")

// DefaultWeeklySchedule returns the built-in schedule used to repair a
// corrupt settings document: Mon-Fri 09:00-13:00 and 18:00-22:00,
// Sat 09:00-13:00, Sun closed.
func DefaultWeeklySchedule() models.WeeklySchedule {
	weekday := models.DaySchedule{
		IsOpen: true,
		Ranges: []models.TimeRange{{Start: "09:00", End: "13:00"}, {Start: "18:00", End: "22:00"}},
	}
	saturday := models.DaySchedule{
		IsOpen: true,
		Ranges: []models.TimeRange{{Start: "09:00", End: "13:00"}},
	}
	closed := models.DaySchedule{IsOpen: false, Ranges: []models.TimeRange{}}

	return models.WeeklySchedule{
		"monday":    weekday,
		"tuesday":   weekday,
		"wednesday": weekday,
		"thursday":  weekday,
		"friday":    weekday,
		"saturday":  saturday,
		"sunday":    closed,
	}
}

// Validate checks that all seven weekday keys are present.
func Validate(ws models.WeeklySchedule) error {
	for _, day := range models.Weekdays {
		if _, ok := ws[day]; !ok {
			return fmt.Errorf("%w: %s", ErrScheduleCorrupt, day)
		}
	}
	return nil
}

// WeekdayKey maps a calendar date to the schedule's lowercase weekday key.
func WeekdayKey(date time.Time) string {
	return strings.ToLower(date.Weekday().String())
}

// RangesFor returns the open ranges for a weekday key, or nil when the day
// is closed. A closed day wins over any ranges it may still carry.
func RangesFor(ws models.WeeklySchedule, weekday string) []models.TimeRange {
	day, ok := ws[weekday]
	if !ok || !day.IsOpen {
		return nil
	}
	return day.Ranges
}

// IsOpenAt reports whether the shop is open on the given date at the given
// "HH:mm" time. Range boundaries are half-open: start inclusive, end
// exclusive.
func IsOpenAt(ws models.WeeklySchedule, date time.Time, hhmm string) bool {
	t, err := ParseClock(hhmm)
	if err != nil {
		return false
	}
	for _, r := range RangesFor(ws, WeekdayKey(date)) {
		start, err := ParseClock(r.Start)
		if err != nil {
			continue
		}
		end, err := ParseClock(r.End)
		if err != nil {
			continue
		}
		if t >= start && t < end {
			return true
		}
	}
	return false
}

// ParseClock converts "HH:mm" to minutes from midnight.
func ParseClock(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatContext renders the weekly schedule as the prompt block the
// assistant receives, one line per day, Monday first.
func FormatContext(ws models.WeeklySchedule) string {
	var b strings.Builder
	for _, day := range models.Weekdays {
		name := strings.ToUpper(day[:1]) + day[1:]
		ranges := RangesFor(ws, day)
		if len(ranges) == 0 {
			fmt.Fprintf(&b, "- %s: CLOSED\n", name)
			continue
		}
		parts := make([]string, len(ranges))
		for i, r := range ranges {
			parts[i] = r.Start + "-" + r.End
		}
		fmt.Fprintf(&b, "- %s: %s\n", name, strings.Join(parts, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}
