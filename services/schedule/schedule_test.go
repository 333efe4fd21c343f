package schedule

import (
	"errors"
	"testing"
	"time"

	"barberpro/models"
)

func TestDefaultWeeklySchedule_Complete(t *testing.T) {
	ws := DefaultWeeklySchedule()
	if err := Validate(ws); err != nil {
		t.Fatalf("default schedule should validate, got %v", err)
	}
	if !ws["monday"].IsOpen || ws["sunday"].IsOpen {
		t.Fatalf("expected monday open and sunday closed")
	}
	if len(ws["monday"].Ranges) != 2 || len(ws["saturday"].Ranges) != 1 {
		t.Fatalf("unexpected default ranges: mon=%d sat=%d", len(ws["monday"].Ranges), len(ws["saturday"].Ranges))
	}
}

func TestValidate_MissingWeekday(t *testing.T) {
	for _, day := range models.Weekdays {
		ws := DefaultWeeklySchedule()
		delete(ws, day)
		err := Validate(ws)
		if !errors.Is(err, ErrScheduleCorrupt) {
			t.Fatalf("missing %s: expected ErrScheduleCorrupt, got %v", day, err)
		}
	}
}

func TestIsOpenAt_Boundaries(t *testing.T) {
	ws := models.WeeklySchedule{}
	for _, day := range models.Weekdays {
		ws[day] = models.DaySchedule{IsOpen: false}
	}
	ws["monday"] = models.DaySchedule{
		IsOpen: true,
		Ranges: []models.TimeRange{{Start: "09:00", End: "13:00"}},
	}
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC) // a Monday

	cases := []struct {
		hhmm string
		want bool
	}{
		{"08:59", false},
		{"09:00", true}, // start inclusive
		{"12:59", true},
		{"13:00", false}, // end exclusive
		{"15:00", false},
	}
	for _, tc := range cases {
		if got := IsOpenAt(ws, monday, tc.hhmm); got != tc.want {
			t.Fatalf("IsOpenAt(monday, %s) = %v, want %v", tc.hhmm, got, tc.want)
		}
	}

	tuesday := monday.AddDate(0, 0, 1)
	if IsOpenAt(ws, tuesday, "10:00") {
		t.Fatalf("tuesday should be closed")
	}
}

func TestIsOpenAt_ClosedWinsOverRanges(t *testing.T) {
	ws := DefaultWeeklySchedule()
	// A day can carry stale ranges while flagged closed; the flag wins.
	ws["monday"] = models.DaySchedule{
		IsOpen: false,
		Ranges: []models.TimeRange{{Start: "09:00", End: "13:00"}},
	}
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	if IsOpenAt(ws, monday, "10:00") {
		t.Fatalf("closed day must ignore its ranges")
	}
	if RangesFor(ws, "monday") != nil {
		t.Fatalf("RangesFor on a closed day must be nil")
	}
}

func TestFormatContext(t *testing.T) {
	got := FormatContext(DefaultWeeklySchedule())
	want := "- Monday: 09:00-13:00, 18:00-22:00\n" +
		"- Tuesday: 09:00-13:00, 18:00-22:00\n" +
		"- Wednesday: 09:00-13:00, 18:00-22:00\n" +
		"- Thursday: 09:00-13:00, 18:00-22:00\n" +
		"- Friday: 09:00-13:00, 18:00-22:00\n" +
		"- Saturday: 09:00-13:00\n" +
		"- Sunday: CLOSED"
	if got != want {
		t.Fatalf("FormatContext mismatch:\n%s\nwant:\n%s", got, want)
	}
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("18:30")
	if err != nil || m != 18*60+30 {
		t.Fatalf("ParseClock(18:30) = %d, %v", m, err)
	}
	if _, err := ParseClock("25:00"); err == nil {
		t.Fatalf("expected error for 25:00")
	}
}
