package assistant

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"barberpro/models"
)

func TestBuildPrompt_ContainsBusinessContext(t *testing.T) {
	snap := Snapshot{
		Schedule: mondayOnlySchedule(),
		Services: []models.ServiceItem{{Name: "Classic Cut", Price: 15, DurationMinutes: 30}},
		Appointments: []models.Appointment{
			{ClientName: "Bob", Date: "2026-09-07", Time: "10:00", Status: models.StatusConfirmed},
		},
	}
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)

	p := BuildPrompt(&models.Conversation{}, "hello", snap, now, models.ModeGuest)

	for _, want := range []string{
		"Monday, 2026-09-07, 08:00",
		"- Monday: 09:00-13:00",
		"- Sunday: CLOSED",
		"- Classic Cut: $15 (approx 30 mins)",
		"- 2026-09-07 at 10:00 (Bob)",
		"DIRECTLY to the client",
	} {
		if !strings.Contains(p.System, want) {
			t.Fatalf("system prompt missing %q:\n%s", want, p.System)
		}
	}
	if !strings.Contains(p.Contents, `CURRENT USER MESSAGE: "hello"`) {
		t.Fatalf("contents missing user message:\n%s", p.Contents)
	}
}

func TestBuildPrompt_AdminAssistFraming(t *testing.T) {
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)
	p := BuildPrompt(&models.Conversation{}, "paste", Snapshot{Schedule: mondayOnlySchedule()}, now, models.ModeAdminAssist)
	if !strings.Contains(p.System, "WhatsApp") {
		t.Fatalf("admin-assist framing missing:\n%s", p.System)
	}
}

func TestBuildPrompt_HistoryWindow(t *testing.T) {
	conv := &models.Conversation{}
	for i := 0; i < 15; i++ {
		conv.Append(models.ChatMessage{Role: "user", Text: fmt.Sprintf("message %d", i)})
	}
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)

	p := BuildPrompt(conv, "latest", Snapshot{Schedule: mondayOnlySchedule()}, now, models.ModeGuest)
	if strings.Contains(p.Contents, "message 4") {
		t.Fatalf("history should be capped at the last %d turns", historyWindow)
	}
	if !strings.Contains(p.Contents, "message 14") {
		t.Fatalf("latest history turn missing")
	}
}
