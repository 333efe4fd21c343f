// File: services/assistant/prompt.go
package assistant

import (
	"fmt"
	"strings"
	"time"

	"barberpro/models"
	"barberpro/services/occupancy"
	"barberpro/services/schedule"
)

// Snapshot is the read-only view of shop state for a single resolver call.
// It is refreshed per invocation; staleness is bounded by one turn.
type Snapshot struct {
	Schedule     models.WeeklySchedule
	Services     []models.ServiceItem
	Appointments []models.Appointment
}

// historyWindow limits how many past turns are replayed into the prompt.
const historyWindow = 10

const systemTemplate = `You are "BarberPro AI", the smart assistant of a premium barbershop. Your tone is professional, warm, modern and efficient, like a trusted barber.

### MODE
%s
- Your goal is to guide the user towards booking an appointment.
- NEVER confirm an appointment definitively in 'suggestedReply' until you have Date, Time and Name, and you have verified it does not collide with the busy slots or closing hours below.
- If details are missing, ask for them kindly - only the missing ones.
- Be concise. People read very little in chat.
- If the user asks for a style recommendation or describes their face/hair, act as an expert stylist and record the idea in 'stylePreference'.

### BUSINESS CONTEXT (real data)
1. CURRENT DATE AND TIME: %s, %s, %s.
2. OPENING HOURS (respect the gaps and closures strictly):
%s
3. SERVICES AND PRICES:
%s
4. ALREADY BOOKED SLOTS (do NOT schedule here):
%s

### OUTPUT RULES
Always answer with a single valid JSON object:
- 'thought_process': brief internal reasoning about intent and availability.
- 'clientName', 'date' (YYYY-MM-DD), 'time' (HH:mm), 'service', 'stylePreference': only when detected, else omit.
- 'suggestedReply': the kind, natural reply for the user.
- 'isComplete': true ONLY if you have a valid free Date AND Time.`

// BuildPrompt assembles the deterministic context for one resolver call.
// Mode changes the framing of who is speaking to whom; it never changes
// the constraints.
func BuildPrompt(conv *models.Conversation, newUserText string, snap Snapshot, now time.Time, mode models.ChatMode) Prompt {
	var modeLine string
	if mode == models.ModeAdminAssist {
		modeLine = "- You are acting as the barber's assistant, suggesting what to answer on WhatsApp. The pasted text comes from a client."
	} else {
		modeLine = "- You are talking DIRECTLY to the client in the web app."
	}

	system := fmt.Sprintf(systemTemplate,
		modeLine,
		now.Weekday().String(),
		now.Format("2006-01-02"),
		now.Format("15:04"),
		schedule.FormatContext(snap.Schedule),
		formatServices(snap.Services),
		occupancy.FormatContext(occupancy.Upcoming(snap.Appointments, now)),
	)

	var b strings.Builder
	b.WriteString("CONVERSATION CONTEXT:\n")
	b.WriteString(formatHistory(conv))
	fmt.Fprintf(&b, "\n\nCURRENT USER MESSAGE: %q", newUserText)

	return Prompt{System: system, Contents: b.String()}
}

func formatServices(services []models.ServiceItem) string {
	if len(services) == 0 {
		return "- No services configured."
	}
	lines := make([]string, len(services))
	for i, s := range services {
		lines[i] = fmt.Sprintf("- %s: $%.0f (approx %d mins)", s.Name, s.Price, s.DurationMinutes)
	}
	return strings.Join(lines, "\n")
}

func formatHistory(conv *models.Conversation) string {
	if conv == nil || len(conv.Messages) == 0 {
		return "(no previous messages)"
	}
	msgs := conv.Messages
	if len(msgs) > historyWindow {
		msgs = msgs[len(msgs)-historyWindow:]
	}
	lines := make([]string, len(msgs))
	for i, m := range msgs {
		speaker := "CLIENT/USER"
		if m.Role == "assistant" {
			speaker = "AI_AGENT"
		}
		lines[i] = fmt.Sprintf("%s said: %q", speaker, m.Text)
	}
	return strings.Join(lines, "\n")
}
