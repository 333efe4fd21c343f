package models

// ChatMode distinguishes who the assistant is talking to. It changes tone
// and commit defaults only, never validation rules.
type ChatMode string

const (
	ModeGuest       ChatMode = "guest"        // end client booking for themselves
	ModeAdminAssist ChatMode = "admin-assist" // barber drafting a WhatsApp reply
)

// BookingProposal is the structured result of one resolver turn. Reasoning
// is an internal trace and is never shown to the end user; Reply is.
type BookingProposal struct {
	Reasoning       string `json:"thought_process,omitempty"`
	ClientName      string `json:"clientName,omitempty"`
	Date            string `json:"date,omitempty"` // "YYYY-MM-DD"
	Time            string `json:"time,omitempty"` // "HH:mm"
	Service         string `json:"service,omitempty"`
	StylePreference string `json:"stylePreference,omitempty"`
	Reply           string `json:"suggestedReply"`
	IsComplete      bool   `json:"isComplete"`
	RawOutput       string `json:"-"`
}

// ChatMessage is one turn of a conversation. Assistant turns may carry the
// proposal produced for that turn.
type ChatMessage struct {
	ID          string           `json:"id"`
	Role        string           `json:"role"` // "user" or "assistant"
	Text        string           `json:"text"`
	BookingData *BookingProposal `json:"bookingData,omitempty"`
}

// Conversation is the append-only turn log for a single chat session.
// Generation increments on every reset; an in-flight resolution whose
// generation no longer matches must be discarded.
type Conversation struct {
	Messages   []ChatMessage `json:"messages"`
	Generation int64         `json:"generation"`
}

// Append adds a turn to the log. Appending an assistant turn implicitly
// retires any earlier proposal: only the latest one is live.
func (c *Conversation) Append(msg ChatMessage) {
	c.Messages = append(c.Messages, msg)
}

// LatestProposal returns the most recent assistant turn's proposal, or nil
// if no assistant turn carries one.
func (c *Conversation) LatestProposal() *BookingProposal {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		if c.Messages[i].Role == "assistant" {
			return c.Messages[i].BookingData
		}
	}
	return nil
}

// Reset clears the log and bumps the generation so stale in-flight results
// cannot attach to the fresh conversation.
func (c *Conversation) Reset() {
	c.Messages = nil
	c.Generation++
}
