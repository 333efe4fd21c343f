// File: services/assistant/resolver.go
package assistant

import (
	"context"
	"fmt"
	"time"

	"barberpro/models"
	"barberpro/services/occupancy"
	"barberpro/services/schedule"

	"go.uber.org/zap"
)

// fallbackReply is shown whenever the generative backend fails. The user
// always gets a conversational answer, never a technical error.
const fallbackReply = "I hit a small connection issue. Please tell me the date and time again."

// Resolver turns a conversation turn into a validated booking proposal.
// The generative backend only extracts intent; every scheduling constraint
// is re-checked here and its verdict overrides the model's.
type Resolver struct {
	Engine ProposalEngine
	Logger *zap.Logger
}

func NewResolver(engine ProposalEngine, logger *zap.Logger) *Resolver {
	return &Resolver{Engine: engine, Logger: logger}
}

// Resolve never returns an error and never panics: backend failures of any
// kind collapse into a safe incomplete proposal asking to repeat the slot.
func (r *Resolver) Resolve(ctx context.Context, conv *models.Conversation, newUserText string, snap Snapshot, now time.Time, mode models.ChatMode) *models.BookingProposal {
	prompt := BuildPrompt(conv, newUserText, snap, now, mode)

	raw, err := r.Engine.Propose(ctx, prompt)
	if err != nil {
		r.Logger.Warn("assistant: backend failed, using fallback", zap.Error(err))
		return fallbackProposal()
	}

	proposal, err := DecodeProposal(raw)
	if err != nil {
		r.Logger.Warn("assistant: undecodable backend answer, using fallback",
			zap.Error(err), zap.String("raw", raw))
		return fallbackProposal()
	}

	r.validate(proposal, snap, now)
	return proposal
}

func fallbackProposal() *models.BookingProposal {
	return &models.BookingProposal{
		Reply:      fallbackReply,
		IsComplete: false,
	}
}

// validate applies the hard scheduling rules to the extracted candidate.
// It may downgrade IsComplete and upgrade it only when date and time are
// present and every rule passes; the model's own claim is never trusted.
func (r *Resolver) validate(p *models.BookingProposal, snap Snapshot, now time.Time) {
	if p.Date == "" || p.Time == "" {
		r.reject(p, "")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", p.Date, now.Location())
	if err != nil {
		r.reject(p, "I couldn't make out the date. Which day would you like to come in (for example 2026-09-03)?")
		return
	}
	clock, err := schedule.ParseClock(p.Time)
	if err != nil {
		r.reject(p, "I couldn't make out the time. What time works for you (for example 10:00)?")
		return
	}

	today := now.Format("2006-01-02")
	nowClock := now.Hour()*60 + now.Minute()
	switch {
	case p.Date < today:
		r.reject(p, "That date has already passed. Which upcoming day works for you?")
		return
	case p.Date == today && clock < nowClock:
		r.reject(p, fmt.Sprintf("%s today has already passed. Would a later time work?", p.Time))
		return
	}

	busy := occupancy.Upcoming(snap.Appointments, now)
	if occupancy.Contains(busy, p.Date, p.Time) {
		r.reject(p, fmt.Sprintf("%s at %s is already taken. Would a nearby time work for you?", p.Date, p.Time))
		return
	}

	if !schedule.IsOpenAt(snap.Schedule, date, p.Time) {
		r.reject(p, fmt.Sprintf("We're closed on %s at %s. Our hours that day are: %s. What other time suits you?",
			date.Weekday().String(), p.Time, describeDay(snap.Schedule, date)))
		return
	}

	p.IsComplete = true
}

// reject forces the proposal incomplete. When the model had wrongly claimed
// completeness (or the reply is empty) the targeted reason replaces its
// reply, so the user is asked for exactly the invalid piece.
func (r *Resolver) reject(p *models.BookingProposal, reason string) {
	if reason != "" && (p.IsComplete || p.Reply == "") {
		p.Reply = reason
	}
	if p.Reply == "" {
		p.Reply = fallbackReply
	}
	p.IsComplete = false
}

func describeDay(ws models.WeeklySchedule, date time.Time) string {
	ranges := schedule.RangesFor(ws, schedule.WeekdayKey(date))
	if len(ranges) == 0 {
		return "closed all day"
	}
	out := ""
	for i, rg := range ranges {
		if i > 0 {
			out += ", "
		}
		out += rg.Start + "-" + rg.End
	}
	return out
}
