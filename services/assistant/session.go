// File: services/assistant/session.go
package assistant

import (
	"context"
	"strings"
	"time"

	"barberpro/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionManager drives one conversation turn end to end: append the user
// message, resolve, guard against stale results, append the assistant
// answer. One session maps to exactly one conversation.
type SessionManager struct {
	Store     ConversationStore
	Resolver  *Resolver
	Snapshots SnapshotSource
	Logger    *zap.Logger

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func (m *SessionManager) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// HandleMessage processes one user turn and returns the assistant's turn.
// Empty or whitespace-only input is a no-op, not an error. If the
// conversation was reset while the backend call was in flight, the result
// is discarded and ErrStaleResolution returned.
func (m *SessionManager) HandleMessage(ctx context.Context, sessionID, text string, mode models.ChatMode) (*models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	conv, err := m.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	generation := conv.Generation

	userMsg := models.ChatMessage{ID: uuid.New().String(), Role: "user", Text: text}
	conv.Append(userMsg)
	if err := m.Store.Save(ctx, sessionID, conv); err != nil {
		return nil, err
	}

	snap, err := m.Snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	proposal := m.Resolver.Resolve(ctx, conv, text, snap, m.now(), mode)

	// Stale-response guard: a reset mid-resolution bumps the generation,
	// and the late result must not attach to the fresh conversation.
	latest, err := m.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if latest.Generation != generation {
		m.Logger.Info("assistant: discarding stale resolution",
			zap.String("session", sessionID),
			zap.Int64("expected", generation),
			zap.Int64("actual", latest.Generation))
		return nil, ErrStaleResolution
	}

	botMsg := models.ChatMessage{
		ID:          uuid.New().String(),
		Role:        "assistant",
		Text:        proposal.Reply,
		BookingData: proposal,
	}
	latest.Append(botMsg)
	if err := m.Store.Save(ctx, sessionID, latest); err != nil {
		return nil, err
	}
	return &botMsg, nil
}

// LatestProposal returns the live proposal for a session, if any.
func (m *SessionManager) LatestProposal(ctx context.Context, sessionID string) (*models.BookingProposal, error) {
	conv, err := m.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return conv.LatestProposal(), nil
}

// AppendAssistantNote adds a plain assistant message without a proposal,
// used for post-commit confirmations.
func (m *SessionManager) AppendAssistantNote(ctx context.Context, sessionID, text string) error {
	conv, err := m.Store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	conv.Append(models.ChatMessage{ID: uuid.New().String(), Role: "assistant", Text: text})
	return m.Store.Save(ctx, sessionID, conv)
}

// ResetConversation clears the log and invalidates in-flight resolutions.
func (m *SessionManager) ResetConversation(ctx context.Context, sessionID string) error {
	conv, err := m.Store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	conv.Reset()
	return m.Store.Save(ctx, sessionID, conv)
}
