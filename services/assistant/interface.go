// File: services/assistant/interface.go
package assistant

import (
	"context"
	"errors"

	"barberpro/models"
)

// Prompt is the structured request handed to the generative backend: a
// system context built deterministically from shop data, plus the running
// conversation and the latest user message.
type Prompt struct {
	System   string
	Contents string
}

// ProposalEngine is the narrow seam over the generative backend. It returns
// the raw text answer; decoding and validation stay on this side of the
// boundary so they remain deterministic and testable.
type ProposalEngine interface {
	Propose(ctx context.Context, p Prompt) (string, error)
}

// ConversationStore persists per-session conversation state.
type ConversationStore interface {
	Get(ctx context.Context, sessionID string) (*models.Conversation, error)
	Save(ctx context.Context, sessionID string, conv *models.Conversation) error
	Clear(ctx context.Context, sessionID string) error
}

var (
	// ErrBackendUnavailable wraps network errors, timeouts and empty
	// answers from the generative backend.
	ErrBackendUnavailable = errors.New("generative backend unavailable")
	// ErrMalformedResponse marks a backend answer that could not be
	// decoded into a proposal. Recovered the same way as unavailability.
	ErrMalformedResponse = errors.New("malformed generative backend response")
	// ErrStaleResolution marks a resolver result that arrived after the
	// conversation was reset and must be discarded.
	ErrStaleResolution = errors.New("conversation changed while resolving")
)
