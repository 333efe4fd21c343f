package assistant

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"barberpro/models"

	"go.uber.org/zap"
)

// memStore mimics the Redis store's value semantics: every Get hands out an
// independent copy.
type memStore struct {
	mu    sync.Mutex
	convs map[string]models.Conversation
}

func newMemStore() *memStore {
	return &memStore{convs: make(map[string]models.Conversation)}
}

func (s *memStore) Get(ctx context.Context, sessionID string) (*models.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv := s.convs[sessionID]
	cp := conv
	cp.Messages = append([]models.ChatMessage(nil), conv.Messages...)
	return &cp, nil
}

func (s *memStore) Save(ctx context.Context, sessionID string, conv *models.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *conv
	cp.Messages = append([]models.ChatMessage(nil), conv.Messages...)
	s.convs[sessionID] = cp
	return nil
}

func (s *memStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.convs, sessionID)
	return nil
}

type staticSnapshots struct{ snap Snapshot }

func (s staticSnapshots) Snapshot(ctx context.Context) (Snapshot, error) { return s.snap, nil }

func newTestManager(engine ProposalEngine, store ConversationStore) *SessionManager {
	return &SessionManager{
		Store:     store,
		Resolver:  NewResolver(engine, zap.NewNop()),
		Snapshots: staticSnapshots{snap: Snapshot{Schedule: mondayOnlySchedule()}},
		Logger:    zap.NewNop(),
		Now:       func() time.Time { return mondayAt("08:00") },
	}
}

func TestHandleMessage_EmptyInputIsNoOp(t *testing.T) {
	store := newMemStore()
	m := newTestManager(&fakeEngine{}, store)

	msg, err := m.HandleMessage(context.Background(), "s1", "   \n\t ", models.ModeGuest)
	if err != nil || msg != nil {
		t.Fatalf("empty input should be a no-op, got msg=%v err=%v", msg, err)
	}
	conv, _ := store.Get(context.Background(), "s1")
	if len(conv.Messages) != 0 {
		t.Fatalf("no turns should be recorded for empty input")
	}
}

func TestHandleMessage_AppendsBothTurns(t *testing.T) {
	engine := &fakeEngine{raw: `{"date":"2026-09-07","time":"10:00","clientName":"Alice","suggestedReply":"Monday 10:00, confirm?","isComplete":true}`}
	store := newMemStore()
	m := newTestManager(engine, store)

	msg, err := m.HandleMessage(context.Background(), "s1", "monday 10 alice", models.ModeGuest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Role != "assistant" || msg.BookingData == nil || !msg.BookingData.IsComplete {
		t.Fatalf("unexpected assistant turn: %+v", msg)
	}

	conv, _ := store.Get(context.Background(), "s1")
	if len(conv.Messages) != 2 {
		t.Fatalf("expected user+assistant turns, got %d", len(conv.Messages))
	}
	if conv.Messages[0].Role != "user" || conv.Messages[0].Text != "monday 10 alice" {
		t.Fatalf("user turn not recorded first: %+v", conv.Messages[0])
	}
}

func TestHandleMessage_LatestProposalSupersedes(t *testing.T) {
	engine := &fakeEngine{raw: `{"date":"2026-09-07","time":"10:00","suggestedReply":"10:00 then","isComplete":true}`}
	store := newMemStore()
	m := newTestManager(engine, store)
	ctx := context.Background()

	if _, err := m.HandleMessage(ctx, "s1", "monday at 10", models.ModeGuest); err != nil {
		t.Fatalf("first turn: %v", err)
	}
	engine.raw = `{"date":"2026-09-07","time":"11:00","suggestedReply":"11:00 then","isComplete":true}`
	if _, err := m.HandleMessage(ctx, "s1", "actually 11", models.ModeGuest); err != nil {
		t.Fatalf("second turn: %v", err)
	}

	p, err := m.LatestProposal(ctx, "s1")
	if err != nil {
		t.Fatalf("latest proposal: %v", err)
	}
	if p == nil || p.Time != "11:00" {
		t.Fatalf("latest assistant turn must supersede earlier proposals, got %+v", p)
	}
}

func TestResetConversation_BumpsGeneration(t *testing.T) {
	store := newMemStore()
	m := newTestManager(&fakeEngine{raw: `{"suggestedReply":"hi","isComplete":false}`}, store)
	ctx := context.Background()

	if _, err := m.HandleMessage(ctx, "s1", "hello", models.ModeGuest); err != nil {
		t.Fatalf("turn: %v", err)
	}
	if err := m.ResetConversation(ctx, "s1"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	conv, _ := store.Get(ctx, "s1")
	if len(conv.Messages) != 0 || conv.Generation != 1 {
		t.Fatalf("reset should clear turns and bump generation: %+v", conv)
	}
}

// resettingEngine resets the conversation while the backend call is in
// flight, simulating the user navigating away mid-resolution.
type resettingEngine struct {
	m         *SessionManager
	sessionID string
}

func (e *resettingEngine) Propose(ctx context.Context, p Prompt) (string, error) {
	if err := e.m.ResetConversation(ctx, e.sessionID); err != nil {
		return "", err
	}
	return `{"date":"2026-09-07","time":"10:00","suggestedReply":"late answer","isComplete":true}`, nil
}

func TestHandleMessage_DiscardsStaleResolution(t *testing.T) {
	store := newMemStore()
	m := newTestManager(nil, store)
	engine := &resettingEngine{m: m, sessionID: "s1"}
	m.Resolver = NewResolver(engine, zap.NewNop())

	_, err := m.HandleMessage(context.Background(), "s1", "monday at 10", models.ModeGuest)
	if !errors.Is(err, ErrStaleResolution) {
		t.Fatalf("expected ErrStaleResolution, got %v", err)
	}

	conv, _ := store.Get(context.Background(), "s1")
	if p := conv.LatestProposal(); p != nil {
		t.Fatalf("stale proposal must not attach to the reset conversation: %+v", p)
	}
	for _, msg := range conv.Messages {
		if msg.Role == "assistant" {
			t.Fatalf("no assistant turn should survive a mid-flight reset")
		}
	}
}
