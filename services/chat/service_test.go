package chat

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"soulace/models"
)

type memContextStore struct {
	contexts map[string]*models.ChatContext
	setErr   error
}

func newMemContextStore() *memContextStore {
	return &memContextStore{contexts: make(map[string]*models.ChatContext)}
}

func (s *memContextStore) Get(_ context.Context, userID string) (*models.ChatContext, error) {
	if ctx, ok := s.contexts[userID]; ok {
		cp := *ctx
		return &cp, nil
	}
	return &models.ChatContext{}, nil
}

func (s *memContextStore) Set(_ context.Context, userID string, chatCtx *models.ChatContext) error {
	if s.setErr != nil {
		return s.setErr
	}
	cp := *chatCtx
	s.contexts[userID] = &cp
	return nil
}

func (s *memContextStore) Clear(_ context.Context, userID string) error {
	delete(s.contexts, userID)
	return nil
}

type stubAgent struct {
	reply   string
	err     error
	history []models.ChatMessage
}

func (a *stubAgent) Converse(_ context.Context, _ string, history []models.ChatMessage) (string, error) {
	a.history = history
	return a.reply, a.err
}

func TestConverseFiltersReply(t *testing.T) {
	store := newMemContextStore()
	agent := &stubAgent{reply: "It may feel hopeless but it passes"}
	svc := NewDefaultChatService(agent, store)

	reply, err := svc.Converse(context.Background(), "user-1", "I had a bad day")
	if err != nil {
		t.Fatalf("Converse returned error: %v", err)
	}
	if reply != "It may feel capable but it passes" {
		t.Errorf("reply not filtered: %q", reply)
	}
}

func TestConversePersistsHistory(t *testing.T) {
	store := newMemContextStore()
	agent := &stubAgent{reply: "I hear you"}
	svc := NewDefaultChatService(agent, store)

	if _, err := svc.Converse(context.Background(), "user-1", "first message"); err != nil {
		t.Fatalf("Converse returned error: %v", err)
	}
	if _, err := svc.Converse(context.Background(), "user-1", "second message"); err != nil {
		t.Fatalf("Converse returned error: %v", err)
	}

	// The second turn replays the first exchange to the agent.
	if len(agent.history) != 2 {
		t.Fatalf("expected 2 replayed messages, got %d", len(agent.history))
	}
	if agent.history[0].Role != "user" || agent.history[0].Content != "first message" {
		t.Errorf("unexpected replayed history: %+v", agent.history)
	}

	stored := store.contexts["user-1"]
	if len(stored.History) != 4 {
		t.Errorf("expected 4 stored messages, got %d", len(stored.History))
	}
}

func TestConverseHistoryBounded(t *testing.T) {
	store := newMemContextStore()
	agent := &stubAgent{reply: "ok"}
	svc := NewDefaultChatService(agent, store)

	for i := 0; i < maxHistoryTurns; i++ {
		if _, err := svc.Converse(context.Background(), "user-1", fmt.Sprintf("message %d", i)); err != nil {
			t.Fatalf("Converse returned error: %v", err)
		}
	}
	if got := len(store.contexts["user-1"].History); got != maxHistoryTurns {
		t.Errorf("history must be capped at %d, got %d", maxHistoryTurns, got)
	}
}

func TestConverseAgentFailure(t *testing.T) {
	store := newMemContextStore()
	svc := NewDefaultChatService(&stubAgent{err: errors.New("upstream timeout")}, store)

	if _, err := svc.Converse(context.Background(), "user-1", "hello"); err == nil {
		t.Fatal("expected error from agent failure")
	}
	if len(store.contexts) != 0 {
		t.Errorf("failed turn must not persist context")
	}
}

func TestConverseStoreFailureStillReplies(t *testing.T) {
	store := newMemContextStore()
	store.setErr = errors.New("redis down")
	svc := NewDefaultChatService(&stubAgent{reply: "still here"}, store)

	reply, err := svc.Converse(context.Background(), "user-1", "hello")
	if err != nil {
		t.Fatalf("Converse must tolerate a store failure, got %v", err)
	}
	if reply != "still here" {
		t.Errorf("unexpected reply: %q", reply)
	}
}

func TestReset(t *testing.T) {
	store := newMemContextStore()
	svc := NewDefaultChatService(&stubAgent{reply: "ok"}, store)

	if _, err := svc.Converse(context.Background(), "user-1", "hello"); err != nil {
		t.Fatalf("Converse returned error: %v", err)
	}
	if err := svc.Reset(context.Background(), "user-1"); err != nil {
		t.Fatalf("Reset returned error: %v", err)
	}
	if _, ok := store.contexts["user-1"]; ok {
		t.Errorf("context must be cleared on reset")
	}
}
