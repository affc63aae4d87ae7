// File: services/chat/service.go
package chat

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"soulace/models"
	"soulace/utils"
)

// maxHistoryTurns bounds how much conversation is replayed to the agent.
const maxHistoryTurns = 20

// ChatService is the supportive chatbot surface.
type ChatService interface {
	Converse(ctx context.Context, userID, message string) (string, error)
	Reset(ctx context.Context, userID string) error
}

// DefaultChatService implements ChatService over an external agent with a
// Redis-backed rolling context and a stigmatized-language response filter.
type DefaultChatService struct {
	Agent    Agent
	CtxStore ContextStore

	logger *zap.Logger
}

// NewDefaultChatService wires the chatbot.
func NewDefaultChatService(agent Agent, store ContextStore) *DefaultChatService {
	return &DefaultChatService{
		Agent:    agent,
		CtxStore: store,
		logger:   utils.GetLogger(),
	}
}

func (s *DefaultChatService) Converse(ctx context.Context, userID, message string) (string, error) {
	chatCtx, err := s.CtxStore.Get(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("load chat context: %w", err)
	}

	reply, err := s.Agent.Converse(ctx, message, chatCtx.History)
	if err != nil {
		return "", fmt.Errorf("chat agent: %w", err)
	}
	reply = FilterStigmatizedLanguage(reply)

	now := time.Now().UTC()
	chatCtx.History = append(chatCtx.History,
		models.ChatMessage{Role: "user", Content: message, At: now},
		models.ChatMessage{Role: "assistant", Content: reply, At: now},
	)
	if len(chatCtx.History) > maxHistoryTurns {
		chatCtx.History = chatCtx.History[len(chatCtx.History)-maxHistoryTurns:]
	}

	if err := s.CtxStore.Set(ctx, userID, chatCtx); err != nil {
		// The reply is still usable; only continuity suffers.
		s.logger.Warn("failed to persist chat context", zap.String("userId", userID), zap.Error(err))
	}
	return reply, nil
}

func (s *DefaultChatService) Reset(ctx context.Context, userID string) error {
	return s.CtxStore.Clear(ctx, userID)
}
