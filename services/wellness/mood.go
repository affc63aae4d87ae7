// File: services/wellness/mood.go
package wellness

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"soulace/models"
)

var ErrUnknownMood = errors.New("unknown mood")

// knownMoods is the closed set of moods the tracker accepts.
var knownMoods = map[string]struct{}{
	"Very Happy":      {},
	"Feeling Blessed": {},
	"Happy":           {},
	"Mind Blown":      {},
	"Frustrated":      {},
	"Sad":             {},
	"Angry":           {},
	"Crying":          {},
}

func (s *DefaultWellnessService) LogMood(ctx context.Context, userID, mood, note string) (*models.MoodEntry, error) {
	if _, ok := knownMoods[mood]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMood, mood)
	}
	entry := models.MoodEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Mood:      mood,
		Note:      note,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Moods.Insert(ctx, entry); err != nil {
		return nil, fmt.Errorf("log mood: %w", err)
	}
	return &entry, nil
}

func (s *DefaultWellnessService) MoodHistory(ctx context.Context, userID string) ([]models.MoodEntry, error) {
	entries, err := s.Moods.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("mood history: %w", err)
	}
	return entries, nil
}

func (s *DefaultWellnessService) SentimentSummary(ctx context.Context, userID string) (*models.SentimentSummary, error) {
	entries, err := s.Moods.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("sentiment summary: %w", err)
	}
	summary := Summarize(entries)
	return &summary, nil
}
