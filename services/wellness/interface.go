package wellness

import (
	"context"

	journalRepo "soulace/database/repository/journal"
	moodRepo "soulace/database/repository/mood"
	"soulace/models"
)

// WellnessService covers mood tracking and private journaling.
type WellnessService interface {
	LogMood(ctx context.Context, userID, mood, note string) (*models.MoodEntry, error)
	MoodHistory(ctx context.Context, userID string) ([]models.MoodEntry, error)
	SentimentSummary(ctx context.Context, userID string) (*models.SentimentSummary, error)

	WriteEntry(ctx context.Context, userID, title, body string) (*models.JournalEntry, error)
	ListEntries(ctx context.Context, userID string) ([]models.JournalEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID string) error
}

// DefaultWellnessService implements WellnessService.
type DefaultWellnessService struct {
	Moods    moodRepo.MoodRepository
	Journals journalRepo.JournalRepository
}
