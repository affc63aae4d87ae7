// File: services/wellness/journal.go
package wellness

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"soulace/models"
)

var ErrEntryNotFound = errors.New("journal entry not found")

func (s *DefaultWellnessService) WriteEntry(ctx context.Context, userID, title, body string) (*models.JournalEntry, error) {
	if body == "" {
		return nil, fmt.Errorf("journal entry body must not be empty")
	}
	entry := models.JournalEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Journals.Insert(ctx, entry); err != nil {
		return nil, fmt.Errorf("write journal entry: %w", err)
	}
	return &entry, nil
}

func (s *DefaultWellnessService) ListEntries(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	entries, err := s.Journals.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	return entries, nil
}

// DeleteEntry removes an entry owned by userID. A non-owned or unknown entry
// reads as not found, so ownership is never leaked.
func (s *DefaultWellnessService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	deleted, err := s.Journals.Delete(ctx, userID, entryID)
	if err != nil {
		return fmt.Errorf("delete journal entry: %w", err)
	}
	if !deleted {
		return ErrEntryNotFound
	}
	return nil
}
