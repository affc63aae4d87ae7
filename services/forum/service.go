// File: services/forum/service.go
package forum

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	forumRepo "soulace/database/repository/forum"
	"soulace/models"
	"soulace/utils"
)

var (
	ErrContentRejected = errors.New("content rejected by moderation")
	ErrPostNotFound    = errors.New("post not found")
	ErrEmptyPost       = errors.New("post body must not be empty")
)

// ForumService publishes peer-support posts behind threshold moderation.
type ForumService interface {
	Publish(ctx context.Context, userID, displayName, body string) (*models.ForumPost, error)
	Feed(ctx context.Context, limit int64) ([]models.ForumPost, error)
	Flagged(ctx context.Context) ([]models.ForumPost, error)
	Moderate(ctx context.Context, postID string, approve bool) error
}

// DefaultForumService implements ForumService.
type DefaultForumService struct {
	Repo       forumRepo.ForumRepository
	Classifier Classifier

	// Classifier scores at or above BlockThreshold reject the post outright;
	// scores at or above FlagThreshold hold it for a moderator.
	FlagThreshold  float64
	BlockThreshold float64

	logger *zap.Logger
}

// NewDefaultForumService wires the service with the configured thresholds.
func NewDefaultForumService(repo forumRepo.ForumRepository, classifier Classifier, flagAt, blockAt float64) *DefaultForumService {
	return &DefaultForumService{
		Repo:           repo,
		Classifier:     classifier,
		FlagThreshold:  flagAt,
		BlockThreshold: blockAt,
		logger:         utils.GetLogger(),
	}
}

// Publish classifies the body before anything is stored. A classifier outage
// fails open to "flagged": the post is held for review rather than published
// unchecked or silently dropped.
func (s *DefaultForumService) Publish(ctx context.Context, userID, displayName, body string) (*models.ForumPost, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyPost
	}

	status := models.PostVisible
	var score float64
	var label string

	verdict, err := s.Classifier.Classify(ctx, body)
	switch {
	case err != nil:
		s.logger.Warn("classifier unavailable, holding post for review", zap.Error(err))
		status = models.PostFlagged
		label = "unclassified"
	case verdict.Score >= s.BlockThreshold:
		return nil, fmt.Errorf("%w: %s", ErrContentRejected, verdict.Label)
	case verdict.Score >= s.FlagThreshold:
		status = models.PostFlagged
		score, label = verdict.Score, verdict.Label
	default:
		score, label = verdict.Score, verdict.Label
	}

	post := models.ForumPost{
		ID:          uuid.New().String(),
		UserID:      userID,
		DisplayName: displayName,
		Body:        body,
		Status:      status,
		ToxicScore:  score,
		ToxicLabel:  label,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Insert(ctx, post); err != nil {
		return nil, fmt.Errorf("publish post: %w", err)
	}
	return &post, nil
}

func (s *DefaultForumService) Feed(ctx context.Context, limit int64) ([]models.ForumPost, error) {
	posts, err := s.Repo.FindByStatus(ctx, models.PostVisible, limit)
	if err != nil {
		return nil, fmt.Errorf("forum feed: %w", err)
	}
	return posts, nil
}

func (s *DefaultForumService) Flagged(ctx context.Context) ([]models.ForumPost, error) {
	posts, err := s.Repo.FindByStatus(ctx, models.PostFlagged, 0)
	if err != nil {
		return nil, fmt.Errorf("flagged posts: %w", err)
	}
	return posts, nil
}

func (s *DefaultForumService) Moderate(ctx context.Context, postID string, approve bool) error {
	post, err := s.Repo.FindByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("moderate post %s: %w", postID, err)
	}
	if post == nil {
		return ErrPostNotFound
	}

	status := models.PostRemoved
	if approve {
		status = models.PostVisible
	}
	if _, err := s.Repo.SetStatus(ctx, postID, status); err != nil {
		return fmt.Errorf("moderate post %s: %w", postID, err)
	}
	return nil
}
