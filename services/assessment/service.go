// File: services/assessment/service.go
package assessment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	assessmentRepo "soulace/database/repository/assessment"
	"soulace/models"
	"soulace/services/alert"
	"soulace/utils"
)

// AssessmentService scores and stores psychometric self-assessments.
type AssessmentService interface {
	Submit(ctx context.Context, userID string, instrument models.Instrument, answers []int) (*models.AssessmentResult, error)
	History(ctx context.Context, userID string) ([]models.AssessmentResult, error)
}

// DefaultAssessmentService implements AssessmentService.
type DefaultAssessmentService struct {
	Repo   assessmentRepo.AssessmentRepository
	Alerts alert.AlertService

	logger *zap.Logger
}

// NewDefaultAssessmentService wires the service.
func NewDefaultAssessmentService(repo assessmentRepo.AssessmentRepository, alerts alert.AlertService) *DefaultAssessmentService {
	return &DefaultAssessmentService{
		Repo:   repo,
		Alerts: alerts,
		logger: utils.GetLogger(),
	}
}

// Submit validates and scores the answers, stores the result, and raises a
// crisis alert for severe bands or any positive PHQ-9 self-harm item.
func (s *DefaultAssessmentService) Submit(ctx context.Context, userID string, instrument models.Instrument, answers []int) (*models.AssessmentResult, error) {
	total, band, err := Score(instrument, answers)
	if err != nil {
		return nil, err
	}

	result := models.AssessmentResult{
		ID:         uuid.New().String(),
		UserID:     userID,
		Instrument: instrument,
		Answers:    answers,
		Score:      total,
		Severity:   band,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Insert(ctx, result); err != nil {
		return nil, fmt.Errorf("store assessment: %w", err)
	}

	if s.Alerts != nil {
		if Severe(band) {
			s.raise(ctx, userID, instrument, fmt.Sprintf("score %d (%s)", total, band))
		} else if instrument == models.InstrumentPHQ9 && answers[8] > 0 {
			s.raise(ctx, userID, instrument, "positive self-harm item")
		}
	}
	return &result, nil
}

func (s *DefaultAssessmentService) raise(ctx context.Context, userID string, instrument models.Instrument, detail string) {
	source := "assessment:" + string(instrument)
	if err := s.Alerts.Raise(ctx, userID, source, detail); err != nil {
		// The assessment itself is already stored; alert delivery has its own
		// retry path in the worker.
		s.logger.Error("failed to enqueue crisis alert",
			zap.String("userId", userID),
			zap.String("source", source),
			zap.Error(err),
		)
	}
}

func (s *DefaultAssessmentService) History(ctx context.Context, userID string) ([]models.AssessmentResult, error) {
	results, err := s.Repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("assessment history: %w", err)
	}
	return results, nil
}
