package assessment

import (
	"context"
	"testing"

	"soulace/models"
)

type memAssessmentRepo struct {
	results []models.AssessmentResult
}

func (r *memAssessmentRepo) Insert(_ context.Context, result models.AssessmentResult) error {
	r.results = append(r.results, result)
	return nil
}

func (r *memAssessmentRepo) FindByUser(_ context.Context, userID string) ([]models.AssessmentResult, error) {
	var out []models.AssessmentResult
	for _, res := range r.results {
		if res.UserID == userID {
			out = append(out, res)
		}
	}
	return out, nil
}

type recordingAlertService struct {
	raised []string
}

func (s *recordingAlertService) Raise(_ context.Context, userID, source, detail string) error {
	s.raised = append(s.raised, source+": "+detail)
	return nil
}

func TestSubmitStoresResult(t *testing.T) {
	repo := &memAssessmentRepo{}
	alerts := &recordingAlertService{}
	svc := NewDefaultAssessmentService(repo, alerts)

	result, err := svc.Submit(context.Background(), "user-1", models.InstrumentGAD7, []int{1, 1, 0, 0, 1, 0, 0})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if result.Score != 3 || result.Severity != "minimal" {
		t.Errorf("unexpected result: %+v", result)
	}
	if len(repo.results) != 1 {
		t.Errorf("result not stored")
	}
	if len(alerts.raised) != 0 {
		t.Errorf("minimal band must not raise an alert, got %v", alerts.raised)
	}
}

func TestSubmitSevereRaisesAlert(t *testing.T) {
	repo := &memAssessmentRepo{}
	alerts := &recordingAlertService{}
	svc := NewDefaultAssessmentService(repo, alerts)

	if _, err := svc.Submit(context.Background(), "user-1", models.InstrumentGAD7, []int{3, 3, 3, 3, 3, 3, 3}); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if len(alerts.raised) != 1 {
		t.Fatalf("severe band must raise exactly one alert, got %v", alerts.raised)
	}
}

func TestSubmitSelfHarmItemRaisesAlert(t *testing.T) {
	repo := &memAssessmentRepo{}
	alerts := &recordingAlertService{}
	svc := NewDefaultAssessmentService(repo, alerts)

	// Low total but a positive final item; the alert fires regardless of band.
	if _, err := svc.Submit(context.Background(), "user-1", models.InstrumentPHQ9, []int{0, 0, 0, 0, 0, 0, 0, 0, 1}); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if len(alerts.raised) != 1 {
		t.Fatalf("positive self-harm item must raise an alert, got %v", alerts.raised)
	}
}

func TestSubmitInvalidAnswersNotStored(t *testing.T) {
	repo := &memAssessmentRepo{}
	svc := NewDefaultAssessmentService(repo, &recordingAlertService{})

	if _, err := svc.Submit(context.Background(), "user-1", models.InstrumentGAD7, []int{1, 2}); err == nil {
		t.Fatal("expected validation error")
	}
	if len(repo.results) != 0 {
		t.Errorf("invalid submission must not be stored")
	}
}

func TestHistoryScopedToUser(t *testing.T) {
	repo := &memAssessmentRepo{}
	svc := NewDefaultAssessmentService(repo, &recordingAlertService{})

	if _, err := svc.Submit(context.Background(), "user-1", models.InstrumentGHQ12, make([]int, 12)); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if _, err := svc.Submit(context.Background(), "user-2", models.InstrumentGHQ12, make([]int, 12)); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	results, err := svc.History(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(results) != 1 || results[0].UserID != "user-1" {
		t.Errorf("history must be scoped to the user, got %+v", results)
	}
}
