package assessment

import (
	"errors"
	"testing"

	"soulace/models"
)

func answersOf(n, value int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = value
	}
	return out
}

func TestScoreBands(t *testing.T) {
	cases := []struct {
		instrument models.Instrument
		answers    []int
		total      int
		band       string
	}{
		{models.InstrumentGAD7, answersOf(7, 0), 0, "minimal"},
		{models.InstrumentGAD7, []int{1, 1, 1, 1, 1, 0, 0}, 5, "mild"},
		{models.InstrumentGAD7, []int{2, 2, 2, 2, 2, 0, 0}, 10, "moderate"},
		{models.InstrumentGAD7, answersOf(7, 3), 21, "severe"},
		{models.InstrumentPHQ9, answersOf(9, 0), 0, "minimal"},
		{models.InstrumentPHQ9, []int{2, 2, 2, 2, 2, 2, 2, 1, 0}, 15, "moderately severe"},
		{models.InstrumentPHQ9, answersOf(9, 3), 27, "severe"},
		{models.InstrumentGHQ12, answersOf(12, 0), 0, "low"},
		{models.InstrumentGHQ12, []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, 12, "distress"},
		{models.InstrumentGHQ12, answersOf(12, 3), 36, "severe"},
	}
	for _, tc := range cases {
		total, band, err := Score(tc.instrument, tc.answers)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.instrument, err)
			continue
		}
		if total != tc.total || band != tc.band {
			t.Errorf("%s %v: got (%d, %q), want (%d, %q)", tc.instrument, tc.answers, total, band, tc.total, tc.band)
		}
	}
}

func TestScoreValidation(t *testing.T) {
	if _, _, err := Score("mmpi", answersOf(10, 1)); !errors.Is(err, ErrUnknownInstrument) {
		t.Errorf("expected ErrUnknownInstrument, got %v", err)
	}
	if _, _, err := Score(models.InstrumentGAD7, answersOf(9, 1)); !errors.Is(err, ErrInvalidAnswers) {
		t.Errorf("expected ErrInvalidAnswers for wrong count, got %v", err)
	}
	if _, _, err := Score(models.InstrumentGAD7, []int{0, 0, 0, 0, 0, 0, 4}); !errors.Is(err, ErrInvalidAnswers) {
		t.Errorf("expected ErrInvalidAnswers for out-of-range item, got %v", err)
	}
	if _, _, err := Score(models.InstrumentPHQ9, []int{0, 0, 0, -1, 0, 0, 0, 0, 0}); !errors.Is(err, ErrInvalidAnswers) {
		t.Errorf("expected ErrInvalidAnswers for negative item, got %v", err)
	}
}

func TestSevere(t *testing.T) {
	for band, want := range map[string]bool{
		"severe":            true,
		"moderately severe": true,
		"moderate":          false,
		"mild":              false,
		"minimal":           false,
		"low":               false,
		"distress":          false,
	} {
		if got := Severe(band); got != want {
			t.Errorf("Severe(%q) = %v, want %v", band, got, want)
		}
	}
}
