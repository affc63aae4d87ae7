// File: services/assessment/scoring.go
package assessment

import (
	"errors"
	"fmt"

	"soulace/models"
)

var (
	ErrUnknownInstrument = errors.New("unknown instrument")
	ErrInvalidAnswers    = errors.New("invalid answers")
)

// itemCount gives the expected answer count per instrument. All three
// instruments score items 0-3.
var itemCount = map[models.Instrument]int{
	models.InstrumentGAD7:  7,
	models.InstrumentPHQ9:  9,
	models.InstrumentGHQ12: 12,
}

const maxItemScore = 3

// Score validates and totals a questionnaire submission, returning the sum
// and its severity band.
func Score(instrument models.Instrument, answers []int) (int, string, error) {
	want, ok := itemCount[instrument]
	if !ok {
		return 0, "", fmt.Errorf("%w: %q", ErrUnknownInstrument, instrument)
	}
	if len(answers) != want {
		return 0, "", fmt.Errorf("%w: %s expects %d answers, got %d", ErrInvalidAnswers, instrument, want, len(answers))
	}

	total := 0
	for i, a := range answers {
		if a < 0 || a > maxItemScore {
			return 0, "", fmt.Errorf("%w: answer %d out of range [0,%d]", ErrInvalidAnswers, i+1, maxItemScore)
		}
		total += a
	}
	return total, severity(instrument, total), nil
}

func severity(instrument models.Instrument, total int) string {
	switch instrument {
	case models.InstrumentGAD7:
		switch {
		case total < 5:
			return "minimal"
		case total < 10:
			return "mild"
		case total < 15:
			return "moderate"
		default:
			return "severe"
		}
	case models.InstrumentPHQ9:
		switch {
		case total < 5:
			return "minimal"
		case total < 10:
			return "mild"
		case total < 15:
			return "moderate"
		case total < 20:
			return "moderately severe"
		default:
			return "severe"
		}
	case models.InstrumentGHQ12:
		switch {
		case total <= 11:
			return "low"
		case total <= 15:
			return "distress"
		default:
			return "severe"
		}
	}
	return ""
}

// Severe reports whether a band warrants a crisis alert.
func Severe(band string) bool {
	return band == "severe" || band == "moderately severe"
}
