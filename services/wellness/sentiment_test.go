package wellness

import (
	"testing"

	"soulace/models"
)

func TestSentimentOf(t *testing.T) {
	cases := map[string]string{
		"Very Happy":      "positive",
		"Feeling Blessed": "positive",
		"Happy":           "positive",
		"Mind Blown":      "neutral",
		"Frustrated":      "negative",
		"Sad":             "negative",
		"Angry":           "negative",
		"Crying":          "negative",
		"Ecstatic":        "neutral",
		"":                "neutral",
	}
	for mood, want := range cases {
		if got := SentimentOf(mood); got != want {
			t.Errorf("SentimentOf(%q) = %q, want %q", mood, got, want)
		}
	}
}

func TestSummarize(t *testing.T) {
	entries := []models.MoodEntry{
		{Mood: "Happy"},
		{Mood: "Very Happy"},
		{Mood: "Sad"},
		{Mood: "Mind Blown"},
		{Mood: "Crying"},
	}
	summary := Summarize(entries)
	if summary.Positive != 2 || summary.Neutral != 1 || summary.Negative != 2 {
		t.Errorf("Summarize = %+v, want {Positive:2 Neutral:1 Negative:2}", summary)
	}

	empty := Summarize(nil)
	if empty.Positive != 0 || empty.Neutral != 0 || empty.Negative != 0 {
		t.Errorf("Summarize(nil) = %+v, want zero summary", empty)
	}
}
