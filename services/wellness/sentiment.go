// File: services/wellness/sentiment.go
package wellness

import "soulace/models"

// moodSentiment maps each mood to a sentiment bucket. Unknown moods count
// as neutral.
var moodSentiment = map[string]string{
	"Very Happy":      "positive",
	"Feeling Blessed": "positive",
	"Happy":           "positive",
	"Mind Blown":      "neutral",
	"Frustrated":      "negative",
	"Sad":             "negative",
	"Angry":           "negative",
	"Crying":          "negative",
}

// SentimentOf returns the sentiment bucket for a mood.
func SentimentOf(mood string) string {
	if s, ok := moodSentiment[mood]; ok {
		return s
	}
	return "neutral"
}

// Summarize counts a mood log into sentiment buckets.
func Summarize(entries []models.MoodEntry) models.SentimentSummary {
	var summary models.SentimentSummary
	for _, e := range entries {
		switch SentimentOf(e.Mood) {
		case "positive":
			summary.Positive++
		case "negative":
			summary.Negative++
		default:
			summary.Neutral++
		}
	}
	return summary
}
