// Package analysis contains the pattern-analysis core: pure functions that
// turn a user's historical journal and quick-analysis records into streaks,
// day-of-week risk profiles, topic gaps, and a 7-day mood forecast.
//
// Every function in this package operates on a complete input snapshot and
// holds no state, so calls are safe from any number of goroutines.
package analysis

import (
	"sort"
	"time"

	"github.com/moodcast/backend/internal/models"
)

// Normalize merges journal entries and quick analyses into one sequence of
// Entry ordered ascending by creation time. No record is dropped: a record
// with a missing or unrecognized sentiment becomes neutral with confidence 0,
// and a missing emotion list becomes an empty one.
func Normalize(journals []models.JournalEntry, analyses []models.Analysis) []models.Entry {
	entries := make([]models.Entry, 0, len(journals)+len(analyses))

	for _, j := range journals {
		entries = append(entries, normalizeOne(j.ID, j.CreatedAt, j.Sentiment, j.Confidence, j.Emotions, j.Content))
	}
	for _, a := range analyses {
		entries = append(entries, normalizeOne(a.ID, a.CreatedAt, a.Sentiment, a.Confidence, a.Emotions, a.Text))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})

	return entries
}

func normalizeOne(id string, createdAt time.Time, sentiment models.Sentiment, confidence float64, emotions []models.EmotionScore, text string) models.Entry {
	if !sentiment.Valid() {
		sentiment = models.SentimentNeutral
		confidence = 0
	}
	if emotions == nil {
		emotions = []models.EmotionScore{}
	}
	return models.Entry{
		ID:         id,
		CreatedAt:  createdAt,
		Sentiment:  sentiment,
		Confidence: confidence,
		Emotions:   emotions,
		Text:       text,
	}
}
