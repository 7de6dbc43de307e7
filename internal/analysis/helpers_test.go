package analysis

import (
	"time"

	"github.com/moodcast/backend/internal/models"
)

// base is an arbitrary fixed Monday used as the anchor for test entries
var base = time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

// entryAt builds a normalized entry at the given timestamp
func entryAt(at time.Time, sentiment models.Sentiment) models.Entry {
	return models.Entry{
		ID:         at.Format(time.RFC3339) + "/" + string(sentiment),
		CreatedAt:  at,
		Sentiment:  sentiment,
		Confidence: 0.9,
		Emotions:   []models.EmotionScore{},
	}
}

// entryOnDay builds an entry offset a whole number of days from base
func entryOnDay(dayOffset int, sentiment models.Sentiment) models.Entry {
	return entryAt(base.AddDate(0, 0, dayOffset), sentiment)
}

// textEntry builds an entry whose only relevant field is its text
func textEntry(dayOffset int, text string) models.Entry {
	e := entryOnDay(dayOffset, models.SentimentNeutral)
	e.Text = text
	return e
}
