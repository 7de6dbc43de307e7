package models

import "time"

// User represents a user in the system
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Sentiment is the classifier's label for a piece of text
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Valid reports whether s is one of the three recognized labels
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// EmotionScore is one entry in the classifier's ranked emotion list
type EmotionScore struct {
	Emotion string  `json:"emotion"`
	Score   float64 `json:"score"`
}

// JournalEntry represents a long-form journal entry
type JournalEntry struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	Title       string         `json:"title"`
	Content     string         `json:"content"`
	Sentiment   Sentiment      `json:"sentiment"`
	Confidence  float64        `json:"confidence"`
	Emotions    []EmotionScore `json:"emotions,omitempty"`
	Suggestions []string       `json:"suggestions,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Mood        string         `json:"mood,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Analysis represents a quick one-off sentiment analysis
type Analysis struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	Text        string            `json:"text"`
	Sentiment   Sentiment         `json:"sentiment"`
	Confidence  float64           `json:"confidence"`
	Emotions    []EmotionScore    `json:"emotions,omitempty"`
	Suggestions []string          `json:"suggestions,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	Metadata    *AnalysisMetadata `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// AnalysisMetadata holds context captured at analysis time
type AnalysisMetadata struct {
	TimeOfDay string `json:"time_of_day,omitempty"` // "morning", "afternoon", "evening"
	DayOfWeek string `json:"day_of_week,omitempty"`
	WordCount int    `json:"word_count,omitempty"`
}

// Entry is the normalized record the analysis core operates on.
// Journal entries and quick analyses are both flattened into this shape.
type Entry struct {
	ID         string         `json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	Sentiment  Sentiment      `json:"sentiment"`
	Confidence float64        `json:"confidence"`
	Emotions   []EmotionScore `json:"emotions"`
	Text       string         `json:"text"`
}

// CreateJournalRequest represents the request to create a journal entry
type CreateJournalRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
	Mood    string   `json:"mood"`
}

// UpdateJournalRequest represents the request to update a journal entry
type UpdateJournalRequest struct {
	Title   *string  `json:"title"`
	Content *string  `json:"content"`
	Tags    []string `json:"tags"`
	Mood    *string  `json:"mood"`
}

// AnalyzeRequest represents the request for a quick sentiment analysis
type AnalyzeRequest struct {
	Text string `json:"text" binding:"required"`
}
