package models

import "time"

// RiskLevel classifies a forecast day by its historical negative ratio
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// Confidence represents how much historical data backs an estimate
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Streak represents a run of consecutive non-neutral days sharing the same
// dominant sentiment. Type is nil when no streak is active.
type Streak struct {
	Type      *Sentiment `json:"type"`
	Count     int        `json:"count"`
	StartDate *time.Time `json:"start_date"`
}

// StreakSummary is the full output of the streak calculation
type StreakSummary struct {
	CurrentStreak         Streak   `json:"current_streak"`
	LongestPositiveStreak int      `json:"longest_positive_streak"`
	LongestNegativeStreak int      `json:"longest_negative_streak"`
	StreakHistory         []Streak `json:"streak_history"`
}

// WeekdayRisk holds per-weekday sentiment counts and the derived risk ratio
type WeekdayRisk struct {
	Weekday       int     `json:"weekday"` // 0 = Sunday .. 6 = Saturday
	Name          string  `json:"name"`
	NegativeRatio float64 `json:"negative_ratio"`
	Positive      int     `json:"positive"`
	Negative      int     `json:"negative"`
	Neutral       int     `json:"neutral"`
	Total         int     `json:"total"`
}

// ForecastDay is one day of the 7-day mood forecast
type ForecastDay struct {
	Date       time.Time      `json:"date"`
	DayName    string         `json:"day_name"`
	RiskLevel  RiskLevel      `json:"risk_level"`
	RiskScore  int            `json:"risk_score"` // 0-100
	Confidence Confidence     `json:"confidence"`
	Historical WeekdayHistory `json:"historical_data"`
}

// WeekdayHistory is the sample behind a forecast day's estimate
type WeekdayHistory struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
	Total    int `json:"total"`
}

// MoodForecast is the API response for the 7-day forecast
type MoodForecast struct {
	Forecast        []ForecastDay `json:"forecast"`
	Trend           *TrendSummary `json:"trend,omitempty"`
	Recommendations []string      `json:"recommendations"`
	Insights        *ForecastMeta `json:"insights,omitempty"`
	DataSufficient  bool          `json:"data_sufficient"`
}

// TrendSummary describes the recent overall direction of a user's mood
type TrendSummary struct {
	Message               string `json:"message"`
	RecentNegativePercent int    `json:"recent_negative_percent"`
	Period                string `json:"period"`
}

// ForecastMeta carries headline facts extracted from the risk ranking
type ForecastMeta struct {
	BestDay              string `json:"best_day"`
	ChallengingDay       string `json:"challenging_day"`
	TotalEntriesAnalyzed int    `json:"total_entries_analyzed"`
	DaysAnalyzed         int    `json:"days_analyzed"`
}

// TopicGap is one category in the topic scarcity ranking
type TopicGap struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// PromptSuggestion pairs a neglected topic with a journaling prompt
type PromptSuggestion struct {
	Category string `json:"category"`
	Prompt   string `json:"prompt"`
	Reason   string `json:"reason,omitempty"`
}

// DailyPrompt is the personalized prompt for today
type DailyPrompt struct {
	Text         string `json:"text"`
	Category     string `json:"category"`
	Reason       string `json:"reason"`
	DaysAnalyzed int    `json:"days_analyzed,omitempty"`
	TotalEntries int    `json:"total_entries,omitempty"`
}

// CopingStrategiesResponse lists strategies for a requested mood
type CopingStrategiesResponse struct {
	Mood       string   `json:"mood"`
	Strategies []string `json:"strategies"`
}

// Achievement represents one gamified milestone
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Unlocked    bool   `json:"unlocked"`
	Progress    int    `json:"progress"`
	Target      int    `json:"target"`
}

// AchievementsResponse is the API response for the achievements endpoint
type AchievementsResponse struct {
	Achievements      []Achievement `json:"achievements"`
	TotalUnlocked     int           `json:"total_unlocked"`
	TotalAchievements int           `json:"total_achievements"`
}

// SentimentBreakdown counts entries per sentiment label
type SentimentBreakdown struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// WeeklyInsights summarizes the past week of entries
type WeeklyInsights struct {
	Summary            string             `json:"summary"`
	TotalEntries       int                `json:"total_entries"`
	SentimentBreakdown SentimentBreakdown `json:"sentiment_breakdown"`
	DominantEmotion    string             `json:"dominant_emotion,omitempty"`
	Patterns           []string           `json:"patterns"`
	Recommendations    []string           `json:"recommendations"`
	BestDay            string             `json:"best_day,omitempty"`
	WorstDay           string             `json:"worst_day,omitempty"`
}

// TimeOfDayPatterns buckets sentiment counts by part of day
type TimeOfDayPatterns struct {
	Morning       SentimentBreakdown `json:"morning"`
	Afternoon     SentimentBreakdown `json:"afternoon"`
	Evening       SentimentBreakdown `json:"evening"`
	TotalAnalyzed int                `json:"total_analyzed"`
}

// TrendPoint is one day in the dashboard sentiment trend
type TrendPoint struct {
	Date     string  `json:"date"` // YYYY-MM-DD
	Positive int     `json:"positive"`
	Negative int     `json:"negative"`
	Neutral  int     `json:"neutral"`
	Score    float64 `json:"score"` // mean confidence-weighted sentiment, -1..1
	Count    int     `json:"count"`
}

// DashboardStats is the API response for the dashboard stats endpoint
type DashboardStats struct {
	TotalAnalyses         int                `json:"total_analyses"`
	TotalJournals         int                `json:"total_journals"`
	SentimentDistribution SentimentBreakdown `json:"sentiment_distribution"`
	AverageConfidence     float64            `json:"average_confidence"`
	Trend                 []TrendPoint       `json:"trend"`
}
