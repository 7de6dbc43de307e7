// Package service implements the business logic of the moodcast backend.
package service

import (
	"context"

	"github.com/moodcast/backend/internal/models"
	"github.com/moodcast/backend/pkg/classifier"
)

// Classifier produces sentiment verdicts for free text. The production
// implementation calls the external classification service.
type Classifier interface {
	Classify(ctx context.Context, text string) (*classifier.Result, error)
}

// JournalService defines the interface for journal entry business logic
type JournalService interface {
	CreateJournal(ctx context.Context, userID string, req *models.CreateJournalRequest) (*models.JournalEntry, error)
	GetJournal(ctx context.Context, userID, journalID string) (*models.JournalEntry, error)
	GetUserJournals(ctx context.Context, userID string, limit, offset int) ([]models.JournalEntry, error)
	UpdateJournal(ctx context.Context, userID, journalID string, req *models.UpdateJournalRequest) (*models.JournalEntry, error)
	DeleteJournal(ctx context.Context, userID, journalID string) error
}

// AnalyzeService defines the interface for quick sentiment analysis
type AnalyzeService interface {
	Analyze(ctx context.Context, userID, text string) (*models.Analysis, error)
	GetHistory(ctx context.Context, userID string, limit int) ([]models.Analysis, error)
}

// InsightService defines the interface for pattern analysis and forecasting
type InsightService interface {
	GetStreaks(ctx context.Context, userID string) (*models.StreakSummary, error)
	GetAchievements(ctx context.Context, userID string) (*models.AchievementsResponse, error)
	GetMoodForecast(ctx context.Context, userID string) (*models.MoodForecast, error)
	GetCopingStrategies(mood string) *models.CopingStrategiesResponse
	GetDailyPrompt(ctx context.Context, userID string) (*models.DailyPrompt, error)
	GetPromptSuggestions(ctx context.Context, userID string) ([]models.PromptSuggestion, error)
	GetWeeklyInsights(ctx context.Context, userID string) (*models.WeeklyInsights, error)
	GetPatterns(ctx context.Context, userID string, days int) (*models.TimeOfDayPatterns, error)
	GetDashboardStats(ctx context.Context, userID string) (*models.DashboardStats, error)
	GetTrend(ctx context.Context, userID string, days int) ([]models.TrendPoint, error)
}
