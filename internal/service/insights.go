package service

import (
	"context"
	"fmt"
	"time"

	"github.com/moodcast/backend/internal/analysis"
	"github.com/moodcast/backend/internal/config"
	"github.com/moodcast/backend/internal/models"
	"github.com/moodcast/backend/internal/repository"
)

// trendSampleSize is how many recent entries feed the trend message.
const trendSampleSize = 14

// minForecastEntries is the sample size below which the forecast is marked
// as insufficient. The 7-day forecast itself is still produced.
const minForecastEntries = 7

type insightService struct {
	journalRepo  repository.JournalRepository
	analysisRepo repository.AnalysisRepository
	cfg          config.AnalysisConfig
	now          func() time.Time
}

// NewInsightService creates a new insight service
func NewInsightService(journalRepo repository.JournalRepository, analysisRepo repository.AnalysisRepository, cfg config.AnalysisConfig) InsightService {
	return &insightService{
		journalRepo:  journalRepo,
		analysisRepo: analysisRepo,
		cfg:          cfg,
		now:          time.Now,
	}
}

// entriesSince fetches journals and analyses within the window and flattens
// them into normalized entries. windowDays <= 0 means the full history.
func (s *insightService) entriesSince(ctx context.Context, userID string, windowDays int) ([]models.Entry, error) {
	since := time.Unix(0, 0).UTC()
	if windowDays > 0 {
		since = s.now().AddDate(0, 0, -windowDays)
	}

	journals, err := s.journalRepo.ListSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch journal entries: %w", err)
	}

	analyses, err := s.analysisRepo.ListSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch analyses: %w", err)
	}

	return analysis.Normalize(journals, analyses), nil
}

func (s *insightService) GetStreaks(ctx context.Context, userID string) (*models.StreakSummary, error) {
	entries, err := s.entriesSince(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	summary := analysis.CalculateStreaks(entries)
	return &summary, nil
}

func (s *insightService) GetAchievements(ctx context.Context, userID string) (*models.AchievementsResponse, error) {
	entries, err := s.entriesSince(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	streaks := analysis.CalculateStreaks(entries)
	achievements := analysis.Achievements(entries, streaks)

	unlocked := 0
	for _, a := range achievements {
		if a.Unlocked {
			unlocked++
		}
	}

	return &models.AchievementsResponse{
		Achievements:      achievements,
		TotalUnlocked:     unlocked,
		TotalAchievements: len(achievements),
	}, nil
}

func (s *insightService) GetMoodForecast(ctx context.Context, userID string) (*models.MoodForecast, error) {
	entries, err := s.entriesSince(ctx, userID, s.cfg.ForecastWindowDays)
	if err != nil {
		return nil, err
	}

	thresholds := analysis.Thresholds{
		HighCutoff:   s.cfg.HighRiskCutoff,
		MediumCutoff: s.cfg.MediumRiskCutoff,
	}

	risks := analysis.WeekdayRisks(entries)
	forecast := analysis.Forecast(risks, s.now(), thresholds)

	result := &models.MoodForecast{
		Forecast:        forecast,
		Recommendations: analysis.ForecastRecommendations(forecast),
		DataSufficient:  len(entries) >= minForecastEntries,
	}

	if result.DataSufficient {
		trend := analysis.RecentTrend(entries, trendSampleSize)
		result.Trend = &trend
		result.Insights = forecastMeta(risks, len(entries), s.cfg.ForecastWindowDays)
	}

	return result, nil
}

// forecastMeta extracts headline facts from the risk ranking. The ranking is
// ordered worst-first, so the challenging day leads and the best day trails.
func forecastMeta(risks []models.WeekdayRisk, totalEntries, daysAnalyzed int) *models.ForecastMeta {
	meta := &models.ForecastMeta{
		TotalEntriesAnalyzed: totalEntries,
		DaysAnalyzed:         daysAnalyzed,
	}
	if len(risks) > 0 {
		meta.ChallengingDay = risks[0].Name
		meta.BestDay = risks[len(risks)-1].Name
	}
	return meta
}

func (s *insightService) GetCopingStrategies(mood string) *models.CopingStrategiesResponse {
	if mood == "" {
		mood = "general"
	}
	return &models.CopingStrategiesResponse{
		Mood:       mood,
		Strategies: analysis.CopingStrategies(mood),
	}
}

func (s *insightService) GetDailyPrompt(ctx context.Context, userID string) (*models.DailyPrompt, error) {
	entries, err := s.entriesSince(ctx, userID, s.cfg.PromptWindowDays)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return &models.DailyPrompt{
			Text:     "Welcome! Let's start your journaling journey. How are you feeling today?",
			Category: "emotions",
			Reason:   "Starting your first entry",
		}, nil
	}

	gaps := analysis.TopicGaps(entries)
	category := gaps[0].Category

	// The day of year rotates the prompt so repeat visitors see variety
	// without the response being random.
	prompt := analysis.PromptFor(category, s.now().YearDay())

	last := entries[len(entries)-1]
	daysSinceLast := int(s.now().Sub(last.CreatedAt).Hours() / 24)

	reason := fmt.Sprintf("You haven't written much about %s recently", category)
	if daysSinceLast > 3 {
		reason = fmt.Sprintf("It's been %d days since your last entry", daysSinceLast)
	}

	return &models.DailyPrompt{
		Text:         prompt,
		Category:     category,
		Reason:       reason,
		DaysAnalyzed: s.cfg.PromptWindowDays,
		TotalEntries: len(entries),
	}, nil
}

func (s *insightService) GetPromptSuggestions(ctx context.Context, userID string) ([]models.PromptSuggestion, error) {
	entries, err := s.entriesSince(ctx, userID, s.cfg.PromptWindowDays)
	if err != nil {
		return nil, err
	}

	gaps := analysis.TopicGaps(entries)
	if len(gaps) > 3 {
		gaps = gaps[:3]
	}

	pick := s.now().YearDay()
	suggestions := make([]models.PromptSuggestion, 0, len(gaps))
	for _, gap := range gaps {
		suggestions = append(suggestions, models.PromptSuggestion{
			Category: gap.Category,
			Prompt:   analysis.PromptFor(gap.Category, pick),
		})
	}

	return suggestions, nil
}

func (s *insightService) GetWeeklyInsights(ctx context.Context, userID string) (*models.WeeklyInsights, error) {
	entries, err := s.entriesSince(ctx, userID, s.cfg.InsightsWindowDays)
	if err != nil {
		return nil, err
	}

	insights := analysis.WeeklyInsights(entries)
	return &insights, nil
}

func (s *insightService) GetPatterns(ctx context.Context, userID string, days int) (*models.TimeOfDayPatterns, error) {
	var analyses []models.Analysis
	var err error
	if days > 0 {
		analyses, err = s.analysisRepo.ListSince(ctx, userID, s.now().AddDate(0, 0, -days))
	} else {
		analyses, err = s.analysisRepo.List(ctx, userID, 0, 0)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch analyses: %w", err)
	}

	patterns := analysis.TimeOfDayPatterns(analyses)
	return &patterns, nil
}

func (s *insightService) GetDashboardStats(ctx context.Context, userID string) (*models.DashboardStats, error) {
	journals, err := s.journalRepo.List(ctx, userID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch journal entries: %w", err)
	}

	analyses, err := s.analysisRepo.List(ctx, userID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch analyses: %w", err)
	}

	entries := analysis.Normalize(journals, analyses)
	trendEntries := entries
	if s.cfg.TrendWindowDays > 0 {
		cutoff := s.now().AddDate(0, 0, -s.cfg.TrendWindowDays)
		filtered := make([]models.Entry, 0, len(trendEntries))
		for _, e := range trendEntries {
			if !e.CreatedAt.Before(cutoff) {
				filtered = append(filtered, e)
			}
		}
		trendEntries = filtered
	}

	return &models.DashboardStats{
		TotalAnalyses:         len(analyses),
		TotalJournals:         len(journals),
		SentimentDistribution: analysis.SentimentDistribution(entries),
		AverageConfidence:     analysis.AverageConfidence(entries),
		Trend:                 analysis.DailyTrend(trendEntries, s.cfg.TrendWindowDays, s.now()),
	}, nil
}

func (s *insightService) GetTrend(ctx context.Context, userID string, days int) ([]models.TrendPoint, error) {
	if days <= 0 {
		days = s.cfg.TrendWindowDays
	}

	entries, err := s.entriesSince(ctx, userID, days)
	if err != nil {
		return nil, err
	}

	return analysis.DailyTrend(entries, days, s.now()), nil
}
