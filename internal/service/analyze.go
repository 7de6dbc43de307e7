package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/moodcast/backend/internal/models"
	"github.com/moodcast/backend/internal/repository"
)

type analyzeService struct {
	analysisRepo repository.AnalysisRepository
	classifier   Classifier
	now          func() time.Time
}

// NewAnalyzeService creates a new analyze service
func NewAnalyzeService(analysisRepo repository.AnalysisRepository, classifier Classifier) AnalyzeService {
	return &analyzeService{
		analysisRepo: analysisRepo,
		classifier:   classifier,
		now:          time.Now,
	}
}

func (s *analyzeService) Analyze(ctx context.Context, userID, text string) (*models.Analysis, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text is required for analysis")
	}

	result, err := s.classifier.Classify(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to classify text: %w", err)
	}

	createdAt := s.now()
	analysis := &models.Analysis{
		UserID:      userID,
		Text:        text,
		Sentiment:   result.Sentiment,
		Confidence:  result.Confidence,
		Emotions:    result.Emotions,
		Suggestions: generateSuggestions(string(result.Sentiment), result.Confidence),
		Metadata:    buildMetadata(text, createdAt),
		CreatedAt:   createdAt,
	}

	created, err := s.analysisRepo.Create(ctx, analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}

	return created, nil
}

func (s *analyzeService) GetHistory(ctx context.Context, userID string, limit int) ([]models.Analysis, error) {
	if limit <= 0 {
		limit = 20
	}

	analyses, err := s.analysisRepo.List(ctx, userID, limit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch analysis history: %w", err)
	}
	if analyses == nil {
		analyses = []models.Analysis{}
	}

	return analyses, nil
}

// buildMetadata captures the context of an analysis at creation time.
func buildMetadata(text string, at time.Time) *models.AnalysisMetadata {
	return &models.AnalysisMetadata{
		TimeOfDay: timeOfDay(at),
		DayOfWeek: at.Weekday().String(),
		WordCount: len(strings.Fields(text)),
	}
}

func timeOfDay(at time.Time) string {
	switch hour := at.Hour(); {
	case hour < 12:
		return "morning"
	case hour < 18:
		return "afternoon"
	default:
		return "evening"
	}
}
