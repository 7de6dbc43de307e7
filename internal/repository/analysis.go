package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/moodcast/backend/internal/models"
	"github.com/moodcast/backend/pkg/supabase"
)

type analysisRepository struct {
	client *supabase.Client
}

// NewAnalysisRepository creates a new analysis repository.
func NewAnalysisRepository(client *supabase.Client) AnalysisRepository {
	return &analysisRepository{client: client}
}

func (r *analysisRepository) Create(ctx context.Context, analysis *models.Analysis) (*models.Analysis, error) {
	data := map[string]interface{}{
		"user_id":    analysis.UserID,
		"text":       analysis.Text,
		"sentiment":  analysis.Sentiment,
		"confidence": analysis.Confidence,
	}

	if analysis.ID != "" {
		data["id"] = analysis.ID
	}
	if len(analysis.Emotions) > 0 {
		data["emotions"] = analysis.Emotions
	}
	if len(analysis.Suggestions) > 0 {
		data["suggestions"] = analysis.Suggestions
	}
	if len(analysis.Tags) > 0 {
		data["tags"] = analysis.Tags
	}
	if analysis.Metadata != nil {
		data["metadata"] = analysis.Metadata
	}

	body, err := r.client.Insert(ctx, "analyses", data)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis: %w", err)
	}

	var analyses []models.Analysis
	if err := json.Unmarshal(body, &analyses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(analyses) == 0 {
		return nil, fmt.Errorf("no analysis returned")
	}

	return &analyses[0], nil
}

func (r *analysisRepository) List(ctx context.Context, userID string, limit, offset int) ([]models.Analysis, error) {
	query := map[string]interface{}{
		"user_id": "eq." + userID,
		"order":   "created_at.desc",
	}
	if limit > 0 {
		query["limit"] = limit
	}
	if offset > 0 {
		query["offset"] = offset
	}

	body, err := r.client.Query(ctx, "analyses", query)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}

	var analyses []models.Analysis
	if err := json.Unmarshal(body, &analyses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return analyses, nil
}

func (r *analysisRepository) ListSince(ctx context.Context, userID string, since time.Time) ([]models.Analysis, error) {
	query := map[string]interface{}{
		"user_id":    "eq." + userID,
		"created_at": "gte." + since.Format(time.RFC3339),
		"order":      "created_at.asc",
	}

	body, err := r.client.Query(ctx, "analyses", query)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}

	var analyses []models.Analysis
	if err := json.Unmarshal(body, &analyses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return analyses, nil
}
