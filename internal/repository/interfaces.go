// Package repository provides data access over the Supabase REST API.
package repository

import (
	"context"
	"time"

	"github.com/moodcast/backend/internal/models"
)

// JournalRepository handles journal entry persistence.
type JournalRepository interface {
	Create(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error)
	GetByID(ctx context.Context, userID, id string) (*models.JournalEntry, error)
	List(ctx context.Context, userID string, limit, offset int) ([]models.JournalEntry, error)
	ListSince(ctx context.Context, userID string, since time.Time) ([]models.JournalEntry, error)
	Update(ctx context.Context, userID, id string, updates map[string]interface{}) (*models.JournalEntry, error)
	Delete(ctx context.Context, userID, id string) error
}

// AnalysisRepository handles quick-analysis persistence.
type AnalysisRepository interface {
	Create(ctx context.Context, analysis *models.Analysis) (*models.Analysis, error)
	List(ctx context.Context, userID string, limit, offset int) ([]models.Analysis, error)
	ListSince(ctx context.Context, userID string, since time.Time) ([]models.Analysis, error)
}
