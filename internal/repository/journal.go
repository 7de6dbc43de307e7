package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/moodcast/backend/internal/models"
	"github.com/moodcast/backend/pkg/supabase"
)

type journalRepository struct {
	client *supabase.Client
}

// NewJournalRepository creates a new journal repository.
func NewJournalRepository(client *supabase.Client) JournalRepository {
	return &journalRepository{client: client}
}

func (r *journalRepository) Create(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error) {
	data := map[string]interface{}{
		"user_id":    entry.UserID,
		"title":      entry.Title,
		"content":    entry.Content,
		"sentiment":  entry.Sentiment,
		"confidence": entry.Confidence,
	}

	if entry.ID != "" {
		data["id"] = entry.ID
	}
	if len(entry.Emotions) > 0 {
		data["emotions"] = entry.Emotions
	}
	if len(entry.Suggestions) > 0 {
		data["suggestions"] = entry.Suggestions
	}
	if len(entry.Tags) > 0 {
		data["tags"] = entry.Tags
	}
	if entry.Mood != "" {
		data["mood"] = entry.Mood
	}

	body, err := r.client.Insert(ctx, "journal_entries", data)
	if err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}

	var entries []models.JournalEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no journal entry returned")
	}

	return &entries[0], nil
}

func (r *journalRepository) GetByID(ctx context.Context, userID, id string) (*models.JournalEntry, error) {
	query := map[string]interface{}{
		"id":      "eq." + id,
		"user_id": "eq." + userID,
	}

	body, err := r.client.Query(ctx, "journal_entries", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entry: %w", err)
	}

	var entries []models.JournalEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	return &entries[0], nil
}

func (r *journalRepository) List(ctx context.Context, userID string, limit, offset int) ([]models.JournalEntry, error) {
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

	body, err := r.client.Query(ctx, "journal_entries", query)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}

	var entries []models.JournalEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return entries, nil
}

func (r *journalRepository) ListSince(ctx context.Context, userID string, since time.Time) ([]models.JournalEntry, error) {
	query := map[string]interface{}{
		"user_id":    "eq." + userID,
		"created_at": "gte." + since.Format(time.RFC3339),
		"order":      "created_at.asc",
	}

	body, err := r.client.Query(ctx, "journal_entries", query)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}

	var entries []models.JournalEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return entries, nil
}

func (r *journalRepository) Update(ctx context.Context, userID, id string, updates map[string]interface{}) (*models.JournalEntry, error) {
	// Ownership is enforced by fetching first; PostgREST update by id alone
	// would otherwise let one user touch another's rows with the service key.
	existing, err := r.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	body, err := r.client.Update(ctx, "journal_entries", id, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update journal entry: %w", err)
	}

	var entries []models.JournalEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no journal entry returned")
	}

	return &entries[0], nil
}

func (r *journalRepository) Delete(ctx context.Context, userID, id string) error {
	existing, err := r.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("journal entry not found")
	}

	if err := r.client.Delete(ctx, "journal_entries", id); err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}

	return nil
}
