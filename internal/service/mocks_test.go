package service

import (
	"context"
	"fmt"
	"time"

	"github.com/moodcast/backend/internal/models"
	"github.com/moodcast/backend/pkg/classifier"
)

// mockJournalRepository is an in-memory JournalRepository for testing
type mockJournalRepository struct {
	entries     []models.JournalEntry
	createCalls int
	nextID      int
}

func (m *mockJournalRepository) Create(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error) {
	m.createCalls++
	stored := *entry
	if stored.ID == "" {
		m.nextID++
		stored.ID = fmt.Sprintf("journal-%d", m.nextID)
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	m.entries = append(m.entries, stored)
	return &stored, nil
}

func (m *mockJournalRepository) GetByID(ctx context.Context, userID, id string) (*models.JournalEntry, error) {
	for i := range m.entries {
		if m.entries[i].ID == id && m.entries[i].UserID == userID {
			entry := m.entries[i]
			return &entry, nil
		}
	}
	return nil, nil
}

func (m *mockJournalRepository) List(ctx context.Context, userID string, limit, offset int) ([]models.JournalEntry, error) {
	var result []models.JournalEntry
	for _, e := range m.entries {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockJournalRepository) ListSince(ctx context.Context, userID string, since time.Time) ([]models.JournalEntry, error) {
	var result []models.JournalEntry
	for _, e := range m.entries {
		if e.UserID == userID && !e.CreatedAt.Before(since) {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockJournalRepository) Update(ctx context.Context, userID, id string, updates map[string]interface{}) (*models.JournalEntry, error) {
	for i := range m.entries {
		if m.entries[i].ID != id || m.entries[i].UserID != userID {
			continue
		}
		if title, ok := updates["title"].(string); ok {
			m.entries[i].Title = title
		}
		if content, ok := updates["content"].(string); ok {
			m.entries[i].Content = content
		}
		if sentiment, ok := updates["sentiment"].(models.Sentiment); ok {
			m.entries[i].Sentiment = sentiment
		}
		if confidence, ok := updates["confidence"].(float64); ok {
			m.entries[i].Confidence = confidence
		}
		entry := m.entries[i]
		return &entry, nil
	}
	return nil, nil
}

func (m *mockJournalRepository) Delete(ctx context.Context, userID, id string) error {
	for i := range m.entries {
		if m.entries[i].ID == id && m.entries[i].UserID == userID {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("journal entry not found")
}

// mockAnalysisRepository is an in-memory AnalysisRepository for testing
type mockAnalysisRepository struct {
	analyses    []models.Analysis
	createCalls int
	nextID      int
}

func (m *mockAnalysisRepository) Create(ctx context.Context, analysis *models.Analysis) (*models.Analysis, error) {
	m.createCalls++
	stored := *analysis
	if stored.ID == "" {
		m.nextID++
		stored.ID = fmt.Sprintf("analysis-%d", m.nextID)
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	m.analyses = append(m.analyses, stored)
	return &stored, nil
}

func (m *mockAnalysisRepository) List(ctx context.Context, userID string, limit, offset int) ([]models.Analysis, error) {
	var result []models.Analysis
	for _, a := range m.analyses {
		if a.UserID == userID {
			result = append(result, a)
		}
	}
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockAnalysisRepository) ListSince(ctx context.Context, userID string, since time.Time) ([]models.Analysis, error) {
	var result []models.Analysis
	for _, a := range m.analyses {
		if a.UserID == userID && !a.CreatedAt.Before(since) {
			result = append(result, a)
		}
	}
	return result, nil
}

// mockClassifier returns a fixed verdict and records the texts it saw
type mockClassifier struct {
	sentiment  models.Sentiment
	confidence float64
	err        error
	calls      []string
}

func (m *mockClassifier) Classify(ctx context.Context, text string) (*classifier.Result, error) {
	m.calls = append(m.calls, text)
	if m.err != nil {
		return nil, m.err
	}
	return &classifier.Result{
		Sentiment:  m.sentiment,
		Confidence: m.confidence,
		Emotions:   []models.EmotionScore{},
	}, nil
}
