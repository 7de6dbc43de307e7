package service

import (
	"context"
	"fmt"

	"github.com/moodcast/backend/internal/models"
	"github.com/moodcast/backend/internal/repository"
)

type journalService struct {
	journalRepo repository.JournalRepository
	classifier  Classifier
}

// NewJournalService creates a new journal service
func NewJournalService(journalRepo repository.JournalRepository, classifier Classifier) JournalService {
	return &journalService{
		journalRepo: journalRepo,
		classifier:  classifier,
	}
}

func (s *journalService) CreateJournal(ctx context.Context, userID string, req *models.CreateJournalRequest) (*models.JournalEntry, error) {
	result, err := s.classifier.Classify(ctx, req.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to classify journal content: %w", err)
	}

	entry := &models.JournalEntry{
		UserID:      userID,
		Title:       req.Title,
		Content:     req.Content,
		Sentiment:   result.Sentiment,
		Confidence:  result.Confidence,
		Emotions:    result.Emotions,
		Suggestions: generateSuggestions(string(result.Sentiment), result.Confidence),
		Tags:        req.Tags,
		Mood:        req.Mood,
	}

	created, err := s.journalRepo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}

	return created, nil
}

func (s *journalService) GetJournal(ctx context.Context, userID, journalID string) (*models.JournalEntry, error) {
	entry, err := s.journalRepo.GetByID(ctx, userID, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entry: %w", err)
	}

	return entry, nil
}

func (s *journalService) GetUserJournals(ctx context.Context, userID string, limit, offset int) ([]models.JournalEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	entries, err := s.journalRepo.List(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	if entries == nil {
		entries = []models.JournalEntry{}
	}

	return entries, nil
}

func (s *journalService) UpdateJournal(ctx context.Context, userID, journalID string, req *models.UpdateJournalRequest) (*models.JournalEntry, error) {
	updates := map[string]interface{}{}

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Tags != nil {
		updates["tags"] = req.Tags
	}
	if req.Mood != nil {
		updates["mood"] = *req.Mood
	}

	// Content changes invalidate the stored verdict, so re-classify.
	if req.Content != nil {
		result, err := s.classifier.Classify(ctx, *req.Content)
		if err != nil {
			return nil, fmt.Errorf("failed to classify journal content: %w", err)
		}
		updates["content"] = *req.Content
		updates["sentiment"] = result.Sentiment
		updates["confidence"] = result.Confidence
		updates["emotions"] = result.Emotions
		updates["suggestions"] = generateSuggestions(string(result.Sentiment), result.Confidence)
	}

	if len(updates) == 0 {
		return s.GetJournal(ctx, userID, journalID)
	}

	entry, err := s.journalRepo.Update(ctx, userID, journalID, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update journal entry: %w", err)
	}

	return entry, nil
}

func (s *journalService) DeleteJournal(ctx context.Context, userID, journalID string) error {
	if err := s.journalRepo.Delete(ctx, userID, journalID); err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}

	return nil
}
