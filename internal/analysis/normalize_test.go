package analysis

import (
	"testing"
	"time"

	"github.com/moodcast/backend/internal/models"
)

func TestNormalizeMergesAndSorts(t *testing.T) {
	journals := []models.JournalEntry{
		{ID: "j1", Content: "journal text", Sentiment: models.SentimentPositive, Confidence: 0.8, CreatedAt: base.AddDate(0, 0, 2)},
	}
	analyses := []models.Analysis{
		{ID: "a1", Text: "analysis text", Sentiment: models.SentimentNegative, Confidence: 0.7, CreatedAt: base},
		{ID: "a2", Text: "later analysis", Sentiment: models.SentimentNeutral, Confidence: 0.5, CreatedAt: base.AddDate(0, 0, 4)},
	}

	got := Normalize(journals, analyses)

	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	wantOrder := []string{"a1", "j1", "a2"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
	if got[1].Text != "journal text" {
		t.Errorf("expected journal content aliased into text, got %q", got[1].Text)
	}
}

func TestNormalizeDefaultsMissingSentiment(t *testing.T) {
	journals := []models.JournalEntry{
		{ID: "j1", Content: "no label", Confidence: 0.9, CreatedAt: base},
	}
	analyses := []models.Analysis{
		{ID: "a1", Text: "bad label", Sentiment: "ecstatic", Confidence: 0.9, CreatedAt: base},
	}

	got := Normalize(journals, analyses)

	for _, e := range got {
		if e.Sentiment != models.SentimentNeutral {
			t.Errorf("entry %s: expected neutral default, got %s", e.ID, e.Sentiment)
		}
		if e.Confidence != 0 {
			t.Errorf("entry %s: expected confidence 0 for defaulted sentiment, got %f", e.ID, e.Confidence)
		}
	}
}

func TestNormalizeDefaultsEmotions(t *testing.T) {
	got := Normalize([]models.JournalEntry{
		{ID: "j1", Content: "x", Sentiment: models.SentimentPositive, CreatedAt: base},
	}, nil)

	if got[0].Emotions == nil {
		t.Error("expected empty emotion slice, got nil")
	}
	if len(got[0].Emotions) != 0 {
		t.Errorf("expected no emotions, got %d", len(got[0].Emotions))
	}
}

func TestNormalizeDropsNothing(t *testing.T) {
	var journals []models.JournalEntry
	var analyses []models.Analysis
	for i := 0; i < 5; i++ {
		journals = append(journals, models.JournalEntry{ID: "j", CreatedAt: base.Add(time.Duration(i) * time.Hour)})
		analyses = append(analyses, models.Analysis{ID: "a", CreatedAt: base.Add(time.Duration(i) * time.Minute)})
	}

	if got := Normalize(journals, analyses); len(got) != 10 {
		t.Errorf("expected all 10 records kept, got %d", len(got))
	}
}

func TestNormalizeEmptyInputs(t *testing.T) {
	got := Normalize(nil, nil)
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d entries", len(got))
	}
}
