package analysis

import (
	"reflect"
	"testing"
	"time"

	"github.com/moodcast/backend/internal/models"
)

func TestCalculateStreaksEmptyInput(t *testing.T) {
	got := CalculateStreaks(nil)

	if got.CurrentStreak.Type != nil {
		t.Errorf("expected nil current streak type, got %v", *got.CurrentStreak.Type)
	}
	if got.CurrentStreak.Count != 0 {
		t.Errorf("expected current streak count 0, got %d", got.CurrentStreak.Count)
	}
	if got.CurrentStreak.StartDate != nil {
		t.Errorf("expected nil start date, got %v", got.CurrentStreak.StartDate)
	}
	if got.LongestPositiveStreak != 0 || got.LongestNegativeStreak != 0 {
		t.Errorf("expected zero longest streaks, got %d/%d", got.LongestPositiveStreak, got.LongestNegativeStreak)
	}
	if len(got.StreakHistory) != 0 {
		t.Errorf("expected empty history, got %d entries", len(got.StreakHistory))
	}
}

func TestCalculateStreaksTieDayIsNeutral(t *testing.T) {
	// Two entries on the same day, one positive one negative: the day's
	// dominant sentiment is neutral and no streak forms.
	entries := []models.Entry{
		entryAt(base, models.SentimentPositive),
		entryAt(base.Add(2*time.Hour), models.SentimentNegative),
	}

	got := CalculateStreaks(entries)

	if got.CurrentStreak.Type != nil || got.CurrentStreak.Count != 0 || got.CurrentStreak.StartDate != nil {
		t.Errorf("expected empty current streak, got %+v", got.CurrentStreak)
	}
}

func TestCalculateStreaksThreePositiveDays(t *testing.T) {
	entries := []models.Entry{
		entryOnDay(0, models.SentimentPositive),
		entryOnDay(1, models.SentimentPositive),
		entryOnDay(2, models.SentimentPositive),
	}

	got := CalculateStreaks(entries)

	if got.CurrentStreak.Type == nil || *got.CurrentStreak.Type != models.SentimentPositive {
		t.Fatalf("expected positive current streak, got %+v", got.CurrentStreak)
	}
	if got.CurrentStreak.Count != 3 {
		t.Errorf("expected current streak count 3, got %d", got.CurrentStreak.Count)
	}
	wantStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	if got.CurrentStreak.StartDate == nil || !got.CurrentStreak.StartDate.Equal(wantStart) {
		t.Errorf("expected start date %v, got %v", wantStart, got.CurrentStreak.StartDate)
	}
	if got.LongestPositiveStreak != 3 {
		t.Errorf("expected longest positive streak 3, got %d", got.LongestPositiveStreak)
	}
	if got.LongestNegativeStreak != 0 {
		t.Errorf("expected longest negative streak 0, got %d", got.LongestNegativeStreak)
	}
}

func TestCalculateStreaksSingleDay(t *testing.T) {
	got := CalculateStreaks([]models.Entry{entryOnDay(0, models.SentimentNegative)})

	if got.CurrentStreak.Type == nil || *got.CurrentStreak.Type != models.SentimentNegative {
		t.Fatalf("expected negative current streak, got %+v", got.CurrentStreak)
	}
	if got.CurrentStreak.Count != 1 {
		t.Errorf("expected count 1, got %d", got.CurrentStreak.Count)
	}
	if got.LongestNegativeStreak != 1 || got.LongestPositiveStreak != 0 {
		t.Errorf("expected longest 1/0, got %d/%d", got.LongestNegativeStreak, got.LongestPositiveStreak)
	}
}

func TestCalculateStreaksNeutralDaySkippedNotBroken(t *testing.T) {
	// Positive, neutral, positive: the neutral day neither extends nor breaks
	// the run, so the streak spans both positive days.
	entries := []models.Entry{
		entryOnDay(0, models.SentimentPositive),
		entryOnDay(1, models.SentimentNeutral),
		entryOnDay(2, models.SentimentPositive),
	}

	got := CalculateStreaks(entries)

	if got.CurrentStreak.Count != 2 {
		t.Errorf("expected streak to continue across neutral day with count 2, got %d", got.CurrentStreak.Count)
	}
	if got.LongestPositiveStreak != 2 {
		t.Errorf("expected longest positive 2, got %d", got.LongestPositiveStreak)
	}
}

func TestCalculateStreaksSentimentFlipClosesRun(t *testing.T) {
	entries := []models.Entry{
		entryOnDay(0, models.SentimentPositive),
		entryOnDay(1, models.SentimentPositive),
		entryOnDay(2, models.SentimentNegative),
		entryOnDay(3, models.SentimentNegative),
		entryOnDay(4, models.SentimentNegative),
	}

	got := CalculateStreaks(entries)

	if len(got.StreakHistory) != 1 {
		t.Fatalf("expected 1 closed streak in history, got %d", len(got.StreakHistory))
	}
	closed := got.StreakHistory[0]
	if closed.Type == nil || *closed.Type != models.SentimentPositive || closed.Count != 2 {
		t.Errorf("expected closed positive streak of 2, got %+v", closed)
	}
	if got.CurrentStreak.Type == nil || *got.CurrentStreak.Type != models.SentimentNegative || got.CurrentStreak.Count != 3 {
		t.Errorf("expected current negative streak of 3, got %+v", got.CurrentStreak)
	}
	if got.LongestPositiveStreak != 2 || got.LongestNegativeStreak != 3 {
		t.Errorf("expected longest 2/3, got %d/%d", got.LongestPositiveStreak, got.LongestNegativeStreak)
	}
}

func TestCalculateStreaksMultipleEntriesPerDayMajorityVote(t *testing.T) {
	// Two positive and one negative on the same day: positive wins the vote.
	entries := []models.Entry{
		entryAt(base, models.SentimentPositive),
		entryAt(base.Add(time.Hour), models.SentimentPositive),
		entryAt(base.Add(2*time.Hour), models.SentimentNegative),
	}

	got := CalculateStreaks(entries)

	if got.CurrentStreak.Type == nil || *got.CurrentStreak.Type != models.SentimentPositive {
		t.Errorf("expected positive day from majority vote, got %+v", got.CurrentStreak)
	}
}

func TestCalculateStreaksInputOrderIrrelevant(t *testing.T) {
	ordered := []models.Entry{
		entryOnDay(0, models.SentimentPositive),
		entryOnDay(1, models.SentimentPositive),
		entryOnDay(2, models.SentimentNegative),
	}
	shuffled := []models.Entry{ordered[2], ordered[0], ordered[1]}

	if !reflect.DeepEqual(CalculateStreaks(ordered), CalculateStreaks(shuffled)) {
		t.Error("expected identical results regardless of input order")
	}
}

func TestCalculateStreaksLongestBoundedByNonNeutralDays(t *testing.T) {
	sentiments := []models.Sentiment{
		models.SentimentPositive, models.SentimentPositive, models.SentimentNeutral,
		models.SentimentNegative, models.SentimentPositive, models.SentimentNegative,
		models.SentimentNegative, models.SentimentNeutral, models.SentimentPositive,
	}
	entries := make([]models.Entry, 0, len(sentiments))
	nonNeutral := 0
	for i, s := range sentiments {
		entries = append(entries, entryOnDay(i, s))
		if s != models.SentimentNeutral {
			nonNeutral++
		}
	}

	got := CalculateStreaks(entries)

	if got.LongestPositiveStreak+got.LongestNegativeStreak > nonNeutral {
		t.Errorf("longest streaks %d+%d exceed %d non-neutral days",
			got.LongestPositiveStreak, got.LongestNegativeStreak, nonNeutral)
	}
}

func TestCalculateStreaksIdempotent(t *testing.T) {
	entries := []models.Entry{
		entryOnDay(0, models.SentimentPositive),
		entryOnDay(1, models.SentimentNegative),
		entryOnDay(2, models.SentimentNegative),
	}

	first := CalculateStreaks(entries)
	second := CalculateStreaks(entries)

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical output from repeated calls")
	}
}
