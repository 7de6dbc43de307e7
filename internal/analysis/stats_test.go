package analysis

import (
	"testing"
	"time"

	"github.com/moodcast/backend/internal/models"
)

func TestDailyTrendZeroFillsWindow(t *testing.T) {
	today := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	entries := []models.Entry{
		entryAt(today.AddDate(0, 0, -1), models.SentimentPositive),
		entryAt(today.AddDate(0, 0, -1).Add(time.Hour), models.SentimentNegative),
		entryAt(today, models.SentimentPositive),
	}

	got := DailyTrend(entries, 7, today)

	if len(got) != 7 {
		t.Fatalf("expected 7 points, got %d", len(got))
	}
	if got[0].Date != "2025-03-04" || got[6].Date != "2025-03-10" {
		t.Errorf("unexpected window bounds: %s .. %s", got[0].Date, got[6].Date)
	}
	for i := 0; i < 5; i++ {
		if got[i].Count != 0 {
			t.Errorf("day %s: expected zero-filled, got count %d", got[i].Date, got[i].Count)
		}
	}
	if got[5].Positive != 1 || got[5].Negative != 1 || got[5].Count != 2 {
		t.Errorf("unexpected counts for %s: %+v", got[5].Date, got[5])
	}
}

func TestDailyTrendScoreIsConfidenceWeightedMean(t *testing.T) {
	today := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	positive := entryAt(today, models.SentimentPositive)
	positive.Confidence = 0.8
	negative := entryAt(today.Add(time.Hour), models.SentimentNegative)
	negative.Confidence = 0.4

	got := DailyTrend([]models.Entry{positive, negative}, 1, today)

	want := (0.8 - 0.4) / 2
	if diff := got[0].Score - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected score %f, got %f", want, got[0].Score)
	}
}

func TestDailyTrendIgnoresEntriesOutsideWindow(t *testing.T) {
	today := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	entries := []models.Entry{
		entryAt(today.AddDate(0, 0, -30), models.SentimentNegative),
		entryAt(today, models.SentimentPositive),
	}

	got := DailyTrend(entries, 7, today)

	total := 0
	for _, p := range got {
		total += p.Count
	}
	if total != 1 {
		t.Errorf("expected only the in-window entry counted, got %d", total)
	}
}

func TestAverageConfidence(t *testing.T) {
	if got := AverageConfidence(nil); got != 0 {
		t.Errorf("expected 0 for empty input, got %f", got)
	}

	a := entryOnDay(0, models.SentimentPositive)
	a.Confidence = 0.6
	b := entryOnDay(1, models.SentimentNegative)
	b.Confidence = 1.0

	if got := AverageConfidence([]models.Entry{a, b}); got != 0.8 {
		t.Errorf("expected 0.8, got %f", got)
	}
}

func TestTimeOfDayPatterns(t *testing.T) {
	analyses := []models.Analysis{
		{Sentiment: models.SentimentPositive, Metadata: &models.AnalysisMetadata{TimeOfDay: "morning"}},
		{Sentiment: models.SentimentNegative, Metadata: &models.AnalysisMetadata{TimeOfDay: "evening"}},
		{Sentiment: models.SentimentNegative, Metadata: &models.AnalysisMetadata{TimeOfDay: "evening"}},
		{Sentiment: models.SentimentNeutral}, // no metadata, ignored
	}

	got := TimeOfDayPatterns(analyses)

	if got.Morning.Positive != 1 {
		t.Errorf("expected 1 positive morning, got %d", got.Morning.Positive)
	}
	if got.Evening.Negative != 2 {
		t.Errorf("expected 2 negative evenings, got %d", got.Evening.Negative)
	}
	if got.TotalAnalyzed != 3 {
		t.Errorf("expected 3 analyzed, got %d", got.TotalAnalyzed)
	}
}

func TestAchievements(t *testing.T) {
	var entries []models.Entry
	for i := 0; i < 12; i++ {
		entries = append(entries, entryOnDay(i, models.SentimentPositive))
	}
	streaks := CalculateStreaks(entries)

	got := Achievements(entries, streaks)

	if len(got) != 5 {
		t.Fatalf("expected 5 achievements, got %d", len(got))
	}
	byID := make(map[string]models.Achievement, len(got))
	for _, a := range got {
		byID[a.ID] = a
	}

	if !byID["first_entry"].Unlocked {
		t.Error("expected first_entry unlocked")
	}
	if !byID["week_streak"].Unlocked {
		t.Error("expected week_streak unlocked with a 12-day positive streak")
	}
	if byID["month_streak"].Unlocked {
		t.Error("expected month_streak locked")
	}
	if byID["month_streak"].Progress != 12 {
		t.Errorf("expected month_streak progress 12, got %d", byID["month_streak"].Progress)
	}
	if byID["hundred_entries"].Progress != 12 {
		t.Errorf("expected hundred_entries progress 12, got %d", byID["hundred_entries"].Progress)
	}
	if byID["fifty_positive"].Unlocked {
		t.Error("expected fifty_positive locked at 12 positives")
	}
}

func TestWeeklyInsightsEmpty(t *testing.T) {
	got := WeeklyInsights(nil)

	if got.TotalEntries != 0 {
		t.Errorf("expected 0 entries, got %d", got.TotalEntries)
	}
	if got.Summary != "Not enough data yet. Start journaling to see insights!" {
		t.Errorf("unexpected summary: %q", got.Summary)
	}
}

func TestWeeklyInsightsPositiveWeek(t *testing.T) {
	var entries []models.Entry
	for i := 0; i < 5; i++ {
		e := entryOnDay(i, models.SentimentPositive)
		e.Emotions = []models.EmotionScore{{Emotion: "joy", Score: 0.9}}
		entries = append(entries, e)
	}
	entries = append(entries, entryOnDay(5, models.SentimentNegative))

	got := WeeklyInsights(entries)

	if got.SentimentBreakdown.Positive != 5 || got.SentimentBreakdown.Negative != 1 {
		t.Errorf("unexpected breakdown: %+v", got.SentimentBreakdown)
	}
	if got.DominantEmotion != "joy" {
		t.Errorf("expected dominant emotion joy, got %q", got.DominantEmotion)
	}
	if got.Summary == "" {
		t.Error("expected a non-empty summary")
	}
	foundEmotionPattern := false
	for _, p := range got.Patterns {
		if p == "joy was your most frequent emotion this week" {
			foundEmotionPattern = true
		}
	}
	if !foundEmotionPattern {
		t.Errorf("expected dominant-emotion pattern, got %v", got.Patterns)
	}
}
