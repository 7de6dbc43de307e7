package analysis

import "github.com/moodcast/backend/internal/models"

// Achievements evaluates the fixed milestone set against a user's full entry
// history and streak summary. Progress is clamped to each target.
func Achievements(entries []models.Entry, streaks models.StreakSummary) []models.Achievement {
	positive := 0
	for _, e := range entries {
		if e.Sentiment == models.SentimentPositive {
			positive++
		}
	}

	return []models.Achievement{
		{
			ID:          "first_entry",
			Name:        "First Step",
			Description: "Created your first entry",
			Icon:        "🎯",
			Unlocked:    len(entries) > 0,
			Progress:    clamp(len(entries), 1),
			Target:      1,
		},
		{
			ID:          "week_streak",
			Name:        "Week Warrior",
			Description: "Maintain a 7-day positive streak",
			Icon:        "🔥",
			Unlocked:    streaks.LongestPositiveStreak >= 7,
			Progress:    clamp(streaks.LongestPositiveStreak, 7),
			Target:      7,
		},
		{
			ID:          "month_streak",
			Name:        "Monthly Master",
			Description: "Maintain a 30-day positive streak",
			Icon:        "⭐",
			Unlocked:    streaks.LongestPositiveStreak >= 30,
			Progress:    clamp(streaks.LongestPositiveStreak, 30),
			Target:      30,
		},
		{
			ID:          "hundred_entries",
			Name:        "Century Club",
			Description: "Create 100 entries",
			Icon:        "💯",
			Unlocked:    len(entries) >= 100,
			Progress:    clamp(len(entries), 100),
			Target:      100,
		},
		{
			ID:          "fifty_positive",
			Name:        "Positivity Champion",
			Description: "Record 50 positive entries",
			Icon:        "😊",
			Unlocked:    positive >= 50,
			Progress:    clamp(positive, 50),
			Target:      50,
		},
	}
}

func clamp(value, max int) int {
	if value > max {
		return max
	}
	return value
}
