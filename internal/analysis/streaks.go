package analysis

import (
	"sort"
	"time"

	"github.com/moodcast/backend/internal/models"
)

// dayBucket groups a single calendar day's entries with the sentiment that
// won the majority vote for that day.
type dayBucket struct {
	date     time.Time
	dominant models.Sentiment
}

// CalculateStreaks walks a user's history day by day and reports the streak
// currently open, the longest positive and negative streaks ever recorded,
// and every closed streak in chronological order.
//
// A day's dominant sentiment is the strict majority among that day's entries;
// ties and empty days count as neutral. Neutral days are skipped entirely:
// they neither extend nor break a streak. The run still open at the end of
// the walk is the current streak and counts toward the longest-streak maxima.
func CalculateStreaks(entries []models.Entry) models.StreakSummary {
	summary := models.StreakSummary{StreakHistory: []models.Streak{}}
	if len(entries) == 0 {
		return summary
	}

	buckets := bucketByDay(entries)

	var run models.Streak
	for _, b := range buckets {
		if b.dominant == models.SentimentNeutral {
			continue
		}

		if run.Type != nil && *run.Type == b.dominant {
			run.Count++
			continue
		}

		if run.Count > 0 {
			summary.StreakHistory = append(summary.StreakHistory, run)
			updateLongest(&summary, run)
		}
		sentiment := b.dominant
		date := b.date
		run = models.Streak{Type: &sentiment, Count: 1, StartDate: &date}
	}

	if run.Count > 0 {
		summary.CurrentStreak = run
		updateLongest(&summary, run)
	}

	return summary
}

func updateLongest(summary *models.StreakSummary, run models.Streak) {
	switch *run.Type {
	case models.SentimentPositive:
		if run.Count > summary.LongestPositiveStreak {
			summary.LongestPositiveStreak = run.Count
		}
	case models.SentimentNegative:
		if run.Count > summary.LongestNegativeStreak {
			summary.LongestNegativeStreak = run.Count
		}
	}
}

// bucketByDay groups entries by local calendar date, in chronological order,
// and resolves each day's dominant sentiment by strict majority vote.
func bucketByDay(entries []models.Entry) []dayBucket {
	byDay := make(map[time.Time][]models.Entry)
	for _, e := range entries {
		day := truncateToDay(e.CreatedAt)
		byDay[day] = append(byDay[day], e)
	}

	days := make([]time.Time, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	buckets := make([]dayBucket, 0, len(days))
	for _, day := range days {
		buckets = append(buckets, dayBucket{
			date:     day,
			dominant: dominantSentiment(byDay[day]),
		})
	}
	return buckets
}

// dominantSentiment returns the strict-majority sentiment among the given
// entries, or neutral when no label outnumbers both of the others.
func dominantSentiment(entries []models.Entry) models.Sentiment {
	var positive, negative, neutral int
	for _, e := range entries {
		switch e.Sentiment {
		case models.SentimentPositive:
			positive++
		case models.SentimentNegative:
			negative++
		default:
			neutral++
		}
	}

	if positive > negative && positive > neutral {
		return models.SentimentPositive
	}
	if negative > positive && negative > neutral {
		return models.SentimentNegative
	}
	return models.SentimentNeutral
}

// truncateToDay drops the time-of-day component in the timestamp's location
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
