package analysis

import (
	"time"

	"github.com/moodcast/backend/internal/models"
)

// SentimentDistribution counts entries per sentiment label
func SentimentDistribution(entries []models.Entry) models.SentimentBreakdown {
	var breakdown models.SentimentBreakdown
	for _, e := range entries {
		switch e.Sentiment {
		case models.SentimentPositive:
			breakdown.Positive++
		case models.SentimentNegative:
			breakdown.Negative++
		default:
			breakdown.Neutral++
		}
	}
	return breakdown
}

// AverageConfidence returns the mean classifier confidence, 0 for no entries
func AverageConfidence(entries []models.Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var sum float64
	for _, e := range entries {
		sum += e.Confidence
	}
	return sum / float64(len(entries))
}

// DailyTrend produces one TrendPoint per calendar day for the `days` days
// ending at today, oldest first. Days without entries are zero-filled so the
// series always has exactly `days` points. The per-day score is the mean of
// confidence-weighted sentiment values (+confidence for positive entries,
// -confidence for negative, 0 for neutral).
func DailyTrend(entries []models.Entry, days int, today time.Time) []models.TrendPoint {
	if days <= 0 {
		return []models.TrendPoint{}
	}

	points := make([]models.TrendPoint, days)
	index := make(map[string]int, days)
	start := truncateToDay(today).AddDate(0, 0, -(days - 1))
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		points[i] = models.TrendPoint{Date: date}
		index[date] = i
	}

	for _, e := range entries {
		i, ok := index[truncateToDay(e.CreatedAt).Format("2006-01-02")]
		if !ok {
			continue
		}
		switch e.Sentiment {
		case models.SentimentPositive:
			points[i].Positive++
			points[i].Score += e.Confidence
		case models.SentimentNegative:
			points[i].Negative++
			points[i].Score -= e.Confidence
		default:
			points[i].Neutral++
		}
		points[i].Count++
	}

	for i := range points {
		if points[i].Count > 0 {
			points[i].Score /= float64(points[i].Count)
		}
	}

	return points
}

// TimeOfDayPatterns buckets analyses by their recorded part of day. Only
// analyses carrying time-of-day metadata contribute; journal entries have no
// such metadata and are ignored here.
func TimeOfDayPatterns(analyses []models.Analysis) models.TimeOfDayPatterns {
	var patterns models.TimeOfDayPatterns
	for _, a := range analyses {
		if a.Metadata == nil {
			continue
		}
		var bucket *models.SentimentBreakdown
		switch a.Metadata.TimeOfDay {
		case "morning":
			bucket = &patterns.Morning
		case "afternoon":
			bucket = &patterns.Afternoon
		case "evening":
			bucket = &patterns.Evening
		default:
			continue
		}
		switch a.Sentiment {
		case models.SentimentPositive:
			bucket.Positive++
		case models.SentimentNegative:
			bucket.Negative++
		default:
			bucket.Neutral++
		}
		patterns.TotalAnalyzed++
	}
	return patterns
}
