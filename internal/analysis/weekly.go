package analysis

import (
	"fmt"
	"math"

	"github.com/moodcast/backend/internal/models"
)

// Thresholds for calling out a day in the weekly pattern list
const (
	patternDayRatio      = 0.6
	dominantEmotionFloor = 3
)

// WeeklyInsights summarizes one week of entries: sentiment breakdown,
// dominant emotion, best and worst days, and derived pattern and
// recommendation strings. An empty input yields the not-enough-data summary.
func WeeklyInsights(entries []models.Entry) models.WeeklyInsights {
	insights := models.WeeklyInsights{
		Patterns:        []string{},
		Recommendations: []string{},
	}

	if len(entries) == 0 {
		insights.Summary = "Not enough data yet. Start journaling to see insights!"
		return insights
	}

	insights.TotalEntries = len(entries)
	insights.SentimentBreakdown = SentimentDistribution(entries)

	emotionCounts := make(map[string]int)
	for _, e := range entries {
		for _, emo := range e.Emotions {
			emotionCounts[emo.Emotion]++
		}
	}
	dominantEmotion, dominantCount := "", 0
	for emotion, count := range emotionCounts {
		if count > dominantCount || (count == dominantCount && emotion < dominantEmotion) {
			dominantEmotion = emotion
			dominantCount = count
		}
	}
	insights.DominantEmotion = dominantEmotion

	bestDay, worstDay, bestRatio, worstRatio := bestAndWorstDays(entries)
	insights.BestDay = bestDay
	insights.WorstDay = worstDay

	breakdown := insights.SentimentBreakdown
	total := len(entries)
	switch {
	case breakdown.Positive > breakdown.Negative+breakdown.Neutral:
		percent := int(math.Round(float64(breakdown.Positive) / float64(total) * 100))
		insights.Summary = fmt.Sprintf("Great week! You had %d positive entries (%d%%). Keep up the positive momentum!", breakdown.Positive, percent)
	case breakdown.Negative > breakdown.Positive:
		insights.Summary = fmt.Sprintf("This week was challenging with %d negative entries. Remember, it's okay to have difficult days. Consider reaching out for support.", breakdown.Negative)
	default:
		insights.Summary = fmt.Sprintf("Balanced week with a mix of emotions. You had %d positive and %d negative entries.", breakdown.Positive, breakdown.Negative)
	}

	if bestDay != "" && bestRatio > patternDayRatio {
		insights.Patterns = append(insights.Patterns, fmt.Sprintf("You tend to feel best on %ss", bestDay))
	}
	if worstDay != "" && worstRatio > patternDayRatio {
		insights.Patterns = append(insights.Patterns, fmt.Sprintf("%ss seem to be more challenging for you", worstDay))
	}
	if dominantEmotion != "" && dominantCount > dominantEmotionFloor {
		insights.Patterns = append(insights.Patterns, fmt.Sprintf("%s was your most frequent emotion this week", dominantEmotion))
	}

	if breakdown.Negative > breakdown.Positive {
		insights.Recommendations = append(insights.Recommendations,
			"Consider scheduling activities you enjoy on difficult days",
			"Practice self-care routines to boost your mood",
			"Connect with friends or loved ones for support",
		)
	} else {
		insights.Recommendations = append(insights.Recommendations,
			"Continue your positive habits and routines",
			"Share your positivity with others",
			"Document what's working well for you",
		)
	}

	return insights
}

// bestAndWorstDays finds the weekday names with the highest positive and
// negative ratios among days that actually have entries.
func bestAndWorstDays(entries []models.Entry) (best, worst string, bestRatio, worstRatio float64) {
	type dayCounts struct {
		positive, negative, total int
	}
	byDay := make(map[int]*dayCounts)
	for _, e := range entries {
		day := int(e.CreatedAt.Weekday())
		if byDay[day] == nil {
			byDay[day] = &dayCounts{}
		}
		switch e.Sentiment {
		case models.SentimentPositive:
			byDay[day].positive++
		case models.SentimentNegative:
			byDay[day].negative++
		}
		byDay[day].total++
	}

	for day := 0; day < 7; day++ {
		counts := byDay[day]
		if counts == nil {
			continue
		}
		positiveRatio := float64(counts.positive) / float64(counts.total)
		negativeRatio := float64(counts.negative) / float64(counts.total)
		if positiveRatio > bestRatio {
			bestRatio = positiveRatio
			best = weekdayNames[day]
		}
		if negativeRatio > worstRatio {
			worstRatio = negativeRatio
			worst = weekdayNames[day]
		}
	}
	return best, worst, bestRatio, worstRatio
}
