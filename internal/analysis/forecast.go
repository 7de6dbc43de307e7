package analysis

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/moodcast/backend/internal/models"
)

// ForecastHorizonDays is the fixed length of the mood forecast
const ForecastHorizonDays = 7

// Sample-size cutoffs for the per-day estimate confidence
const (
	confidenceHighSamples   = 3
	confidenceMediumSamples = 1
)

// Thresholds classifies a 0-100 risk score into a risk level
type Thresholds struct {
	HighCutoff   int
	MediumCutoff int
}

// DefaultThresholds returns the standard cutoffs: high at 60, medium at 40
func DefaultThresholds() Thresholds {
	return Thresholds{HighCutoff: 60, MediumCutoff: 40}
}

// Level classifies a rounded risk score
func (t Thresholds) Level(score int) models.RiskLevel {
	switch {
	case score >= t.HighCutoff:
		return models.RiskLevelHigh
	case score >= t.MediumCutoff:
		return models.RiskLevelMedium
	default:
		return models.RiskLevelLow
	}
}

// Forecast emits one ForecastDay per day from today (offset 0) through
// today+6, looking up each day's weekday in the risk ranking. The risk score
// is the weekday's negative ratio scaled to 0-100 and rounded; the level is
// classified on the rounded score. Estimate confidence follows the weekday's
// sample size. The forecast is produced for any input: a weekday with no
// history scores 0 with low confidence, never an error.
func Forecast(risks []models.WeekdayRisk, today time.Time, thresholds Thresholds) []models.ForecastDay {
	days := make([]models.ForecastDay, 0, ForecastHorizonDays)

	for i := 0; i < ForecastHorizonDays; i++ {
		date := truncateToDay(today).AddDate(0, 0, i)
		risk := riskForWeekday(risks, date.Weekday())

		score := int(math.Round(risk.NegativeRatio * 100))

		days = append(days, models.ForecastDay{
			Date:       date,
			DayName:    risk.Name,
			RiskLevel:  thresholds.Level(score),
			RiskScore:  score,
			Confidence: sampleConfidence(risk.Total),
			Historical: models.WeekdayHistory{
				Positive: risk.Positive,
				Negative: risk.Negative,
				Neutral:  risk.Neutral,
				Total:    risk.Total,
			},
		})
	}

	return days
}

func sampleConfidence(samples int) models.Confidence {
	switch {
	case samples >= confidenceHighSamples:
		return models.ConfidenceHigh
	case samples >= confidenceMediumSamples:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}

// RecentTrend summarizes the negative-entry share of the most recent entries.
// Entries are expected in ascending time order; the last `window` entries are
// considered.
func RecentTrend(entries []models.Entry, window int) models.TrendSummary {
	recent := entries
	if len(recent) > window {
		recent = recent[len(recent)-window:]
	}

	summary := models.TrendSummary{
		Message: "Your mood has been relatively stable",
		Period:  fmt.Sprintf("%d days", window),
	}
	if len(recent) == 0 {
		return summary
	}

	negative := 0
	for _, e := range recent {
		if e.Sentiment == models.SentimentNegative {
			negative++
		}
	}
	percent := float64(negative) / float64(len(recent)) * 100
	summary.RecentNegativePercent = int(math.Round(percent))

	if percent > 60 {
		summary.Message = "You've been experiencing more challenges lately"
	} else if percent < 30 {
		summary.Message = "You've been doing well recently!"
	}

	return summary
}

// ForecastRecommendations builds the recommendation list accompanying a
// forecast: a callout for medium/high-risk days with coping strategies, or
// encouragement when the week ahead looks stable.
func ForecastRecommendations(forecast []models.ForecastDay) []string {
	var riskyDays []string
	for _, day := range forecast {
		if day.RiskLevel == models.RiskLevelHigh || day.RiskLevel == models.RiskLevelMedium {
			riskyDays = append(riskyDays, day.DayName)
		}
	}

	var recs []string
	if len(riskyDays) > 0 {
		recs = append(recs, fmt.Sprintf("You tend to have more difficult days on %s", strings.Join(riskyDays, ", ")))
		recs = append(recs, "Plan extra self-care activities on these days")
		recs = append(recs, CopingStrategies("stress")[:2]...)
		recs = append(recs, CopingStrategies("anxiety")[:2]...)
		return recs
	}

	recs = append(recs, "Your mood patterns look stable!")
	recs = append(recs, "Keep up your current self-care routine")
	recs = append(recs, CopingStrategies("general")[:3]...)
	return recs
}
