package analysis

import (
	"sort"
	"time"

	"github.com/moodcast/backend/internal/models"
)

var weekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// WeekdayRisks buckets entries by weekday and ranks the seven weekdays by
// their historical negative-entry ratio, most negative first. Every weekday
// is always present; a weekday with no entries has ratio 0. Ties keep the
// Sunday-first weekday order.
func WeekdayRisks(entries []models.Entry) []models.WeekdayRisk {
	risks := make([]models.WeekdayRisk, 7)
	for i := range risks {
		risks[i] = models.WeekdayRisk{Weekday: i, Name: weekdayNames[i]}
	}

	for _, e := range entries {
		day := int(e.CreatedAt.Weekday())
		switch e.Sentiment {
		case models.SentimentPositive:
			risks[day].Positive++
		case models.SentimentNegative:
			risks[day].Negative++
		default:
			risks[day].Neutral++
		}
		risks[day].Total++
	}

	for i := range risks {
		if risks[i].Total > 0 {
			risks[i].NegativeRatio = float64(risks[i].Negative) / float64(risks[i].Total)
		}
	}

	sort.SliceStable(risks, func(i, j int) bool {
		return risks[i].NegativeRatio > risks[j].NegativeRatio
	})

	return risks
}

// riskForWeekday finds the entry for a given weekday in a ranked risk list
func riskForWeekday(risks []models.WeekdayRisk, weekday time.Weekday) models.WeekdayRisk {
	for _, r := range risks {
		if r.Weekday == int(weekday) {
			return r
		}
	}
	return models.WeekdayRisk{Weekday: int(weekday), Name: weekdayNames[int(weekday)]}
}
