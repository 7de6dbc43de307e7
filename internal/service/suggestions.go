package service

// generateSuggestions returns actionable suggestions matched to a sentiment
// verdict. High-confidence verdicts unlock an extra suggestion.
func generateSuggestions(sentiment string, confidence float64) []string {
	var suggestions []string

	switch sentiment {
	case "positive":
		suggestions = append(suggestions,
			"Great mindset! Keep up the positive energy.",
			"Share your positivity with others today.",
			"Document what made you feel good to repeat it.",
		)
		if confidence > 0.9 {
			suggestions = append(suggestions, "Your enthusiasm is contagious! Consider mentoring someone.")
		}
	case "negative":
		suggestions = append(suggestions,
			"Take a short break and practice deep breathing.",
			"Try writing down what's bothering you to gain clarity.",
			"Reach out to a friend or loved one for support.",
			"Consider a short walk or light exercise to boost your mood.",
		)
		if confidence > 0.8 {
			suggestions = append(suggestions, "If these feelings persist, consider talking to a professional.")
		}
	default:
		suggestions = append(suggestions,
			"Maintain balance in your daily routine.",
			"Set small, achievable goals for today.",
			"Practice gratitude by noting three positive things.",
		)
	}

	return suggestions
}
