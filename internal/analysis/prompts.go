package analysis

// promptTemplates holds the journaling prompts offered when a topic category
// has gone unmentioned. Indexed by category name from topicOrder.
var promptTemplates = map[string][]string{
	"goals": {
		"You haven't written about your goals lately. What's one thing you're working toward?",
		"It's been a while since you reflected on your aspirations. What goal would you like to focus on this week?",
		"What's a dream or ambition you've been thinking about recently?",
	},
	"gratitude": {
		"You haven't written about gratitude recently. What are three things you're grateful for today?",
		"Take a moment to appreciate the good things. What brought you joy this week?",
		"What's something small that made you smile recently?",
	},
	"relationships": {
		"You haven't written about your relationships lately. How are your connections with friends and family?",
		"Who has been important to you recently, and why?",
		"What's a meaningful conversation you've had this week?",
	},
	"challenges": {
		"What's a challenge you're currently facing, and how are you handling it?",
		"Is there something difficult you'd like to work through by writing about it?",
		"What obstacle have you overcome recently, and what did you learn?",
	},
	"selfcare": {
		"You haven't written about self-care lately. How have you been taking care of yourself?",
		"What's one thing you could do today to nurture your well-being?",
		"How have your sleep, exercise, and relaxation been this week?",
	},
	"work": {
		"You haven't written about work recently. How are things going professionally?",
		"What's a recent accomplishment or challenge at work?",
		"How do you feel about your current work-life balance?",
	},
	"emotions": {
		"How are you really feeling today? Take time to explore your emotions.",
		"What emotion has been most present for you this week?",
		"Describe your emotional state right now without judgment.",
	},
	"growth": {
		"What's something new you've learned about yourself recently?",
		"How have you grown or changed in the past month?",
		"What's an area of your life where you'd like to see improvement?",
	},
}

// copingStrategies is keyed by mood; unknown moods fall back to "general"
var copingStrategies = map[string][]string{
	"stress": {
		"Practice deep breathing: 4 seconds in, 7 seconds hold, 8 seconds out",
		"Take a 10-minute walk outside",
		"Write down 3 things you can control right now",
		"Try progressive muscle relaxation",
		"Listen to calming music or nature sounds",
	},
	"anxiety": {
		"Use the 5-4-3-2-1 grounding technique",
		"Challenge anxious thoughts with evidence",
		"Practice mindfulness meditation for 5 minutes",
		"Reach out to a trusted friend",
		"Engage in physical activity to release tension",
	},
	"sadness": {
		"Allow yourself to feel without judgment",
		"Do something kind for yourself",
		"Connect with someone who cares about you",
		"Engage in a hobby you enjoy",
		"Write about what you're grateful for",
	},
	"general": {
		"Maintain a regular sleep schedule",
		"Eat nutritious meals",
		"Limit caffeine and alcohol",
		"Practice self-compassion",
		"Set small, achievable goals for the day",
	},
}

// PromptFor picks a prompt template for the given category. The pick index
// selects deterministically among the category's templates; callers supply
// a rotating or random value. Unknown categories fall back to emotions.
func PromptFor(category string, pick int) string {
	templates, ok := promptTemplates[category]
	if !ok {
		templates = promptTemplates["emotions"]
	}
	if pick < 0 {
		pick = -pick
	}
	return templates[pick%len(templates)]
}

// CopingStrategies returns the strategy list for a mood, falling back to the
// general list for unrecognized moods.
func CopingStrategies(mood string) []string {
	if strategies, ok := copingStrategies[mood]; ok {
		return strategies
	}
	return copingStrategies["general"]
}
