package analysis

import (
	"regexp"
	"sort"
	"strings"

	"github.com/moodcast/backend/internal/models"
)

// topicOrder fixes the declaration order used for tie-breaking in the gap
// ranking. It must list every key of topicKeywords exactly once.
var topicOrder = []string{
	"goals", "gratitude", "relationships", "challenges",
	"selfcare", "work", "emotions", "growth",
}

// topicKeywords maps each tracked topic category to the literal keywords
// counted in entry text. A keyword matches whole words with suffix tolerance,
// so "goal" also counts "goals" and "plan" counts "planning".
var topicKeywords = map[string][]string{
	"goals":         {"goal", "achieve", "accomplish", "plan", "future", "aspire", "dream", "ambition", "target"},
	"gratitude":     {"grateful", "thankful", "appreciate", "blessing", "fortunate", "lucky", "thank"},
	"relationships": {"friend", "family", "partner", "relationship", "love", "social", "connect", "together"},
	"challenges":    {"problem", "difficult", "struggle", "challenge", "hard", "tough", "obstacle", "issue"},
	"selfcare":      {"exercise", "sleep", "rest", "relax", "meditation", "health", "wellness", "care"},
	"work":          {"work", "job", "career", "project", "task", "meeting", "deadline", "professional"},
	"emotions":      {"feel", "emotion", "mood", "happy", "sad", "angry", "anxious", "excited"},
	"growth":        {"learn", "grow", "improve", "develop", "progress", "better", "change", "evolve"},
}

// topicPatterns holds one compiled pattern per keyword, keyed by category
var topicPatterns = compileTopicPatterns()

func compileTopicPatterns() map[string][]*regexp.Regexp {
	patterns := make(map[string][]*regexp.Regexp, len(topicKeywords))
	for category, keywords := range topicKeywords {
		compiled := make([]*regexp.Regexp, 0, len(keywords))
		for _, kw := range keywords {
			compiled = append(compiled, regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)+`\w*`))
		}
		patterns[category] = compiled
	}
	return patterns
}

// TopicGaps counts keyword mentions per topic category across all entry text
// and ranks the categories by scarcity, least-mentioned first. Ties keep the
// fixed category declaration order. The head of the result drives prompt
// selection.
func TopicGaps(entries []models.Entry) []models.TopicGap {
	var sb strings.Builder
	for i, e := range entries {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strings.ToLower(e.Text))
	}
	text := sb.String()

	gaps := make([]models.TopicGap, 0, len(topicOrder))
	for _, category := range topicOrder {
		count := 0
		for _, pattern := range topicPatterns[category] {
			count += len(pattern.FindAllStringIndex(text, -1))
		}
		gaps = append(gaps, models.TopicGap{Category: category, Count: count})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Count < gaps[j].Count
	})

	return gaps
}

// TopicCategories returns the tracked category names in declaration order
func TopicCategories() []string {
	out := make([]string, len(topicOrder))
	copy(out, topicOrder)
	return out
}
