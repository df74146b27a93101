package ranking

import "strings"

// RolesBreakdown records the match count behind a role relevance score.
type RolesBreakdown struct {
	PreviousRoles []string
	JobTitle      string
	Matches       int
	Score         float64
}

// ScoreRoles measures lexical overlap between a candidate's previous job
// titles and the target job title. A role counts as a match when any
// job-title keyword appears as a whole token in it. One match scores 0.6 plus
// 0.2 per match capped at 1.0; no matches at all still earn a flat 0.3 for
// having professional history.
func ScoreRoles(previousRoles []string, jobTitle string) (float64, RolesBreakdown) {
	keywords := strings.Fields(strings.ToLower(jobTitle))

	matches := 0
	for _, role := range previousRoles {
		if roleMatches(role, keywords) {
			matches++
		}
	}

	var score float64
	if matches > 0 {
		score = 0.6 + float64(matches)*0.2
		if score > 1.0 {
			score = 1.0
		}
	} else {
		score = 0.3
	}

	return score, RolesBreakdown{
		PreviousRoles: previousRoles,
		JobTitle:      jobTitle,
		Matches:       matches,
		Score:         score,
	}
}

func roleMatches(role string, keywords []string) bool {
	tokens := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(role)) {
		tokens[word] = struct{}{}
	}
	for _, keyword := range keywords {
		if _, ok := tokens[keyword]; ok {
			return true
		}
	}
	return false
}
