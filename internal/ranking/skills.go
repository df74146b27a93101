package ranking

import "strings"

// SkillsBreakdown records the counts behind a skills match score.
type SkillsBreakdown struct {
	RequiredMatches  int
	RequiredTotal    int
	RequiredScore    float64
	PreferredMatches int
	PreferredTotal   int
	PreferredScore   float64
	Score            float64
}

// MatchSkills computes the fractional overlap between a candidate's skills
// and a job's required and preferred skill lists. Matching is exact string
// equality after lower-casing. Required skills carry 70% of the weight,
// preferred skills 30%. An empty list scores 0 for its side.
func MatchSkills(candidateSkills, requiredSkills, preferredSkills []string) (float64, SkillsBreakdown) {
	have := toLowerSet(candidateSkills)

	requiredMatches := countMatches(have, requiredSkills)
	requiredScore := ratio(requiredMatches, len(requiredSkills))

	preferredMatches := countMatches(have, preferredSkills)
	preferredScore := ratio(preferredMatches, len(preferredSkills))

	score := requiredScore*0.7 + preferredScore*0.3

	return score, SkillsBreakdown{
		RequiredMatches:  requiredMatches,
		RequiredTotal:    len(requiredSkills),
		RequiredScore:    requiredScore,
		PreferredMatches: preferredMatches,
		PreferredTotal:   len(preferredSkills),
		PreferredScore:   preferredScore,
		Score:            score,
	}
}

func toLowerSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		set[strings.ToLower(skill)] = struct{}{}
	}
	return set
}

func countMatches(have map[string]struct{}, wanted []string) int {
	matches := 0
	for _, skill := range wanted {
		if _, ok := have[strings.ToLower(skill)]; ok {
			matches++
		}
	}
	return matches
}

// ratio guards the empty-list case: a requirement list with no entries
// contributes 0, not a division error.
func ratio(matches, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(matches) / float64(total)
}
