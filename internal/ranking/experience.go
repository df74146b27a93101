package ranking

// ExperienceBreakdown records the inputs behind an experience score.
type ExperienceBreakdown struct {
	CandidateYears int
	MinRequired    int
	Meets          bool
	Score          float64
}

// ScoreExperience maps the candidate's years of experience against the job's
// minimum. Meeting the bar yields a 0.8 baseline with a diminishing bonus of
// 0.1 per extra year capped at 0.3; falling short costs 0.2 per missing year,
// reaching zero at four years below the minimum.
func ScoreExperience(candidateYears, minYears int) (float64, ExperienceBreakdown) {
	var score float64

	if candidateYears >= minYears {
		bonus := float64(candidateYears-minYears) * 0.1
		if bonus > 0.3 {
			bonus = 0.3
		}
		score = 0.8 + bonus
		if score > 1.0 {
			score = 1.0
		}
	} else {
		penalty := float64(minYears-candidateYears) * 0.2
		score = 0.8 - penalty
		if score < 0.0 {
			score = 0.0
		}
	}

	return score, ExperienceBreakdown{
		CandidateYears: candidateYears,
		MinRequired:    minYears,
		Meets:          candidateYears >= minYears,
		Score:          score,
	}
}
