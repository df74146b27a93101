package ranking

import "strings"

// EducationBreakdown records the degree levels behind an education score.
type EducationBreakdown struct {
	CandidateEducation string
	RequiredEducation  string
	CandidateLevel     int
	RequiredLevel      int
	Meets              bool
	Score              float64
}

// LevelParser maps a free-text education string to an ordinal degree level.
// The default implementation is a substring scan; it lives behind this
// interface so a stricter tokenizer can replace it without touching the
// scoring weights.
type LevelParser interface {
	Level(text string) int
}

// degreeLevels assigns ordinal levels to degree keywords. Highest keyword
// found wins; no keyword means level 0.
var degreeLevels = map[string]int{
	"phd":       4,
	"doctorate": 4,
	"ms":        3,
	"master":    3,
	"masters":   3,
	"bs":        2,
	"bachelor":  2,
	"bachelors": 2,
	"associate": 1,
	"diploma":   1,
}

// SubstringLevelParser is the default LevelParser. The scan is substring
// containment over the lower-cased text, so short keywords like "bs" can
// match inside unrelated words; callers supply well-formed requirement text.
type SubstringLevelParser struct{}

func (SubstringLevelParser) Level(text string) int {
	text = strings.ToLower(text)
	level := 0
	for keyword, l := range degreeLevels {
		if strings.Contains(text, keyword) && l > level {
			level = l
		}
	}
	return level
}

// ScoreEducation compares a candidate's education string against the job's
// requirement using the default parser.
func ScoreEducation(candidateEducation, requiredEducation string) (float64, EducationBreakdown) {
	return ScoreEducationWith(SubstringLevelParser{}, candidateEducation, requiredEducation)
}

// ScoreEducationWith compares degree levels produced by the given parser.
// Meeting the requirement yields 0.8 plus 0.1 per level above it, capped at
// 1.0; each missing level costs 0.2 down to zero.
func ScoreEducationWith(parser LevelParser, candidateEducation, requiredEducation string) (float64, EducationBreakdown) {
	candidateLevel := parser.Level(candidateEducation)
	requiredLevel := parser.Level(requiredEducation)

	var score float64
	if candidateLevel >= requiredLevel {
		score = 0.8 + float64(candidateLevel-requiredLevel)*0.1
	} else {
		score = 0.8 - float64(requiredLevel-candidateLevel)*0.2
		if score < 0.0 {
			score = 0.0
		}
	}
	if score > 1.0 {
		score = 1.0
	}

	return score, EducationBreakdown{
		CandidateEducation: candidateEducation,
		RequiredEducation:  requiredEducation,
		CandidateLevel:     candidateLevel,
		RequiredLevel:      requiredLevel,
		Meets:              candidateLevel >= requiredLevel,
		Score:              score,
	}
}
