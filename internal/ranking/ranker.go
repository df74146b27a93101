// Package ranking scores candidates against a job description on four
// weighted criteria and produces an explainable, stably ordered result list.
package ranking

import (
	"sort"

	"github.com/spigell/cv-ranker/internal/candidate"

	"go.uber.org/zap"
)

// Criterion weights for the overall score. Fixed design constants, not
// configurable per call.
const (
	skillsWeight     = 0.4
	experienceWeight = 0.25
	educationWeight  = 0.20
	rolesWeight      = 0.15
)

// Scores holds the four criterion sub-scores, each in [0,1].
type Scores struct {
	Skills        float64
	Experience    float64
	Education     float64
	RoleRelevance float64
}

// Breakdowns holds the explanatory records behind the sub-scores.
type Breakdowns struct {
	Skills     SkillsBreakdown
	Experience ExperienceBreakdown
	Education  EducationBreakdown
	Roles      RolesBreakdown
}

// Result is one candidate's evaluation against a job. A fresh list of
// results, ordered by Overall descending, is built on every ranking call.
type Result struct {
	Candidate  *candidate.Candidate
	Overall    float64
	Scores     Scores
	Breakdowns Breakdowns
}

// Ranker evaluates candidates from an injected source. The source is
// read-only; the ranker keeps no state between calls and is safe for
// concurrent use.
type Ranker struct {
	source candidate.Source
	logger *zap.Logger
}

func NewRanker(source candidate.Source, logger *zap.Logger) *Ranker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ranker{source: source, logger: logger}
}

// Rank evaluates every candidate in the source against the job.
func (r *Ranker) Rank(job *candidate.JobDescription) []*Result {
	return r.RankCandidates(r.source.Candidates(), job)
}

// RankCandidates evaluates the given candidates against the job and returns
// one result per candidate, sorted by overall score descending. The sort is
// stable: candidates with equal scores keep their input order. No candidate
// is filtered out; trimming to top-N is the caller's concern.
func (r *Ranker) RankCandidates(candidates *candidate.Candidates, job *candidate.JobDescription) []*Result {
	results := make([]*Result, 0, candidates.Len())

	for _, c := range candidates.Items {
		results = append(results, Evaluate(c, job))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Overall > results[j].Overall
	})

	r.logger.Debug("ranked candidates",
		zap.String("job_title", job.Title),
		zap.Int("count", len(results)),
	)

	return results
}

// Evaluate scores a single candidate against a job. Pure function; never
// fails, every sub-score and the overall score stay within [0,1].
func Evaluate(c *candidate.Candidate, job *candidate.JobDescription) *Result {
	skillsScore, skillsBreakdown := MatchSkills(c.Skills, job.RequiredSkills, job.PreferredSkills)
	experienceScore, experienceBreakdown := ScoreExperience(c.ExperienceYears, job.MinExperience)
	educationScore, educationBreakdown := ScoreEducation(c.Education, job.EducationRequirements)
	rolesScore, rolesBreakdown := ScoreRoles(c.PreviousRoles, job.Title)

	overall := skillsScore*skillsWeight +
		experienceScore*experienceWeight +
		educationScore*educationWeight +
		rolesScore*rolesWeight

	return &Result{
		Candidate: c,
		Overall:   overall,
		Scores: Scores{
			Skills:        skillsScore,
			Experience:    experienceScore,
			Education:     educationScore,
			RoleRelevance: rolesScore,
		},
		Breakdowns: Breakdowns{
			Skills:     skillsBreakdown,
			Experience: experienceBreakdown,
			Education:  educationBreakdown,
			Roles:      rolesBreakdown,
		},
	}
}
