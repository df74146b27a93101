package filtering

import (
	"context"
	"strings"

	"github.com/spigell/cv-ranker/internal/candidate"
)

type skillFilter struct {
	skill string
}

// NewSkill creates a filter that keeps only candidates listing the given
// skill. An empty skill disables the filter.
func NewSkill(skill string) Filter {
	return &skillFilter{skill: strings.TrimSpace(skill)}
}

func (f *skillFilter) Name() string { return "skill" }

func (f *skillFilter) IsEnabled() bool { return f.skill != "" }

func (f *skillFilter) Apply(_ context.Context, c *candidate.Candidates) (*candidate.Candidates, Step, error) {
	initial := c.Len()
	left := c.FilterBySkill(f.skill)
	return left, Step{Initial: initial, Dropped: initial - left.Len(), Left: left.Len()}, nil
}

type minExperienceFilter struct {
	years int
}

// NewMinExperience creates a filter that keeps only candidates with at least
// the given years of experience. Zero or negative years disables the filter.
func NewMinExperience(years int) Filter {
	return &minExperienceFilter{years: years}
}

func (f *minExperienceFilter) Name() string { return "min_experience" }

func (f *minExperienceFilter) IsEnabled() bool { return f.years > 0 }

func (f *minExperienceFilter) Apply(_ context.Context, c *candidate.Candidates) (*candidate.Candidates, Step, error) {
	initial := c.Len()
	left := c.FilterByMinExperience(f.years)
	return left, Step{Initial: initial, Dropped: initial - left.Len(), Left: left.Len()}, nil
}
