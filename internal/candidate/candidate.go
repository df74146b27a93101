package candidate

import "strings"

const (
	CandidateIDField    = "ID"
	CandidateEmailField = "Email"
)

// Candidates is a read-only collection of candidate records.
type Candidates struct {
	Items []*Candidate
}

// Candidate describes one applicant as supplied by the data source. Records
// are value-like: the ranking and extraction code never mutates them.
type Candidate struct {
	ID              string   `json:"id,omitempty" mapstructure:"id"`
	Name            string   `json:"name,omitempty" mapstructure:"name"`
	Email           string   `json:"email,omitempty" mapstructure:"email"`
	Skills          []string `json:"skills,omitempty" mapstructure:"skills"`
	ExperienceYears int      `json:"experience_years,omitempty" mapstructure:"experience_years"`
	Education       string   `json:"education,omitempty" mapstructure:"education"`
	PreviousRoles   []string `json:"previous_roles,omitempty" mapstructure:"previous_roles"`
	Certifications  []string `json:"certifications,omitempty" mapstructure:"certifications"`
	Summary         string   `json:"summary,omitempty" mapstructure:"summary"`
}

func (c *Candidates) Len() int {
	return len(c.Items)
}

func (c *Candidates) FindByID(id string) *Candidate {
	for _, candidate := range c.Items {
		if candidate.ID == id {
			return candidate
		}
	}
	return nil
}

func (c *Candidates) Names() []string {
	names := make([]string, 0, len(c.Items))
	for _, candidate := range c.Items {
		names = append(names, candidate.Name)
	}
	return names
}

// FilterBySkill returns a fresh collection holding the candidates whose skill
// list contains the given skill as a case-insensitive substring. The receiver
// is left untouched.
func (c *Candidates) FilterBySkill(skill string) *Candidates {
	skill = strings.ToLower(skill)
	matched := &Candidates{}
	for _, candidate := range c.Items {
		if candidate.HasSkill(skill) {
			matched.Items = append(matched.Items, candidate)
		}
	}
	return matched
}

// FilterByMinExperience returns a fresh collection holding the candidates with
// at least the given years of experience.
func (c *Candidates) FilterByMinExperience(years int) *Candidates {
	matched := &Candidates{}
	for _, candidate := range c.Items {
		if candidate.ExperienceYears >= years {
			matched.Items = append(matched.Items, candidate)
		}
	}
	return matched
}

// HasSkill reports whether any of the candidate's skills contains the given
// string, case-insensitively.
func (c *Candidate) HasSkill(skill string) bool {
	skill = strings.ToLower(skill)
	for _, s := range c.Skills {
		if strings.Contains(strings.ToLower(s), skill) {
			return true
		}
	}
	return false
}

func (c *Candidate) GetStringField(name string) string {
	switch name {
	case CandidateIDField:
		return c.ID
	case CandidateEmailField:
		return c.Email
	default:
		return ""
	}
}
