package candidate

// Jobs is a read-only collection of job descriptions.
type Jobs struct {
	Items []*JobDescription
}

// JobDescription describes one opening the candidates are ranked against.
// Immutable input, same as Candidate.
type JobDescription struct {
	ID                    string   `json:"id,omitempty" mapstructure:"id"`
	Title                 string   `json:"title,omitempty" mapstructure:"title"`
	Company               string   `json:"company,omitempty" mapstructure:"company"`
	Description           string   `json:"description,omitempty" mapstructure:"description"`
	RequiredSkills        []string `json:"required_skills,omitempty" mapstructure:"required_skills"`
	PreferredSkills       []string `json:"preferred_skills,omitempty" mapstructure:"preferred_skills"`
	MinExperience         int      `json:"min_experience,omitempty" mapstructure:"min_experience"`
	EducationRequirements string   `json:"education_requirements,omitempty" mapstructure:"education_requirements"`
	Responsibilities      []string `json:"responsibilities,omitempty" mapstructure:"responsibilities"`
}

func (j *Jobs) Len() int {
	return len(j.Items)
}

func (j *Jobs) FindByID(id string) *JobDescription {
	for _, job := range j.Items {
		if job.ID == id {
			return job
		}
	}
	return nil
}

func (j *Jobs) Titles() []string {
	titles := make([]string, 0, len(j.Items))
	for _, job := range j.Items {
		titles = append(titles, job.Title)
	}
	return titles
}
