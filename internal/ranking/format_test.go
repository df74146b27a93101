package ranking

import (
	"strings"
	"testing"

	"github.com/spigell/cv-ranker/internal/candidate"
)

func TestFormatSummaryLayout(t *testing.T) {
	t.Parallel()

	result := &Result{
		Candidate: &candidate.Candidate{
			Name:            "Alice Johnson",
			Email:           "alice.johnson@email.com",
			Skills:          []string{"Python", "Machine Learning", "Data Science", "SQL", "TensorFlow", "Pandas", "NumPy"},
			ExperienceYears: 5,
			Education:       "MS Computer Science",
			PreviousRoles:   []string{"Data Scientist", "ML Engineer"},
			Summary:         "Experienced data scientist.",
		},
		Overall: 0.87,
		Scores: Scores{
			Skills:        0.8,
			Experience:    0.9,
			Education:     0.9,
			RoleRelevance: 0.8,
		},
		Breakdowns: Breakdowns{
			Skills:     SkillsBreakdown{RequiredMatches: 4, RequiredTotal: 5, PreferredMatches: 1, PreferredTotal: 5},
			Experience: ExperienceBreakdown{CandidateYears: 5, MinRequired: 4, Meets: true},
			Roles:      RolesBreakdown{Matches: 1},
		},
	}

	expected := `Rank #1: Alice Johnson
Email: alice.johnson@email.com
Overall Score: 0.87/1.00

Score Breakdown:
• Skills Match: 0.80/1.00 (4/5 required, 1/5 preferred)
• Experience: 0.90/1.00 (5 years vs 4 required)
• Education: 0.90/1.00 (MS Computer Science)
• Role Relevance: 0.80/1.00 (1 matching roles)

Key Skills: Python, Machine Learning, Data Science, SQL, TensorFlow...
Previous Roles: Data Scientist, ML Engineer
Summary: Experienced data scientist.`

	if got := FormatSummary(result, 1); got != expected {
		t.Fatalf("layout drifted:\n--- expected ---\n%s\n--- got ---\n%s", expected, got)
	}
}

func TestFormatSummaryShortSkillListHasNoEllipsis(t *testing.T) {
	t.Parallel()

	result := &Result{
		Candidate: &candidate.Candidate{
			Name:   "Bob Smith",
			Email:  "bob.smith@email.com",
			Skills: []string{"JavaScript", "React"},
		},
	}

	got := FormatSummary(result, 2)

	want := "Key Skills: JavaScript, React\n"
	if !strings.Contains(got, want) {
		t.Fatalf("expected %q in output:\n%s", want, got)
	}
}
