package ranking

import "testing"

func TestScoreRoles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		roles   []string
		title   string
		expect  float64
		matches int
	}{
		{
			name:    "one matching role",
			roles:   []string{"Data Scientist"},
			title:   "Senior Data Scientist",
			expect:  0.8,
			matches: 1,
		},
		{
			name:    "irrelevant history keeps base credit",
			roles:   []string{"Sales Rep"},
			title:   "Senior Data Scientist",
			expect:  0.3,
			matches: 0,
		},
		{
			name:    "two matches reach the cap",
			roles:   []string{"Data Scientist", "ML Engineer", "Data Analyst"},
			title:   "Senior Data Scientist",
			expect:  1.0,
			matches: 2,
		},
		{
			name:    "no history at all",
			roles:   nil,
			title:   "Senior Data Scientist",
			expect:  0.3,
			matches: 0,
		},
		{
			name:    "whole tokens only, not substrings",
			roles:   []string{"Developers Advocate"},
			title:   "Developer",
			expect:  0.3,
			matches: 0,
		},
		{
			name:    "case-insensitive token match",
			roles:   []string{"BACKEND DEVELOPER"},
			title:   "developer",
			expect:  0.8,
			matches: 1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			score, breakdown := ScoreRoles(tt.roles, tt.title)
			if !approxEqual(score, tt.expect) {
				t.Fatalf("expected score %v, got %v", tt.expect, score)
			}
			if breakdown.Matches != tt.matches {
				t.Fatalf("expected %d matches, got %d", tt.matches, breakdown.Matches)
			}
		})
	}
}
