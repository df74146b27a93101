package ranking

import (
	"math"
	"testing"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMatchSkills(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate []string
		required  []string
		preferred []string
		expect    float64
	}{
		{
			name:      "all required and preferred present",
			candidate: []string{"Python", "SQL", "Docker"},
			required:  []string{"python", "sql"},
			preferred: []string{"docker"},
			expect:    1.0,
		},
		{
			name:      "no overlap with non-empty required",
			candidate: []string{"Java"},
			required:  []string{"Python", "SQL"},
			preferred: []string{"Docker"},
			expect:    0.0,
		},
		{
			name:      "half of required only",
			candidate: []string{"Python"},
			required:  []string{"Python", "SQL"},
			preferred: nil,
			expect:    0.35,
		},
		{
			name:      "preferred only",
			candidate: []string{"Docker"},
			required:  []string{"Python"},
			preferred: []string{"Docker"},
			expect:    0.3,
		},
		{
			name:      "empty lists score zero",
			candidate: []string{"Python"},
			required:  nil,
			preferred: nil,
			expect:    0.0,
		},
		{
			name:      "matching is case-insensitive",
			candidate: []string{"PYTHON", "machine learning"},
			required:  []string{"python", "Machine Learning"},
			preferred: nil,
			expect:    0.7,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			score, breakdown := MatchSkills(tt.candidate, tt.required, tt.preferred)
			if !approxEqual(score, tt.expect) {
				t.Fatalf("expected score %v, got %v", tt.expect, score)
			}
			if score < 0 || score > 1 {
				t.Fatalf("score out of bounds: %v", score)
			}
			if !approxEqual(breakdown.Score, score) {
				t.Fatalf("breakdown score %v differs from returned score %v", breakdown.Score, score)
			}
		})
	}
}

func TestMatchSkillsBreakdownCounts(t *testing.T) {
	t.Parallel()

	_, breakdown := MatchSkills(
		[]string{"Python", "SQL", "Docker"},
		[]string{"Python", "SQL", "Kubernetes"},
		[]string{"Docker", "AWS"},
	)

	if breakdown.RequiredMatches != 2 || breakdown.RequiredTotal != 3 {
		t.Fatalf("unexpected required counts: %d/%d", breakdown.RequiredMatches, breakdown.RequiredTotal)
	}
	if breakdown.PreferredMatches != 1 || breakdown.PreferredTotal != 2 {
		t.Fatalf("unexpected preferred counts: %d/%d", breakdown.PreferredMatches, breakdown.PreferredTotal)
	}
	if !approxEqual(breakdown.RequiredScore, 2.0/3.0) {
		t.Fatalf("unexpected required score: %v", breakdown.RequiredScore)
	}
	if !approxEqual(breakdown.PreferredScore, 0.5) {
		t.Fatalf("unexpected preferred score: %v", breakdown.PreferredScore)
	}
}
