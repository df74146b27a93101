package ranking

import "testing"

func TestScoreExperience(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate int
		min       int
		expect    float64
		meets     bool
	}{
		{name: "exactly at the bar", candidate: 4, min: 4, expect: 0.8, meets: true},
		{name: "one extra year", candidate: 5, min: 4, expect: 0.9, meets: true},
		{name: "bonus cap at three extra years", candidate: 7, min: 4, expect: 1.0, meets: true},
		{name: "bonus stays capped beyond three", candidate: 15, min: 4, expect: 1.0, meets: true},
		{name: "one year short", candidate: 3, min: 4, expect: 0.6, meets: false},
		{name: "four years short reaches zero", candidate: 0, min: 4, expect: 0.0, meets: false},
		{name: "larger shortfall stays at zero", candidate: 0, min: 10, expect: 0.0, meets: false},
		{name: "no minimum required", candidate: 2, min: 0, expect: 1.0, meets: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			score, breakdown := ScoreExperience(tt.candidate, tt.min)
			if !approxEqual(score, tt.expect) {
				t.Fatalf("expected score %v, got %v", tt.expect, score)
			}
			if breakdown.Meets != tt.meets {
				t.Fatalf("expected meets=%v, got %v", tt.meets, breakdown.Meets)
			}
			if breakdown.CandidateYears != tt.candidate || breakdown.MinRequired != tt.min {
				t.Fatalf("breakdown does not echo inputs: %+v", breakdown)
			}
		})
	}
}
