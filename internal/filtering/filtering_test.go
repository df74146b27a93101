package filtering

import (
	"context"
	"testing"

	"github.com/spigell/cv-ranker/internal/candidate"
)

func testPool() *candidate.Candidates {
	return &candidate.Candidates{Items: []*candidate.Candidate{
		{ID: "1", Name: "Alice", Skills: []string{"Python", "SQL"}, ExperienceYears: 6},
		{ID: "2", Name: "Bob", Skills: []string{"Java"}, ExperienceYears: 3},
		{ID: "3", Name: "Carol", Skills: []string{"Python"}, ExperienceYears: 2},
	}}
}

func TestRunFiltersChainsSteps(t *testing.T) {
	t.Parallel()

	f := New([]Filter{NewSkill("python"), NewMinExperience(5)}, nil)

	left, err := f.RunFilters(context.Background(), testPool())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if left.Len() != 1 || left.Items[0].Name != "Alice" {
		t.Fatalf("expected only Alice, got %v", left.Names())
	}
}

func TestRunFiltersSkipsDisabledSteps(t *testing.T) {
	t.Parallel()

	f := New([]Filter{NewSkill(""), NewMinExperience(0)}, nil)

	pool := testPool()
	left, err := f.RunFilters(context.Background(), pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if left.Len() != pool.Len() {
		t.Fatalf("disabled filters must pass the pool through, got %d of %d", left.Len(), pool.Len())
	}
}

func TestRunFiltersDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	pool := testPool()
	f := New([]Filter{NewSkill("java")}, nil)

	left, err := f.RunFilters(context.Background(), pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if left.Len() != 1 {
		t.Fatalf("expected 1 candidate left, got %d", left.Len())
	}
	if pool.Len() != 3 {
		t.Fatalf("input pool must keep all candidates, got %d", pool.Len())
	}
}

func TestSkillFilterStepCounts(t *testing.T) {
	t.Parallel()

	_, step, err := NewSkill("python").Apply(context.Background(), testPool())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if step.Initial != 3 || step.Dropped != 1 || step.Left != 2 {
		t.Fatalf("unexpected step counts: %+v", step)
	}
}

func TestMinExperienceFilterStepCounts(t *testing.T) {
	t.Parallel()

	_, step, err := NewMinExperience(3).Apply(context.Background(), testPool())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if step.Initial != 3 || step.Dropped != 1 || step.Left != 2 {
		t.Fatalf("unexpected step counts: %+v", step)
	}
}

func TestFilterEnablement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		filter  Filter
		enabled bool
	}{
		{name: "skill set", filter: NewSkill("go"), enabled: true},
		{name: "skill blank", filter: NewSkill("   "), enabled: false},
		{name: "years positive", filter: NewMinExperience(1), enabled: true},
		{name: "years zero", filter: NewMinExperience(0), enabled: false},
		{name: "years negative", filter: NewMinExperience(-2), enabled: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.filter.IsEnabled(); got != tt.enabled {
				t.Fatalf("expected enabled=%v, got %v", tt.enabled, got)
			}
		})
	}
}
