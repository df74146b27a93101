// Package filtering narrows the candidate pool before ranking. Filters are a
// presentation-layer convenience: they never change how the remaining
// candidates are scored.
package filtering

import (
	"context"
	"fmt"

	"github.com/spigell/cv-ranker/internal/candidate"

	"go.uber.org/zap"
)

// Filter represents a single filtering step applied to the candidate pool.
type Filter interface {
	Name() string
	IsEnabled() bool
	Apply(ctx context.Context, c *candidate.Candidates) (*candidate.Candidates, Step, error)
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Filtering runs an ordered list of filters over a candidate pool.
type Filtering struct {
	steps  []Filter
	logger *zap.Logger
}

func New(steps []Filter, logger *zap.Logger) *Filtering {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Filtering{steps: steps, logger: logger}
}

// RunFilters executes the configured filters sequentially and returns the
// remaining candidates. The input collection is never mutated; each step
// produces a fresh one.
func (f *Filtering) RunFilters(ctx context.Context, c *candidate.Candidates) (*candidate.Candidates, error) {
	for _, step := range f.steps {
		if !step.IsEnabled() {
			f.logger.Debug("filter disabled", zap.String("name", step.Name()))
			continue
		}

		next, info, err := step.Apply(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		f.logger.Info("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)

		c = next
	}

	return c, nil
}
