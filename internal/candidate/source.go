package candidate

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Source supplies the read-only candidate pool and job catalogue for one
// ranking session. Implementations must not mutate the returned collections
// after construction; callers treat them as shared read-only data.
type Source interface {
	Candidates() *Candidates
	Jobs() *Jobs
}

type staticSource struct {
	candidates *Candidates
	jobs       *Jobs
}

func (s *staticSource) Candidates() *Candidates { return s.candidates }

func (s *staticSource) Jobs() *Jobs { return s.jobs }

// NewStatic wraps already-built collections into a Source. Used by tests and
// by callers that assemble records programmatically.
func NewStatic(candidates *Candidates, jobs *Jobs) Source {
	if candidates == nil {
		candidates = &Candidates{}
	}
	if jobs == nil {
		jobs = &Jobs{}
	}
	return &staticSource{candidates: candidates, jobs: jobs}
}

// FromFile reads a candidates/jobs data file (yaml or json, chosen by
// extension) and returns it as a Source. Missing sections fall back to the
// built-in samples so a file can override just one of the two tables.
func FromFile(path string) (Source, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading data file %q: %w", path, err)
	}

	src := &staticSource{
		candidates: &Candidates{},
		jobs:       &Jobs{},
	}

	if v.IsSet("candidates") {
		if err := decodeItems(v.Get("candidates"), &src.candidates.Items); err != nil {
			return nil, fmt.Errorf("decoding candidates from %q: %w", path, err)
		}
	} else {
		src.candidates.Items = sampleCandidates
	}

	if v.IsSet("jobs") {
		if err := decodeItems(v.Get("jobs"), &src.jobs.Items); err != nil {
			return nil, fmt.Errorf("decoding jobs from %q: %w", path, err)
		}
	} else {
		src.jobs.Items = sampleJobs
	}

	return src, nil
}

func decodeItems(items any, result any) error {
	cfg := &mapstructure.DecoderConfig{
		Result:           result,
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	return decoder.Decode(items)
}
