package model

import "fmt"

// Mutation is one synthetic fault injected into a target class, plus
// whether the test suite detected it. The struct is comparable and equality
// covers every field, so the same mutation with a flipped Detected flag is
// a distinct value.
type Mutation struct {
	Class    string `yaml:"class"`
	Line     int    `yaml:"line"`
	Mutator  string `yaml:"mutator"`
	Detected bool   `yaml:"detected"`
}

func (m Mutation) String() string {
	status := "survived"
	if m.Detected {
		status = "killed"
	}

	return fmt.Sprintf("%s:%d %s (%s)", m.Class, m.Line, m.Mutator, status)
}

// MutationStats aggregates a report's mutation collection. It is always
// derived from the raw mutation lists, never stored alongside them.
type MutationStats struct {
	Total  int `yaml:"total"`
	Killed int `yaml:"killed"`
}

// KillPercent returns the percentage of mutations detected by the test
// suite. A report with no mutations scores zero.
func (s MutationStats) KillPercent() float64 {
	if s.Total == 0 {
		return 0
	}

	return float64(s.Killed) / float64(s.Total) * 100
}

// Validate checks the internal consistency of the stats. Recorded stats
// that claim more kills than mutations indicate a corrupt report.
func (s MutationStats) Validate() error {
	if s.Total < 0 || s.Killed < 0 || s.Killed > s.Total {
		return fmt.Errorf("%w: %d killed of %d total", ErrReportIntegrity, s.Killed, s.Total)
	}

	return nil
}
