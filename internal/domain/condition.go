// Package domain contains the quality-gate evaluation engine and the
// report differential comparator.
package domain

import (
	"fmt"
	"log/slog"

	m "github.com/akhilbojedla/pitmutation-plugin/internal/model"
)

// Condition is one configured quality rule. Decide is a pure function of
// the report pair; the logger is an explicit parameter so conditions carry
// no per-evaluation state. previous is nil when the build has no
// predecessor.
type Condition interface {
	Decide(current, previous *m.Report, log *slog.Logger) m.Result
}

type thresholdCondition struct {
	minKillPercent float64
}

// NewThresholdCondition builds a condition that fails any build whose kill
// percentage falls below minKillPercent. The boundary is inclusive.
// Thresholds outside [0, 100] are rejected here, not at evaluation time.
func NewThresholdCondition(minKillPercent float64) (Condition, error) {
	if minKillPercent < 0 || minKillPercent > 100 {
		return nil, fmt.Errorf("%w: got %v", m.ErrInvalidThreshold, minKillPercent)
	}

	return &thresholdCondition{minKillPercent: minKillPercent}, nil
}

func (c *thresholdCondition) Decide(current, _ *m.Report, log *slog.Logger) m.Result {
	stats := current.Stats()
	log.Info("kill ratio",
		"percent", stats.KillPercent(),
		"killed", stats.Killed,
		"total", stats.Total,
	)

	if stats.KillPercent() >= c.minKillPercent {
		return m.StatusSuccess
	}

	return m.StatusFailure
}

type improvementCondition struct{}

// NewImprovementCondition builds the condition that compares the current
// kill percentage against the previous build's. With no previous report
// there is nothing to regress against, so the build passes.
func NewImprovementCondition() Condition {
	return improvementCondition{}
}

// Decide keeps the historical comparison rule: a build whose kill ratio
// stays at or below the previous build's passes, while one that climbs
// above it is marked unstable.
func (improvementCondition) Decide(current, previous *m.Report, log *slog.Logger) m.Result {
	if previous == nil {
		return m.StatusSuccess
	}

	prev := previous.Stats()
	log.Info("previous kill ratio", "percent", prev.KillPercent())

	if current.Stats().KillPercent() <= prev.KillPercent() {
		return m.StatusSuccess
	}

	return m.StatusUnstable
}

// ConditionsFromSettings builds the standard condition list from gate
// settings: always a threshold check, plus the improvement check when
// mustImprove is set.
func ConditionsFromSettings(minKillRatio float64, mustImprove bool) ([]Condition, error) {
	threshold, err := NewThresholdCondition(minKillRatio)
	if err != nil {
		return nil, err
	}

	conditions := []Condition{threshold}
	if mustImprove {
		conditions = append(conditions, NewImprovementCondition())
	}

	return conditions, nil
}
