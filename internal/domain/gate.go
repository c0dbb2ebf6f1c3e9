package domain

import (
	"log/slog"

	m "github.com/akhilbojedla/pitmutation-plugin/internal/model"
)

// GateEngine reduces an ordered list of conditions over a report pair to a
// single build result. The engine is stateless across evaluations and safe
// for concurrent use.
type GateEngine struct {
	conditions []Condition
	log        *slog.Logger
}

// NewGateEngine constructs a gate over the given conditions. A nil logger
// falls back to the default slog logger.
func NewGateEngine(log *slog.Logger, conditions ...Condition) *GateEngine {
	if log == nil {
		log = slog.Default()
	}

	return &GateEngine{conditions: conditions, log: log}
}

// Evaluate runs every configured condition against the reports and returns
// the most severe result. With no conditions configured the gate passes.
// Adding a condition can only keep the outcome or worsen it, never improve
// it. Condition logging is advisory and never changes the result.
func (g *GateEngine) Evaluate(current, previous *m.Report) m.Result {
	result := m.StatusSuccess

	for _, condition := range g.conditions {
		verdict := condition.Decide(current, previous, g.log)
		if verdict.WorseThan(result) {
			result = verdict
		}
	}

	return result
}
