// Package controller provides output adapters for presenting gate outcomes
// and report differentials.
package controller

import (
	"context"

	m "github.com/akhilbojedla/pitmutation-plugin/internal/model"
)

// UI defines the interface for presenting evaluation results.
// Implementations can use different output methods (simple text, tables).
type UI interface {
	DisplayGateOutcome(ctx context.Context, ref m.BuildRef, stats m.MutationStats, result m.Result)
	DisplayNoComparison(ctx context.Context, ref m.BuildRef)
	DisplayNewTargets(ctx context.Context, targets []string)
	DisplayMutationDiff(ctx context.Context, class string, different, survivors []m.Mutation)
	DisplayBuildList(ctx context.Context, records []m.BuildRecord)
}
