package model

import "errors"

var (
	// ErrInvalidThreshold reports a gate threshold outside the [0, 100]
	// range. Raised at construction so an invalid gate never runs.
	ErrInvalidThreshold = errors.New("kill ratio threshold must be between 0 and 100")

	// ErrNoPredecessor marks comparisons that need a previous report when
	// none exists. Callers treat it as "no comparison available", not as a
	// failure.
	ErrNoPredecessor = errors.New("no previous report to compare against")

	// ErrReportIntegrity reports a persisted snapshot whose recorded stats
	// do not match its mutation lists.
	ErrReportIntegrity = errors.New("report stats are inconsistent")
)
