// Package adapter provides the persistence layer for build reports.
package adapter

import (
	m "github.com/akhilbojedla/pitmutation-plugin/internal/model"
)

// ReportProvider supplies reports and predecessor references for builds.
// The evaluation core consumes this interface; it never touches storage
// directly.
type ReportProvider interface {
	GetReport(ref m.BuildRef) (*m.Report, error)
	GetPredecessor(ref m.BuildRef) (m.BuildRef, bool, error)
}
