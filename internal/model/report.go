package model

import "sort"

// Report is an immutable snapshot of one build's mutation-testing results,
// keyed by target class. The constructor and all accessors copy, so a
// report can never be mutated after construction.
type Report struct {
	targets map[string][]Mutation
}

// NewReport builds a report from per-class mutation lists. The input map
// and its slices are deep-copied.
func NewReport(targets map[string][]Mutation) *Report {
	copied := make(map[string][]Mutation, len(targets))
	for class, mutations := range targets {
		copied[class] = append([]Mutation(nil), mutations...)
	}

	return &Report{targets: copied}
}

// TargetClasses returns the sorted class names covered by the report.
func (r *Report) TargetClasses() []string {
	if r == nil {
		return nil
	}

	classes := make([]string, 0, len(r.targets))
	for class := range r.targets {
		classes = append(classes, class)
	}

	sort.Strings(classes)

	return classes
}

// HasTarget reports whether the report contains mutations for class.
func (r *Report) HasTarget(class string) bool {
	if r == nil {
		return false
	}

	_, ok := r.targets[class]

	return ok
}

// MutationsFor returns a copy of the mutation list for class, in report
// order. Unknown classes yield an empty list.
func (r *Report) MutationsFor(class string) []Mutation {
	if r == nil {
		return nil
	}

	return append([]Mutation(nil), r.targets[class]...)
}

// Stats recomputes the aggregate stats from the raw mutation lists on
// every call, so they can never drift from the data.
func (r *Report) Stats() MutationStats {
	var stats MutationStats

	if r == nil {
		return stats
	}

	for _, mutations := range r.targets {
		for _, mutation := range mutations {
			stats.Total++
			if mutation.Detected {
				stats.Killed++
			}
		}
	}

	return stats
}
