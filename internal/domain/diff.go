package domain

import (
	"sort"

	m "github.com/akhilbojedla/pitmutation-plugin/internal/model"
)

// DiffEngine computes set differences between two reports of the same
// project taken at different builds. All operations are pure functions of
// the immutable inputs; every one returns model.ErrNoPredecessor when the
// previous report is absent.
type DiffEngine struct{}

// NewDiffEngine constructs a DiffEngine.
func NewDiffEngine() DiffEngine {
	return DiffEngine{}
}

// FindNewTargets returns the class names mutated in current but absent from
// previous. The operation is asymmetric: diffing in the reverse order
// yields the classes dropped from current, a disjoint set.
func (DiffEngine) FindNewTargets(current, previous *m.Report) ([]string, error) {
	if previous == nil {
		return nil, m.ErrNoPredecessor
	}

	var targets []string

	for _, class := range current.TargetClasses() {
		if !previous.HasTarget(class) {
			targets = append(targets, class)
		}
	}

	return targets, nil
}

// FindDifferentMutations returns the mutations recorded for class in
// current but not in previous. Equality covers the detection flag, so a
// mutation whose outcome changed between builds counts as different.
func (DiffEngine) FindDifferentMutations(current, previous *m.Report, class string) ([]m.Mutation, error) {
	if previous == nil {
		return nil, m.ErrNoPredecessor
	}

	known := make(map[m.Mutation]struct{})
	for _, mutation := range previous.MutationsFor(class) {
		known[mutation] = struct{}{}
	}

	different := make(map[m.Mutation]struct{})
	for _, mutation := range current.MutationsFor(class) {
		if _, ok := known[mutation]; !ok {
			different[mutation] = struct{}{}
		}
	}

	return sortedMutations(different), nil
}

// FindNewSurvivors returns the subset of FindDifferentMutations that the
// test suite failed to detect: the regression signal.
func (e DiffEngine) FindNewSurvivors(current, previous *m.Report, class string) ([]m.Mutation, error) {
	different, err := e.FindDifferentMutations(current, previous, class)
	if err != nil {
		return nil, err
	}

	var survivors []m.Mutation

	for _, mutation := range different {
		if !mutation.Detected {
			survivors = append(survivors, mutation)
		}
	}

	return survivors, nil
}

// sortedMutations flattens a mutation set into a deterministically ordered
// slice. The ordering is a display convenience, not part of the contract.
func sortedMutations(set map[m.Mutation]struct{}) []m.Mutation {
	mutations := make([]m.Mutation, 0, len(set))
	for mutation := range set {
		mutations = append(mutations, mutation)
	}

	sort.Slice(mutations, func(i, j int) bool {
		if mutations[i].Line != mutations[j].Line {
			return mutations[i].Line < mutations[j].Line
		}
		if mutations[i].Mutator != mutations[j].Mutator {
			return mutations[i].Mutator < mutations[j].Mutator
		}

		return !mutations[i].Detected && mutations[j].Detected
	})

	return mutations
}
