package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/akhilbojedla/pitmutation-plugin/internal/model"
)

func TestDiffEngine_NoPredecessor(t *testing.T) {
	engine := NewDiffEngine()
	current := reportWithRatio(5, 5)

	_, err := engine.FindNewTargets(current, nil)
	require.ErrorIs(t, err, m.ErrNoPredecessor)

	_, err = engine.FindDifferentMutations(current, nil, "com.example.Foo")
	require.ErrorIs(t, err, m.ErrNoPredecessor)

	_, err = engine.FindNewSurvivors(current, nil, "com.example.Foo")
	require.ErrorIs(t, err, m.ErrNoPredecessor)
}

func TestFindNewTargets(t *testing.T) {
	current := m.NewReport(map[string][]m.Mutation{
		"com.example.Foo": {{Class: "com.example.Foo", Line: 1, Mutator: "MATH", Detected: true}},
		"com.example.Bar": {{Class: "com.example.Bar", Line: 2, Mutator: "MATH", Detected: false}},
	})
	previous := m.NewReport(map[string][]m.Mutation{
		"com.example.Bar": {{Class: "com.example.Bar", Line: 2, Mutator: "MATH", Detected: false}},
	})

	targets, err := NewDiffEngine().FindNewTargets(current, previous)
	require.NoError(t, err)
	assert.Equal(t, []string{"com.example.Foo"}, targets)
}

func TestFindNewTargets_EmptyPrevious(t *testing.T) {
	current := m.NewReport(map[string][]m.Mutation{
		"Foo": {{Class: "Foo", Line: 1, Mutator: "MATH", Detected: true}},
	})
	previous := m.NewReport(nil)

	targets, err := NewDiffEngine().FindNewTargets(current, previous)
	require.NoError(t, err)
	assert.Equal(t, []string{"Foo"}, targets)
}

func TestFindNewTargets_Disjoint(t *testing.T) {
	engine := NewDiffEngine()
	reportA := m.NewReport(map[string][]m.Mutation{"Foo": {}, "Shared": {}})
	reportB := m.NewReport(map[string][]m.Mutation{"Bar": {}, "Shared": {}})

	forward, err := engine.FindNewTargets(reportA, reportB)
	require.NoError(t, err)
	backward, err := engine.FindNewTargets(reportB, reportA)
	require.NoError(t, err)

	assert.Equal(t, []string{"Foo"}, forward)
	assert.Equal(t, []string{"Bar"}, backward)

	for _, target := range forward {
		assert.NotContains(t, backward, target)
	}
}

func TestFindDifferentMutations_SelfDiffIsEmpty(t *testing.T) {
	report := reportWithRatio(3, 2)

	different, err := NewDiffEngine().FindDifferentMutations(report, report, "com.example.Foo")
	require.NoError(t, err)
	assert.Empty(t, different)
}

func TestFindDifferentMutations_DetectionFlipCounts(t *testing.T) {
	previous := m.NewReport(map[string][]m.Mutation{
		"Foo": {
			{Class: "Foo", Line: 10, Mutator: "NEGATE_CONDITIONALS", Detected: true},
			{Class: "Foo", Line: 20, Mutator: "MATH", Detected: true},
		},
	})
	current := m.NewReport(map[string][]m.Mutation{
		"Foo": {
			// Same mutation, now undetected.
			{Class: "Foo", Line: 10, Mutator: "NEGATE_CONDITIONALS", Detected: false},
			// Unchanged.
			{Class: "Foo", Line: 20, Mutator: "MATH", Detected: true},
			// Genuinely new.
			{Class: "Foo", Line: 30, Mutator: "RETURN_VALS", Detected: false},
		},
	})

	engine := NewDiffEngine()

	different, err := engine.FindDifferentMutations(current, previous, "Foo")
	require.NoError(t, err)
	assert.Len(t, different, 2)
	assert.Contains(t, different, m.Mutation{Class: "Foo", Line: 10, Mutator: "NEGATE_CONDITIONALS", Detected: false})
	assert.Contains(t, different, m.Mutation{Class: "Foo", Line: 30, Mutator: "RETURN_VALS", Detected: false})

	survivors, err := engine.FindNewSurvivors(current, previous, "Foo")
	require.NoError(t, err)
	assert.Len(t, survivors, 2)
}

func TestFindNewSurvivors_SubsetOfDifferent(t *testing.T) {
	previous := m.NewReport(map[string][]m.Mutation{
		"Foo": {{Class: "Foo", Line: 1, Mutator: "MATH", Detected: true}},
	})
	current := m.NewReport(map[string][]m.Mutation{
		"Foo": {
			{Class: "Foo", Line: 1, Mutator: "MATH", Detected: true},
			{Class: "Foo", Line: 2, Mutator: "MATH", Detected: true},
			{Class: "Foo", Line: 3, Mutator: "MATH", Detected: false},
		},
	})

	engine := NewDiffEngine()

	different, err := engine.FindDifferentMutations(current, previous, "Foo")
	require.NoError(t, err)
	survivors, err := engine.FindNewSurvivors(current, previous, "Foo")
	require.NoError(t, err)

	assert.Len(t, different, 2)
	assert.Len(t, survivors, 1)

	for _, survivor := range survivors {
		assert.Contains(t, different, survivor)
		assert.False(t, survivor.Detected)
	}
}

func TestFindDifferentMutations_UnknownClass(t *testing.T) {
	current := reportWithRatio(2, 2)
	previous := reportWithRatio(1, 1)

	different, err := NewDiffEngine().FindDifferentMutations(current, previous, "missing.Class")
	require.NoError(t, err)
	assert.Empty(t, different)
}

func TestFindDifferentMutations_CollapsesDuplicates(t *testing.T) {
	duplicate := m.Mutation{Class: "Foo", Line: 5, Mutator: "MATH", Detected: false}
	current := m.NewReport(map[string][]m.Mutation{
		"Foo": {duplicate, duplicate},
	})
	previous := m.NewReport(map[string][]m.Mutation{"Foo": {}})

	different, err := NewDiffEngine().FindDifferentMutations(current, previous, "Foo")
	require.NoError(t, err)
	assert.Equal(t, []m.Mutation{duplicate}, different)
}
