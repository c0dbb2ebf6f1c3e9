package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTargets = `com.example.Foo:
  - class: com.example.Foo
    line: 10
    mutator: MATH
    detected: true
  - class: com.example.Foo
    line: 12
    mutator: RETURN_VALS
    detected: false
`

func executeRecord(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newRecordCmd())
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"record"}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestRecordCmd_SavesSnapshot(t *testing.T) {
	store := setupHistory(t)

	targetsPath := filepath.Join(t.TempDir(), "targets.yaml")
	require.NoError(t, os.WriteFile(targetsPath, []byte(sampleTargets), 0o644))

	out, err := executeRecord(t, "build-1", targetsPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Recorded build build-1")
	assert.Contains(t, out, "2 mutations")

	report, err := store.GetReport("build-1")
	require.NoError(t, err)
	assert.Equal(t, 2, report.Stats().Total)
	assert.Equal(t, 1, report.Stats().Killed)
}

func TestRecordCmd_LinksPredecessor(t *testing.T) {
	store := setupHistory(t)

	targetsPath := filepath.Join(t.TempDir(), "targets.yaml")
	require.NoError(t, os.WriteFile(targetsPath, []byte(sampleTargets), 0o644))

	_, err := executeRecord(t, "build-1", targetsPath)
	require.NoError(t, err)

	_, err = executeRecord(t, "build-2", targetsPath, "--previous", "build-1")
	require.NoError(t, err)

	prev, ok, err := store.GetPredecessor("build-2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "build-1", string(prev))
}

func TestRecordCmd_MissingTargetsFile(t *testing.T) {
	setupHistory(t)

	_, err := executeRecord(t, "build-1", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
