package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeList(t *testing.T) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"list"})

	err := cmd.Execute()

	return out.String(), err
}

func TestListCmd_Empty(t *testing.T) {
	setupHistory(t)

	out, err := executeList(t)
	require.NoError(t, err)
	assert.Contains(t, out, "No builds recorded")
}

func TestListCmd_ShowsRecordedBuilds(t *testing.T) {
	store := setupHistory(t)
	recordBuild(t, store, "build-1", "", 8, 2)
	recordBuild(t, store, "build-2", "build-1", 5, 5)

	out, err := executeList(t)
	require.NoError(t, err)
	assert.Contains(t, out, "build-1")
	assert.Contains(t, out, "build-2")
	assert.Contains(t, out, "80.0")
	assert.Contains(t, out, "50.0")
}
