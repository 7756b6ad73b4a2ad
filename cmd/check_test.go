package cmd_test

import (
	"bytes"
	"testing"

	"github.com/sandramulyana/kotlin/cmd"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCheck(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd.CheckCmd.SetOut(out)
	cmd.CheckCmd.SetErr(&bytes.Buffer{})
	cmd.CheckCmd.SetArgs(args)
	err := cmd.CheckCmd.Execute()
	return out.String(), err
}

func TestCheckReportsConflicts(t *testing.T) {
	out, err := runCheck(t, "testdata/sample.yaml", "--all=true")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 conflicting overrides found")

	g := goldie.New(t, goldie.WithNameSuffix(".golden"))
	g.Assert(t, "check_report", []byte(out))
}

func TestCheckCleanHierarchy(t *testing.T) {
	out, err := runCheck(t, "testdata/clean.yaml", "--all=false")
	require.NoError(t, err)
	assert.Equal(t, "no conflicting overrides\n", out)
}

func TestCheckReportsLoadErrors(t *testing.T) {
	_, err := runCheck(t, "testdata/broken.yaml", "--all=false")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "errors found while loading hierarchy")
	assert.Contains(t, err.Error(), "E003")
}

func TestCheckMissingFile(t *testing.T) {
	_, err := runCheck(t, "testdata/nope.yaml", "--all=false")
	assert.Error(t, err)
}
