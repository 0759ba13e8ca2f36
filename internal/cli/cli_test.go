package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestReportGolden(t *testing.T) {
	out, _, err := execute(t, "report", "abc")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "report_abc", []byte(out))
}

func TestAlgebraGolden(t *testing.T) {
	out, _, err := execute(t, "algebra", "abc", "xyz", "--max-length", "2")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "algebra_abc_xyz", []byte(out))
}

func TestReportJSON(t *testing.T) {
	out, _, err := execute(t, "report", "xyz", "--format", "json", "--max-length", "2")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   Report `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "xyz", resp.Data.Fixture)
	assert.Equal(t, 5, resp.Data.MemberCount)
	assert.Equal(t, []string{"a", "b", "ab", "ba", "bb"}, resp.Data.Members)
	assert.True(t, resp.Data.Infinite)
	assert.Equal(t, []string{"aa", "aba"}, resp.Data.RejectedExamples)
	assert.Equal(t, []string{"Z"}, resp.Data.ComplementAcceptStates)
}

func TestReportYAML(t *testing.T) {
	out, _, err := execute(t, "report", "--format", "yaml", "--word", "ab")
	require.NoError(t, err)

	var resp struct {
		Status string `yaml:"status"`
		Data   Report `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "abc", resp.Data.Fixture)
	assert.Equal(t, "ab", resp.Data.Word)
	assert.False(t, resp.Data.WordAccepted)
}

func TestReportVerboseLogsToStderr(t *testing.T) {
	out, errOut, err := execute(t, "report", "-v", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, errOut, "building report")
	assert.NotContains(t, out, "building report")
}

func TestUnknownFixture(t *testing.T) {
	_, _, err := execute(t, "report", "nope")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "abc")

	_, _, err = execute(t, "algebra", "abc", "nope")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "fixtures", "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestFixtures(t *testing.T) {
	out, _, err := execute(t, "fixtures")
	require.NoError(t, err)
	assert.Contains(t, out, "abc: ")
	assert.Contains(t, out, "states X Y Z, start X, accept X Y")

	out, _, err = execute(t, "fixtures", "--format", "json")
	require.NoError(t, err)
	var resp struct {
		Data []FixtureInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "abc", resp.Data[0].Name)
	assert.Equal(t, []string{"B", "C"}, resp.Data[0].AcceptStates)
}

func TestSubcommandWithoutRoot(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewReportCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"xyz", "--max-length", "1"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Members up to length 1: 2")
	assert.Contains(t, buf.String(), "Is the language infinite? true")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))

	wrapped := WrapExitError(ExitFailure, "report", assert.AnError)
	assert.ErrorIs(t, wrapped, assert.AnError)
	assert.Contains(t, wrapped.Error(), "report: ")
}
