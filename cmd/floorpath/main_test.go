package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const stationsYAML = `
stations:
  - {id: 1, name: Entrance, level: 1, x: 0, y: 0}
  - {id: 2, name: Bench Press, level: 1, x: 13, y: 0}
  - {id: 3, name: Bench Press, level: 2, x: 0, y: 0, tags: [chest]}
  - {id: 4, name: Rower, level: 1, x: 26, y: 0, occupied: true}
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "gym.yaml")
	require.NoError(t, os.WriteFile(path, []byte(stationsYAML), 0o600))

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--stations", path}, args...))
	err := cmd.Execute()

	return out.String(), err
}

func TestRouteCmd(t *testing.T) {
	out, err := execute(t, "route", "1", "2")
	require.NoError(t, err)

	var got routeOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "found", got.Outcome)
	assert.InDelta(t, 10.0, got.Cost, 1e-9)
	require.Len(t, got.Stops, 2)
	assert.Equal(t, "Bench Press", got.Stops[1].Name)
}

func TestRouteCmd_Unreachable(t *testing.T) {
	out, err := execute(t, "route", "1", "4")
	require.NoError(t, err)

	var got routeOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "unreachable", got.Outcome)
	assert.Empty(t, got.Stops)

	out, err = execute(t, "--include-occupied", "route", "1", "4")
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "found", got.Outcome)
}

func TestRouteCmd_Errors(t *testing.T) {
	_, err := execute(t, "route", "1", "x")
	assert.Error(t, err)

	_, err = execute(t, "route", "1", "99")
	assert.Error(t, err)

	_, err = execute(t, "--walk-speed", "0", "route", "1", "2")
	assert.Error(t, err)
}

func TestNearestCmd(t *testing.T) {
	out, err := execute(t, "nearest", "bench", "--top-k", "2")
	require.NoError(t, err)

	var got nearestOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, 2, got.Candidates)
	require.Len(t, got.Matches, 2)
	assert.Equal(t, 2, got.Matches[0].ID)
	assert.Equal(t, 13.0, got.Matches[0].Score)

	out, err = execute(t, "nearest", "bench", "--level", "2", "--tag", "chest")
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got.Matches, 1)
	assert.Equal(t, 3, got.Matches[0].ID)

	out, err = execute(t, "nearest", "rower")
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Zero(t, got.Candidates)
	assert.Empty(t, got.Matches)
}

func TestNoStations(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"route", "1", "2"})
	assert.ErrorIs(t, cmd.Execute(), errNoStations)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	stations := filepath.Join(dir, "gym.yaml")
	require.NoError(t, os.WriteFile(stations, []byte(stationsYAML), 0o600))
	cfg := filepath.Join(dir, "floorpath.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("stations: "+stations+"\nnearest:\n  floor_penalty: 5\n"), 0o600))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfg, "nearest", "bench"})
	require.NoError(t, cmd.Execute())

	var got nearestOutput
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	require.Len(t, got.Matches, 1)
	assert.Equal(t, 3, got.Matches[0].ID, "one level at 5m beats 13m")
}
