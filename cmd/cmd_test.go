package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"goosechase/internal/observability"
)

// execute runs the command tree with args and returns stdout and the logs.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	observability.ResetForTest()
	t.Cleanup(observability.ResetForTest)

	var out, logs bytes.Buffer
	root := newRootCmd(&app{console: zapcore.AddSync(&logs)})
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "goosechase dev\n", out)

	out, _, err = execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "goosechase dev\n", out)
}

func TestSimPrintsReport(t *testing.T) {
	out, _, err := execute(t, "sim", "--ticks", "20", "--seed", "3", "--flock", "15", "--duo")
	require.NoError(t, err)

	var r map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.EqualValues(t, 3, r["seed"])
	assert.EqualValues(t, 15, r["total"])
	assert.EqualValues(t, 20, r["ticks"])
	assert.Equal(t, "duo", r["mode"])
	assert.Equal(t, false, r["won"])
}

func TestSimUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goosechase.yaml")
	yaml := "game:\n  seed: 42\n  flock_size: 7\nsim:\n  max_ticks: 5\nlogger:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	out, logs, err := execute(t, "--config", path, "sim")
	require.NoError(t, err)

	var r map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.EqualValues(t, 42, r["seed"])
	assert.EqualValues(t, 7, r["total"])
	assert.EqualValues(t, 5, r["ticks"])
	assert.Contains(t, logs, "configuration loaded")
	assert.Contains(t, logs, "sim finished")
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goosechase.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game:\n  flock_size: 7\n  seed: 1\n"), 0o600))

	out, _, err := execute(t, "--config", path, "sim", "--flock", "9", "--ticks", "3")
	require.NoError(t, err)
	var r map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.EqualValues(t, 9, r["total"])
}

func TestInvalidConfigIsRejected(t *testing.T) {
	_, _, err := execute(t, "sim", "--flock", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flock_size")
}

func TestMissingConfigFile(t *testing.T) {
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "sim")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestPlayRejectsUnknownFrontend(t *testing.T) {
	_, _, err := execute(t, "play", "--frontend", "vr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown frontend")
}
