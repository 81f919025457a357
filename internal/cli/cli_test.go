package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvpuzzle/internal/config"
	"github.com/katalvlaran/lvpuzzle/puzzle"
)

// execute runs the root command with args and captures output and logs.
func execute(t *testing.T, stdin string, args ...string) (string, *observer.ObservedLogs, error) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	opts := &globalOptions{newLogger: func(l zapcore.Level) (*zap.Logger, error) {
		return zap.New(core, zap.IncreaseLevel(l)), nil
	}}

	cmd := newRootCommand(opts)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), logs, err
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "", "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[5], "2020-23")
	assert.Contains(t, lines[5], "Crab Cups")
	assert.True(t, strings.HasSuffix(lines[5], "1,2"))
}

func TestListJSON(t *testing.T) {
	out, _, err := execute(t, "", "list", "--json")
	require.NoError(t, err)

	var entries []listEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, len(puzzle.Catalog()))
	assert.Equal(t, "2016-09", entries[0].ID)
	assert.Equal(t, []string{"1", "2"}, entries[0].Parts)
}

func TestSolveStdin(t *testing.T) {
	out, logs, err := execute(t, "X(8x2)(3x3)ABCY\n", "solve", "2016-09")
	require.NoError(t, err)
	assert.Equal(t, "2016-09 part 1: 18\n2016-09 part 2: 20\n", out)
	assert.Equal(t, 2, logs.FilterMessage("solved").Len())
	assert.Zero(t, logs.FilterMessage("solving").Len(), "debug entries need --verbose")
}

func TestSolveFileVerbose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cups.txt")
	require.NoError(t, os.WriteFile(path, []byte("389125467\n"), 0o644))

	out, logs, err := execute(t, "", "solve", "2020-23", "--part", "1", "--input", path, "-v")
	require.NoError(t, err)
	assert.Equal(t, "2020-23 part 1: 67384529\n", out)
	assert.Equal(t, 1, logs.FilterMessage("solving").Len())
}

func TestSolveErrors(t *testing.T) {
	_, _, err := execute(t, "", "solve", "1999-01")
	assert.ErrorIs(t, err, puzzle.ErrUnknownPuzzle)

	_, _, err = execute(t, "", "solve", "2016-09", "--part", "9")
	assert.ErrorIs(t, err, puzzle.ErrUnknownPart)

	_, _, err = execute(t, "", "solve", "2016-09", "--input", filepath.Join(t.TempDir(), "none"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	out, logs, err := execute(t, "(9x9", "solve", "2016-09")
	require.EqualError(t, err, "2 of 2 parts failed")
	assert.Contains(t, out, "2016-09 part 1: error: runlength:")
	assert.Equal(t, 2, logs.FilterMessage("failed").Len())
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "decks.txt"),
		[]byte("Player 1:\n9\n2\n6\n3\n1\n\nPlayer 2:\n5\n8\n4\n7\n10\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day9.txt"), []byte("(3x3)XYZ"), 0o644))
	cfgPath := filepath.Join(dir, "lvpuzzle.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"parallelism: 2\nlog_level: warn\ninputs:\n  2020-22: decks.txt\n  2016-09: day9.txt\n"), 0o644))

	out, logs, err := execute(t, "", "run", "--config", cfgPath, "--json")
	require.NoError(t, err)

	var entries []resultEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	got := make([]string, 0, len(entries))
	for _, e := range entries {
		assert.Empty(t, e.Error)
		got = append(got, e.Puzzle+"/"+e.Part+"="+e.Answer)
	}
	assert.Equal(t, []string{"2016-09/1=9", "2016-09/2=9", "2020-22/1=306", "2020-22/2=291"}, got)
	assert.Zero(t, logs.FilterMessage("solved").Len(), "log_level warn hides info entries")

	out, _, err = execute(t, "", "run", "--config", cfgPath, "--part", "2")
	require.NoError(t, err)
	assert.Equal(t, "2016-09 part 2: 9\n2020-22 part 2: 291\n", out)
}

func TestRunMissingConfig(t *testing.T) {
	_, _, err := execute(t, "", "run", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, config.ErrConfigNotFound)
}
