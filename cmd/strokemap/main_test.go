package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "1.2.3"
	assert.Equal(t, "1.2.3", GetVersion())

	var buf bytes.Buffer
	PrintVersion(&buf)
	assert.Equal(t, "strokemap 1.2.3\n", buf.String())

	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "strokemap 1.2.3\n", out)
}

func TestParse(t *testing.T) {
	out, err := execute(t, "", "parse", "up-left", "0x82")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"INPUT", "WORDS", "ARROWS", "TRIANGLES", "CODE"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"up-left", "up-left", "↑←", "^<", "0x41"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"0x82", "down-right", "↓→", "v>", "0x82"}, strings.Fields(lines[2]))
}

func TestParseNotation(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		want     string
	}{
		{"word", "word", "up-left\ndown-right\n"},
		{"arrow", "arrow", "↑←\n↓→\n"},
		{"short triangle", "t", "^<\nv>\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", "parse", "-n", tt.notation, "↑←", "down-right")
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", []string{"parse"}},
		{"repeated direction", []string{"parse", "up-up"}},
		{"invalid code", []string{"parse", "0x3"}},
		{"unknown notation", []string{"parse", "-n", "morse", "up"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  []string
		want  string
	}{
		{
			name:  "right then down",
			input: "0 0\n10 0\n10 10\n",
			want:  "→↓ 0x28\n",
		},
		{
			name:  "comma separated with comments",
			input: "# start\n0,10\n\n0,0\n",
			args:  []string{"-n", "word"},
			want:  "up 0x1\n",
		},
		{
			name:  "single point",
			input: "5 5\n",
			want:  "no gesture\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.input, append([]string{"classify"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestClassifyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "path.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 0\n-10 0\n"), 0o644))

	out, err := execute(t, "", "classify", path)
	require.NoError(t, err)
	assert.Equal(t, "← 0x4\n", out)
}

func TestReadTrajectoryErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"one coordinate", "1\n", "line 1"},
		{"three coordinates", "0 0\n1 2 3\n", "line 2"},
		{"not a number", "0 0\n0 x\n", "line 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readTrajectory(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBindings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "strokemap.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[logging]
level = "error"

[[bindings]]
gesture = "down-right"
action = "viewer.quit"
description = "leave"

[[bindings]]
gesture = "0x41"
action = "viewer.echo"
`), 0o644))

	out, err := execute(t, "", "--config", path, "bindings")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"↑←", "up-left", "0x41", "viewer.echo", "config", "Show", "the", "recognized", "gesture"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"↓→", "down-right", "0x82", "viewer.quit", "config", "leave"}, strings.Fields(lines[2]))
}

func TestBindingsEmpty(t *testing.T) {
	out, err := execute(t, "", "--log-level", "error", "bindings")
	require.NoError(t, err)
	assert.Equal(t, "no bindings\n", out)
}

func TestBindingsActions(t *testing.T) {
	out, err := execute(t, "", "--log-level", "error", "bindings", "--actions")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "viewer.clear"))
	assert.True(t, strings.HasPrefix(lines[2], "viewer.echo"))
	assert.True(t, strings.HasPrefix(lines[3], "viewer.quit"))
}

func TestBindingsBadConfig(t *testing.T) {
	_, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"), "bindings")
	assert.Error(t, err)
}
