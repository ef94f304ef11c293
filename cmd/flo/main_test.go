package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flo/internal/render"
)

// execute runs flo with logging off and a config file from a temp dir.
func execute(t *testing.T, conf string, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flo.toml")
	require.NoError(t, os.WriteFile(path, []byte(conf), 0o644))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", path, "--log", ""}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderViews(t *testing.T) {
	tests := []struct {
		view  string
		group string
	}{
		{view: "gauge", group: `<g id="gauge">`},
		{view: "graph", group: `<g id="graph">`},
		{view: "button", group: `<g id="button">`},
	}
	for _, tt := range tests {
		t.Run(tt.view, func(t *testing.T) {
			out, err := execute(t, "", "render", "--view", tt.view, "--count", "3")
			require.NoError(t, err)
			assert.Contains(t, out, tt.group)
		})
	}
}

func TestRenderSize(t *testing.T) {
	out, err := execute(t, "", "render", "--view", "graph")
	require.NoError(t, err)
	assert.Contains(t, out, `width="300" height="250"`)

	out, err = execute(t, "", "render", "--width", "400", "--height", "120")
	require.NoError(t, err)
	assert.Contains(t, out, `width="400" height="120"`)
}

func TestRenderToFile(t *testing.T) {
	dir := t.TempDir()
	history := filepath.Join(dir, "week.csv")
	require.NoError(t, os.WriteFile(history, []byte("glasses\n2\n9\n"), 0o644))
	svg := filepath.Join(dir, "graph.svg")

	out, err := execute(t, "goal = 6\n", "render", "--view", "graph", "--history", history, "-o", svg)
	require.NoError(t, err)
	assert.Empty(t, out)
	b, err := os.ReadFile(svg)
	require.NoError(t, err)
	// two days: background, fill, grid, line and two markers
	assert.Equal(t, 8, strings.Count(string(b), "<path "))
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		conf string
		args []string
		want string
	}{
		{name: "view", args: []string{"render", "--view", "pie"}, want: "unknown view"},
		{name: "count", args: []string{"render", "--count", "-1"}, want: "invalid count"},
		{name: "history", args: []string{"render", "--history", "missing.csv"}, want: "failed to load history"},
		{name: "config", conf: "goal = 0\n", args: []string{"render"}, want: "failed to load config"},
		{name: "press", args: []string{"render", "--view", "button", "--press", "1.5"}, want: "invalid press"},
		{name: "morph", args: []string{"render", "--view", "button", "--from", "minus", "--morph", "-1"}, want: "invalid morph"},
		{name: "from", args: []string{"render", "--view", "button", "--from", "star"}, want: "unknown kind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.conf, tt.args...)
			assert.ErrorContains(t, err, tt.want)
		})
	}

	_, err := execute(t, "", "render", "--view", "pie")
	assert.ErrorIs(t, err, render.ErrUnknownView)
}

func TestRenderButtonFrame(t *testing.T) {
	rest, err := execute(t, "", "render", "--view", "button")
	require.NoError(t, err)
	pressed, err := execute(t, "", "render", "--view", "button", "--press", "1")
	require.NoError(t, err)
	assert.NotEqual(t, rest, pressed)

	// a switch that has not started shows the old symbol, one bar for a minus
	assert.Equal(t, 2, strings.Count(rest, " L "))
	out, err := execute(t, "", "render", "--view", "button", "--from", "minus")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, " L "))
	out, err = execute(t, "", "render", "--view", "button", "--from", "minus", "--morph", "1")
	require.NoError(t, err)
	assert.Equal(t, rest, out)
}

func TestConfigCmd(t *testing.T) {
	out, err := execute(t, "goal = 5\n", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "goal = 5")
	assert.Contains(t, out, "[colors]")

	to := filepath.Join(t.TempDir(), "saved.toml")
	out, err = execute(t, "goal = 4\n", "config", "--write", "--to", to)
	require.NoError(t, err)
	assert.Equal(t, to+"\n", out)
	b, err := os.ReadFile(to)
	require.NoError(t, err)
	assert.Contains(t, string(b), "goal = 4")
}

func TestLogFlag(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "flo.log")
	_, err := execute(t, "", "render", "--log", logPath, "--debug")
	require.NoError(t, err)
	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "rendered")
}

func TestUnknownConfigKeyLogged(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "flo.log")
	_, err := execute(t, "goal = 6\nbogus_key = 1\n", "config", "--log", logPath)
	require.NoError(t, err)
	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "unknown config key")
	assert.Contains(t, string(b), `"key":"bogus_key"`)
}
