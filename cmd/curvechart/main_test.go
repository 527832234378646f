package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/curveaxis"
)

const chartTOML = `
kind = "curve"
width = 200.0
height = 200.0

[curve]
points = [[0.0, 0.0], [100.0, 0.0], [100.0, 100.0]]
y_length = 20.0

[[series]]
type = "line"
values = [[0.0, 0.5], [1.0, 0.5]]
`

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { curveaxis.SetLogger(nil) })
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.toml")
	require.NoError(t, os.WriteFile(path, []byte(chartTOML), 0o644))
	return path
}

func TestPoints(t *testing.T) {
	out, _, err := run(t, "points", "--config", writeConfig(t))
	require.NoError(t, err)
	assert.Equal(t, "0 0\n100 0\n100 100\n", out)
}

func TestRenderPNG(t *testing.T) {
	output := filepath.Join(t.TempDir(), "chart.png")
	_, stderr, err := run(t, "render", "-v", "--config", writeConfig(t), "--output", output)
	require.NoError(t, err)
	assert.Contains(t, stderr, "wrote chart")
	assert.Contains(t, stderr, "level=DEBUG")

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 240, img.Bounds().Dx())
}

func TestRenderSVG(t *testing.T) {
	output := filepath.Join(t.TempDir(), "chart.svg")
	_, _, err := run(t, "render", "--config", writeConfig(t), "--output", output)
	require.NoError(t, err)

	b, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "<svg "))
	assert.Contains(t, string(b), `class="line"`)
}

func TestRenderErrors(t *testing.T) {
	_, _, err := run(t, "render")
	assert.Error(t, err, "missing --config")

	_, _, err = run(t, "render", "--config", writeConfig(t), "--output", filepath.Join(t.TempDir(), "chart.gif"))
	assert.ErrorContains(t, err, "unsupported output format")

	_, _, err = run(t, "points", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "loading config")
}
