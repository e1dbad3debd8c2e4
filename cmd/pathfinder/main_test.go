package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/internal/cli"
)

const wallMap = "type octile\nheight 3\nwidth 3\nmap\n...\n@@.\n...\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_ShouldExit(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, run(out, []string{"-h"}))
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	err := run(&bytes.Buffer{}, []string{"-not-a-flag"})
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestRun_Solve(t *testing.T) {
	mapPath := writeFile(t, t.TempDir(), "wall.map", wallMap)
	out := &bytes.Buffer{}

	err := run(out, []string{"-algorithm", "anya", "-check", "-v", "-log-level", "error", "-map", mapPath, "0", "0", "3", "0"})
	require.NoError(t, err)
	assert.Equal(t, "Path found!\nLength: 5.472136\n0 0\n1 2\n2 2\n3 0\n**.\n##*\n**.\n", out.String())
}

func TestRun_SolveAStar(t *testing.T) {
	mapPath := writeFile(t, t.TempDir(), "wall.map", wallMap)
	out := &bytes.Buffer{}

	require.NoError(t, run(out, []string{"-log-level", "error", "-map", mapPath, "-task", "0 0 3 0"}))
	assert.Contains(t, out.String(), "Length: 7.000000\n")
}

func TestRun_NotFound(t *testing.T) {
	mapPath := writeFile(t, t.TempDir(), "split.map", "type octile\nheight 2\nwidth 3\nmap\n.@.\n.@.\n")
	out := &bytes.Buffer{}

	require.NoError(t, run(out, []string{"-algorithm", "theta", "-log-level", "error", "-map", mapPath, "0", "0", "0", "3"}))
	assert.Equal(t, "Path not found!\n", out.String())
}

func TestRun_MapOnlyAndPNG(t *testing.T) {
	dir := t.TempDir()
	mapPath := writeFile(t, dir, "wall.map", wallMap)
	pngPath := filepath.Join(dir, "wall.png")
	out := &bytes.Buffer{}

	require.NoError(t, run(out, []string{"-v", "-png", pngPath, "-map", mapPath}))
	assert.Equal(t, "...\n##.\n...\n", out.String())

	f, err := os.Open(pngPath)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 48, img.Bounds().Dx(), "3 cells of the default size")
}

func TestRun_BadMap(t *testing.T) {
	mapPath := writeFile(t, t.TempDir(), "bad.map", "type octile\nheight x\n")
	err := run(&bytes.Buffer{}, []string{"-map", mapPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.map")

	err = run(&bytes.Buffer{}, []string{"-map", filepath.Join(t.TempDir(), "missing.map")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_Scenario(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "wall.map", wallMap)
	scenarioPath := writeFile(t, dir, "runs.hcl", `
map "wall" {
  file = "wall.map"
}

run "anya" {
  map       = "wall"
  algorithm = "anya"
  start     = [0, 0]
  goal      = [3, 0]
  expect    = 5.472136
}

run "astar" {
  map    = "wall"
  start  = [0, 0]
  goal   = [3, 0]
  expect = 7
}
`)
	metricsPath := filepath.Join(dir, "runs.prom")
	tracePath := filepath.Join(dir, "spans.json")
	out := &bytes.Buffer{}

	require.NoError(t, run(out, []string{"-log-level", "error", "-metrics", metricsPath, "-trace", tracePath, "-scenario", scenarioPath}))
	assert.Contains(t, out.String(), "anya")
	assert.Contains(t, out.String(), "5.472136")
	assert.NotContains(t, out.String(), "mismatch")

	prom, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `pathfinder_searches_total{algorithm="anya",result="found"} 1`)

	spans, err := os.ReadFile(tracePath)
	require.NoError(t, err)
	assert.Equal(t, 2, bytes.Count(spans, []byte(`"Name":"scenario.run"`)), "one span per run")
	assert.Contains(t, string(spans), `"Key":"run.id"`)
}

func TestRun_ScenarioMismatch(t *testing.T) {
	scenarioPath := writeFile(t, t.TempDir(), "runs.hcl", `
map "open" {
  height = 2
  width  = 2
  rows   = ["..", ".."]
}

run "diagonal" {
  map       = "open"
  algorithm = "anya"
  start     = [0, 0]
  goal      = [2, 2]
  expect    = 4
}
`)
	out := &bytes.Buffer{}
	err := run(out, []string{"-log-level", "error", "-scenario", scenarioPath})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.Equal(t, "1 of 1 runs failed", exitErr.Message)
	assert.Contains(t, out.String(), "mismatch: expected 4.000000")
}

func TestRun_Bench(t *testing.T) {
	dir := t.TempDir()
	mapPath := writeFile(t, dir, "wall.map", wallMap)
	benchPath := writeFile(t, dir, "wall.map.scen",
		"version 1\n0\twall.map\t3\t3\t0\t0\t0\t3\t7.0\n0\twall.map\t3\t3\t0\t0\t3\t3\t4.24\n")
	out := &bytes.Buffer{}

	require.NoError(t, run(out, []string{"-algorithm", "anya", "-log-level", "error", "-bench", benchPath, "-map", mapPath}))
	assert.Contains(t, out.String(), mapPath+"#1")
	assert.Contains(t, out.String(), mapPath+"#2")
	assert.Contains(t, out.String(), "5.472136")
}
