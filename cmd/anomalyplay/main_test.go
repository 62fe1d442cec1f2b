package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/anomalyplay/internal/chart"
	"github.com/san-kum/anomalyplay/internal/script"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "Year,Mean\n1880,-0.16\n1881,-0.08\n1882,-0.10\n1883,-0.17\n"

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestBuildConfigPrecedence(t *testing.T) {
	cfgPath := writeFile(t, "cfg.yaml", "period: 250ms\nterminal_year: 1990\n")

	root := newRootCmd()
	require.NoError(t, root.ParseFlags([]string{
		"--preset", "classic",
		"--config", cfgPath,
		"--terminal-year", "2000",
	}))
	cfg, err := buildConfig(root)
	require.NoError(t, err)

	require.Equal(t, 250*time.Millisecond, cfg.Period, "file overrides preset")
	require.Equal(t, 2000, cfg.TerminalYear, "flag overrides file")
	require.Equal(t, 500*time.Millisecond, cfg.Transition, "preset value kept")
}

func TestBuildConfigUnknownPreset(t *testing.T) {
	root := newRootCmd()
	require.NoError(t, root.ParseFlags([]string{"--preset", "turbo"}))
	_, err := buildConfig(root)
	require.ErrorContains(t, err, "unknown preset")
}

func TestExportCSVCommand(t *testing.T) {
	src := writeFile(t, "gistemp.csv", sampleCSV)
	dest := filepath.Join(t.TempDir(), "out.csv")

	root := newRootCmd()
	root.SetArgs([]string{"export-csv", "--source", src, "--year", "1881", "--out", dest, "--log-level", "error"})
	require.NoError(t, root.ExecuteContext(context.Background()))

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, "Year,Mean\n1880,-0.16\n1881,-0.08\n", string(got))
}

func TestReplayCommand(t *testing.T) {
	src := writeFile(t, "gistemp.csv", sampleCSV)
	sc := writeFile(t, "sc.yaml", "steps:\n  - action: seek\n    year: 1880\n  - action: play\n  - action: run\n")

	root := newRootCmd()
	root.SetArgs([]string{"replay", sc, "--source", src, "--log-level", "error"})
	require.NoError(t, root.ExecuteContext(context.Background()))
}

func TestPrintTrace(t *testing.T) {
	var buf bytes.Buffer
	err := printTrace(&buf, []script.Entry{
		{Step: 1, Action: "seek", State: chart.Idle, Label: "1950", Visible: 71},
		{Step: 2, Action: "hover", State: chart.Idle, Label: "1950", Visible: 71, Tooltip: "1950: -0.17°C"},
	})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "STEP")
	require.Contains(t, out, "idle")
	require.Contains(t, out, "1950: -0.17°C")
}
