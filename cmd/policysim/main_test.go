package main

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/urban-sandbox/internal/engine"
	"github.com/talgya/urban-sandbox/internal/narrative"
)

// execute runs the root command with fresh flag values and a temp archive.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	runYears, runLocale, runSeed, runPopulation = 0, "", 0, 0
	runStaged, runSave, runJSON, runRegions = false, false, false, false
	historyLimit, samplesLocale = 20, ""
	regionsSupport, regionsLocale = 50, ""
	configPath, logLevel = "", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func useTempArchive(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runs.db")
	t.Setenv("URBANSIM_DB_PATH", path)
	t.Setenv("URBANSIM_PHASE_DELAY_MS", "1")
	return path
}

func TestSamplesCommand(t *testing.T) {
	useTempArchive(t)
	out, err := execute(t, "samples", "--locale", "zh")
	require.NoError(t, err)
	assert.Contains(t, out, narrative.SamplePolicies(narrative.Chinese)[0])
	assert.Contains(t, out, narrative.Criteria(narrative.Chinese)[0])
}

func TestRunJSON(t *testing.T) {
	useTempArchive(t)
	out, err := execute(t, "run", "Expand", "MTR", "lines", "--json", "--seed", "5", "--population", "100", "--years", "3", "--regions")
	require.NoError(t, err)

	var res engine.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "Expand MTR lines", res.Policy)
	assert.Equal(t, 3, res.Years)
	assert.Equal(t, 100, res.Population)
	assert.Equal(t, int64(5), res.Seed)
	assert.Len(t, res.TrendData.Years, 4)
	assert.NotEmpty(t, res.RegionalSupport)
}

func TestRunStagedReport(t *testing.T) {
	useTempArchive(t)
	out, err := execute(t, "run", "green environment levy", "--seed", "3", "--population", "50", "--staged", "--years", "2")
	require.NoError(t, err)

	labels := narrative.LabelsFor(narrative.English)
	assert.Contains(t, out, "green environment levy")
	assert.Contains(t, out, labels.Support)
	assert.Contains(t, out, "air_quality")
	assert.Contains(t, out, labels.Completed)
}

func TestRunRejectsBlankPolicy(t *testing.T) {
	useTempArchive(t)
	_, err := execute(t, "run", "   ")
	assert.ErrorIs(t, err, engine.ErrInvalidInput)
}

func TestRunSaveAndHistory(t *testing.T) {
	useTempArchive(t)
	out, err := execute(t, "run", "tax relief for retail", "--seed", "9", "--population", "80", "--save", "--json")
	require.NoError(t, err)
	var res engine.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))

	out, err = execute(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "1 archived runs")
	assert.Contains(t, out, res.RunID)

	out, err = execute(t, "history", res.RunID)
	require.NoError(t, err)
	assert.Contains(t, out, "tax relief for retail")

	_, err = execute(t, "history", "missing")
	assert.ErrorContains(t, err, "no archived run")
}

func TestRegionsCommand(t *testing.T) {
	useTempArchive(t)
	out, err := execute(t, "regions")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 18)

	out, err = execute(t, "regions", "Expand MTR rail", "--support", "50")
	require.NoError(t, err)
	assert.Contains(t, out, "Yau Tsim Mong")
	assert.Contains(t, out, "58%")

	_, err = execute(t, "regions", "x", "--support", "120")
	assert.Error(t, err)
}

func TestSupportBar(t *testing.T) {
	assert.Contains(t, supportBar(100), "100%")
	assert.Contains(t, supportBar(-5), "  0%")
	assert.Equal(t, barWidth, strings.Count(supportBar(40), "█")+strings.Count(supportBar(40), "░"))
}
