package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airdash/internal/airport"
	"airdash/internal/dashboard"
)

const csvData = "id,ident,type,name,latitude_deg,longitude_deg,elevation_ft,continent,iso_country,iso_region,municipality,iata_code\n" +
	"1,EGLL,large_airport,Heathrow,51.47,-0.45,83,EU,GB,GB-ENG,London,LHR\n" +
	"2,RJAA,large_airport,Narita,35.76,140.39,141,AS,JP,JP-12,Tokyo,NRT\n" +
	"3,XHEL,heliport,Rooftop Pad,40.7,-74.0,0,NA,US,US-NY,New York,\n" +
	"4,XBAD,heliport,Broken,north,-74.0,0,NA,US,US-NY,New York,\n"

func writeCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "airports.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvData), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		statsMode = ""
		rootCmd.SetArgs(nil)
	})
	err := Execute(context.Background())
	return ansi.Strip(out.String()), err
}

func TestStatsByCategory(t *testing.T) {
	out, err := execute(t, "stats", "--data", writeCSV(t), "--mode", "category")
	require.NoError(t, err)

	assert.Contains(t, out, "heliport")
	assert.Contains(t, out, "large_airport")
	assert.Contains(t, out, "3 airports, 1 rows dropped")
}

func TestStatsByRegion(t *testing.T) {
	out, err := execute(t, "stats", "--data", writeCSV(t), "--mode", "region")
	require.NoError(t, err)

	for _, want := range []string{"region", "AS", "EU", "NA"} {
		assert.Contains(t, out, want)
	}
}

func TestStatsRejectsUnknownMode(t *testing.T) {
	_, err := execute(t, "stats", "--data", writeCSV(t), "--mode", "country")
	assert.Error(t, err)
}

func TestStatsMissingFile(t *testing.T) {
	_, err := execute(t, "stats", "--data", filepath.Join(t.TempDir(), "nope.csv"), "--mode", "category")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestVersion(t *testing.T) {
	SetVersion("1.2.3", "2026-01-01")
	t.Cleanup(func() { SetVersion("", "") })

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "airdash 1.2.3")
	assert.Contains(t, out, "Build Time: 2026-01-01")
}

func TestStatsTableRowsFollowDomainOrder(t *testing.T) {
	ds, err := airport.Parse(bytes.NewBufferString(csvData))
	require.NoError(t, err)

	out := ansi.Strip(statsTable(ds, dashboard.ByCategory))

	heli := bytes.Index([]byte(out), []byte("heliport"))
	large := bytes.Index([]byte(out), []byte("large_airport"))
	require.GreaterOrEqual(t, heli, 0)
	assert.Less(t, heli, large)
}

func TestConfigDefaults(t *testing.T) {
	initConfig()
	cfg := GetConfig()

	assert.Equal(t, "sqlite", cfg.Prefs.Backend)
	assert.Equal(t, "© OpenStreetMap contributors", cfg.Map.Attribution)
	assert.InDelta(t, 0.2, cfg.Map.Padding, 1e-9)
	assert.Equal(t, "prefs.db", filepath.Base(cfg.Prefs.Path))
}

func TestRunStopsOnLoadFailure(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "airdash.log")
	prefsDB := filepath.Join(dir, "prefs", "prefs.db")

	_, err := execute(t, "run",
		"--data", filepath.Join(dir, "missing.csv"),
		"--log-file", logPath,
		"--prefs", "sqlite",
		"--prefs-path", prefsDB,
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "[airdash]")
	assert.Contains(t, string(logged), "Error loading data")

	// nothing after the load ran: the preference store was never opened
	_, err = os.Stat(prefsDB)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
