package cli

import (
	"errors"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"airdash/internal/airport"
	"airdash/internal/dashboard"
	"airdash/internal/geom"
	"airdash/internal/prefs"
	"airdash/internal/tui"
)

// runCmd is the explicit form of the root command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Load the dataset and start the dashboard",
	Long: `Load the airport dataset and start the dashboard.

Examples:
  # Local file
  airdash run --data data/airports.csv

  # Remote file, dark theme remembered in Redis
  airdash run --data https://example.org/airports.csv --prefs redis`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	config := GetConfig()

	mode, err := dashboard.ParseChartMode(config.Chart.Mode)
	if err != nil {
		return err
	}

	// The dashboard owns the terminal: logs go to a file
	logger := log.New(os.Stderr, "[airdash] ", log.LstdFlags)
	if f, err := tea.LogToFileWith(config.Log.File, "[airdash]", logger); err == nil {
		defer f.Close()
	} else {
		logger.Printf("Cannot open log file %s, logging to stderr: %v", config.Log.File, err)
	}

	logger.Printf("Loading airports from %s", config.Data.Source)
	ds, err := airport.Load(ctx, config.Data.Source)
	if err != nil {
		logger.Printf("Error loading data: %v", err)
		return fmt.Errorf("failed to load airports: %w", err)
	}
	logger.Printf("Loaded %d airports (%d rows dropped)", ds.Len(), ds.Dropped)

	store, err := prefs.Open(prefs.Config{
		Backend:  config.Prefs.Backend,
		Path:     config.Prefs.Path,
		RedisURL: config.Prefs.RedisURL,
	}, logger)
	if err != nil {
		logger.Printf("Preference store unavailable, theme will not be remembered: %v", err)
		store = prefs.NewMemoryStore()
	}
	defer store.Close()

	var base geom.Data
	if config.Map.Basemap != "" {
		base, err = geom.LoadBasemap(config.Map.Basemap)
		if err != nil {
			logger.Printf("Error loading basemap, continuing without it: %v", err)
		}
	}

	model := tui.New(tui.Options{
		Dataset:     ds,
		Store:       store,
		ChartMode:   mode,
		Basemap:     base,
		Attribution: config.Map.Attribution,
		Padding:     config.Map.Padding,
		Logger:      logger,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("dashboard: %w", err)
	}
	logger.Println("Dashboard closed")
	return nil
}
