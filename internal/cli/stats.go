package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"airdash/internal/airport"
	"airdash/internal/dashboard"
)

var statsMode string

// statsCmd prints the chart aggregation without starting the dashboard.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print airport counts by category or region",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVar(&statsMode, "mode", "", "grouping (category, region); defaults to chart.mode")
}

func runStats(cmd *cobra.Command, args []string) error {
	config := GetConfig()
	m := statsMode
	if m == "" {
		m = config.Chart.Mode
	}
	mode, err := dashboard.ParseChartMode(m)
	if err != nil {
		return err
	}

	ds, err := airport.Load(cmd.Context(), config.Data.Source)
	if err != nil {
		return fmt.Errorf("failed to load airports: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, statsTable(ds, mode))
	fmt.Fprintf(out, "%d airports, %d rows dropped\n", ds.Len(), ds.Dropped)
	return nil
}

// statsTable renders one row per chart bar with its colour swatch.
func statsTable(ds *airport.Dataset, mode dashboard.ChartMode) string {
	bars := dashboard.Aggregate(ds, mode)
	colors := mode.Colors(ds)
	rows := make([][]string, 0, len(bars))
	for _, b := range bars {
		rows = append(rows, []string{b.Key, strconv.Itoa(b.Count)})
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("238"))).
		Headers(string(mode), "airports").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if col == 0 && row >= 0 && row < len(bars) {
				return cell.Foreground(lipgloss.Color(colors.Color(bars[row].Key)))
			}
			if col == 1 {
				return cell.Align(lipgloss.Right)
			}
			return cell
		})
	return t.String()
}
