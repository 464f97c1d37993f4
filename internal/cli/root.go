package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	dataSource string
	prefsKind  string
	prefsPath  string
	redisURL   string
	basemap    string
	chartMode  string
	logFile    string
)

// rootCmd starts the dashboard when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "airdash",
	Short: "Terminal dashboard for exploring an airport dataset",
	Long: `airdash loads an airport CSV and shows it as a linked terminal dashboard:

- a map with one marker per airport, coloured by category
- a searchable, filterable list of airports
- a bar chart by category or region with drill-down
- a details panel for the selected airport`,
	SilenceUsage: true,
	RunE:         runDashboard,
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.airdash.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataSource, "data", "data/airports.csv", "airport CSV path or http(s) URL")
	rootCmd.PersistentFlags().StringVar(&prefsKind, "prefs", "sqlite", "preference store (sqlite, redis, memory)")
	rootCmd.PersistentFlags().StringVar(&prefsPath, "prefs-path", "", "SQLite preference database path")
	rootCmd.PersistentFlags().StringVar(&redisURL, "redis", "redis://localhost:6379/0", "Redis connection URL")
	rootCmd.PersistentFlags().StringVar(&basemap, "basemap", "", "basemap file (.geojson or .wkt)")
	rootCmd.PersistentFlags().StringVar(&chartMode, "chart-mode", "category", "initial chart grouping (category, region)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "airdash.log", "log file used while the dashboard runs")

	// Bind flags to viper
	viper.BindPFlag("data.source", rootCmd.PersistentFlags().Lookup("data"))
	viper.BindPFlag("prefs.backend", rootCmd.PersistentFlags().Lookup("prefs"))
	viper.BindPFlag("prefs.path", rootCmd.PersistentFlags().Lookup("prefs-path"))
	viper.BindPFlag("prefs.redis_url", rootCmd.PersistentFlags().Lookup("redis"))
	viper.BindPFlag("map.basemap", rootCmd.PersistentFlags().Lookup("basemap"))
	viper.BindPFlag("chart.mode", rootCmd.PersistentFlags().Lookup("chart-mode"))
	viper.BindPFlag("log.file", rootCmd.PersistentFlags().Lookup("log-file"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".airdash")
	}

	viper.SetEnvPrefix("airdash")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	viper.SetDefault("data.source", "data/airports.csv")
	viper.SetDefault("prefs.backend", "sqlite")
	viper.SetDefault("prefs.path", filepath.Join(home, ".airdash", "prefs.db"))
	viper.SetDefault("prefs.redis_url", "redis://localhost:6379/0")
	viper.SetDefault("map.basemap", "")
	viper.SetDefault("map.attribution", "© OpenStreetMap contributors")
	viper.SetDefault("map.padding", 0.2)
	viper.SetDefault("chart.mode", "category")
	viper.SetDefault("log.file", "airdash.log")
}

// GetConfig returns the current configuration values.
func GetConfig() Config {
	return Config{
		Data: DataConfig{
			Source: viper.GetString("data.source"),
		},
		Prefs: PrefsConfig{
			Backend:  viper.GetString("prefs.backend"),
			Path:     viper.GetString("prefs.path"),
			RedisURL: viper.GetString("prefs.redis_url"),
		},
		Map: MapConfig{
			Basemap:     viper.GetString("map.basemap"),
			Attribution: viper.GetString("map.attribution"),
			Padding:     viper.GetFloat64("map.padding"),
		},
		Chart: ChartConfig{
			Mode: viper.GetString("chart.mode"),
		},
		Log: LogConfig{
			File: viper.GetString("log.file"),
		},
	}
}

// Config represents the application configuration.
type Config struct {
	Data  DataConfig  `mapstructure:"data"`
	Prefs PrefsConfig `mapstructure:"prefs"`
	Map   MapConfig   `mapstructure:"map"`
	Chart ChartConfig `mapstructure:"chart"`
	Log   LogConfig   `mapstructure:"log"`
}

type DataConfig struct {
	Source string `mapstructure:"source"`
}

type PrefsConfig struct {
	Backend  string `mapstructure:"backend"`
	Path     string `mapstructure:"path"`
	RedisURL string `mapstructure:"redis_url"`
}

type MapConfig struct {
	Basemap     string  `mapstructure:"basemap"`
	Attribution string  `mapstructure:"attribution"`
	Padding     float64 `mapstructure:"padding"`
}

type ChartConfig struct {
	Mode string `mapstructure:"mode"`
}

type LogConfig struct {
	File string `mapstructure:"file"`
}
