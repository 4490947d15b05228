package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/whlan02/TimerForWork/internal/config"
	"github.com/whlan02/TimerForWork/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "timerforwork",
	Short: "A work timer with calendar heatmaps",
	Long: `timerforwork tracks work intervals with a start/pause/resume timer,
saves them to a local spreadsheet file, and renders week and month
heatmaps of your logged time.`,
}

// openStore loads the configuration and opens the record store.
func openStore() (store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	st, err := store.Open(cfg)
	if err != nil {
		return nil, config.Config{}, err
	}
	return st, cfg, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("timerforwork %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}
