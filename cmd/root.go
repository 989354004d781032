package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/config"
	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/core/fleet"
	corelogger "github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/core/logger"
	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/core/model"
	infralogger "github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/infra/logger"
	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/infra/storage"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "fleetguardian",
	Short: "Bus fleet maintenance tracker",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	sess := newSession(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	return sess.run()
}

// openFleet loads the configured data file and refreshes every record
// against the reference date, taken from the dd/mm/yyyy flag value or the
// wall clock when the flag is empty. Shared by the non-interactive
// subcommands.
func openFleet(dateFlag string) (*config.Config, *fleet.Store, model.Date, corelogger.Logger, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, model.Date{}, nil, fmt.Errorf("load config: %w", err)
	}
	log := infralogger.NewWithConfig("cli", cfg.Logging.Level, cfg.Logging.Format)
	today := model.DateOf(time.Now())
	if dateFlag != "" {
		if today, err = model.ParseDate(dateFlag); err != nil {
			return nil, nil, model.Date{}, nil, fmt.Errorf("parse --date: %w", err)
		}
	}
	store, err := storage.NewFileStore(cfg.Storage.Path, log).Load()
	if err != nil {
		return nil, nil, model.Date{}, nil, err
	}
	store.Refresh(today)
	return cfg, store, today, log, nil
}
