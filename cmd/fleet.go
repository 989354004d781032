package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/internal/console"
)

var fleetDate string

var fleetCmd = &cobra.Command{
	Use:   "fleet",
	Short: "Fleet inspection commands",
}

var fleetLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all buses with their maintenance status",
	RunE:  runFleetLs,
}

var fleetStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show fleet-wide maintenance statistics",
	RunE:  runFleetStats,
}

func init() {
	fleetCmd.PersistentFlags().StringVar(&fleetDate, "date", "", "reference date (dd/mm/yyyy), defaults to today")
	fleetCmd.AddCommand(fleetLsCmd, fleetStatsCmd)
	rootCmd.AddCommand(fleetCmd)
}

func runFleetLs(cmd *cobra.Command, args []string) error {
	_, store, _, _, err := openFleet(fleetDate)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), console.FormatTable(store.All()))
	return nil
}

func runFleetStats(cmd *cobra.Command, args []string) error {
	_, store, today, _, err := openFleet(fleetDate)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Reference date: %s\n", today)
	fmt.Fprint(cmd.OutOrStdout(), console.FormatSummary(store.Stats()))
	return nil
}
