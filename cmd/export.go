package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/infra/report"
)

var (
	exportDate string
	exportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the CSV maintenance report without entering the menu",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportDate, "date", "", "reference date (dd/mm/yyyy), defaults to today")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "report path, defaults to the configured one")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, store, _, _, err := openFleet(exportDate)
	if err != nil {
		return err
	}
	path := cfg.Report.Path
	if exportOut != "" {
		path = exportOut
	}
	if err := report.Export(store, path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "CSV report exported to %s\n", path)
	return nil
}
