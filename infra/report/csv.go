// Package report writes the CSV maintenance report consumed by the
// depot's spreadsheet workflow.
package report

import (
	"bufio"
	"fmt"
	"os"

	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/core/fleet"
)

const header = "BusNo,BusCode,DriverName,LastServiceDate,NextDueDate,CurrentKm,KmLeft,HealthScore,Status,ServiceHistoryCount"

// Export writes one row per bus. Text fields are always quoted and dates
// render dd-mm-yyyy; an absent next-due date renders as the empty string.
// Callers refresh the store first so the derived columns are current.
func Export(s *fleet.Store, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s for writing: %w", path, err)
	}
	w := bufio.NewWriter(f)
	fmt.Fprintln(w, header)
	for _, b := range s.All() {
		next := ""
		if b.NextDue.Year > 0 {
			next = b.NextDue.String()
		}
		fmt.Fprintf(w, "%d,\"%s\",\"%s\",\"%s\",\"%s\",%.1f,%.1f,%d,\"%s\",%d\n",
			b.Number, b.Code, b.DriverName,
			b.LastService.String(), next,
			b.CurrentKm, b.KmLeft, b.HealthScore,
			b.Status.String(), b.HistoryCount)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
