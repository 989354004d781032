package console

import (
	"fmt"
	"strings"

	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/core/fleet"
	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/core/model"
)

// FormatBus renders the detailed single-record view.
func FormatBus(b model.Bus) string {
	var sb strings.Builder
	style := StatusStyle(b.Status)
	fmt.Fprintln(&sb, style.Render(fmt.Sprintf("Bus %d [%s] (%s)", b.Number, b.Code, b.Status)))
	fmt.Fprintf(&sb, "  Driver name       : %s\n", b.DriverName)
	fmt.Fprintf(&sb, "  Last service date : %s\n", b.LastService)
	if b.NextDue.Year > 0 {
		fmt.Fprintf(&sb, "  Next due date     : %s\n", b.NextDue)
	}
	fmt.Fprintf(&sb, "  Last service km   : %.1f\n", b.LastServiceKm)
	fmt.Fprintf(&sb, "  Current km        : %.1f\n", b.CurrentKm)
	fmt.Fprintf(&sb, "  Interval          : %.1f km, %d days\n", b.IntervalKm, b.IntervalDays)
	fmt.Fprintf(&sb, "  Km left           : %.1f\n", b.KmLeft)
	fmt.Fprintf(&sb, "  Avg daily km      : %.1f\n", b.AvgDailyKm)
	fmt.Fprintf(&sb, "  Fuel efficiency   : %.1f km/l\n", b.FuelEfficiency)
	fmt.Fprintf(&sb, "  Health score      : %d/100\n", b.HealthScore)
	fmt.Fprintf(&sb, "  Service history   : %d\n", b.HistoryCount)
	return sb.String()
}

// FormatTable renders the all-buses summary table.
func FormatTable(buses []model.Bus) string {
	if len(buses) == 0 {
		return Warn("No buses in fleet.") + "\n"
	}
	var sb strings.Builder
	fmt.Fprintln(&sb, Bold("\n================ Fleet Summary (All Buses) ================"))
	fmt.Fprintf(&sb, "Total buses: %d\n\n", len(buses))
	fmt.Fprintln(&sb, "Bus  | Code      | Driver        | Last Service | Next Due   | CurrKm     | KmLeft    | Health   | Status")
	fmt.Fprintln(&sb, "-----+-----------+---------------+--------------+------------+------------+-----------+----------+---------")
	for _, b := range buses {
		next := "-"
		if b.NextDue.Year > 0 {
			next = b.NextDue.String()
		}
		fmt.Fprintf(&sb, "%-4d | %-9.9s | %-13.13s | %-12s | %-10s | %10.1f | %9.1f | %8d | %s\n",
			b.Number, b.Code, b.DriverName,
			b.LastService, next,
			b.CurrentKm, b.KmLeft, b.HealthScore,
			StatusStyle(b.Status).Render(fmt.Sprintf("%-9s", b.Status)))
	}
	fmt.Fprintln(&sb)
	return sb.String()
}

// FormatPositions renders the position-picker listing used by the edit
// flow; positions are 1-based for the operator.
func FormatPositions(buses []model.Bus) string {
	var sb strings.Builder
	fmt.Fprintln(&sb, "\nAvailable buses (positions):")
	fmt.Fprintln(&sb, "Pos | BusNo | Code        | Driver")
	fmt.Fprintln(&sb, "----+-------+-------------+----------------")
	for i, b := range buses {
		fmt.Fprintf(&sb, "%-3d | %-5d | %-11.11s | %-16.16s\n", i+1, b.Number, b.Code, b.DriverName)
	}
	return sb.String()
}

// FormatSummary renders the fleet statistics block.
func FormatSummary(sum fleet.Summary) string {
	if sum.Total == 0 {
		return Warn("No buses in fleet yet. Add bus data to check maintenance.") + "\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Fleet of %d: %s, %s, %s\n",
		sum.Total,
		styleOK.Render(fmt.Sprintf("%d ok", sum.OK)),
		styleDueSoon.Render(fmt.Sprintf("%d due soon", sum.DueSoon)),
		styleOverdue.Render(fmt.Sprintf("%d overdue", sum.Overdue)))
	fmt.Fprintf(&sb, "Mean health score : %.1f/100 (stddev %.1f)\n", sum.MeanHealth, sum.StdDevHealth)
	fmt.Fprintf(&sb, "Mean km left      : %.1f\n", sum.MeanKmLeft)
	return sb.String()
}
