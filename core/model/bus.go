package model

import (
	"math"
	"strings"
)

// Status classifies a bus into a maintenance band.
type Status int

const (
	StatusOK Status = iota
	StatusDueSoon
	StatusOverdue
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusDueSoon:
		return "DUE SOON"
	case StatusOverdue:
		return "OVERDUE"
	default:
		return "UNKNOWN"
	}
}

// DueSoonKm is the remaining-distance threshold below which a bus that is
// not yet overdue is flagged DUE SOON.
const DueSoonKm = 500

// Field size limits carried over from the fixed-width records in the data
// file. Longer input is truncated, not rejected.
const (
	MaxCodeLen = 19
	MaxNameLen = 49
)

// Bus is one fleet record. Code and Number are unique across the fleet;
// KmLeft, Status, HealthScore and NextDue are derived by UpdateStatus and
// recomputed before every view or export.
type Bus struct {
	Code       string // stored upper-case, unique case-insensitively
	DriverName string
	Number     int // unique, 1..9999999

	LastService Date
	NextDue     Date // zero while day-based tracking is disabled

	CurrentKm     float64
	LastServiceKm float64
	IntervalKm    float64 // always > 0 through validated input
	IntervalDays  int     // 0 disables date-based tracking

	HistoryCount int
	Status       Status

	KmLeft      float64
	HealthScore int

	// Operator-informational only, never consulted by the status engine.
	AvgDailyKm     float64
	FuelEfficiency float64
}

// UpdateStatus recomputes the derived fields against the reference date.
//
// A bus is OVERDUE when the odometer has reached the due mileage or, with
// day-based tracking enabled, when the interval in days has elapsed. It is
// DUE SOON when within DueSoonKm of the due mileage but not overdue. The
// health score is a 0-100 heuristic linear in distance since service,
// hitting zero at 150% of the interval; it is independent of the status
// band, so a date-overdue bus can still report high mileage health.
func (b *Bus) UpdateStatus(today Date) {
	dueKm := b.LastServiceKm + b.IntervalKm
	b.KmLeft = dueKm - b.CurrentKm

	mileageOverdue := b.CurrentKm >= dueKm
	mileageDueSoon := !mileageOverdue && b.KmLeft <= DueSoonKm

	dateOverdue := false
	if b.IntervalDays > 0 && b.LastService.Valid() && today.Valid() {
		if today.Days()-b.LastService.Days() >= b.IntervalDays {
			dateOverdue = true
		}
		b.NextDue = b.LastService.AddDays(b.IntervalDays)
	} else {
		b.NextDue = Date{}
	}

	switch {
	case mileageOverdue || dateOverdue:
		b.Status = StatusOverdue
	case mileageDueSoon:
		b.Status = StatusDueSoon
	default:
		b.Status = StatusOK
	}

	if b.IntervalKm > 0 {
		ratio := (b.CurrentKm - b.LastServiceKm) / b.IntervalKm
		if ratio < 0 {
			ratio = 0
		}
		if ratio > 1.5 {
			ratio = 1.5
		}
		score := int(math.Round((1.5 - ratio) / 1.5 * 100))
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		b.HealthScore = score
	} else {
		// Only reachable through a hand-edited data file.
		b.HealthScore = 50
	}
}

// NormalizeCode upper-cases a bus code and truncates it to MaxCodeLen.
func NormalizeCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) > MaxCodeLen {
		code = code[:MaxCodeLen]
	}
	return code
}

// TruncateName bounds a driver name to MaxNameLen.
func TruncateName(name string) string {
	if len(name) > MaxNameLen {
		name = name[:MaxNameLen]
	}
	return name
}
