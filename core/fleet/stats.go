package fleet

import (
	"gonum.org/v1/gonum/stat"

	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/core/model"
)

// Summary aggregates fleet-wide maintenance figures.
type Summary struct {
	Total   int
	OK      int
	DueSoon int
	Overdue int

	MeanHealth   float64
	StdDevHealth float64
	MeanKmLeft   float64
}

// Stats computes a Summary over the current records. Derived fields must
// be fresh; call Refresh first.
func (s *Store) Stats() Summary {
	sum := Summary{Total: len(s.buses)}
	if sum.Total == 0 {
		return sum
	}
	health := make([]float64, 0, sum.Total)
	left := make([]float64, 0, sum.Total)
	for i := range s.buses {
		switch s.buses[i].Status {
		case model.StatusOverdue:
			sum.Overdue++
		case model.StatusDueSoon:
			sum.DueSoon++
		default:
			sum.OK++
		}
		health = append(health, float64(s.buses[i].HealthScore))
		left = append(left, s.buses[i].KmLeft)
	}
	sum.MeanHealth = stat.Mean(health, nil)
	sum.MeanKmLeft = stat.Mean(left, nil)
	if sum.Total > 1 {
		sum.StdDevHealth = stat.StdDev(health, nil)
	}
	return sum
}
