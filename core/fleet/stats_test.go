package fleet

import (
	"math"
	"testing"

	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/core/model"
)

func TestStatsEmpty(t *testing.T) {
	sum := NewStore().Stats()
	if sum.Total != 0 || sum.MeanHealth != 0 {
		t.Fatalf("empty summary not zero: %+v", sum)
	}
}

func TestStatsCountsAndMeans(t *testing.T) {
	s := NewStore()
	ok := bus(1, "A-1")
	ok.CurrentKm = 10000 // health 100
	soon := bus(2, "B-2")
	soon.CurrentKm = 19600 // health 36
	over := bus(3, "C-3")
	over.CurrentKm = 25000 // health 0
	for _, b := range []model.Bus{ok, soon, over} {
		if err := s.Add(b); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	s.Refresh(model.Date{Day: 15, Month: 1, Year: 2024})
	sum := s.Stats()
	if sum.Total != 3 || sum.OK != 1 || sum.DueSoon != 1 || sum.Overdue != 1 {
		t.Fatalf("counts wrong: %+v", sum)
	}
	wantMean := (100.0 + 36.0 + 0.0) / 3
	if math.Abs(sum.MeanHealth-wantMean) > 1e-9 {
		t.Fatalf("mean health = %v, want %v", sum.MeanHealth, wantMean)
	}
	if sum.StdDevHealth <= 0 {
		t.Fatalf("stddev not computed: %v", sum.StdDevHealth)
	}
	// km left: 10000 + 400 + (-5000)
	wantLeft := (10000.0 + 400.0 - 5000.0) / 3
	if math.Abs(sum.MeanKmLeft-wantLeft) > 1e-9 {
		t.Fatalf("mean km left = %v, want %v", sum.MeanKmLeft, wantLeft)
	}
}

func TestStatsSingleBusNoStdDev(t *testing.T) {
	s := NewStore()
	if err := s.Add(bus(1, "A-1")); err != nil {
		t.Fatalf("add: %v", err)
	}
	s.Refresh(model.Date{Day: 15, Month: 1, Year: 2024})
	sum := s.Stats()
	if sum.StdDevHealth != 0 {
		t.Fatalf("stddev of one sample should be 0, got %v", sum.StdDevHealth)
	}
}
