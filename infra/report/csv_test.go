package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/core/fleet"
	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/core/model"
)

func TestExport(t *testing.T) {
	store := fleet.NewStore()
	withDue := model.Bus{
		Code:          "CHD-101A",
		DriverName:    "John Driver",
		Number:        101,
		LastService:   model.Date{Day: 1, Month: 5, Year: 2024},
		CurrentKm:     19600,
		LastServiceKm: 10000,
		IntervalKm:    10000,
		IntervalDays:  180,
		HistoryCount:  3,
	}
	noDue := model.Bus{
		Code:          "CHD-102B",
		DriverName:    "Jane Driver",
		Number:        102,
		LastService:   model.Date{Day: 2, Month: 5, Year: 2024},
		CurrentKm:     10400,
		LastServiceKm: 10000,
		IntervalKm:    10000,
		HistoryCount:  1,
	}
	require.NoError(t, store.Add(withDue))
	require.NoError(t, store.Add(noDue))
	store.Refresh(model.Date{Day: 15, Month: 6, Year: 2024})

	path := filepath.Join(t.TempDir(), "fleet_report.csv")
	require.NoError(t, Export(store, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "BusNo,BusCode,DriverName,LastServiceDate,NextDueDate,CurrentKm,KmLeft,HealthScore,Status,ServiceHistoryCount", lines[0])
	next := model.Date{Day: 1, Month: 5, Year: 2024}.AddDays(180)
	assert.Equal(t,
		`101,"CHD-101A","John Driver","01-05-2024","`+next.String()+`",19600.0,400.0,36,"DUE SOON",3`,
		lines[1])
	// Day-based tracking disabled: the next-due column is empty.
	assert.Equal(t,
		`102,"CHD-102B","Jane Driver","02-05-2024","",10400.0,9600.0,97,"OK",1`,
		lines[2])
}

func TestExportBadPath(t *testing.T) {
	store := fleet.NewStore()
	err := Export(store, filepath.Join(t.TempDir(), "missing", "report.csv"))
	require.Error(t, err)
}
