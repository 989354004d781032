package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/config"
	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/core/fleet"
	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/core/model"
	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/infra/logger"
	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/infra/storage"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Storage.Path = filepath.Join(dir, "bus_data.txt")
	cfg.Report.Path = filepath.Join(dir, "fleet_report.csv")
	cfg.Logging.SetDefaults()
	return cfg
}

func runSession(t *testing.T, cfg *config.Config, script ...string) string {
	t.Helper()
	in := strings.NewReader(strings.Join(script, "\n") + "\n")
	var out bytes.Buffer
	sess := newSession(cfg, in, &out)
	require.NoError(t, sess.run())
	return out.String()
}

func TestSessionAddAndSave(t *testing.T) {
	cfg := testConfig(t)
	out := runSession(t, cfg,
		"15/06/2024", // reference date
		"2",          // add new bus
		"chd-101a",
		"101",
		"John Driver",
		"01/05/2024",
		"10000",
		"10400",
		"10000",
		"180",
		"120",
		"4.5",
		"3",
		"10", // save & exit
	)
	assert.Contains(t, out, "Bus added. Total buses: 1")

	loaded, err := storage.NewFileStore(cfg.Storage.Path, logger.NopLogger{}).Load()
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Len())
	b, found := loaded.FindByNumber(101)
	require.True(t, found)
	assert.Equal(t, "CHD-101A", b.Code)
	assert.Equal(t, "John Driver", b.DriverName)
	// Refreshed against 15/06/2024 before saving: 44 projected days
	// elapsed, 9600 km left.
	assert.Equal(t, model.StatusOK, b.Status)
	assert.Equal(t, 97, b.HealthScore)
}

func TestSessionDeletePreservesOrder(t *testing.T) {
	cfg := testConfig(t)
	seed := fleet.NewStore()
	for i, code := range []string{"A-1", "B-2", "C-3"} {
		require.NoError(t, seed.Add(model.Bus{
			Code: code, DriverName: "Driver " + code, Number: 100 + i,
			LastService:   model.Date{Day: 1, Month: 5, Year: 2024},
			CurrentKm:     10000,
			LastServiceKm: 10000, IntervalKm: 10000,
		}))
	}
	require.NoError(t, storage.NewFileStore(cfg.Storage.Path, logger.NopLogger{}).Save(seed))

	out := runSession(t, cfg,
		"15/06/2024",
		"5",   // delete bus
		"101", // the middle record
		"10",  // save & exit
	)
	assert.Contains(t, out, "Bus deleted. Remaining: 2")

	loaded, err := storage.NewFileStore(cfg.Storage.Path, logger.NopLogger{}).Load()
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())
	all := loaded.All()
	assert.Equal(t, 100, all[0].Number)
	assert.Equal(t, 102, all[1].Number)
}

func TestSessionRejectsDuplicateCodeOnAdd(t *testing.T) {
	cfg := testConfig(t)
	seed := fleet.NewStore()
	require.NoError(t, seed.Add(model.Bus{
		Code: "CHD-101A", DriverName: "John Driver", Number: 101,
		LastService:   model.Date{Day: 1, Month: 5, Year: 2024},
		CurrentKm:     10000,
		LastServiceKm: 10000, IntervalKm: 10000,
	}))
	require.NoError(t, storage.NewFileStore(cfg.Storage.Path, logger.NopLogger{}).Save(seed))

	out := runSession(t, cfg,
		"15/06/2024",
		"2",
		"chd-101a", // collides case-insensitively, re-prompts
		"CHD-102B",
		"102",
		"Jane Driver",
		"01/05/2024",
		"10000",
		"10400",
		"10000",
		"0",
		"98",
		"4.2",
		"1",
		"10",
	)
	assert.Contains(t, out, "This bus code already exists")
	assert.Contains(t, out, "Bus added. Total buses: 2")
}

func TestSessionSearchNotFound(t *testing.T) {
	cfg := testConfig(t)
	out := runSession(t, cfg,
		"15/06/2024",
		"6",   // search
		"999", // nobody home
		"10",
	)
	assert.Contains(t, out, "Bus not found.")
}
