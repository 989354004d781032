// Package storage persists the fleet as a line-oriented, pipe-delimited
// text file: a leading record-count line followed by one record per line.
// The format predates this implementation and is kept byte-compatible with
// existing data files.
package storage

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/core/fleet"
	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/core/logger"
	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/core/model"
)

const fieldsPerRecord = 19

// FileStore reads and writes the fleet data file. Saves rewrite the whole
// file; an interruption mid-write can leave it truncated, which is an
// accepted risk for this single-user tool.
type FileStore struct {
	path string
	log  logger.Logger
}

// NewFileStore returns a store bound to path.
func NewFileStore(path string, log logger.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

// Path returns the bound file path.
func (f *FileStore) Path() string { return f.path }

// Load reads the data file into a new store. A missing file yields an
// empty store and no error. A malformed line is logged as a warning and
// skipped; the rest of the load continues. The leading count line is only
// a sanity check, the actual data lines win.
func (f *FileStore) Load() (*fleet.Store, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fleet.NewStore(), nil
		}
		return fleet.NewStore(), fmt.Errorf("open %s: %w", f.path, err)
	}
	defer func() { _ = file.Close() }()

	store := fleet.NewStore()
	sc := bufio.NewScanner(file)
	if !sc.Scan() {
		return store, sc.Err()
	}
	if _, err := strconv.Atoi(strings.TrimSpace(sc.Text())); err != nil {
		f.log.Warnf("data file %s: invalid count line, continuing", f.path)
	}
	lineNo := 1
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		b, err := parseRecord(line)
		if err != nil {
			f.log.Warnf("data file %s line %d: %v; record skipped", f.path, lineNo, err)
			continue
		}
		if err := store.Restore(b); err != nil {
			f.log.Warnf("data file %s line %d: %v; record skipped", f.path, lineNo, err)
		}
	}
	return store, sc.Err()
}

// Save rewrites the data file from the store contents. Mileage fields are
// written at 2-decimal fixed precision.
func (f *FileStore) Save(s *fleet.Store) error {
	file, err := os.Create(f.path)
	if err != nil {
		return fmt.Errorf("open %s for writing: %w", f.path, err)
	}
	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "%d\n", s.Len())
	for _, b := range s.All() {
		fmt.Fprintf(w, "%s|%s|%d|%d|%d|%d|%d|%d|%d|%.2f|%.2f|%.2f|%d|%d|%d|%.2f|%d|%.2f|%.2f\n",
			b.Code, b.DriverName, b.Number,
			b.LastService.Day, b.LastService.Month, b.LastService.Year,
			b.NextDue.Day, b.NextDue.Month, b.NextDue.Year,
			b.CurrentKm, b.LastServiceKm, b.IntervalKm,
			b.IntervalDays, b.HistoryCount, int(b.Status),
			b.KmLeft, b.HealthScore, b.AvgDailyKm, b.FuelEfficiency)
	}
	if err := w.Flush(); err != nil {
		_ = file.Close()
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", f.path, err)
	}
	return nil
}

// fieldReader collects the first parse error while fields are read
// positionally.
type fieldReader struct {
	fields []string
	err    error
}

func (r *fieldReader) text(i int) string { return r.fields[i] }

func (r *fieldReader) integer(i int) int {
	if r.err != nil {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(r.fields[i]))
	if err != nil {
		r.err = fmt.Errorf("field %d: %w", i+1, err)
	}
	return v
}

func (r *fieldReader) float(i int) float64 {
	if r.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(r.fields[i]), 64)
	if err != nil {
		r.err = fmt.Errorf("field %d: %w", i+1, err)
	}
	return v
}

func parseRecord(line string) (model.Bus, error) {
	parts := strings.Split(line, "|")
	if len(parts) != fieldsPerRecord {
		return model.Bus{}, fmt.Errorf("expected %d fields, got %d", fieldsPerRecord, len(parts))
	}
	r := &fieldReader{fields: parts}
	b := model.Bus{
		Code:           r.text(0),
		DriverName:     r.text(1),
		Number:         r.integer(2),
		LastService:    model.Date{Day: r.integer(3), Month: r.integer(4), Year: r.integer(5)},
		NextDue:        model.Date{Day: r.integer(6), Month: r.integer(7), Year: r.integer(8)},
		CurrentKm:      r.float(9),
		LastServiceKm:  r.float(10),
		IntervalKm:     r.float(11),
		IntervalDays:   r.integer(12),
		HistoryCount:   r.integer(13),
		Status:         model.Status(r.integer(14)),
		KmLeft:         r.float(15),
		HealthScore:    r.integer(16),
		AvgDailyKm:     r.float(17),
		FuelEfficiency: r.float(18),
	}
	if r.err != nil {
		return model.Bus{}, r.err
	}
	return b, nil
}
