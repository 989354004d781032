package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/config"
	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/core/fleet"
	corelogger "github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/core/logger"
	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/core/model"
	infralogger "github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/infra/logger"
	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/infra/report"
	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/infra/storage"
	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/internal/console"
)

// Prompt bounds carried over from the original tracker.
const (
	maxBusNumber    = 9999999
	maxKm           = 100000
	maxMileage      = 100000000
	maxIntervalDays = 5000
	maxHistory      = 1500
	maxFuelKmPerL   = 200
)

// session owns the one in-process store for the lifetime of the
// interactive run. All mutations are synchronous and immediately visible
// to the views; persistence happens only on save-and-exit.
type session struct {
	cfg   *config.Config
	log   corelogger.Logger
	p     *console.Prompter
	out   io.Writer
	file  *storage.FileStore
	store *fleet.Store
	today model.Date
}

func newSession(cfg *config.Config, in io.Reader, out io.Writer) *session {
	log := infralogger.NewWithConfig("session", cfg.Logging.Level, cfg.Logging.Format)
	return &session{
		cfg:  cfg,
		log:  log,
		p:    console.NewPrompter(in, out),
		out:  out,
		file: storage.NewFileStore(cfg.Storage.Path, log),
	}
}

func (s *session) run() error {
	fmt.Fprintln(s.out, console.Banner())

	store, err := s.file.Load()
	if err != nil {
		s.log.Errorf("load fleet: %v", err)
		fmt.Fprintln(s.out, console.Bad("Could not read the data file; continuing with what was loaded."))
	} else if store.Len() > 0 {
		fmt.Fprintln(s.out, console.Good(fmt.Sprintf("Loaded %d buses from %s", store.Len(), s.file.Path())))
	}
	s.store = store

	s.today, err = s.p.Date("Enter reference date for maintenance check (dd/mm/yyyy): ")
	if err != nil {
		return err
	}
	s.summarize()

	for {
		s.store.Refresh(s.today)
		s.printMenu()
		choice, err := s.p.Int("Enter choice: ", 1, 10)
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			err = s.changeDate()
		case 2:
			err = s.addBus()
		case 3:
			err = s.editBus()
		case 4:
			err = s.updateMileage()
		case 5:
			err = s.deleteBus()
		case 6:
			err = s.searchBus()
		case 7:
			fmt.Fprint(s.out, console.FormatTable(s.store.All()))
		case 8:
			s.showDueOrOverdue()
		case 9:
			s.export()
		case 10:
			if err := s.file.Save(s.store); err != nil {
				s.log.Errorf("save fleet: %v", err)
				fmt.Fprintln(s.out, console.Bad("Save failed; the fleet is kept in memory. Fix the problem and choose save again."))
				continue
			}
			fmt.Fprintln(s.out, console.Good(fmt.Sprintf("Fleet saved to %s", s.file.Path())))
			fmt.Fprintln(s.out, console.Title("Goodbye. Data saved."))
			return nil
		}
		if err != nil {
			// Only input-stream errors reach here; validation re-prompts.
			return err
		}
	}
}

func (s *session) printMenu() {
	fmt.Fprintln(s.out, console.Bold("-------------- Main Menu --------------"))
	fmt.Fprintf(s.out, "Current reference date: %s\n", s.today)
	fmt.Fprintln(s.out, "---------------------------------------")
	fmt.Fprintln(s.out, "1. Change reference date (dd/mm/yyyy)")
	fmt.Fprintln(s.out, "2. Add new bus")
	fmt.Fprintln(s.out, "3. Edit existing bus details")
	fmt.Fprintln(s.out, "4. Update mileage")
	fmt.Fprintln(s.out, "5. Delete bus")
	fmt.Fprintln(s.out, "6. Search by bus number")
	fmt.Fprintln(s.out, "7. View all buses (all data)")
	fmt.Fprintln(s.out, "8. Show buses due soon / overdue")
	fmt.Fprintln(s.out, "9. Export maintenance report (CSV)")
	fmt.Fprintln(s.out, "10. Save & exit")
	fmt.Fprintln(s.out, "---------------------------------------")
}

func (s *session) changeDate() error {
	d, err := s.p.Date("Enter new reference date (dd/mm/yyyy): ")
	if err != nil {
		return err
	}
	s.today = d
	fmt.Fprintf(s.out, "%s%s\n", console.Good("Reference date updated to: "), d)
	s.summarize()
	return nil
}

// summarize refreshes the fleet and prints the overdue / due-soon roll-up
// followed by fleet-wide statistics.
func (s *session) summarize() {
	if s.store.Len() == 0 {
		fmt.Fprintln(s.out, console.Warn("No buses in fleet yet. Add bus data to check maintenance."))
		return
	}
	s.store.Refresh(s.today)
	sum := s.store.Stats()
	if sum.Overdue == 0 && sum.DueSoon == 0 {
		fmt.Fprintln(s.out, console.Good("No maintenance due right now, or upcoming in the next few days."))
		fmt.Fprint(s.out, console.FormatSummary(sum))
		return
	}
	if sum.Overdue > 0 {
		fmt.Fprintln(s.out, console.Bad("\nThese buses NEED maintenance on or before the chosen date:"))
		for _, b := range s.store.All() {
			if b.Status == model.StatusOverdue {
				fmt.Fprintf(s.out, "  - Bus %d [%s] (driver: %s)\n", b.Number, b.Code, b.DriverName)
			}
		}
	}
	if sum.DueSoon > 0 {
		fmt.Fprintln(s.out, console.Warn(fmt.Sprintf("\nThese buses will need maintenance SOON (within %d km):", model.DueSoonKm)))
		for _, b := range s.store.All() {
			if b.Status == model.StatusDueSoon {
				fmt.Fprintf(s.out, "  - Bus %d [%s] (driver: %s), km left: %.1f\n", b.Number, b.Code, b.DriverName, b.KmLeft)
			}
		}
	}
	fmt.Fprintln(s.out)
	fmt.Fprint(s.out, console.FormatSummary(sum))
}

// promptCode loops until a unique, non-empty bus code is entered. The
// exclude index is -1 when adding; when editing, an empty entry keeps the
// current value and ok reports whether a new code was chosen.
func (s *session) promptCode(prompt string, exclude int, allowEmpty bool) (code string, ok bool, err error) {
	for {
		line, err := s.p.Line(prompt)
		if err != nil {
			return "", false, err
		}
		if allowEmpty && strings.TrimSpace(line) == "" {
			return "", false, nil
		}
		code, verr := console.ValidateCode(line)
		if verr != nil {
			fmt.Fprintln(s.out, console.Bad(verr.Error()))
			continue
		}
		if s.store.CodeExists(code, exclude) {
			fmt.Fprintln(s.out, console.Bad("This bus code already exists (case-insensitive). Please enter a different code."))
			continue
		}
		return code, true, nil
	}
}

func (s *session) promptNumber(prompt string, exclude int) (int, error) {
	for {
		n, err := s.p.Int(prompt, 1, maxBusNumber)
		if err != nil {
			return 0, err
		}
		if s.store.NumberExists(n, exclude) {
			fmt.Fprintln(s.out, console.Bad("This bus number already exists. Please enter a different number."))
			continue
		}
		return n, nil
	}
}

// promptDetails fills in the non-key fields shared by the add and edit
// flows; prefix is "Enter" when adding and "Enter new" when editing. Each
// field re-prompts independently, so an invalid entry never leaves the
// record half-updated.
func (s *session) promptDetails(b *model.Bus, prefix string) error {
	var err error
	if b.DriverName, err = s.p.Name("Enter driver name (full name): "); err != nil {
		return err
	}
	if b.LastService, err = s.p.Date(prefix + " last service date (dd/mm/yyyy): "); err != nil {
		return err
	}
	if b.LastServiceKm, err = s.p.Float(prefix+" last service mileage (km): ", 0, maxKm); err != nil {
		return err
	}
	if b.CurrentKm, err = s.p.Float(prefix+" current mileage (km): ", 0, maxKm); err != nil {
		return err
	}
	if b.IntervalKm, err = s.p.Float(prefix+" service interval (km), e.g. 10000: ", 1, maxKm); err != nil {
		return err
	}
	if b.IntervalDays, err = s.p.Int(prefix+" service interval in days (0 if not used): ", 0, maxIntervalDays); err != nil {
		return err
	}
	if b.AvgDailyKm, err = s.p.Float(prefix+" average daily km: ", 0, maxKm); err != nil {
		return err
	}
	if b.FuelEfficiency, err = s.p.Float(prefix+" fuel efficiency (km/l): ", 0, maxFuelKmPerL); err != nil {
		return err
	}
	if b.HistoryCount, err = s.p.Int(prefix+" service history count: ", 0, maxHistory); err != nil {
		return err
	}
	return nil
}

func (s *session) addBus() error {
	var b model.Bus
	code, _, err := s.promptCode("Enter bus code (e.g. CHD-101A): ", -1, false)
	if err != nil {
		return err
	}
	b.Code = code
	if b.Number, err = s.promptNumber("Enter numeric bus number: ", -1); err != nil {
		return err
	}
	if err := s.promptDetails(&b, "Enter"); err != nil {
		return err
	}
	if err := s.store.Add(b); err != nil {
		fmt.Fprintln(s.out, console.Bad(err.Error()))
		return nil
	}
	fmt.Fprintln(s.out, console.Good(fmt.Sprintf("Bus added. Total buses: %d", s.store.Len())))
	return nil
}

func (s *session) editBus() error {
	if s.store.Len() == 0 {
		fmt.Fprintln(s.out, console.Warn("No buses available to select."))
		return nil
	}
	fmt.Fprint(s.out, console.FormatPositions(s.store.All()))
	pos, err := s.p.Int("\nEnter position: ", 1, s.store.Len())
	if err != nil {
		return err
	}
	idx := pos - 1
	cur, _ := s.store.At(idx)
	fmt.Fprintln(s.out, console.Title(fmt.Sprintf("Editing position %d (Bus %d, %s)", pos, cur.Number, cur.Code)))

	b := cur
	code, ok, err := s.promptCode(fmt.Sprintf("Enter new bus code (leave empty to keep '%s'): ", cur.Code), idx, true)
	if err != nil {
		return err
	}
	if ok {
		b.Code = code
	}
	if b.Number, err = s.promptNumber("Enter new numeric bus number (or same as before): ", idx); err != nil {
		return err
	}
	if err := s.promptDetails(&b, "Enter new"); err != nil {
		return err
	}
	if err := s.store.ReplaceAt(idx, b); err != nil {
		fmt.Fprintln(s.out, console.Bad(err.Error()))
		return nil
	}
	fmt.Fprintln(s.out, console.Good(fmt.Sprintf("Bus at position %d updated.", pos)))
	return nil
}

func (s *session) updateMileage() error {
	n, err := s.p.Int("Enter bus number to update mileage: ", 1, maxBusNumber)
	if err != nil {
		return err
	}
	b, found := s.store.FindByNumber(n)
	if !found {
		fmt.Fprintln(s.out, console.Bad("Bus not found."))
		return nil
	}
	fmt.Fprintf(s.out, "Current mileage for bus %d: %.1f km\n", b.Number, b.CurrentKm)
	km, err := s.p.Float("Enter new current mileage (km): ", 0, maxMileage)
	if err != nil {
		return err
	}
	if err := s.store.UpdateMileage(n, km); err != nil {
		fmt.Fprintln(s.out, console.Bad(err.Error()))
		return nil
	}
	fmt.Fprintln(s.out, console.Good("Mileage updated."))
	return nil
}

func (s *session) deleteBus() error {
	n, err := s.p.Int("Enter bus number to delete: ", 1, maxBusNumber)
	if err != nil {
		return err
	}
	if err := s.store.DeleteByNumber(n); err != nil {
		fmt.Fprintln(s.out, console.Bad("Bus not found."))
		return nil
	}
	fmt.Fprintln(s.out, console.Warn(fmt.Sprintf("Bus deleted. Remaining: %d", s.store.Len())))
	return nil
}

func (s *session) searchBus() error {
	n, err := s.p.Int("Enter bus number to search: ", 1, maxBusNumber)
	if err != nil {
		return err
	}
	b, found := s.store.FindByNumber(n)
	if !found {
		fmt.Fprintln(s.out, console.Bad("Bus not found."))
		return nil
	}
	fmt.Fprint(s.out, console.FormatBus(b))
	return nil
}

func (s *session) showDueOrOverdue() {
	fmt.Fprintln(s.out, console.Bold("\n=== Buses Due Soon / Overdue ==="))
	due := s.store.DueOrOverdue()
	if len(due) == 0 {
		fmt.Fprintln(s.out, console.Good("No maintenance due right now or in the next few days."))
		return
	}
	for _, b := range due {
		fmt.Fprint(s.out, console.FormatBus(b))
		fmt.Fprintln(s.out)
	}
}

func (s *session) export() {
	if err := report.Export(s.store, s.cfg.Report.Path); err != nil {
		s.log.Errorf("export report: %v", err)
		fmt.Fprintln(s.out, console.Bad("Could not write the report file."))
		return
	}
	fmt.Fprintln(s.out, console.Good(fmt.Sprintf("CSV report exported to %s", s.cfg.Report.Path)))
}
