package main

import (
	"fmt"
	"os"
	"time"

	"github.com/aniolquer/node-smart-form/internal/config"
	"github.com/aniolquer/node-smart-form/internal/server"
	"github.com/aniolquer/node-smart-form/pkg/applicant"
	"github.com/aniolquer/node-smart-form/pkg/documents"
	"github.com/aniolquer/node-smart-form/pkg/form"
	"github.com/aniolquer/node-smart-form/pkg/i18n"
	"github.com/aniolquer/node-smart-form/pkg/pricing"
	"github.com/aniolquer/node-smart-form/pkg/rates"
	"github.com/aniolquer/node-smart-form/pkg/stay"
)

const dateLayout = "2006-01-02"

type estimateOptions struct {
	unit      string
	checkIn   string
	checkOut  string
	ratesFile string
	listUnits bool
}

type documentsOptions struct {
	checkIn   string
	checkOut  string
	income    string
	worker    string
	residency string
	backing   string
	lang      string
}

// loadTable returns the built-in rate table, or the override file when one
// is given.
func loadTable(path string) (rates.Table, error) {
	if path == "" {
		return rates.Default, nil
	}
	return rates.LoadFile(path)
}

func parseDate(flag, v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing --%s: %w", flag, err)
	}
	return t, nil
}

func runEstimate(opts estimateOptions) error {
	if opts.listUnits {
		for _, u := range rates.Units {
			fmt.Println(u)
		}
		return nil
	}

	table, err := loadTable(opts.ratesFile)
	if err != nil {
		return err
	}

	checkIn, err := parseDate("check-in", opts.checkIn)
	if err != nil {
		return err
	}
	checkOut, err := parseDate("check-out", opts.checkOut)
	if err != nil {
		return err
	}

	est := pricing.Compute(table, rates.Unit(opts.unit), checkIn, checkOut)
	printEstimate(est)
	return nil
}

// situationFromFlags replays the questionnaire answers through the
// applicant transitions so the usual cascade rules apply: an answer given
// for a branch the earlier flags never opened is silently dropped.
func situationFromFlags(opts documentsOptions) applicant.Situation {
	sit := applicant.Situation{}.
		WithIncome(applicant.IncomeSufficiency(opts.income)).
		WithWorker(applicant.WorkerType(opts.worker)).
		WithResidency(applicant.Residency(opts.residency))
	return sit.WithBacking(applicant.Backing(opts.backing))
}

func runDocuments(opts documentsOptions) error {
	checkIn, err := parseDate("check-in", opts.checkIn)
	if err != nil {
		return err
	}
	checkOut, err := parseDate("check-out", opts.checkOut)
	if err != nil {
		return err
	}
	if checkIn.IsZero() || checkOut.IsZero() {
		return fmt.Errorf("both --check-in and --check-out are required")
	}

	stayType, err := stay.Classify(checkIn, checkOut)
	if err != nil {
		return fmt.Errorf("invalid date range: check-out must be after check-in")
	}

	sit := situationFromFlags(opts)
	required := documents.Required(stayType, sit)
	printDocuments(stayType, required, i18n.NewProvider(opts.lang))
	return nil
}

func runCheck(snapshotPath, ratesFile, lang string) error {
	table, err := loadTable(ratesFile)
	if err != nil {
		return err
	}

	snap, err := form.LoadSnapshot(snapshotPath)
	if err != nil {
		return err
	}

	report := form.Evaluate(table, snap, i18n.NewProvider(lang))
	printReport(report, form.Stage(table, snap))

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runServe(port int, portFlagSet bool) error {
	cfg := config.Load()
	if portFlagSet {
		cfg.Port = port
	}

	table, err := loadTable(cfg.RatesFile)
	if err != nil {
		return err
	}
	if errs := table.Validate(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "rate table: %v\n", e)
		}
		return fmt.Errorf("rate table has %d problem(s)", len(errs))
	}

	return server.New(cfg, table).Start()
}
