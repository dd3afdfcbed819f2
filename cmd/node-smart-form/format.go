package main

import (
	"fmt"

	"github.com/aniolquer/node-smart-form/pkg/documents"
	"github.com/aniolquer/node-smart-form/pkg/form"
	"github.com/aniolquer/node-smart-form/pkg/i18n"
	"github.com/aniolquer/node-smart-form/pkg/pricing"
	"github.com/aniolquer/node-smart-form/pkg/stay"
)

func printEstimate(est pricing.Estimate) {
	if !est.Available {
		fmt.Println("Not available.")
		fmt.Printf("  reason: %s\n", est.Reason)
		fmt.Printf("  %s\n", est.Message)
		return
	}

	fmt.Println("Estimate")
	fmt.Println("--------")
	fmt.Printf("  Stay type:       %s\n", est.StayType)
	fmt.Printf("  Season:          %s\n", est.Season)
	fmt.Printf("  Monthly price:   %s\n", formatEUR(est.MonthlyPrice))
	fmt.Printf("  Duration:        %d month(s)\n", est.DurationMonths)
	fmt.Printf("  Total price:     %s\n", formatEUR(est.TotalPrice))
	fmt.Printf("  Minimum income:  %s/month (%dx monthly price)\n", formatEUR(est.MinimumIncome), pricing.IncomeMultiple)
}

func printDocuments(stayType stay.Type, required []documents.Category, msgs *i18n.Provider) {
	fmt.Printf("Stay type: %s\n", stayType)

	if stayType == stay.TypeHotel {
		fmt.Println("Hotel-like stay: no documents are collected; this booking goes through the external channel.")
		return
	}
	if len(required) == 0 {
		fmt.Println("No documents required yet.")
		return
	}

	fmt.Printf("Required documents (%d):\n", len(required))
	for _, cat := range required {
		fmt.Printf("  - %s [%s]\n", msgs.DocumentLabel(cat), cat)
		if desc := msgs.DocumentDescription(cat); desc != "" {
			fmt.Printf("    %s\n", desc)
		}
	}
}

func printReport(r form.Report, stage form.WizardStage) {
	if len(r.Diagnostics) > 0 {
		fmt.Printf("BLOCKING (%d):\n", len(r.Diagnostics))
		for _, d := range r.Diagnostics {
			fmt.Printf("  [%s] %s\n", d.Code, d.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: READY TO SUBMIT (stage: %s)\n", stage)
	} else {
		fmt.Printf("Result: NOT READY (%d blocking, stage: %s)\n", len(r.Diagnostics), stage)
	}
}

func formatEUR(v float64) string {
	return fmt.Sprintf("%.2f EUR", v)
}
