package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "node-smart-form",
		Short: "Booking-request pricing and document-eligibility engine",
	}

	rootCmd.AddCommand(estimateCmd())
	rootCmd.AddCommand(documentsCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func estimateCmd() *cobra.Command {
	var opts estimateOptions

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the monthly and total price for a unit and date range",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runEstimate(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.unit, "unit", "u", "", "unit type id (see 'node-smart-form estimate --list-units')")
	cmd.Flags().StringVar(&opts.checkIn, "check-in", "", "check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.checkOut, "check-out", "", "check-out date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.ratesFile, "rates", "", "rate table override YAML")
	cmd.Flags().BoolVar(&opts.listUnits, "list-units", false, "print the known unit ids and exit")
	return cmd
}

func documentsCmd() *cobra.Command {
	var opts documentsOptions

	cmd := &cobra.Command{
		Use:   "documents",
		Short: "List the documents required for a stay and applicant situation",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDocuments(opts)
		},
	}

	cmd.Flags().StringVar(&opts.checkIn, "check-in", "", "check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.checkOut, "check-out", "", "check-out date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.income, "income", "", "sufficient income: yes|no")
	cmd.Flags().StringVar(&opts.worker, "worker", "", "worker type: employee|self_employed")
	cmd.Flags().StringVar(&opts.residency, "residency", "", "self-employed residency: eu|non_eu")
	cmd.Flags().StringVar(&opts.backing, "backing", "", "without sufficient income: guarantor|prepayment")
	cmd.Flags().StringVar(&opts.lang, "lang", "es", "language for document labels")
	return cmd
}

func checkCmd() *cobra.Command {
	var ratesFile, lang string

	cmd := &cobra.Command{
		Use:   "check [snapshot.yaml]",
		Short: "Evaluate a booking-request snapshot and list what blocks submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCheck(args[0], ratesFile, lang)
		},
	}

	cmd.Flags().StringVar(&ratesFile, "rates", "", "rate table override YAML")
	cmd.Flags().StringVar(&lang, "lang", "es", "language for diagnostics")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API for the wizard frontend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(port, cmd.Flags().Changed("port"))
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
