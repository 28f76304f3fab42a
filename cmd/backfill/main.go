// Command backfill corrects stored invoice statuses: unknown values are
// re-derived from the amounts and fully paid invoices are marked Paid.
// Usage: go run ./cmd/backfill [--dry-run]
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"invoicedesk/internal/billing"
	"invoicedesk/internal/config"
	"invoicedesk/internal/logger"
	"invoicedesk/internal/port"
	"invoicedesk/internal/repository/postgres"
)

var rootCmd = &cobra.Command{
	Use:          "backfill",
	Short:        "Correct invoice statuses that disagree with paid and total amounts",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := logger.Setup(cfg.Log); err != nil {
			return fmt.Errorf("setting up logger: %w", err)
		}

		db, err := postgres.NewDB(&cfg.DB)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer func() { _ = db.Close() }()

		fixed, err := backfill(cmd.Context(), postgres.NewInvoiceRepo(db), dryRun)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Backfill complete: %d invoices corrected\n", fixed)
		return nil
	},
}

func init() {
	rootCmd.Flags().Bool("dry-run", false, "report mismatches without writing")
}

func backfill(ctx context.Context, repo port.InvoiceRepository, dryRun bool) (int, error) {
	log := logger.WithComponent("backfill")

	invoices, err := repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing invoices: %w", err)
	}

	fixed := 0
	for i := range invoices {
		inv := &invoices[i]
		current := inv.Status
		if !current.Valid() {
			current = ""
		}
		want := billing.InitialStatus(current, inv.PaidAmount, inv.TotalAmount)
		if want == inv.Status {
			continue
		}

		log.Info().
			Str("invoice_number", inv.InvoiceNumber).
			Str("from", string(inv.Status)).
			Str("to", string(want)).
			Bool("dry_run", dryRun).
			Msg("status mismatch")
		if dryRun {
			fixed++
			continue
		}
		if _, err := repo.UpdatePayment(ctx, inv.ID, want, inv.PaidAmount); err != nil {
			log.Warn().Err(err).Str("invoice_id", inv.ID.String()).Msg("skipping invoice")
			continue
		}
		fixed++
	}
	return fixed, nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
