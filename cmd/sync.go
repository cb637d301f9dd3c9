package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"catalog-sync/core/config"
	"catalog-sync/core/logger"
	catalogSync "catalog-sync/feature/catalog/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dryRunSync      bool
	incrementalSync bool
	yesConfirm      bool
)

// syncCmd is the parent command for sync operations.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run and inspect catalog sync runs",
}

// syncRunCmd executes one reconciliation run from the CLI.
var syncRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a full catalog reconciliation against the feed",
	Long: `Run one end-to-end reconciliation: build the feed index, stream the
catalog, match every variant, and apply price, cost and inventory mutations.

Examples:
  # Walk and match without mutating anything
  catalog-sync sync run --dry-run

  # Full run with interactive confirmation
  catalog-sync sync run

  # Full run, non-interactive
  catalog-sync sync run --yes

  # Skip variants whose price and inventory are already current
  catalog-sync sync run --incremental --yes`,
	RunE: runSync,
}

func init() {
	syncCmd.AddCommand(syncRunCmd)

	syncRunCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Match and resolve without issuing mutations")
	syncRunCmd.Flags().BoolVar(&incrementalSync, "incremental", false, "Skip mutations for variants that are already current")
	syncRunCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm mutations (non-interactive)")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// CLI runs get console logging regardless of server config.
	l, err := logger.NewCLI(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	// A non-dry run mutates the live catalog; make the operator own that.
	if !dryRunSync && !confirmMutations() {
		l.Warn("Run aborted by operator")
		return nil
	}

	feature, err := buildFeature(cfg, l)
	if err != nil {
		return err
	}

	run, err := feature.Service().RunSync(ctx, catalogSync.Options{
		DryRun:      dryRunSync,
		Incremental: incrementalSync,
	})
	if err != nil {
		return err
	}

	l.Info("Run finished",
		zap.String("run_id", run.ID),
		zap.String("status", run.Status),
		zap.Int("total_variants", run.TotalVariants),
		zap.Int("synced", run.Synced),
		zap.Int("skipped", run.Skipped),
		zap.Int("errors", run.Errors),
		zap.Float64("success_rate", run.SuccessRate))
	return nil
}

func confirmMutations() bool {
	if yesConfirm {
		fmt.Println("✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("This run will mutate the live catalog. Type 'yes' to continue: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(strings.ToLower(response)) == "yes"
}
