package sync

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"catalog-sync/core/feed"
	"catalog-sync/core/shop"
	"catalog-sync/feature/catalog/apply"
	"catalog-sync/feature/catalog/match"
	"catalog-sync/feature/catalog/models"
	"catalog-sync/feature/catalog/pricing"
	"catalog-sync/feature/catalog/walk"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Orchestrator ties the feed index, matcher, pricer, walker and applier
// together for one shop. It owns the SyncRun record exclusively.
type Orchestrator struct {
	shopName  string
	client    shop.Client
	feedCache *feed.Cache
	locations *shop.LocationCache
	store     RunStore
	cfg       Config
	logger    *zap.Logger
}

// NewOrchestrator wires an orchestrator for the given shop.
func NewOrchestrator(shopName string, client shop.Client, feedCache *feed.Cache, locations *shop.LocationCache, store RunStore, cfg Config, logger *zap.Logger) *Orchestrator {
	if cfg.PageSize <= 0 {
		cfg.PageSize = walk.DefaultPageSize
	}
	if cfg.ErrorCap <= 0 {
		cfg.ErrorCap = 50
	}
	return &Orchestrator{
		shopName:  shopName,
		client:    client,
		feedCache: feedCache,
		locations: locations,
		store:     store,
		cfg:       cfg,
		logger:    logger,
	}
}

// Run executes one full reconciliation run and returns the finalized record.
// The returned error is non-nil only for catastrophic failures (feed
// unavailable, catalog stream broken); per-variant errors are sampled into
// the record and do not fail the run.
func (o *Orchestrator) Run(ctx context.Context, opts Options) (*models.SyncRun, error) {
	startTime := time.Now()
	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	run := &models.SyncRun{
		ID:        runID,
		Shop:      o.shopName,
		Status:    models.RunStatusRunning,
		StartedAt: startTime,
	}

	// 1. Never operate on stale feed or location state.
	o.feedCache.Invalidate()
	o.locations.Invalidate()

	// 2. Build the index; no feed means no run.
	stepStart := time.Now()
	o.logger.Info("Building feed index", zap.String("shop", o.shopName))
	index, err := o.feedCache.FetchOrBuild(ctx)
	if err != nil {
		return o.fail(ctx, run, fmt.Errorf("build feed index: %w", err))
	}
	o.logger.Info("Feed index ready",
		zap.Duration("duration", time.Since(stepStart)),
		zap.Int("keys", index.Len()))

	// 3. Count totals to size progress reporting.
	stepStart = time.Now()
	walker := walk.New(o.client, o.cfg.PageSize, time.Duration(o.cfg.PageDelayMs)*time.Millisecond)
	totalProducts, totalVariants, err := walker.Count(ctx)
	if err != nil {
		return o.fail(ctx, run, fmt.Errorf("count catalog: %w", err))
	}
	run.TotalProducts = totalProducts
	run.TotalVariants = totalVariants
	o.logger.Info("Catalog counted",
		zap.Duration("duration", time.Since(stepStart)),
		zap.Int("products", totalProducts),
		zap.Int("variants", totalVariants))

	// 4. Persist the run in Running state before mutating anything.
	if err := o.store.Create(ctx, run); err != nil {
		// Telemetry only; the run proceeds without a progress trail.
		o.logger.Error("Failed to persist run record", zap.Error(err))
	}

	// 5. The walk itself.
	matcher := match.NewMatcher(index)
	applier := apply.New(o.client, o.locations, o.logger, opts.DryRun)

	var errorSample []string
	statusApplied := make(map[string]bool, totalProducts)
	lastPersisted := 0

	walkErr := walker.ForEachProduct(ctx, func(product shop.Product) error {
		anyMatched := false

		for _, variant := range product.Variants {
			result := matcher.Match(variant)
			if !result.Matched() {
				// A miss is a soft outcome, not an error.
				run.Skipped++
				o.maybePersist(ctx, run, &lastPersisted)
				continue
			}
			anyMatched = true

			resolved := pricing.Resolve(result.Record)
			switch resolved.Tier {
			case pricing.TierMAP:
				run.MapMatched++
			case pricing.TierJobber:
				run.MapUsedJobber++
			case pricing.TierRetail:
				run.MapUsedRetail++
			default:
				run.MapSkipped++
			}

			if opts.Incremental && unchanged(variant, resolved) {
				run.Synced++
				o.maybePersist(ctx, run, &lastPersisted)
				continue
			}

			outcome := applier.Apply(ctx, variant, resolved)
			run.Synced++
			if outcome.Failed() {
				run.Errors++
				for _, stepErr := range outcome.Errors {
					errorSample = appendCapped(errorSample, o.cfg.ErrorCap,
						fmt.Sprintf("variant %s: %s (%s)", variant.ID, stepErr.Error(), stepErr.Kind))
				}
			}
			o.maybePersist(ctx, run, &lastPersisted)
		}

		// Visibility follows this run's match outcome, applied once per
		// product per run.
		if !statusApplied[product.ID] {
			statusApplied[product.ID] = true
			desired := shop.StatusDraft
			if anyMatched {
				desired = shop.StatusActive
			}
			if !opts.DryRun && !strings.EqualFold(product.Status, desired) {
				if err := o.client.SetProductStatus(ctx, product.ID, desired); err != nil {
					run.Errors++
					errorSample = appendCapped(errorSample, o.cfg.ErrorCap,
						fmt.Sprintf("product %s: set_status: %v (%s)", product.ID, err, apply.Classify(err)))
				}
			}
		}

		return nil
	})
	if walkErr != nil {
		return o.fail(ctx, run, fmt.Errorf("stream catalog: %w", walkErr))
	}

	// 7. Finalize.
	if processed := run.Processed(); processed > 0 {
		run.SuccessRate = roundRate(float64(run.Synced) / float64(processed))
	}
	run.Status = models.RunStatusCompleted
	run.ErrorMessage = strings.Join(errorSample, "\n")
	completed := time.Now()
	run.CompletedAt = &completed

	if err := o.store.Update(ctx, run); err != nil {
		o.logger.Error("Failed to persist final run state", zap.Error(err))
	}

	o.logger.Info("Sync run completed",
		zap.String("run_id", run.ID),
		zap.Duration("duration", time.Since(startTime)),
		zap.Int("synced", run.Synced),
		zap.Int("skipped", run.Skipped),
		zap.Int("errors", run.Errors),
		zap.Float64("success_rate", run.SuccessRate))

	return run, nil
}

// fail finalizes a run as Failed and persists it best effort.
func (o *Orchestrator) fail(ctx context.Context, run *models.SyncRun, cause error) (*models.SyncRun, error) {
	run.Status = models.RunStatusFailed
	run.ErrorMessage = cause.Error()
	completed := time.Now()
	run.CompletedAt = &completed

	// Create-or-update: the run may fail before its record exists.
	if err := o.store.Update(ctx, run); err != nil {
		if err := o.store.Create(ctx, run); err != nil {
			o.logger.Error("Failed to persist failed run", zap.Error(err))
		}
	}

	o.logger.Error("Sync run failed", zap.String("run_id", run.ID), zap.Error(cause))
	return run, cause
}

// maybePersist writes progress when the cadence fires for a count we have not
// persisted yet. Failures are logged and swallowed.
func (o *Orchestrator) maybePersist(ctx context.Context, run *models.SyncRun, lastPersisted *int) {
	processed := run.Processed()
	if processed == *lastPersisted || !Cadence(processed) {
		return
	}
	*lastPersisted = processed
	if err := o.store.Update(ctx, run); err != nil {
		o.logger.Warn("Progress persistence failed", zap.Int("processed", processed), zap.Error(err))
	}
}

// unchanged reports whether applying resolved to the variant would be a
// no-op: same price, same on-hand quantity, tracking already enabled.
func unchanged(variant shop.Variant, resolved pricing.Resolved) bool {
	if !variant.Tracked {
		return false
	}
	if resolved.Price == nil {
		return false
	}
	if math.Abs(*resolved.Price-variant.Price) >= 0.005 {
		return false
	}
	return resolved.InventoryQty == variant.InventoryQty
}

func appendCapped(sample []string, limit int, entry string) []string {
	if len(sample) >= limit {
		return sample
	}
	return append(sample, entry)
}

func roundRate(rate float64) float64 {
	return math.Round(rate*10_000) / 10_000
}
