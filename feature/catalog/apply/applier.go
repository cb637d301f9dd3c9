// Package apply performs the per-variant mutations a sync run decides on.
//
// The four sub-steps (price, tracking, on-hand quantity, cost) are
// independently retryable network calls against the catalog platform. A
// failing sub-step is recorded and classified but never aborts the later
// sub-steps or the run; the structured Outcome tells the orchestrator exactly
// what landed.
package apply

import (
	"context"
	"fmt"
	"strings"

	"catalog-sync/core/shop"
	"catalog-sync/feature/catalog/pricing"

	"go.uber.org/zap"
)

// Kind classifies a failed sub-step.
type Kind string

const (
	// KindMutation is a generic mutation failure; the run continues.
	KindMutation Kind = "mutation_failure"
	// KindAuthExpired marks failures caused by an expired or invalid
	// credential. Classified separately because a re-run after refreshing the
	// credential will likely recover these variants.
	KindAuthExpired Kind = "auth_expired"
)

// StepError records one failed sub-step.
type StepError struct {
	Step string `json:"step"`
	Kind Kind   `json:"kind"`
	Err  error  `json:"-"`
}

func (e StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

// Outcome describes which sub-steps succeeded for one variant.
type Outcome struct {
	PriceSet     bool
	TrackedSet   bool
	InventorySet bool
	CostSet      bool
	Errors       []StepError
}

// Failed reports whether any sub-step failed.
func (o Outcome) Failed() bool {
	return len(o.Errors) > 0
}

// Applier applies resolved values to variants. The primary location is
// resolved once through the cache and reused for the whole run.
type Applier struct {
	client    shop.Client
	locations *shop.LocationCache
	logger    *zap.Logger
	dryRun    bool
}

// New creates an applier. With dryRun set, Apply reports what it would do
// without issuing any mutation.
func New(client shop.Client, locations *shop.LocationCache, logger *zap.Logger, dryRun bool) *Applier {
	return &Applier{client: client, locations: locations, logger: logger, dryRun: dryRun}
}

// Apply runs the sub-steps in sequence for one variant.
func (a *Applier) Apply(ctx context.Context, variant shop.Variant, resolved pricing.Resolved) Outcome {
	var outcome Outcome

	// 1. Price, only when the cascade produced one.
	if resolved.Price != nil {
		if a.dryRun {
			outcome.PriceSet = true
		} else if err := a.client.SetPrice(ctx, variant.ID, *resolved.Price); err != nil {
			outcome.Errors = append(outcome.Errors, classify("set_price", err))
		} else {
			outcome.PriceSet = true
		}
	}

	// 2. Ensure inventory tracking is enabled.
	if !variant.Tracked {
		if a.dryRun {
			outcome.TrackedSet = true
		} else if err := a.client.SetTracked(ctx, variant.InventoryItemID, true); err != nil {
			outcome.Errors = append(outcome.Errors, classify("set_tracked", err))
		} else {
			outcome.TrackedSet = true
		}
	} else {
		outcome.TrackedSet = true
	}

	// 3. On-hand quantity at the primary location.
	if a.dryRun {
		outcome.InventorySet = true
	} else if locationID, err := a.locations.Get(ctx); err != nil {
		outcome.Errors = append(outcome.Errors, classify("resolve_location", err))
	} else if err := a.client.SetOnHand(ctx, variant.InventoryItemID, locationID, resolved.InventoryQty); err != nil {
		outcome.Errors = append(outcome.Errors, classify("set_on_hand", err))
	} else {
		outcome.InventorySet = true
	}

	// 4. Cost: durable attribute first, inventory-item cost as fallback.
	if resolved.Cost != nil {
		if a.dryRun {
			outcome.CostSet = true
		} else if err := a.client.SetCostAttribute(ctx, variant.ID, *resolved.Cost); err == nil {
			outcome.CostSet = true
		} else if fallbackErr := a.client.SetInventoryCost(ctx, variant.InventoryItemID, *resolved.Cost); fallbackErr == nil {
			a.logger.Debug("Cost attribute write failed, inventory cost fallback succeeded",
				zap.String("variant_id", variant.ID), zap.Error(err))
			outcome.CostSet = true
		} else {
			outcome.Errors = append(outcome.Errors, classify("set_cost", fallbackErr))
		}
	}

	return outcome
}

// classify wraps a sub-step error with its kind.
func classify(step string, err error) StepError {
	return StepError{Step: step, Kind: Classify(err), Err: err}
}

// authMarkers are the message fragments that identify credential failures.
// The platform reports these as plain message strings, so classification is
// by inspection.
var authMarkers = []string{
	"401",
	"unauthorized",
	"invalid api key",
	"access token",
	"token expired",
}

// Classify maps an error onto the taxonomy by message inspection.
func Classify(err error) Kind {
	if err == nil {
		return KindMutation
	}
	message := strings.ToLower(err.Error())
	for _, marker := range authMarkers {
		if strings.Contains(message, marker) {
			return KindAuthExpired
		}
	}
	return KindMutation
}
