// Package walk streams the internal catalog page by page without ever
// materializing it fully.
package walk

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-sync/core/shop"

	"golang.org/x/time/rate"
)

// ErrStop is returned by a walk callback to abort the walk cleanly: no
// further pages are fetched and ForEachProduct returns nil.
var ErrStop = errors.New("walk: stop")

// DefaultPageSize bounds how many products one page request may return.
const DefaultPageSize = 250

// Walker streams products from the catalog source in strict cursor order,
// pacing page requests to respect the platform's rate limits.
type Walker struct {
	client   shop.Client
	pageSize int
	limiter  *rate.Limiter
}

// New creates a walker. pageSize falls back to DefaultPageSize; pageDelay is
// the minimum spacing between page requests (zero disables pacing).
func New(client shop.Client, pageSize int, pageDelay time.Duration) *Walker {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	limit := rate.Inf
	if pageDelay > 0 {
		limit = rate.Every(pageDelay)
	}
	return &Walker{
		client:   client,
		pageSize: pageSize,
		limiter:  rate.NewLimiter(limit, 1),
	}
}

// ForEachProduct invokes fn once per product, fetching pages lazily. Each
// product is visited exactly once per walk. fn may return ErrStop to end the
// walk early; any other error aborts the walk and propagates.
func (w *Walker) ForEachProduct(ctx context.Context, fn func(shop.Product) error) error {
	cursor := ""
	for {
		if err := w.limiter.Wait(ctx); err != nil {
			return err
		}

		page, err := w.client.ProductsPage(ctx, cursor, w.pageSize)
		if err != nil {
			return fmt.Errorf("walk: fetch page at cursor %q: %w", cursor, err)
		}

		for _, product := range page.Products {
			if err := fn(product); err != nil {
				if errors.Is(err, ErrStop) {
					return nil
				}
				return err
			}
		}

		if !page.HasMore {
			return nil
		}
		cursor = page.NextCursor
	}
}

// Count walks the catalog accumulating totals without holding products in
// memory. Used to size progress reporting ahead of a full walk.
func (w *Walker) Count(ctx context.Context) (products, variants int, err error) {
	err = w.ForEachProduct(ctx, func(p shop.Product) error {
		products++
		variants += len(p.Variants)
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return products, variants, nil
}
