// Package pricing computes the effective price, cost and inventory for a
// matched feed record.
//
// The price cascade consults the MAP, Jobber and Retail tiers in that order;
// the first tier that parses to a positive amount wins. A record where no
// tier parses yields an absent price, in which case the applier leaves the
// variant's price alone but still attempts the cost mutation.
package pricing

import (
	"strconv"
	"strings"

	"catalog-sync/core/feed"
)

// Tier identifies which price tier the cascade settled on.
type Tier string

const (
	TierNone   Tier = ""
	TierMAP    Tier = "map"
	TierJobber Tier = "jobber"
	TierRetail Tier = "retail"
)

// Resolved is the effective set of values to apply to a variant. Price and
// Cost are nil when absent.
type Resolved struct {
	Price        *float64
	Tier         Tier
	Cost         *float64
	InventoryQty int
}

// Resolve runs the deterministic cascade over a record.
func Resolve(record *feed.Record) Resolved {
	resolved := Resolved{Tier: TierNone}

	for _, tier := range []struct {
		raw  string
		tier Tier
	}{
		{record.PriceMAP, TierMAP},
		{record.PriceJobber, TierJobber},
		{record.PriceRetail, TierRetail},
	} {
		if amount, ok := ParseMoney(tier.raw); ok {
			resolved.Price = &amount
			resolved.Tier = tier.tier
			break
		}
	}

	// Cost parses independently of the price outcome.
	if cost, ok := ParseMoney(record.Cost); ok {
		resolved.Cost = &cost
	}

	if total := record.TotalQty(); total > 0 {
		resolved.InventoryQty = total
	} else if record.Availability > 0 {
		resolved.InventoryQty = record.Availability
	}

	return resolved
}

// ParseMoney parses a feed money string, stripping currency symbols, commas
// and whitespace. Non-numeric or non-positive values parse as absent.
func ParseMoney(raw string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '$', ',', ' ', '\t':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	if cleaned == "" {
		return 0, false
	}

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || amount <= 0 {
		return 0, false
	}
	return amount, true
}
