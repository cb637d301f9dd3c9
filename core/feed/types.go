package feed

import "errors"

// ErrFeedUnavailable is returned when no configured feed source yields at
// least one row. It is the only fatal feed error; everything else degrades to
// empty fields.
var ErrFeedUnavailable = errors.New("feed: no source yielded any rows")

// Row is one raw feed row as delivered by a source: column name to cell value.
// Column names are vendor-specific; the normalizer resolves them through the
// alias table.
type Row map[string]string

// Record is the canonical, normalized shape of one feed row. It is immutable
// once indexed.
type Record struct {
	// RawID is the identifier exactly as it appeared in the feed.
	RawID string

	// StrippedID is RawID with leading zeros removed.
	StrippedID string

	// Padded12, Padded13 and Padded14 are the identifier zero-padded to the
	// common UPC/EAN/GTIN widths. Empty when the identifier is too long to pad.
	Padded12 string
	Padded13 string
	Padded14 string

	// PartNumber is the distributor part number.
	PartNumber string

	// MfrPartNumber is the manufacturer part number.
	MfrPartNumber string

	// PriceMAP, PriceJobber and PriceRetail hold the three price tiers as raw
	// feed strings. Parsing is deferred to the pricing resolver.
	PriceMAP    string
	PriceJobber string
	PriceRetail string

	// Cost is the raw customer-price/cost field.
	Cost string

	// LocationQty maps warehouse code to reported quantity.
	LocationQty map[string]int

	// Availability is the aggregate availability reported by the feed, used as
	// a fallback when no per-warehouse quantity is present.
	Availability int
}

// TotalQty returns the summed per-warehouse quantity.
func (r *Record) TotalQty() int {
	total := 0
	for _, qty := range r.LocationQty {
		total += qty
	}
	return total
}
