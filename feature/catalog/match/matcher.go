package match

import (
	"strings"

	"catalog-sync/core/feed"
	"catalog-sync/core/shop"
)

// Strategy identifies which lookup produced a match. The cascade order is
// fixed; the first strategy to hit determines the reported value, so the
// order must never be reshuffled without treating it as a behavior change.
type Strategy string

const (
	StrategyNone                  Strategy = ""
	StrategyBarcode               Strategy = "barcode"
	StrategyBarcodeStripped       Strategy = "barcode_stripped"
	StrategyBarcodePadded         Strategy = "barcode_padded"
	StrategySKU                   Strategy = "sku"
	StrategyBarcodeStrippedPadded Strategy = "barcode_stripped_padded"
	StrategySKUFragment           Strategy = "sku_fragment"
	StrategySKUSuffix             Strategy = "sku_suffix"
)

// Result is the outcome of matching one variant against the index. It is
// ephemeral; the pricing resolver consumes it immediately.
type Result struct {
	Variant  shop.Variant
	Record   *feed.Record
	Strategy Strategy
}

// Matched reports whether any strategy hit.
func (r Result) Matched() bool {
	return r.Record != nil
}

// scanEntry is a precomputed normalized view of a record's part numbers, so
// the O(n) fragment scans of the late strategies do no per-probe work.
type scanEntry struct {
	part   string
	mfr    string
	record *feed.Record
}

// Matcher resolves internal variants to feed records through the strategy
// cascade. It snapshots the index at construction; build a new Matcher after
// an index refresh.
type Matcher struct {
	index *feed.Index
	scan  []scanEntry
}

// NewMatcher builds a matcher over the given index.
func NewMatcher(index *feed.Index) *Matcher {
	m := &Matcher{index: index}
	for _, record := range index.Records() {
		entry := scanEntry{
			part:   normalizeKey(record.PartNumber),
			mfr:    normalizeKey(record.MfrPartNumber),
			record: record,
		}
		if entry.part == "" && entry.mfr == "" {
			continue
		}
		m.scan = append(m.scan, entry)
	}
	return m
}

// Match runs the strategy cascade for one variant and returns the first hit.
// Matching is pure: the same variant against the same index always yields the
// same result.
func (m *Matcher) Match(variant shop.Variant) Result {
	barcode := strings.TrimSpace(variant.Barcode)
	sku := strings.TrimSpace(variant.SKU)
	stripped := feed.StripZeros(barcode)

	// 1. Exact raw barcode.
	if record := m.index.Lookup(barcode); record != nil {
		return Result{Variant: variant, Record: record, Strategy: StrategyBarcode}
	}

	// 2. Barcode with leading zeros stripped.
	if stripped != "" && stripped != barcode {
		if record := m.index.Lookup(stripped); record != nil {
			return Result{Variant: variant, Record: record, Strategy: StrategyBarcodeStripped}
		}
	}

	// 3. Barcode zero-padded to the common GTIN widths.
	for _, width := range []int{12, 13, 14} {
		padded := feed.PadTo(barcode, width)
		if padded == "" || padded == barcode {
			continue
		}
		if record := m.index.Lookup(padded); record != nil {
			return Result{Variant: variant, Record: record, Strategy: StrategyBarcodePadded}
		}
	}

	// 4. Exact SKU.
	if sku != "" {
		if record := m.index.Lookup(sku); record != nil {
			return Result{Variant: variant, Record: record, Strategy: StrategySKU}
		}
	}

	// 5. Stripped barcode re-padded over a wider net (11 included: some
	// vendors drop the UPC check digit).
	if stripped != "" {
		for _, width := range []int{11, 12, 13, 14} {
			padded := feed.PadTo(stripped, width)
			if padded == "" || padded == barcode {
				continue
			}
			if record := m.index.Lookup(padded); record != nil {
				return Result{Variant: variant, Record: record, Strategy: StrategyBarcodeStrippedPadded}
			}
		}
	}

	// 6. Trailing SKU fragments against part numbers.
	if record := m.matchFragments(sku); record != nil {
		return Result{Variant: variant, Record: record, Strategy: StrategySKUFragment}
	}

	// 7. Everything after the SKU's first token.
	if record := m.matchAfterPrefix(sku); record != nil {
		return Result{Variant: variant, Record: record, Strategy: StrategySKUSuffix}
	}

	return Result{Variant: variant, Strategy: StrategyNone}
}

// matchFragments tries the last 1-3 trailing fragments of the SKU, longest
// combination first: direct index hit, then suffix containment, then
// substring containment against the normalized part numbers.
func (m *Matcher) matchFragments(sku string) *feed.Record {
	fragments := splitFragments(sku)
	n := len(fragments)
	if n == 0 {
		return nil
	}

	take := 3
	if n < take {
		take = n
	}
	for ; take >= 1; take-- {
		candidate := strings.Join(fragments[n-take:], "")
		if record := m.probe(candidate); record != nil {
			return record
		}
	}
	return nil
}

// matchAfterPrefix drops the SKU's first token (typically a brand or vendor
// prefix) and probes the remainder as a whole.
func (m *Matcher) matchAfterPrefix(sku string) *feed.Record {
	fragments := splitFragments(sku)
	if len(fragments) < 2 {
		return nil
	}
	return m.probe(strings.Join(fragments[1:], ""))
}

// probe checks one candidate: direct index hit first, then the normalized
// scan. Candidates shorter than 3 characters are too ambiguous to scan.
func (m *Matcher) probe(candidate string) *feed.Record {
	if candidate == "" {
		return nil
	}
	if record := m.index.Lookup(candidate); record != nil {
		return record
	}

	norm := normalizeKey(candidate)
	if len(norm) < 3 {
		return nil
	}

	// Suffix hits are stronger than substring hits, so scan in two passes.
	for _, entry := range m.scan {
		if entry.part != "" && strings.HasSuffix(entry.part, norm) {
			return entry.record
		}
		if entry.mfr != "" && strings.HasSuffix(entry.mfr, norm) {
			return entry.record
		}
	}
	for _, entry := range m.scan {
		if entry.part != "" && strings.Contains(entry.part, norm) {
			return entry.record
		}
		if entry.mfr != "" && strings.Contains(entry.mfr, norm) {
			return entry.record
		}
	}
	return nil
}

// splitFragments splits a SKU on the delimiters vendors use interchangeably.
func splitFragments(sku string) []string {
	return strings.FieldsFunc(sku, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
}

// normalizeKey lowercases and removes delimiters so containment checks are
// delimiter- and case-insensitive.
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, s)
}
