package feed

import (
	"strings"

	"catalog-sync/core/utils"
)

// Normalize converts one raw feed row into a canonical Record.
//
// Every field resolves independently and silently: an absent or malformed
// column yields an empty string or zero, never an error, so a single bad row
// cannot abort a feed load. Inventory prefers the per-warehouse quantity
// columns when any of them is present and positive, falling back to the
// aggregate availability column.
func Normalize(row Row) Record {
	rawID := strings.TrimSpace(lookupAlias(row, FieldID))

	record := Record{
		RawID:         rawID,
		StrippedID:    StripZeros(rawID),
		Padded12:      PadTo(StripZeros(rawID), 12),
		Padded13:      PadTo(StripZeros(rawID), 13),
		Padded14:      PadTo(StripZeros(rawID), 14),
		PartNumber:    strings.TrimSpace(lookupAlias(row, FieldPartNumber)),
		MfrPartNumber: strings.TrimSpace(lookupAlias(row, FieldMfrPartNumber)),
		PriceMAP:      strings.TrimSpace(lookupAlias(row, FieldPriceMAP)),
		PriceJobber:   strings.TrimSpace(lookupAlias(row, FieldPriceJobber)),
		PriceRetail:   strings.TrimSpace(lookupAlias(row, FieldPriceRetail)),
		Cost:          strings.TrimSpace(lookupAlias(row, FieldCost)),
		LocationQty:   map[string]int{},
		Availability:  utils.ToInt(lookupAlias(row, FieldAvailability)),
	}

	for code, aliases := range warehouseAliases {
		for _, column := range aliases {
			if value, ok := row[column]; ok {
				if qty := utils.ToInt(value); qty > 0 {
					record.LocationQty[code] = qty
				}
				break
			}
		}
	}

	return record
}

// NormalizeAll maps a batch of rows to records, dropping rows that carry
// neither an identifier nor a part number since nothing could ever match them.
func NormalizeAll(rows []Row) []Record {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		record := Normalize(row)
		if record.RawID == "" && record.PartNumber == "" {
			continue
		}
		records = append(records, record)
	}
	return records
}
