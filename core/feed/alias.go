package feed

// Canonical field names resolved by the normalizer.
const (
	FieldID            = "id"
	FieldPartNumber    = "part_number"
	FieldMfrPartNumber = "mfr_part_number"
	FieldPriceMAP      = "price_map"
	FieldPriceJobber   = "price_jobber"
	FieldPriceRetail   = "price_retail"
	FieldCost          = "cost"
	FieldAvailability  = "availability"
)

// fieldAliases maps each canonical field to the source-column names it may
// appear under, ordered by preference. The first column present in the row
// wins, even when its value is empty.
var fieldAliases = map[string][]string{
	FieldID: {
		"UPC", "Upc", "upc", "Barcode", "UPC Code", "GTIN", "EAN",
	},
	FieldPartNumber: {
		"PartNumber", "Part Number", "Part #", "PartNo", "SKU",
	},
	FieldMfrPartNumber: {
		"MfrPartNumber", "Mfr Part Number", "Manufacturer Part Number", "MPN",
	},
	FieldPriceMAP: {
		"MAP", "Map", "MAP Price", "MAP Price (USD)", "MinAdvertisedPrice",
	},
	FieldPriceJobber: {
		"Jobber", "Jobber Price", "Jobber Price (USD)", "JobberPrice",
	},
	FieldPriceRetail: {
		"Retail", "Retail Price", "Retail Price (USD)", "MSRP", "List Price",
	},
	FieldCost: {
		"YourPrice", "Your Price", "Customer Price", "Cost", "Dealer Price",
	},
	FieldAvailability: {
		"TotalAvailability", "Total Availability", "Availability", "Total Qty",
	},
}

// warehouseAliases maps warehouse codes to the quantity columns that report
// stock for that location.
var warehouseAliases = map[string][]string{
	"NV": {"NV Qty", "NVQty", "Nevada Qty"},
	"KY": {"KY Qty", "KYQty", "Kentucky Qty"},
	"TX": {"TX Qty", "TXQty", "Texas Qty"},
	"PA": {"PA Qty", "PAQty", "Pennsylvania Qty"},
}

// lookupAlias resolves a canonical field from a row via its ordered alias
// list. A field with no matching column resolves to "".
func lookupAlias(row Row, field string) string {
	for _, column := range fieldAliases[field] {
		if value, ok := row[column]; ok {
			return value
		}
	}
	return ""
}
