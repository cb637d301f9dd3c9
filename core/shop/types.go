package shop

// Product status values understood by SetProductStatus.
const (
	StatusActive = "active"
	StatusDraft  = "draft"
)

// Variant is one sellable unit of the internal catalog. The engine only reads
// it and issues mutation requests against its ids.
type Variant struct {
	ID              string `json:"id"`
	ProductID       string `json:"product_id"`
	SKU             string `json:"sku"`
	Barcode         string `json:"barcode"`
	InventoryItemID string `json:"inventory_item_id"`
	Tracked         bool   `json:"tracked"`

	// Price and InventoryQty reflect the variant's current state; incremental
	// runs use them to skip no-op mutations.
	Price        float64 `json:"price"`
	InventoryQty int     `json:"inventory_qty"`
}

// Product groups variants under one catalog product.
type Product struct {
	ID       string    `json:"id"`
	Status   string    `json:"status"`
	Variants []Variant `json:"variants"`
}

// Page is one cursor-paginated slice of the catalog.
type Page struct {
	Products   []Product `json:"products"`
	NextCursor string    `json:"next_cursor"`
	HasMore    bool      `json:"has_more"`
}
