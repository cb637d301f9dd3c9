package shop

import "context"

// Client is the interface to the merchant catalog platform. Every mutation
// may fail independently; callers classify and accumulate errors rather than
// aborting on the first failure.
type Client interface {
	// ProductsPage fetches one page of products starting at cursor. An empty
	// cursor starts from the beginning.
	ProductsPage(ctx context.Context, cursor string, limit int) (Page, error)

	// PrimaryLocation returns the id of the location that carries on-hand
	// inventory.
	PrimaryLocation(ctx context.Context) (string, error)

	// SetPrice updates a variant's price.
	SetPrice(ctx context.Context, variantID string, amount float64) error

	// SetTracked enables or disables inventory tracking on an inventory item.
	SetTracked(ctx context.Context, inventoryItemID string, tracked bool) error

	// SetOnHand sets the on-hand quantity of an inventory item at a location.
	SetOnHand(ctx context.Context, inventoryItemID, locationID string, quantity int) error

	// SetCostAttribute records the unit cost on the variant's durable
	// side-channel attribute. Preferred cost path.
	SetCostAttribute(ctx context.Context, variantID string, amount float64) error

	// SetInventoryCost sets the inventory item's cost field. Fallback cost
	// path when the attribute write fails.
	SetInventoryCost(ctx context.Context, inventoryItemID string, amount float64) error

	// SetProductStatus flips a product between active and draft.
	SetProductStatus(ctx context.Context, productID, status string) error
}
