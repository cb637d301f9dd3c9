package mocks

import (
	"context"

	"catalog-sync/core/shop"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of shop.Client
type Client struct {
	mock.Mock
}

func (m *Client) ProductsPage(ctx context.Context, cursor string, limit int) (shop.Page, error) {
	args := m.Called(ctx, cursor, limit)
	return args.Get(0).(shop.Page), args.Error(1)
}

func (m *Client) PrimaryLocation(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *Client) SetPrice(ctx context.Context, variantID string, amount float64) error {
	args := m.Called(ctx, variantID, amount)
	return args.Error(0)
}

func (m *Client) SetTracked(ctx context.Context, inventoryItemID string, tracked bool) error {
	args := m.Called(ctx, inventoryItemID, tracked)
	return args.Error(0)
}

func (m *Client) SetOnHand(ctx context.Context, inventoryItemID, locationID string, quantity int) error {
	args := m.Called(ctx, inventoryItemID, locationID, quantity)
	return args.Error(0)
}

func (m *Client) SetCostAttribute(ctx context.Context, variantID string, amount float64) error {
	args := m.Called(ctx, variantID, amount)
	return args.Error(0)
}

func (m *Client) SetInventoryCost(ctx context.Context, inventoryItemID string, amount float64) error {
	args := m.Called(ctx, inventoryItemID, amount)
	return args.Error(0)
}

func (m *Client) SetProductStatus(ctx context.Context, productID, status string) error {
	args := m.Called(ctx, productID, status)
	return args.Error(0)
}
