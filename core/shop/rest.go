package shop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// RESTClient is the default Client implementation against the catalog
// platform's admin API.
type RESTClient struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewRESTClient creates a REST client from configuration.
func NewRESTClient(cfg Config) *RESTClient {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &RESTClient{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		http:    &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

func (c *RESTClient) ProductsPage(ctx context.Context, cursor string, limit int) (Page, error) {
	query := url.Values{}
	if cursor != "" {
		query.Set("cursor", cursor)
	}
	query.Set("limit", strconv.Itoa(limit))

	var page Page
	if err := c.do(ctx, http.MethodGet, "/products?"+query.Encode(), nil, &page); err != nil {
		return Page{}, err
	}
	return page, nil
}

func (c *RESTClient) PrimaryLocation(ctx context.Context) (string, error) {
	var resp struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodGet, "/locations/primary", nil, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *RESTClient) SetPrice(ctx context.Context, variantID string, amount float64) error {
	return c.do(ctx, http.MethodPut, "/variants/"+url.PathEscape(variantID)+"/price",
		map[string]any{"amount": amount}, nil)
}

func (c *RESTClient) SetTracked(ctx context.Context, inventoryItemID string, tracked bool) error {
	return c.do(ctx, http.MethodPut, "/inventory-items/"+url.PathEscape(inventoryItemID)+"/tracked",
		map[string]any{"tracked": tracked}, nil)
}

func (c *RESTClient) SetOnHand(ctx context.Context, inventoryItemID, locationID string, quantity int) error {
	return c.do(ctx, http.MethodPut, "/inventory-items/"+url.PathEscape(inventoryItemID)+"/on-hand",
		map[string]any{"location_id": locationID, "quantity": quantity}, nil)
}

func (c *RESTClient) SetCostAttribute(ctx context.Context, variantID string, amount float64) error {
	return c.do(ctx, http.MethodPut, "/variants/"+url.PathEscape(variantID)+"/cost-attribute",
		map[string]any{"amount": amount}, nil)
}

func (c *RESTClient) SetInventoryCost(ctx context.Context, inventoryItemID string, amount float64) error {
	return c.do(ctx, http.MethodPut, "/inventory-items/"+url.PathEscape(inventoryItemID)+"/cost",
		map[string]any{"amount": amount}, nil)
}

func (c *RESTClient) SetProductStatus(ctx context.Context, productID, status string) error {
	return c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(productID)+"/status",
		map[string]any{"status": status}, nil)
}

// do issues one JSON request. Non-2xx responses surface the body so the
// applier can classify credential failures by message.
func (c *RESTClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("shop: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("shop: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("shop: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("shop: %s %s: status %d: %s", method, path, resp.StatusCode, bytes.TrimSpace(detail))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("shop: decode response: %w", err)
		}
	}
	return nil
}
