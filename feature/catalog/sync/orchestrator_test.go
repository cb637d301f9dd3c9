package sync_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"catalog-sync/core/feed"
	"catalog-sync/core/shop"
	"catalog-sync/core/shop/mocks"
	"catalog-sync/feature/catalog/models"
	catalogsync "catalog-sync/feature/catalog/sync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// memoryRunStore keeps run records in a map. It records every Update so
// tests can assert on progress persistence.
type memoryRunStore struct {
	mu      sync.Mutex
	runs    map[string]models.SyncRun
	updates int
}

func newMemoryRunStore() *memoryRunStore {
	return &memoryRunStore{runs: make(map[string]models.SyncRun)}
}

func (s *memoryRunStore) Create(ctx context.Context, run *models.SyncRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = *run
	return nil
}

func (s *memoryRunStore) Update(ctx context.Context, run *models.SyncRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = *run
	s.updates++
	return nil
}

func (s *memoryRunStore) Get(ctx context.Context, id string) (*models.SyncRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &run, nil
}

func (s *memoryRunStore) Recent(ctx context.Context, shopName string, limit int) ([]models.SyncRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var runs []models.SyncRun
	for _, run := range s.runs {
		if run.Shop == shopName {
			runs = append(runs, run)
		}
	}
	return runs, nil
}

type feedRows struct {
	rows []feed.Row
	err  error
}

func (s *feedRows) Rows(ctx context.Context) ([]feed.Row, error) {
	return s.rows, s.err
}

func newOrchestrator(client *mocks.Client, source feed.Source, store catalogsync.RunStore) *catalogsync.Orchestrator {
	cache := feed.NewCache(source, time.Hour)
	locations := shop.NewLocationCache(client, time.Hour)
	cfg := catalogsync.Config{PageSize: 250, PageDelayMs: 0, ErrorCap: 50}
	return catalogsync.NewOrchestrator("test-shop", client, cache, locations, store, cfg, zap.NewNop())
}

func singlePage(client *mocks.Client, products ...shop.Product) {
	client.On("ProductsPage", mock.Anything, "", 250).Return(shop.Page{Products: products}, nil)
}

func TestRunEndToEnd(t *testing.T) {
	// One matchable variant with leading-zero identifier drift, a zero MAP
	// that falls through to Jobber, and warehouse quantities that sum.
	source := &feedRows{rows: []feed.Row{
		{
			"UPC":    "00012748802600",
			"MAP":    "0",
			"Jobber": "$25.00",
			"NV Qty": "3",
			"KY Qty": "2",
		},
	}}

	matched := shop.Variant{ID: "v1", ProductID: "p1", Barcode: "12748802600", InventoryItemID: "inv-1", Tracked: true}
	unmatched := shop.Variant{ID: "v2", ProductID: "p1", Barcode: "99999", SKU: "NOPE", InventoryItemID: "inv-2", Tracked: true}

	client := new(mocks.Client)
	singlePage(client, shop.Product{ID: "p1", Status: shop.StatusDraft, Variants: []shop.Variant{matched, unmatched}})
	client.On("PrimaryLocation", mock.Anything).Return("loc-1", nil)
	client.On("SetPrice", mock.Anything, "v1", 25.00).Return(nil)
	client.On("SetOnHand", mock.Anything, "inv-1", "loc-1", 5).Return(nil)
	client.On("SetProductStatus", mock.Anything, "p1", shop.StatusActive).Return(nil)

	store := newMemoryRunStore()
	run, err := newOrchestrator(client, source, store).Run(context.Background(), catalogsync.Options{})

	assert.NoError(t, err)
	assert.Equal(t, models.RunStatusCompleted, run.Status)
	assert.Equal(t, 1, run.TotalProducts)
	assert.Equal(t, 2, run.TotalVariants)
	assert.Equal(t, 1, run.Synced)
	assert.Equal(t, 1, run.Skipped)
	assert.Equal(t, 0, run.Errors)
	assert.Equal(t, 2, run.Processed())
	assert.Equal(t, 0.5, run.SuccessRate)
	assert.Equal(t, 1, run.MapUsedJobber)
	assert.Equal(t, 0, run.MapMatched)
	assert.NotNil(t, run.CompletedAt)

	// The product had a matched variant, so it ends Active.
	client.AssertExpectations(t)

	// The finalized record made it to the store.
	stored, err := store.Get(context.Background(), run.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.RunStatusCompleted, stored.Status)
}

func TestRunCountingInvariant(t *testing.T) {
	// Every variant lands in exactly one of synced or skipped, even when its
	// mutations fail.
	source := &feedRows{rows: []feed.Row{
		{"UPC": "111", "MAP": "10.00"},
		{"UPC": "222", "MAP": "20.00"},
	}}

	client := new(mocks.Client)
	singlePage(client,
		shop.Product{ID: "p1", Status: shop.StatusActive, Variants: []shop.Variant{
			{ID: "v1", ProductID: "p1", Barcode: "111", InventoryItemID: "inv-1", Tracked: true},
			{ID: "v2", ProductID: "p1", Barcode: "222", InventoryItemID: "inv-2", Tracked: true},
			{ID: "v3", ProductID: "p1", Barcode: "miss", InventoryItemID: "inv-3", Tracked: true},
		}},
	)
	client.On("PrimaryLocation", mock.Anything).Return("loc-1", nil)
	client.On("SetPrice", mock.Anything, "v1", 10.00).Return(nil)
	client.On("SetOnHand", mock.Anything, "inv-1", "loc-1", 0).Return(nil)
	// v2's mutations all fail; it still counts as synced.
	client.On("SetPrice", mock.Anything, "v2", 20.00).Return(errors.New("500 server error"))
	client.On("SetOnHand", mock.Anything, "inv-2", "loc-1", 0).Return(errors.New("500 server error"))

	run, err := newOrchestrator(client, source, newMemoryRunStore()).Run(context.Background(), catalogsync.Options{})

	assert.NoError(t, err)
	assert.Equal(t, models.RunStatusCompleted, run.Status)
	assert.Equal(t, 2, run.Synced)
	assert.Equal(t, 1, run.Skipped)
	assert.Equal(t, run.TotalVariants, run.Processed())
	assert.Equal(t, 1, run.Errors)
	assert.Contains(t, run.ErrorMessage, "v2")
}

func TestRunFeedUnavailableFails(t *testing.T) {
	client := new(mocks.Client)
	store := newMemoryRunStore()

	run, err := newOrchestrator(client, &feedRows{err: errors.New("ftp timeout")}, store).Run(context.Background(), catalogsync.Options{})

	assert.Error(t, err)
	assert.Equal(t, models.RunStatusFailed, run.Status)
	assert.NotEmpty(t, run.ErrorMessage)
	assert.NotNil(t, run.CompletedAt)

	// The failed record is persisted even though Create never ran.
	stored, getErr := store.Get(context.Background(), run.ID)
	assert.NoError(t, getErr)
	assert.Equal(t, models.RunStatusFailed, stored.Status)

	// No catalog call may have happened.
	client.AssertNotCalled(t, "ProductsPage", mock.Anything, mock.Anything, mock.Anything)
}

func TestRunBrokenStreamFails(t *testing.T) {
	source := &feedRows{rows: []feed.Row{{"UPC": "111", "MAP": "10.00"}}}

	client := new(mocks.Client)
	client.On("ProductsPage", mock.Anything, "", 250).Return(shop.Page{}, errors.New("connection reset"))

	run, err := newOrchestrator(client, source, newMemoryRunStore()).Run(context.Background(), catalogsync.Options{})

	assert.Error(t, err)
	assert.Equal(t, models.RunStatusFailed, run.Status)
}

func TestRunProductVisibility(t *testing.T) {
	source := &feedRows{rows: []feed.Row{{"UPC": "111", "MAP": "10.00"}}}

	client := new(mocks.Client)
	singlePage(client,
		// Matched product already Active: no status call expected.
		shop.Product{ID: "p1", Status: shop.StatusActive, Variants: []shop.Variant{
			{ID: "v1", ProductID: "p1", Barcode: "111", InventoryItemID: "inv-1", Tracked: true},
		}},
		// Unmatched product currently Active: demoted to Draft.
		shop.Product{ID: "p2", Status: shop.StatusActive, Variants: []shop.Variant{
			{ID: "v2", ProductID: "p2", Barcode: "miss", InventoryItemID: "inv-2", Tracked: true},
		}},
	)
	client.On("PrimaryLocation", mock.Anything).Return("loc-1", nil)
	client.On("SetPrice", mock.Anything, "v1", 10.00).Return(nil)
	client.On("SetOnHand", mock.Anything, "inv-1", "loc-1", 0).Return(nil)
	client.On("SetProductStatus", mock.Anything, "p2", shop.StatusDraft).Return(nil)

	run, err := newOrchestrator(client, source, newMemoryRunStore()).Run(context.Background(), catalogsync.Options{})

	assert.NoError(t, err)
	assert.Equal(t, models.RunStatusCompleted, run.Status)
	client.AssertExpectations(t)
	client.AssertNotCalled(t, "SetProductStatus", mock.Anything, "p1", mock.Anything)
}

func TestRunDryRun(t *testing.T) {
	source := &feedRows{rows: []feed.Row{{"UPC": "111", "MAP": "10.00"}}}

	client := new(mocks.Client)
	singlePage(client, shop.Product{ID: "p1", Status: shop.StatusDraft, Variants: []shop.Variant{
		{ID: "v1", ProductID: "p1", Barcode: "111", InventoryItemID: "inv-1", Tracked: false},
	}})

	run, err := newOrchestrator(client, source, newMemoryRunStore()).Run(context.Background(), catalogsync.Options{DryRun: true})

	assert.NoError(t, err)
	assert.Equal(t, 1, run.Synced)
	assert.Equal(t, 0, run.Errors)

	// Counters accumulate but no mutation reaches the platform.
	client.AssertNotCalled(t, "SetPrice", mock.Anything, mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "SetTracked", mock.Anything, mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "SetOnHand", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "SetProductStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestRunIncrementalSkipsCurrentVariants(t *testing.T) {
	source := &feedRows{rows: []feed.Row{
		{"UPC": "111", "MAP": "10.00", "TotalAvailability": "4"},
	}}

	client := new(mocks.Client)
	singlePage(client, shop.Product{ID: "p1", Status: shop.StatusActive, Variants: []shop.Variant{
		// Price and quantity already current; tracking enabled.
		{ID: "v1", ProductID: "p1", Barcode: "111", InventoryItemID: "inv-1", Tracked: true, Price: 10.00, InventoryQty: 4},
	}})

	run, err := newOrchestrator(client, source, newMemoryRunStore()).Run(context.Background(), catalogsync.Options{Incremental: true})

	assert.NoError(t, err)
	// The current variant still counts as synced so statistics line up with
	// full runs.
	assert.Equal(t, 1, run.Synced)
	assert.Equal(t, 1, run.MapMatched)
	client.AssertNotCalled(t, "SetPrice", mock.Anything, mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "SetOnHand", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRunUsesProvidedRunID(t *testing.T) {
	source := &feedRows{rows: []feed.Row{{"UPC": "111", "MAP": "10.00"}}}

	client := new(mocks.Client)
	singlePage(client)

	run, err := newOrchestrator(client, source, newMemoryRunStore()).Run(context.Background(), catalogsync.Options{RunID: "fixed-id"})

	assert.NoError(t, err)
	assert.Equal(t, "fixed-id", run.ID)
}

func TestRunErrorSampleCap(t *testing.T) {
	// 60 failing variants against a cap of 50: the counter keeps counting,
	// the sample stops growing.
	rows := make([]feed.Row, 60)
	variants := make([]shop.Variant, 60)
	client := new(mocks.Client)
	client.On("PrimaryLocation", mock.Anything).Return("loc-1", nil)
	for i := 0; i < 60; i++ {
		upc := fmt.Sprintf("%d", 1000+i)
		rows[i] = feed.Row{"UPC": upc, "MAP": "10.00"}
		variants[i] = shop.Variant{
			ID:              fmt.Sprintf("v%d", i),
			ProductID:       "p1",
			Barcode:         upc,
			InventoryItemID: fmt.Sprintf("inv%d", i),
			Tracked:         true,
		}
		client.On("SetPrice", mock.Anything, variants[i].ID, 10.00).Return(errors.New("503 unavailable"))
		client.On("SetOnHand", mock.Anything, variants[i].InventoryItemID, "loc-1", 0).Return(errors.New("503 unavailable"))
	}
	singlePage(client, shop.Product{ID: "p1", Status: shop.StatusActive, Variants: variants})

	run, err := newOrchestrator(client, &feedRows{rows: rows}, newMemoryRunStore()).Run(context.Background(), catalogsync.Options{})

	assert.NoError(t, err)
	assert.Equal(t, 60, run.Errors)
	// 50 sampled entries joined by newlines.
	assert.Equal(t, 49, strings.Count(run.ErrorMessage, "\n"))
}

func TestRunProgressPersistence(t *testing.T) {
	// 250 matchable variants produce progress writes at 100 and 200, plus
	// the final write.
	rows := make([]feed.Row, 250)
	variants := make([]shop.Variant, 250)
	client := new(mocks.Client)
	client.On("PrimaryLocation", mock.Anything).Return("loc-1", nil)
	for i := 0; i < 250; i++ {
		upc := fmt.Sprintf("%d", 10000+i)
		rows[i] = feed.Row{"UPC": upc, "MAP": "10.00"}
		variants[i] = shop.Variant{
			ID:              fmt.Sprintf("v%d", i),
			ProductID:       "p1",
			Barcode:         upc,
			InventoryItemID: fmt.Sprintf("inv%d", i),
			Tracked:         true,
		}
	}
	client.On("SetPrice", mock.Anything, mock.Anything, 10.00).Return(nil)
	client.On("SetOnHand", mock.Anything, mock.Anything, "loc-1", 0).Return(nil)
	singlePage(client, shop.Product{ID: "p1", Status: shop.StatusActive, Variants: variants})

	store := newMemoryRunStore()
	run, err := newOrchestrator(client, &feedRows{rows: rows}, store).Run(context.Background(), catalogsync.Options{})

	assert.NoError(t, err)
	assert.Equal(t, 250, run.Synced)
	assert.Equal(t, 3, store.updates)
}
