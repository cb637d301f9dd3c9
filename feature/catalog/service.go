package catalog

import (
	"context"
	"errors"
	"sync"

	"catalog-sync/core/feed"
	"catalog-sync/core/shop"
	"catalog-sync/feature/catalog/models"
	catalogSync "catalog-sync/feature/catalog/sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrRunInProgress is returned when a sync is requested for a shop that
// already has a run in flight. The conflict policy is reject, not queue.
var ErrRunInProgress = errors.New("catalog: sync run already in progress for this shop")

// IndexStats summarizes the current feed index.
type IndexStats struct {
	Keys   int    `json:"keys"`
	AgeSec int    `json:"age_seconds"`
	Shop   string `json:"shop"`
}

// Service owns the sync engine's long-lived state: the feed index cache, the
// location cache, the run store and the per-shop run lock.
type Service struct {
	shopName  string
	client    shop.Client
	feedCache *feed.Cache
	locations *shop.LocationCache
	store     catalogSync.RunStore
	cfg       catalogSync.Config
	logger    *zap.Logger

	mu      sync.Mutex
	running map[string]bool
}

// NewService creates a new catalog sync service.
func NewService(shopName string, client shop.Client, feedCache *feed.Cache, locations *shop.LocationCache, store catalogSync.RunStore, cfg catalogSync.Config, logger *zap.Logger) *Service {
	return &Service{
		shopName:  shopName,
		client:    client,
		feedCache: feedCache,
		locations: locations,
		store:     store,
		cfg:       cfg,
		logger:    logger,
		running:   make(map[string]bool),
	}
}

// StartSync launches a run in the background and returns its id immediately.
// A second request while the shop's run is in flight gets ErrRunInProgress.
func (s *Service) StartSync(opts catalogSync.Options) (string, error) {
	if err := s.acquire(); err != nil {
		return "", err
	}

	opts.RunID = uuid.NewString()
	go func() {
		defer s.release()
		// The run outlives the HTTP request that started it.
		orchestrator := s.newOrchestrator()
		if _, err := orchestrator.Run(context.Background(), opts); err != nil {
			s.logger.Error("Background sync run failed", zap.String("run_id", opts.RunID), zap.Error(err))
		}
	}()

	return opts.RunID, nil
}

// RunSync executes a run synchronously. Used by the CLI.
func (s *Service) RunSync(ctx context.Context, opts catalogSync.Options) (*models.SyncRun, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	return s.newOrchestrator().Run(ctx, opts)
}

// Progress returns the progress projection for a run.
func (s *Service) Progress(ctx context.Context, runID string) (*models.ProgressView, error) {
	run, err := s.store.Get(ctx, runID)
	if err != nil {
		return nil, err
	}
	view := models.Progress(run)
	return &view, nil
}

// GetRun returns the full run record.
func (s *Service) GetRun(ctx context.Context, runID string) (*models.SyncRun, error) {
	return s.store.Get(ctx, runID)
}

// RecentRuns lists the shop's most recent runs, newest first.
func (s *Service) RecentRuns(ctx context.Context, limit int) ([]models.SyncRun, error) {
	return s.store.Recent(ctx, s.shopName, limit)
}

// RebuildIndex drops the cached feed index and builds a fresh one.
func (s *Service) RebuildIndex(ctx context.Context) (*IndexStats, error) {
	s.feedCache.Invalidate()
	index, err := s.feedCache.FetchOrBuild(ctx)
	if err != nil {
		return nil, err
	}
	return &IndexStats{
		Keys:   index.Len(),
		AgeSec: int(s.feedCache.Age().Seconds()),
		Shop:   s.shopName,
	}, nil
}

// InvalidateIndex clears the feed index and location caches unconditionally.
func (s *Service) InvalidateIndex() {
	s.feedCache.Invalidate()
	s.locations.Invalidate()
}

// LookupRecord resolves one key against the current index. Used by the CLI
// for feed spot checks.
func (s *Service) LookupRecord(ctx context.Context, key string) (*feed.Record, error) {
	index, err := s.feedCache.FetchOrBuild(ctx)
	if err != nil {
		return nil, err
	}
	return index.Lookup(key), nil
}

func (s *Service) newOrchestrator() *catalogSync.Orchestrator {
	return catalogSync.NewOrchestrator(s.shopName, s.client, s.feedCache, s.locations, s.store, s.cfg, s.logger)
}

func (s *Service) acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running[s.shopName] {
		return ErrRunInProgress
	}
	s.running[s.shopName] = true
	return nil
}

func (s *Service) release() {
	s.mu.Lock()
	delete(s.running, s.shopName)
	s.mu.Unlock()
}
