package cmd

import (
	"context"
	"fmt"
	"time"

	"catalog-sync/core/config"
	"catalog-sync/core/database"
	"catalog-sync/core/feed"
	"catalog-sync/core/shop"
	"catalog-sync/core/storage"
	"catalog-sync/feature/catalog"
	catalogSync "catalog-sync/feature/catalog/sync"

	"go.uber.org/zap"
)

// buildFeature wires the catalog feature from configuration. Shared by the
// server and the CLI commands.
func buildFeature(cfg *config.Config, l *zap.Logger) (*catalog.Feature, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect run store database: %w", err)
	}

	store, err := catalogSync.NewGormRunStore(db)
	if err != nil {
		return nil, err
	}

	storageClient, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	// The run can proceed on the remote source alone, so a missing bucket
	// only degrades the fallback and snapshot paths.
	if exists, err := storageClient.BucketExists(context.Background(), cfg.Storage.Bucket); err != nil {
		l.Warn("Storage bucket check failed", zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
	} else if !exists {
		l.Warn("Storage bucket missing, feed fallback and snapshots unavailable",
			zap.String("bucket", cfg.Storage.Bucket))
	}

	feedCache := feed.NewCache(buildFeedSource(cfg, storageClient, l),
		time.Duration(cfg.Feed.CacheTTLMinutes)*time.Minute)

	shopClient := shop.NewRESTClient(cfg.Shop)
	locations := shop.NewLocationCache(shopClient,
		time.Duration(cfg.Shop.LocationTTLMinutes)*time.Minute)

	return catalog.NewFeature(cfg.Shop.Name, shopClient, feedCache, locations, store, cfg.Sync, l), nil
}

// buildFeedSource chains the remote export (when configured) with the object
// storage fallback. Remote fetches snapshot back into the same object the
// fallback reads from.
func buildFeedSource(cfg *config.Config, storageClient storage.Client, l *zap.Logger) feed.Source {
	var sources []feed.Source
	if cfg.Feed.RemoteURL != "" {
		remote := feed.NewHTTPSource(cfg.Feed.RemoteURL)
		remote.Snapshot = &feed.Snapshot{
			Client: storageClient,
			Bucket: cfg.Storage.Bucket,
			Object: cfg.Feed.Object,
		}
		remote.Logger = l
		sources = append(sources, remote)
	}
	sources = append(sources, &feed.StorageSource{
		Client: storageClient,
		Bucket: cfg.Storage.Bucket,
		Object: cfg.Feed.Object,
	})
	return &feed.ChainSource{Sources: sources, Logger: l}
}
