package cmd

import (
	"context"
	"fmt"

	"catalog-sync/core/config"
	"catalog-sync/core/logger"
	"catalog-sync/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// feedCmd is the parent command for feed index operations.
var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Build and inspect the distributor feed index",
}

// feedBuildCmd builds a fresh index and reports its size.
var feedBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the feed index from the configured sources",
	RunE:  runFeedBuild,
}

// feedLookupCmd resolves one key against the index.
var feedLookupCmd = &cobra.Command{
	Use:   "lookup <key>",
	Short: "Look up a barcode or part number in the feed index",
	Args:  cobra.ExactArgs(1),
	RunE:  runFeedLookup,
}

// feedSnapshotsCmd lists the feed objects held in the storage bucket.
var feedSnapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List feed snapshots in the storage bucket",
	RunE:  runFeedSnapshots,
}

func init() {
	feedCmd.AddCommand(feedBuildCmd)
	feedCmd.AddCommand(feedLookupCmd)
	feedCmd.AddCommand(feedSnapshotsCmd)
	RootCmd.AddCommand(feedCmd)
}

func runFeedBuild(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	l, err := logger.NewCLI(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	feature, err := buildFeature(cfg, l)
	if err != nil {
		return err
	}

	stats, err := feature.Service().RebuildIndex(ctx)
	if err != nil {
		return err
	}

	l.Info("Feed index built", zap.Int("keys", stats.Keys), zap.String("shop", stats.Shop))
	return nil
}

func runFeedLookup(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	l, err := logger.NewCLI(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	feature, err := buildFeature(cfg, l)
	if err != nil {
		return err
	}

	record, err := feature.Service().LookupRecord(ctx, args[0])
	if err != nil {
		return err
	}
	if record == nil {
		l.Warn("No record found", zap.String("key", args[0]))
		return nil
	}

	l.Info("Record found",
		zap.String("raw_id", record.RawID),
		zap.String("part_number", record.PartNumber),
		zap.String("mfr_part_number", record.MfrPartNumber),
		zap.String("map", record.PriceMAP),
		zap.String("jobber", record.PriceJobber),
		zap.String("retail", record.PriceRetail),
		zap.String("cost", record.Cost),
		zap.Int("availability", record.Availability))
	return nil
}

func runFeedSnapshots(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	l, err := logger.NewCLI(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("create storage client: %w", err)
	}

	count := 0
	for obj := range client.ListObjects(ctx, cfg.Storage.Bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return fmt.Errorf("list bucket %s: %w", cfg.Storage.Bucket, obj.Err)
		}
		l.Info("Snapshot",
			zap.String("key", obj.Key),
			zap.Int64("size", obj.Size),
			zap.Time("modified", obj.LastModified))
		count++
	}

	l.Info("Snapshots listed", zap.String("bucket", cfg.Storage.Bucket), zap.Int("count", count))
	return nil
}
