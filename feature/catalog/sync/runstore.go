package sync

import (
	"context"
	"fmt"

	"catalog-sync/feature/catalog/models"

	"gorm.io/gorm"
)

// RunStore persists sync run records.
type RunStore interface {
	Create(ctx context.Context, run *models.SyncRun) error
	Update(ctx context.Context, run *models.SyncRun) error
	Get(ctx context.Context, id string) (*models.SyncRun, error)
	Recent(ctx context.Context, shop string, limit int) ([]models.SyncRun, error)
}

// GormRunStore is the MySQL-backed run store.
type GormRunStore struct {
	db *gorm.DB
}

// NewGormRunStore creates the store and migrates the sync_runs table.
func NewGormRunStore(db *gorm.DB) (*GormRunStore, error) {
	if err := db.AutoMigrate(&models.SyncRun{}); err != nil {
		return nil, fmt.Errorf("migrate sync_runs: %w", err)
	}
	return &GormRunStore{db: db}, nil
}

func (s *GormRunStore) Create(ctx context.Context, run *models.SyncRun) error {
	return s.db.WithContext(ctx).Create(run).Error
}

func (s *GormRunStore) Update(ctx context.Context, run *models.SyncRun) error {
	return s.db.WithContext(ctx).Save(run).Error
}

func (s *GormRunStore) Get(ctx context.Context, id string) (*models.SyncRun, error) {
	var run models.SyncRun
	if err := s.db.WithContext(ctx).First(&run, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

func (s *GormRunStore) Recent(ctx context.Context, shop string, limit int) ([]models.SyncRun, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []models.SyncRun
	err := s.db.WithContext(ctx).
		Where("shop = ?", shop).
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, err
	}
	return runs, nil
}
