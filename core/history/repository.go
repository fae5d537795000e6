package history

import (
	"context"
	"fmt"

	"cdn-manager/core/database"

	"gorm.io/gorm"
)

// Filter narrows List. Zero values match everything.
type Filter struct {
	Kind        string
	ResourceKey string
	Limit       int
}

// Repository stores runs with GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wraps an open connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the runs table.
func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&Run{}); err != nil {
		return fmt.Errorf("failed to migrate runs table: %w", err)
	}
	return nil
}

// CheckSchema returns the run columns missing from the database.
func (r *Repository) CheckSchema(ctx context.Context) ([]string, error) {
	return database.MissingColumns(r.db.WithContext(ctx), Run{}.TableName(), Columns())
}

// Save inserts a run.
func (r *Repository) Save(ctx context.Context, run *Run) error {
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to save run %s: %w", run.RunID, err)
	}
	return nil
}

// List returns the most recent runs first.
func (r *Repository) List(ctx context.Context, filter Filter) ([]Run, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	query := r.db.WithContext(ctx).Model(&Run{})
	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}
	if filter.ResourceKey != "" {
		query = query.Where("resource_key = ?", filter.ResourceKey)
	}

	var runs []Run
	if err := query.Order("id desc").Limit(limit).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}
