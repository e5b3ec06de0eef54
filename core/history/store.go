package history

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"domain-checker/core/database"

	"gorm.io/gorm"
)

// ErrSchemaMismatch is returned by Verify when domain_checks lacks columns.
var ErrSchemaMismatch = errors.New("history schema mismatch")

// Open connects to the database and prepares the domain_checks table.
func Open(dbCfg database.Config, cfg Config) (*gorm.DB, error) {
	db, err := database.Connect(dbCfg)
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	if err := Verify(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the domain_checks table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&CheckRecord{}); err != nil {
		return fmt.Errorf("failed to migrate history: %w", err)
	}
	return nil
}

// Verify checks that the domain_checks table has every expected column.
func Verify(db *gorm.DB) error {
	missing, err := database.MissingColumns(db, CheckRecord{}.TableName(), Columns)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing columns %s", ErrSchemaMismatch, strings.Join(missing, ", "))
	}
	return nil
}

// Recent returns the latest checks of name, newest first.
func Recent(ctx context.Context, db *gorm.DB, name string, limit int) ([]CheckRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	name = strings.ToLower(strings.TrimSpace(name))

	var records []CheckRecord
	err := db.WithContext(ctx).
		Where("name = ?", name).
		Order("checked_at DESC, id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query history for %s: %w", name, err)
	}
	return records, nil
}
