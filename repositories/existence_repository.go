package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type ExistenceRepository interface {
	// RowExists reports whether a row of table has column equal to value.
	// table and column must come from Collections.
	RowExists(ctx context.Context, table, column string, value interface{}) (bool, error)
}

type existenceRepository struct {
	db *gorm.DB
}

func NewExistenceRepository(db *gorm.DB) ExistenceRepository {
	return &existenceRepository{db: db}
}

func (r *existenceRepository) RowExists(ctx context.Context, table, column string, value interface{}) (bool, error) {
	var exists bool
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = ?)", table, column)
	if err := r.db.WithContext(ctx).Raw(query, value).Scan(&exists).Error; err != nil {
		return false, fmt.Errorf("check %s.%s: %w", table, column, err)
	}
	return exists, nil
}
