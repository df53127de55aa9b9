package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Status maps the host application's statuses table. Only the columns the
// translate endpoint reads are mapped.
type Status struct {
	ID       int64   `gorm:"column:id;primaryKey"`
	Text     string  `gorm:"column:text;type:text;not null"`
	Language *string `gorm:"column:language;type:varchar"`
}

func (Status) TableName() string { return "statuses" }

// StatusStore reads statuses by id.
type StatusStore interface {
	GetStatus(ctx context.Context, id int64) (*Status, error)
}

// GetStatus loads one status. A missing row returns ErrNoRows.
func (p *Pool) GetStatus(ctx context.Context, id int64) (*Status, error) {
	if p == nil || p.gdb == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	var status Status
	if err := statusByID(p.gdb.WithContext(ctx), id).Take(&status).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoRows
		}
		return nil, fmt.Errorf("load status %d: %w", id, err)
	}
	return &status, nil
}

func statusByID(tx *gorm.DB, id int64) *gorm.DB {
	return tx.Model(&Status{}).
		Select("id", "text", "language").
		Where("id = ?", id)
}
