// Package sequencer issues gapless human-readable display numbers for
// tenders, backed by a per-prefix counter table in Postgres.
package sequencer

import (
	"context"
	"fmt"

	"tendering/internal/pkg/errs"

	"gorm.io/gorm"
)

// CounterDTO represents the per-prefix counter row.
type CounterDTO struct {
	Prefix string `gorm:"type:varchar(16);primaryKey"`
	Value  int64  `gorm:"type:bigint;not null"`
}

// TableName overrides GORM's default naming to use "number_counters".
func (CounterDTO) TableName() string {
	return "number_counters"
}

// GormNumberSequence implements ports.NumberSequence on a Postgres counter
// table. The upsert-returning statement makes each call atomic, so two
// concurrent callers never receive the same number.
type GormNumberSequence struct {
	db *gorm.DB
}

// NewGormNumberSequence creates a sequence backed by the given connection.
func NewGormNumberSequence(db *gorm.DB) *GormNumberSequence {
	return &GormNumberSequence{db: db}
}

// Next reserves and returns the next display number for the prefix,
// formatted as "<PREFIX>-<zero-padded counter>", e.g. "TND-000042".
func (s *GormNumberSequence) Next(ctx context.Context, prefix string) (string, error) {
	if prefix == "" {
		return "", errs.NewValueIsRequiredError("prefix")
	}

	var value int64
	err := s.db.WithContext(ctx).Raw(`
		INSERT INTO number_counters (prefix, value)
		VALUES (?, 1)
		ON CONFLICT (prefix) DO UPDATE SET value = number_counters.value + 1
		RETURNING value
	`, prefix).Scan(&value).Error
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%06d", prefix, value), nil
}
