package dao

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var ErrNotFound = gorm.ErrRecordNotFound

// Base gives every table a UUID primary key generated on insert.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (b *Base) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	return nil
}

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}

	return nil, false
}

func isUniqueViolation(err error, constraint string) bool {
	pgErr, ok := pgError(err)

	return ok && pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == constraint
}

// first loads the single row matching query into a T.
func first[T any](db *gorm.DB, query string, args ...any) (T, error) {
	var row T
	if err := db.Where(query, args...).First(&row).Error; err != nil {
		return row, err
	}

	return row, nil
}

func exists[T any](db *gorm.DB, query string, args ...any) (bool, error) {
	var count int64
	if err := db.Model(new(T)).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
