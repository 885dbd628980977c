// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the DailyWord
// model, the per-(user, date) cache of served word pairs.
//
// Error semantics:
//   - A row for an existing (user_id, date) pair is rejected by the unique
//     index; CreateDailyWord surfaces that as ErrDuplicate so the service
//     layer can re-read the winning row instead of failing the request.
//   - When a row is not found, GetDailyWord returns ErrNotFound.
//   - On other DB errors (connectivity, constraints, etc.), the raw gorm
//     error is propagated.
//
// Functions:
//
//   - GetDailyWord(ctx, db, userID, date) -> *domain.DailyWord, error
//     Fetches the cached row for a user and ISO date, or ErrNotFound.
//
//   - CreateDailyWord(ctx, db, row) -> error
//     Inserts a cache row; returns ErrDuplicate on a unique violation.
//
//   - CountDailyWords(ctx, db, userID) -> (int64, error)
//     Returns the total number of cached rows for the user.
//
//   - ListDailyWordsPage(ctx, db, userID, offset, limit) -> []domain.DailyWord, error
//     Returns a paginated slice of cached rows, most recent date first.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/skullmod/go-daily-words/internal/domain"
)

// ErrDuplicate is returned by CreateDailyWord when another request already
// inserted a row for the same (user, date) pair.
var ErrDuplicate = errors.New("repo: duplicate daily word")

// GetDailyWord fetches the cached row for userID on the given ISO date
// (YYYY-MM-DD). If the record does not exist, it returns ErrNotFound. On
// other DB errors, the raw error is returned.
func GetDailyWord(ctx context.Context, db *gorm.DB, userID, date string) (*domain.DailyWord, error) {
	var row domain.DailyWord
	err := db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// CreateDailyWord inserts a cache row. CreatedAt is stamped here in UTC if
// unset. If the (user_id, date) pair already exists, it returns ErrDuplicate;
// callers should then re-read the row that won the race. On other failures,
// the raw DB error is returned.
func CreateDailyWord(ctx context.Context, db *gorm.DB, row *domain.DailyWord) error {
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if err := db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// CountDailyWords returns the total number of cached rows for userID.
// On DB error, it returns the error.
func CountDailyWords(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.DailyWord{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// ListDailyWordsPage returns a paginated slice of cached rows for userID,
// ordered by date descending (most recent day first). Use CountDailyWords to
// obtain the total for pagination metadata. On DB error, it returns the error.
//
// The caller is responsible for computing offset and limit (e.g., (page-1)*pageSize).
func ListDailyWordsPage(ctx context.Context, db *gorm.DB, userID string, offset, limit int) ([]domain.DailyWord, error) {
	var out []domain.DailyWord
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// isUniqueViolation reports whether err is a unique-index violation. The
// pure-Go SQLite driver does not expose typed errors, so this matches the
// message the way sqlite reports it.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") ||
		strings.Contains(msg, "constraint failed")
}
