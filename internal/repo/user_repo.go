// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a user is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
//
// Functions:
//
//   - CreateUser(ctx, db, user) -> error
//     Inserts a fully populated User row (the service assigns the UUID and
//     the encoded cornerstone pool before calling).
//
//   - GetUser(ctx, db, id) -> *domain.User, error
//     Fetches a single user by ID, or ErrNotFound if missing.
//
// This repository is designed to be wrapped by a higher-level service
// (see services.RegistrationService and services.DailyWordService) which
// enforces business rules on top of it.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/skullmod/go-daily-words/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateUser inserts the given user row. The caller is expected to have set
// the ID (UUID) and the encoded cornerstone pool; CreatedAt is stamped here
// in UTC if unset.
//
// On success, it returns nil. On failure, it returns a DB error.
func CreateUser(ctx context.Context, db *gorm.DB, u *domain.User) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	return db.WithContext(ctx).Create(u).Error
}

// GetUser fetches a single user by its ID. If the record does not exist, it
// returns ErrNotFound. On other DB errors, the raw error is returned.
func GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	var u domain.User
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}
