// Package services – RegistrationService
//
// This file implements the RegistrationService, which creates user profiles.
// It validates and normalizes the registration input, computes the user's
// cornerstone pool exactly once, and persists the profile with the pool
// frozen alongside it. Service-level errors (e.g. ErrEmptyName,
// ErrInvalidBirthDate) are returned for predictable cases so handlers can
// map them to HTTP results consistently.
package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/skullmod/go-daily-words/internal/domain"
	"github.com/skullmod/go-daily-words/internal/repo"
)

// PoolBuilder is the contract the registration flow needs from the keyword
// engine: a deterministic cornerstone pool for a profile.
type PoolBuilder interface {
	BuildCornerstonePool(firstName, lastName string, birthDate time.Time, birthPlace string) []string
}

// RegistrationService provides the user registration use-case. It owns input
// validation and delegates pool building to the keyword engine; the pool is
// computed once here and never recomputed afterwards.
type RegistrationService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Pool builds the cornerstone pool at registration time.
	Pool PoolBuilder
	// Now supplies the current time; tests may override it. Defaults to
	// time.Now when nil.
	Now func() time.Time
}

// NewRegistrationService constructs a RegistrationService.
func NewRegistrationService(db *gorm.DB, pool PoolBuilder) *RegistrationService {
	return &RegistrationService{DB: db, Pool: pool}
}

// Register validates the profile input, builds the cornerstone pool, and
// persists the new user. Names and the birth place are trimmed; the birth
// date is interpreted in UTC.
//
// Validation:
//   - first and last name must be non-blank; otherwise ErrEmptyName.
//   - birth place must be non-blank; otherwise ErrEmptyBirthPlace.
//   - the birth date must not be zero or in the future; otherwise
//     ErrInvalidBirthDate.
//
// On success, it returns the persisted user with the encoded pool. On
// failure, it returns a service sentinel or the underlying DB error.
func (s *RegistrationService) Register(ctx context.Context, firstName, lastName string, birthDate time.Time, birthPlace string) (*domain.User, error) {
	tr := otel.Tracer("services/RegistrationService")
	ctx, span := tr.Start(ctx, "Register",
		trace.WithAttributes(
			attribute.String("user.birth_place", birthPlace),
		),
	)
	defer span.End()

	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	birthPlace = strings.TrimSpace(birthPlace)

	if firstName == "" || lastName == "" {
		return nil, ErrEmptyName
	}
	if birthPlace == "" {
		return nil, ErrEmptyBirthPlace
	}
	now := s.now()
	if birthDate.IsZero() || birthDate.After(now) {
		return nil, ErrInvalidBirthDate
	}

	u := &domain.User{
		ID:         uuid.NewString(),
		FirstName:  firstName,
		LastName:   lastName,
		BirthDate:  birthDate.UTC(),
		BirthPlace: birthPlace,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	pool := s.Pool.BuildCornerstonePool(firstName, lastName, u.BirthDate, birthPlace)
	if err := u.SetPoolWords(pool); err != nil {
		return nil, err
	}

	if err := repo.CreateUser(ctx, s.DB, u); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("user.pool_size", len(pool)))
	return u, nil
}

func (s *RegistrationService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
