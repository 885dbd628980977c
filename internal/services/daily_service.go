// Package services – DailyWordService
//
// This file implements the DailyWordService, which serves the word pair and
// motto for a user and date. Results are cached append-only per (user, date):
// the first request of the day composes and stores the triple, every later
// request returns the stored row verbatim. Concurrent first requests are
// resolved through the unique index; the loser of the insert race re-reads
// the winning row, so all callers observe one identical result.
//
// Observability: public methods are OpenTelemetry-instrumented; spans carry
// the user ID and the served date.
package services

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/skullmod/go-daily-words/internal/domain"
	"github.com/skullmod/go-daily-words/internal/repo"
	"github.com/skullmod/go-daily-words/internal/utils"
)

// WordComposer is the contract the daily flow needs from the keyword engine:
// a deterministic (word1, word2, motto) triple for a profile and date.
type WordComposer interface {
	Compose(firstName, lastName string, birthDate time.Time, birthPlace string, pool []string, date time.Time) (word1, word2, motto string)
}

// DailyWordService provides the daily word use-cases: serving today's pair
// (computing and caching it when absent) and listing the served history.
type DailyWordService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Composer produces the daily triple from the stored profile.
	Composer WordComposer
	// Now supplies the current time; tests may override it. Defaults to
	// time.Now when nil.
	Now func() time.Time
}

// NewDailyWordService constructs a DailyWordService.
func NewDailyWordService(db *gorm.DB, composer WordComposer) *DailyWordService {
	return &DailyWordService{DB: db, Composer: composer}
}

// Today returns the daily word row for userID on the current UTC date,
// composing and caching it if this is the first request of the day.
func (s *DailyWordService) Today(ctx context.Context, userID string) (*domain.DailyWord, error) {
	return s.Get(ctx, userID, s.now())
}

// Get returns the daily word row for userID on the given date.
//
// Semantics:
//   - If a cached row exists for (userID, date), it is returned unchanged;
//     the engine is not consulted again.
//   - Otherwise the triple is composed from the stored profile and pool,
//     inserted, and returned.
//   - If a concurrent request inserts first, the unique index rejects our
//     row and the winning row is re-read and returned instead.
//
// Errors:
//   - ErrUserNotFound when the user does not exist.
//   - ErrNoPool when the stored cornerstone pool is empty or unreadable.
//   - The underlying DB error for unexpected failures.
func (s *DailyWordService) Get(ctx context.Context, userID string, date time.Time) (*domain.DailyWord, error) {
	tr := otel.Tracer("services/DailyWordService")
	day := utils.DateString(date)
	ctx, span := tr.Start(ctx, "Get",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.String("daily.date", day),
		),
	)
	defer span.End()

	u, err := repo.GetUser(ctx, s.DB, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// Cache hit: serve the stored row as-is.
	if row, err := repo.GetDailyWord(ctx, s.DB, userID, day); err == nil {
		span.SetAttributes(attribute.Bool("daily.cache_hit", true))
		return row, nil
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	pool, err := u.PoolWords()
	if err != nil || len(pool) == 0 {
		return nil, ErrNoPool
	}

	// Compose from midnight UTC of the calendar date. Transits move within
	// a day; anchoring at midnight keeps the triple a function of the date
	// alone, regardless of when the first request of the day arrives.
	d := date.UTC()
	midnight := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	word1, word2, motto := s.Composer.Compose(u.FirstName, u.LastName, u.BirthDate, u.BirthPlace, pool, midnight)
	row := &domain.DailyWord{
		UserID: userID,
		Date:   day,
		Word1:  word1,
		Word2:  word2,
		Motto:  motto,
	}
	if err := repo.CreateDailyWord(ctx, s.DB, row); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			// Another request won the insert race; serve its row.
			return repo.GetDailyWord(ctx, s.DB, userID, day)
		}
		return nil, err
	}
	return row, nil
}

// History returns a page of previously served rows for userID, most recent
// date first, along with the total row count. It applies defaults for
// invalid page/pageSize.
//
// Errors:
//   - ErrUserNotFound when the user does not exist.
//   - The underlying DB error for unexpected failures.
func (s *DailyWordService) History(ctx context.Context, userID string, page, pageSize int) ([]domain.DailyWord, int64, error) {
	tr := otel.Tracer("services/DailyWordService")
	ctx, span := tr.Start(ctx, "History",
		trace.WithAttributes(
			attribute.String("user.id", userID),
		),
	)
	defer span.End()

	if _, err := repo.GetUser(ctx, s.DB, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, 0, ErrUserNotFound
		}
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := repo.CountDailyWords(ctx, s.DB, userID)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.DailyWord{}, 0, nil
	}

	items, err := repo.ListDailyWordsPage(ctx, s.DB, userID, offset, pageSize)
	return items, total, err
}

func (s *DailyWordService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
