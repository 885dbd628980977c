package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/skullmod/go-daily-words/internal/domain"
)

// ----- Fake pool builder -----

type fakePoolBuilder struct {
	calls int
	pool  []string
}

func (f *fakePoolBuilder) BuildCornerstonePool(firstName, lastName string, birthDate time.Time, birthPlace string) []string {
	f.calls++
	return f.pool
}

// ----- Helpers -----

func newServiceDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("svc_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := db.AutoMigrate(&domain.User{}, &domain.DailyWord{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

var testBirth = time.Date(1990, 3, 21, 10, 0, 0, 0, time.UTC)

// ----- Tests -----

func TestRegister_Success_FreezesPool(t *testing.T) {
	db := newServiceDB(t)
	pb := &fakePoolBuilder{pool: []string{"Cesaret", "Sadakat", "Sezgi"}}
	svc := NewRegistrationService(db, pb)

	u, err := svc.Register(context.Background(), "  Ayşe ", " Yılmaz ", testBirth, " Niğde, Türkiye ")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.ID == "" {
		t.Fatalf("user ID not assigned")
	}
	if u.FirstName != "Ayşe" || u.LastName != "Yılmaz" || u.BirthPlace != "Niğde, Türkiye" {
		t.Fatalf("input not trimmed: %+v", u)
	}
	if pb.calls != 1 {
		t.Fatalf("pool built %d times; want exactly once", pb.calls)
	}

	// The pool must be persisted with the row.
	var got domain.User
	if err := db.First(&got, "id = ?", u.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	pool, err := got.PoolWords()
	if err != nil {
		t.Fatalf("decode pool: %v", err)
	}
	if len(pool) != 3 || pool[0] != "Cesaret" {
		t.Fatalf("persisted pool mismatch: %v", pool)
	}
}

func TestRegister_EmptyPoolStillRegisters(t *testing.T) {
	// A profile whose sources yield nothing still registers; the daily
	// endpoint reports the missing pool later.
	db := newServiceDB(t)
	svc := NewRegistrationService(db, &fakePoolBuilder{pool: nil})

	u, err := svc.Register(context.Background(), "Ayşe", "Yılmaz", testBirth, "Niğde, Türkiye")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	pool, err := u.PoolWords()
	if err != nil {
		t.Fatalf("decode pool: %v", err)
	}
	if len(pool) != 0 {
		t.Fatalf("expected empty pool, got %v", pool)
	}
}

func TestRegister_ValidationErrors(t *testing.T) {
	db := newServiceDB(t)
	svc := NewRegistrationService(db, &fakePoolBuilder{pool: []string{"x"}})
	svc.Now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }

	cases := []struct {
		name        string
		first, last string
		birth       time.Time
		place       string
		want        error
	}{
		{"blank first name", "  ", "Yılmaz", testBirth, "Niğde, Türkiye", ErrEmptyName},
		{"blank last name", "Ayşe", "", testBirth, "Niğde, Türkiye", ErrEmptyName},
		{"blank place", "Ayşe", "Yılmaz", testBirth, "   ", ErrEmptyBirthPlace},
		{"zero birth date", "Ayşe", "Yılmaz", time.Time{}, "Niğde, Türkiye", ErrInvalidBirthDate},
		{"future birth date", "Ayşe", "Yılmaz", time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), "Niğde, Türkiye", ErrInvalidBirthDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(context.Background(), tc.first, tc.last, tc.birth, tc.place); !errors.Is(err, tc.want) {
				t.Fatalf("Register error = %v; want %v", err, tc.want)
			}
		})
	}
}
