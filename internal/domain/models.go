// Package domain defines the persistence models for users and their daily
// word pairs. These types are mapped with GORM and form the core data layer
// of the daily words application.
package domain

import (
	"encoding/json"
	"time"
)

// User represents a registered person together with the birth data the
// keyword engine needs and the cornerstone pool computed once at
// registration time.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - FirstName / LastName: name as given at registration.
//   - BirthDate: birth moment in UTC; the time-of-day part matters for the
//     natal chart.
//   - BirthPlace: free-form place string resolved through the geo layer.
//   - CornerstonePool: JSON-encoded ordered word list, frozen at
//     registration. Use PoolWords/SetPoolWords instead of touching the raw
//     column.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type User struct {
	ID              string    `json:"id"          gorm:"type:char(36);primaryKey"`
	FirstName       string    `json:"first_name"  gorm:"type:varchar(128);not null"`
	LastName        string    `json:"last_name"   gorm:"type:varchar(128);not null"`
	BirthDate       time.Time `json:"birth_date"  gorm:"not null"`
	BirthPlace      string    `json:"birth_place" gorm:"type:varchar(255);not null"`
	CornerstonePool string    `json:"-"           gorm:"type:text;not null"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// PoolWords decodes the stored cornerstone pool.
func (u *User) PoolWords() ([]string, error) {
	if u.CornerstonePool == "" {
		return nil, nil
	}
	var words []string
	if err := json.Unmarshal([]byte(u.CornerstonePool), &words); err != nil {
		return nil, err
	}
	return words, nil
}

// SetPoolWords encodes words into the stored cornerstone pool column.
func (u *User) SetPoolWords(words []string) error {
	data, err := json.Marshal(words)
	if err != nil {
		return err
	}
	u.CornerstonePool = string(data)
	return nil
}

// DailyWord is the cached word pair and motto served to a user on a given
// date. Rows are append-only: once a (user, date) pair exists it is never
// updated, which the unique index enforces even under concurrent requests.
//
// Fields:
//   - ID: autoincrement primary key.
//   - UserID: foreign key to the owning user (unique together with Date).
//   - Date: ISO calendar date string (YYYY-MM-DD).
//   - Word1 / Word2 / Motto: the served triple.
//   - CreatedAt: insertion timestamp managed by GORM.
//   - User: FK association, ensures cascade delete.
type DailyWord struct {
	ID        uint      `json:"-"      gorm:"primaryKey"`
	UserID    string    `json:"-"      gorm:"type:char(36);not null;uniqueIndex:ux_daily_user_date,priority:1"`
	Date      string    `json:"date"   gorm:"type:char(10);not null;uniqueIndex:ux_daily_user_date,priority:2"`
	Word1     string    `json:"word1"  gorm:"type:varchar(64);not null"`
	Word2     string    `json:"word2"  gorm:"type:varchar(64);not null"`
	Motto     string    `json:"motto"  gorm:"type:text;not null"`
	CreatedAt time.Time `json:"-"`

	// User is the owning profile. Cached rows are cascade-deleted if the
	// user is removed.
	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for DailyWord.
func (DailyWord) TableName() string { return "daily_words" }
