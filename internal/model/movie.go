package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Movie represents a rentable title. NumberInStock is the only field the
// rental flow mutates after creation; everything else changes only
// through the movies CRUD surface.
type Movie struct {
	ID              uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Title           string          `json:"title" gorm:"size:200;not null;index"`
	Genre           GenreSnapshot   `json:"genre" gorm:"embedded;embeddedPrefix:genre_"`
	NumberInStock   int             `json:"number_in_stock" gorm:"not null"`
	DailyRentalRate decimal.Decimal `json:"daily_rental_rate" gorm:"type:decimal(8,2);not null"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (m *Movie) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// MovieSnapshot is the movie subset copied into a rental at creation
// time, so later edits to the movie never rewrite rental history.
type MovieSnapshot struct {
	ID              uuid.UUID       `json:"id" gorm:"type:char(36);not null;index"`
	Title           string          `json:"title" gorm:"size:200;not null"`
	DailyRentalRate decimal.Decimal `json:"daily_rental_rate" gorm:"type:decimal(8,2);not null"`
}

// Snapshot copies the fields a rental embeds.
func (m *Movie) Snapshot() MovieSnapshot {
	return MovieSnapshot{ID: m.ID, Title: m.Title, DailyRentalRate: m.DailyRentalRate}
}
