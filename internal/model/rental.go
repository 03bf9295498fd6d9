package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Rental records one checkout of one movie by one customer. Customer and
// movie fields are snapshots taken at creation time; they are never
// refreshed from the live records. A rental is closed (never deleted) by
// the return flow, which sets DateReturned and RentalFee together.
type Rental struct {
	ID           uuid.UUID           `json:"id" gorm:"type:char(36);primaryKey"`
	Customer     CustomerSnapshot    `json:"customer" gorm:"embedded;embeddedPrefix:customer_"`
	Movie        MovieSnapshot       `json:"movie" gorm:"embedded;embeddedPrefix:movie_"`
	DateOut      time.Time           `json:"date_out" gorm:"not null;index"`
	DateReturned *time.Time          `json:"date_returned,omitempty"`
	RentalFee    decimal.NullDecimal `json:"rental_fee,omitempty" gorm:"type:decimal(10,2)"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// BeforeCreate sets UUID and default checkout time before creating the record.
func (r *Rental) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.DateOut.IsZero() {
		r.DateOut = time.Now()
	}
	return nil
}

// Returned reports whether the rental has already been closed.
func (r *Rental) Returned() bool {
	return r.DateReturned != nil
}
