package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a member of the rental store.
type Customer struct {
	ID        uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string         `json:"name" gorm:"size:50;not null;index"`
	Phone     string         `json:"phone" gorm:"size:10;not null"`
	IsGold    bool           `json:"is_gold" gorm:"default:false"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// CustomerSnapshot is the customer subset copied into a rental at
// creation time.
type CustomerSnapshot struct {
	ID     uuid.UUID `json:"id" gorm:"type:char(36);not null;index"`
	Name   string    `json:"name" gorm:"size:50;not null"`
	Phone  string    `json:"phone" gorm:"size:10;not null"`
	IsGold bool      `json:"is_gold" gorm:"default:false"`
}

// Snapshot copies the fields a rental embeds.
func (c *Customer) Snapshot() CustomerSnapshot {
	return CustomerSnapshot{ID: c.ID, Name: c.Name, Phone: c.Phone, IsGold: c.IsGold}
}
