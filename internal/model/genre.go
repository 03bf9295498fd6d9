package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Genre is a movie category.
type Genre struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:50;not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (g *Genre) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// GenreSnapshot is the genre subset copied into a movie at write time.
type GenreSnapshot struct {
	ID   uuid.UUID `json:"id" gorm:"type:char(36);not null;index"`
	Name string    `json:"name" gorm:"size:50;not null"`
}

// Snapshot copies the fields a movie embeds.
func (g *Genre) Snapshot() GenreSnapshot {
	return GenreSnapshot{ID: g.ID, Name: g.Name}
}
