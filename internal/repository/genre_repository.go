package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vidlib/internal/model"
)

// GenreRepository defines genre persistence operations.
type GenreRepository interface {
	Create(ctx context.Context, genre *model.Genre) error
	Update(ctx context.Context, genre *model.Genre) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Genre, error)
	List(ctx context.Context) ([]model.Genre, error)
}

type genreRepository struct {
	db *gorm.DB
}

// NewGenreRepository creates a new genre repository.
func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) Create(ctx context.Context, genre *model.Genre) error {
	return r.db.WithContext(ctx).Create(genre).Error
}

func (r *genreRepository) Update(ctx context.Context, genre *model.Genre) error {
	return r.db.WithContext(ctx).Save(genre).Error
}

func (r *genreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Genre{}).Error
}

func (r *genreRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	var genre model.Genre
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&genre).Error; err != nil {
		return nil, err
	}
	return &genre, nil
}

// List returns all genres sorted by name.
func (r *genreRepository) List(ctx context.Context) ([]model.Genre, error) {
	var genres []model.Genre
	if err := r.db.WithContext(ctx).Order("name").Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}
