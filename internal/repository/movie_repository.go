package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vidlib/internal/model"
)

// MovieRepository defines movie persistence operations.
type MovieRepository interface {
	Create(ctx context.Context, movie *model.Movie) error
	Update(ctx context.Context, movie *model.Movie) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Movie, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Movie, error)
	List(ctx context.Context) ([]model.Movie, error)
	// DecrementStock atomically takes one unit off the shelf. It affects
	// zero rows when the movie is missing or already out of stock, in
	// which case it reports false.
	DecrementStock(ctx context.Context, id uuid.UUID) (bool, error)
	// IncrementStock puts one unit back on the shelf.
	IncrementStock(ctx context.Context, id uuid.UUID) error
}

type movieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository.
func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) Create(ctx context.Context, movie *model.Movie) error {
	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *movieRepository) Update(ctx context.Context, movie *model.Movie) error {
	return r.db.WithContext(ctx).Save(movie).Error
}

func (r *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Movie{}).Error
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	var movie model.Movie
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&movie).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

// FindByIDForUpdate finds a movie by ID with a row-level lock.
func (r *movieRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	var movie model.Movie
	if err := r.db.WithContext(ctx).Set("gorm:query_option", "FOR UPDATE").
		Where("id = ?", id).First(&movie).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

// List returns all movies sorted by title.
func (r *movieRepository) List(ctx context.Context) ([]model.Movie, error) {
	var movies []model.Movie
	if err := r.db.WithContext(ctx).Order("title").Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepository) DecrementStock(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Movie{}).
		Where("id = ? AND number_in_stock > 0", id).
		Update("number_in_stock", gorm.Expr("number_in_stock - 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *movieRepository) IncrementStock(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Movie{}).
		Where("id = ?", id).
		Update("number_in_stock", gorm.Expr("number_in_stock + 1")).Error
}
