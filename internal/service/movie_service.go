package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"vidlib/internal/cache"
	"vidlib/internal/errors"
	"vidlib/internal/model"
	"vidlib/internal/repository"
)

const movieCacheTTL = 5 * time.Minute

// MovieInput carries validated movie fields into the service.
type MovieInput struct {
	Title           string
	GenreID         uuid.UUID
	NumberInStock   int
	DailyRentalRate decimal.Decimal
}

// MovieService exposes movie CRUD. Writes copy a genre snapshot into
// the movie so the referenced genre can change or disappear without
// rewriting existing movies.
type MovieService interface {
	Create(ctx context.Context, in MovieInput) (*model.Movie, error)
	Update(ctx context.Context, id uuid.UUID, in MovieInput) (*model.Movie, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Movie, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Movie, error)
	List(ctx context.Context) ([]model.Movie, error)
}

type movieService struct {
	movieRepo repository.MovieRepository
	genreRepo repository.GenreRepository
	cache     *cache.Client
}

// NewMovieService creates a new movie service.
func NewMovieService(movieRepo repository.MovieRepository, genreRepo repository.GenreRepository, cache *cache.Client) MovieService {
	return &movieService{movieRepo: movieRepo, genreRepo: genreRepo, cache: cache}
}

func movieCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("movie:%s", id)
}

func (s *movieService) Create(ctx context.Context, in MovieInput) (*model.Movie, error) {
	genre, err := s.genreRepo.FindByID(ctx, in.GenreID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrInvalidGenre
		}
		return nil, err
	}

	movie := &model.Movie{
		Title:           in.Title,
		Genre:           genre.Snapshot(),
		NumberInStock:   in.NumberInStock,
		DailyRentalRate: in.DailyRentalRate,
	}
	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *movieService) Update(ctx context.Context, id uuid.UUID, in MovieInput) (*model.Movie, error) {
	movie, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrMovieNotFound
		}
		return nil, err
	}

	genre, err := s.genreRepo.FindByID(ctx, in.GenreID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrInvalidGenre
		}
		return nil, err
	}

	movie.Title = in.Title
	movie.Genre = genre.Snapshot()
	movie.NumberInStock = in.NumberInStock
	movie.DailyRentalRate = in.DailyRentalRate

	if err := s.movieRepo.Update(ctx, movie); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, movieCacheKey(id))
	return movie, nil
}

func (s *movieService) Delete(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	movie, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrMovieNotFound
		}
		return nil, err
	}
	if err := s.movieRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, movieCacheKey(id))
	return movie, nil
}

func (s *movieService) Get(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	if data, _ := s.cache.Get(ctx, movieCacheKey(id)); data != nil {
		var cached model.Movie
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	movie, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrMovieNotFound
		}
		return nil, err
	}

	if data, err := json.Marshal(movie); err == nil {
		_ = s.cache.Set(ctx, movieCacheKey(id), data, movieCacheTTL)
	}
	return movie, nil
}

func (s *movieService) List(ctx context.Context) ([]model.Movie, error) {
	return s.movieRepo.List(ctx)
}
