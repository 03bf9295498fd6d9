package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vidlib/internal/cache"
	"vidlib/internal/errors"
	"vidlib/internal/model"
	"vidlib/internal/repository"
)

const (
	genreListCacheKey = "genres:all"
	genreListCacheTTL = 5 * time.Minute
)

// GenreService exposes genre CRUD.
type GenreService interface {
	Create(ctx context.Context, name string) (*model.Genre, error)
	Update(ctx context.Context, id uuid.UUID, name string) (*model.Genre, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Genre, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Genre, error)
	List(ctx context.Context) ([]model.Genre, error)
}

type genreService struct {
	repo  repository.GenreRepository
	cache *cache.Client
}

// NewGenreService creates a new genre service.
func NewGenreService(repo repository.GenreRepository, cache *cache.Client) GenreService {
	return &genreService{repo: repo, cache: cache}
}

func (s *genreService) Create(ctx context.Context, name string) (*model.Genre, error) {
	genre := &model.Genre{Name: name}
	if err := s.repo.Create(ctx, genre); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, genreListCacheKey)
	return genre, nil
}

func (s *genreService) Update(ctx context.Context, id uuid.UUID, name string) (*model.Genre, error) {
	genre, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrGenreNotFound
		}
		return nil, err
	}
	genre.Name = name
	if err := s.repo.Update(ctx, genre); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, genreListCacheKey)
	return genre, nil
}

func (s *genreService) Delete(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	genre, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrGenreNotFound
		}
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, genreListCacheKey)
	return genre, nil
}

func (s *genreService) Get(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	genre, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrGenreNotFound
		}
		return nil, err
	}
	return genre, nil
}

func (s *genreService) List(ctx context.Context) ([]model.Genre, error) {
	if data, _ := s.cache.Get(ctx, genreListCacheKey); data != nil {
		var cached []model.Genre
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	genres, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(genres); err == nil {
		_ = s.cache.Set(ctx, genreListCacheKey, data, genreListCacheTTL)
	}
	return genres, nil
}
