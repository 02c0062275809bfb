package services

import (
	"context"
	"errors"
	"fmt"

	"movie-demo/internal/models"
	"movie-demo/internal/movieitem"
	"movie-demo/internal/repository"

	"github.com/sirupsen/logrus"
)

var ErrTitleRequired = errors.New("movie title is required")

type MovieService interface {
	GetMovieByID(ctx context.Context, id uint) (*models.Movie, error)
	ListMovies(ctx context.Context) ([]models.Movie, error)
	CreateMovie(ctx context.Context, movie *models.Movie) error
	UpdateMovie(ctx context.Context, id uint, movie *models.Movie) error
	DeleteMovie(ctx context.Context, id uint) error

	// SeedMovies inserts movies only when the store is empty and reports how
	// many were inserted.
	SeedMovies(ctx context.Context, movies []models.Movie) (int, error)

	// Fetcher lets a display component read through this service in-process.
	Fetcher() movieitem.Fetcher
}

// MovieCache is the read-through cache used for single-record reads. Set
// must not overwrite a key that Delete invalidated recently; otherwise a
// read racing a write could cache the old row again.
type MovieCache interface {
	Get(ctx context.Context, id uint) (*models.Movie, bool)
	Set(ctx context.Context, movie *models.Movie)
	Delete(ctx context.Context, id uint)
}

// CoverStore removes cover images this service uploaded earlier.
type CoverStore interface {
	OwnsURL(coverURL string) bool
	DeleteByURL(ctx context.Context, coverURL string) error
}

type movieService struct {
	repo   repository.MovieRepository
	cache  MovieCache
	covers CoverStore
	logger *logrus.Logger
}

func NewMovieService(repo repository.MovieRepository, logger *logrus.Logger) MovieService {
	return &movieService{
		repo:   repo,
		logger: logger,
	}
}

func (s *movieService) SetCache(cache MovieCache) {
	s.cache = cache
}

func (s *movieService) SetCoverStore(covers CoverStore) {
	s.covers = covers
}

func (s *movieService) GetMovieByID(ctx context.Context, id uint) (*models.Movie, error) {
	if s.cache != nil {
		if movie, ok := s.cache.Get(ctx, id); ok {
			return movie, nil
		}
	}

	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, movie)
	}
	return movie, nil
}

func (s *movieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return s.repo.FindAll(ctx)
}

func (s *movieService) CreateMovie(ctx context.Context, movie *models.Movie) error {
	if movie.Title == "" {
		return ErrTitleRequired
	}
	movie.ID = 0
	return s.repo.Create(ctx, movie)
}

// UpdateMovie replaces every editable field of an existing record. A cover
// this service uploaded is removed once the record points elsewhere.
func (s *movieService) UpdateMovie(ctx context.Context, id uint, movie *models.Movie) error {
	if movie.Title == "" {
		return ErrTitleRequired
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	movie.ID = id
	movie.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, movie); err != nil {
		return err
	}
	s.invalidate(ctx, id)

	if movie.CoverImg != existing.CoverImg {
		s.removeCover(ctx, id, existing.CoverImg)
	}
	return nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	s.removeCover(ctx, id, existing.CoverImg)
	return nil
}

// invalidate runs after the store write so that readers racing the write
// cannot cache the old row.
func (s *movieService) invalidate(ctx context.Context, id uint) {
	if s.cache != nil {
		s.cache.Delete(ctx, id)
	}
}

func (s *movieService) removeCover(ctx context.Context, id uint, coverURL string) {
	if s.covers == nil || coverURL == "" || !s.covers.OwnsURL(coverURL) {
		return
	}
	if err := s.covers.DeleteByURL(ctx, coverURL); err != nil {
		s.logger.WithError(err).WithField("id", id).Warn("Failed to delete cover image from MinIO")
	}
}

func (s *movieService) SeedMovies(ctx context.Context, movies []models.Movie) (int, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	if total > 0 {
		s.logger.WithField("existing", total).Info("Movie store already populated, skipping seed")
		return 0, nil
	}

	batch := make([]models.Movie, len(movies))
	copy(batch, movies)
	if err := s.repo.CreateBatch(ctx, batch); err != nil {
		return 0, fmt.Errorf("failed to seed movies: %w", err)
	}

	s.logger.WithField("inserted", len(batch)).Info("Seeded movie store")
	return len(batch), nil
}

func (s *movieService) Fetcher() movieitem.Fetcher {
	return movieitem.FetcherFunc(func(ctx context.Context, id uint) (*movieitem.Movie, error) {
		movie, err := s.GetMovieByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &movieitem.Movie{
			CoverImg: movie.CoverImg,
			Title:    movie.Title,
			Desc:     movie.Desc,
		}, nil
	})
}
