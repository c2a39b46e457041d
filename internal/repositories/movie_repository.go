package repositories

import (
	"context"
	"fmt"

	"movies-api/internal/models"

	"gorm.io/gorm"
)

const movieBatchSize = 500

// MovieRepository handles database operations for the movie catalog
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) MovieRepositoryInterface {
	return &MovieRepository{
		db: db,
	}
}

// LoadMovies returns the whole catalog in catalog order
func (r *MovieRepository) LoadMovies(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie

	if err := r.db.WithContext(ctx).Order("ordinal ASC").Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to load movies: %w", err)
	}

	return movies, nil
}

// ReplaceAll swaps the stored catalog for movies in a single transaction.
// Ordinals are reassigned from 1 following the slice order.
func (r *MovieRepository) ReplaceAll(ctx context.Context, movies []models.Movie) error {
	rows := make([]models.Movie, len(movies))
	for i, movie := range movies {
		if err := movie.Validate(); err != nil {
			return fmt.Errorf("movie at position %d: %w", i, err)
		}
		movie.Ordinal = i + 1
		rows[i] = movie
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Movie{}).Error; err != nil {
			return fmt.Errorf("failed to clear movies: %w", err)
		}

		if len(rows) == 0 {
			return nil
		}

		if err := tx.CreateInBatches(rows, movieBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert movies: %w", err)
		}

		return nil
	})
}

// Count returns the number of stored movies
func (r *MovieRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&models.Movie{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}

	return count, nil
}
