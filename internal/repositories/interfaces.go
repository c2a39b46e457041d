package repositories

import (
	"context"

	"movies-api/internal/models"
)

// MovieSourceInterface defines the contract for anything that can supply the catalog
type MovieSourceInterface interface {
	LoadMovies(ctx context.Context) ([]models.Movie, error)
}

// MovieRepositoryInterface defines the contract for the database-backed catalog
type MovieRepositoryInterface interface {
	MovieSourceInterface
	ReplaceAll(ctx context.Context, movies []models.Movie) error
	Count(ctx context.Context) (int64, error)
}
