package repository

import (
	"context"

	"github.com/squadup-app/squadup-backend/internal/domain"
)

type RatingRepository interface {
	// Create inserts a rating. A second rating for the same ordered
	// (rater, rated) pair fails with domain.ErrRatingAlreadyExists.
	Create(ctx context.Context, rating *domain.Rating) error
	// GetAverages returns the per-dimension means for a rated user, or
	// (nil, nil) when the user has no ratings.
	GetAverages(ctx context.Context, ratedID string) (*domain.RatingAverages, error)
}
