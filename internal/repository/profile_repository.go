package repository

import (
	"context"

	"github.com/squadup-app/squadup-backend/internal/domain"
)

type ProfileRepository interface {
	Upsert(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	GetByUsername(ctx context.Context, username string) (*domain.Profile, error)
	// ListExcluding returns up to limit profiles whose id is not in
	// excludedIDs, in stable creation order, starting at offset.
	ListExcluding(ctx context.Context, excludedIDs []string, limit, offset int) ([]*domain.Profile, error)
	ListByIDs(ctx context.Context, ids []string) ([]*domain.Profile, error)
}
