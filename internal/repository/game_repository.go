package repository

import (
	"context"

	"github.com/squadup-app/squadup-backend/internal/domain"
)

type FavoriteGameRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.FavoriteGame, error)
	ListGameIDs(ctx context.Context, userID string) ([]string, error)
	// Sync makes the stored favorite set equal to games: new catalog ids
	// are inserted, ids no longer present are removed.
	Sync(ctx context.Context, userID string, games []*domain.FavoriteGame) error
}
