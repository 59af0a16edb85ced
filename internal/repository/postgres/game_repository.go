package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/squadup-app/squadup-backend/internal/domain"
	"github.com/squadup-app/squadup-backend/internal/repository"
)

type favoriteGameRepository struct {
	db *sqlx.DB
}

func NewFavoriteGameRepository(db *sqlx.DB) repository.FavoriteGameRepository {
	return &favoriteGameRepository{db: db}
}

func (r *favoriteGameRepository) ListByUser(ctx context.Context, userID string) ([]*domain.FavoriteGame, error) {
	query := `
		SELECT id, user_id, game_id, name, cover_url, genres, created_at
		FROM user_favorites
		WHERE user_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []*domain.FavoriteGame
	for rows.Next() {
		var game domain.FavoriteGame
		if err := rows.Scan(
			&game.ID, &game.UserID, &game.GameID, &game.Name,
			&game.CoverURL, pq.Array(&game.Genres), &game.CreatedAt,
		); err != nil {
			return nil, err
		}
		games = append(games, &game)
	}
	return games, rows.Err()
}

func (r *favoriteGameRepository) ListGameIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	query := `SELECT game_id FROM user_favorites WHERE user_id = $1`
	err := r.db.SelectContext(ctx, &ids, query, userID)
	return ids, err
}

func (r *favoriteGameRepository) Sync(ctx context.Context, userID string, games []*domain.FavoriteGame) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	keepIDs := make([]string, 0, len(games))
	for _, game := range games {
		keepIDs = append(keepIDs, game.GameID)
	}

	deleteQuery := `DELETE FROM user_favorites WHERE user_id = $1 AND game_id <> ALL($2)`
	if _, err := tx.ExecContext(ctx, deleteQuery, userID, pq.Array(keepIDs)); err != nil {
		return err
	}

	insertQuery := `
		INSERT INTO user_favorites (user_id, game_id, name, cover_url, genres)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, game_id) DO NOTHING
	`
	for _, game := range games {
		if _, err := tx.ExecContext(
			ctx, insertQuery,
			userID, game.GameID, game.Name, game.CoverURL, pq.Array(game.Genres),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}
