package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/squadup-app/squadup-backend/internal/domain"
	"github.com/squadup-app/squadup-backend/internal/repository"
)

type ratingRepository struct {
	db *sqlx.DB
}

func NewRatingRepository(db *sqlx.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	query := `
		INSERT INTO user_ratings (rater_id, rated_id, respect, communication, humor, collaboration)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		rating.RaterID, rating.RatedID,
		rating.Respect, rating.Communication, rating.Humor, rating.Collaboration,
	).Scan(&rating.ID, &rating.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrRatingAlreadyExists
	}
	return err
}

func (r *ratingRepository) GetAverages(ctx context.Context, ratedID string) (*domain.RatingAverages, error) {
	var averages domain.RatingAverages
	query := `
		SELECT rated_id,
		       AVG(respect)       AS avg_respect,
		       AVG(communication) AS avg_communication,
		       AVG(humor)         AS avg_humor,
		       AVG(collaboration) AS avg_collaboration,
		       COUNT(*)           AS rating_count
		FROM user_ratings
		WHERE rated_id = $1
		GROUP BY rated_id
	`
	err := r.db.GetContext(ctx, &averages, query, ratedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// No ratings yet: absence is not a score.
			return nil, nil
		}
		return nil, err
	}
	return &averages, nil
}
