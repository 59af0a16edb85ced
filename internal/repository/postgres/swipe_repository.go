package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/squadup-app/squadup-backend/internal/domain"
	"github.com/squadup-app/squadup-backend/internal/repository"
)

type swipeRepository struct {
	db *sqlx.DB
}

func NewSwipeRepository(db *sqlx.DB) repository.SwipeRepository {
	return &swipeRepository{db: db}
}

func (r *swipeRepository) Create(ctx context.Context, swipe *domain.Swipe) error {
	query := `
		INSERT INTO swipes (swiper_id, swiped_id, is_like)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, swipe.SwiperID, swipe.SwipedID, swipe.IsLike).
		Scan(&swipe.ID, &swipe.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrSwipeAlreadyExists
	}
	return err
}

func (r *swipeRepository) FindLike(ctx context.Context, swiperID, swipedID string) (*domain.Swipe, error) {
	var swipe domain.Swipe
	query := `
		SELECT * FROM swipes
		WHERE swiper_id = $1 AND swiped_id = $2 AND is_like = true
	`
	err := r.db.GetContext(ctx, &swipe, query, swiperID, swipedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSwipeNotFound
		}
		return nil, err
	}
	return &swipe, nil
}

func (r *swipeRepository) ListSwipedIDs(ctx context.Context, swiperID string) ([]string, error) {
	var ids []string
	query := `SELECT swiped_id FROM swipes WHERE swiper_id = $1`
	err := r.db.SelectContext(ctx, &ids, query, swiperID)
	return ids, err
}

func (r *swipeRepository) ListLikedIDs(ctx context.Context, swiperID string) ([]string, error) {
	var ids []string
	query := `SELECT swiped_id FROM swipes WHERE swiper_id = $1 AND is_like = true`
	err := r.db.SelectContext(ctx, &ids, query, swiperID)
	return ids, err
}

func (r *swipeRepository) ListMutualLikerIDs(ctx context.Context, userID string, candidateIDs []string) ([]string, error) {
	if len(candidateIDs) == 0 {
		return nil, nil
	}
	var ids []string
	query := `
		SELECT swiper_id FROM swipes
		WHERE swiped_id = $1 AND is_like = true AND swiper_id = ANY($2)
	`
	err := r.db.SelectContext(ctx, &ids, query, userID, pq.Array(candidateIDs))
	return ids, err
}

func (r *swipeRepository) ListLikesReceived(ctx context.Context, userID string, limit, offset int) ([]*domain.Swipe, error) {
	var swipes []*domain.Swipe
	query := `
		SELECT s.* FROM swipes s
		WHERE s.swiped_id = $1 AND s.is_like = true
		  AND NOT EXISTS (
			SELECT 1 FROM swipes mine
			WHERE mine.swiper_id = $1 AND mine.swiped_id = s.swiper_id
		  )
		ORDER BY s.created_at DESC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &swipes, query, userID, limit, offset)
	return swipes, err
}
