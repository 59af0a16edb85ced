package repository

import (
	"context"

	"github.com/squadup-app/squadup-backend/internal/domain"
)

type SwipeRepository interface {
	// Create inserts a swipe. A second swipe for the same ordered
	// (swiper, swiped) pair fails with domain.ErrSwipeAlreadyExists.
	Create(ctx context.Context, swipe *domain.Swipe) error
	// FindLike returns the like-swipe for the ordered pair, or
	// domain.ErrSwipeNotFound when none exists.
	FindLike(ctx context.Context, swiperID, swipedID string) (*domain.Swipe, error)
	// ListSwipedIDs returns every id the swiper has swiped, like or pass.
	ListSwipedIDs(ctx context.Context, swiperID string) ([]string, error)
	// ListLikedIDs returns the ids the swiper has liked.
	ListLikedIDs(ctx context.Context, swiperID string) ([]string, error)
	// ListMutualLikerIDs returns the subset of candidateIDs that have
	// liked userID back.
	ListMutualLikerIDs(ctx context.Context, userID string, candidateIDs []string) ([]string, error)
	// ListLikesReceived returns like-swipes aimed at userID from users
	// userID has not swiped yet, newest first.
	ListLikesReceived(ctx context.Context, userID string, limit, offset int) ([]*domain.Swipe, error)
}
