package rating

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/squadup-app/squadup-backend/internal/domain"
	"github.com/squadup-app/squadup-backend/internal/repository"
)

type UseCase struct {
	ratingRepo repository.RatingRepository
	validate   *validator.Validate
}

func NewUseCase(ratingRepo repository.RatingRepository) *UseCase {
	return &UseCase{
		ratingRepo: ratingRepo,
		validate:   validator.New(),
	}
}

// SubmitRequest carries one peer evaluation. Every dimension is 1-5.
type SubmitRequest struct {
	RatedUserID   string `json:"rated_user_id" binding:"required" validate:"required"`
	Respect       int    `json:"respect" validate:"min=1,max=5"`
	Communication int    `json:"communication" validate:"min=1,max=5"`
	Humor         int    `json:"humor" validate:"min=1,max=5"`
	Collaboration int    `json:"collaboration" validate:"min=1,max=5"`
}

// Submit stores a rating. A repeat rating for the same ordered pair is
// rejected with domain.ErrRatingAlreadyExists so the caller can show
// "already rated" instead of a generic failure.
func (uc *UseCase) Submit(ctx context.Context, raterID string, req *SubmitRequest) (*domain.Rating, error) {
	if raterID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if raterID == req.RatedUserID {
		return nil, domain.ErrCannotRateSelf
	}
	if err := uc.validate.Struct(req); err != nil {
		return nil, domain.ErrInvalidInput
	}

	rating := &domain.Rating{
		RaterID:       raterID,
		RatedID:       req.RatedUserID,
		Respect:       req.Respect,
		Communication: req.Communication,
		Humor:         req.Humor,
		Collaboration: req.Collaboration,
	}
	if err := uc.ratingRepo.Create(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

// AveragesFor returns the per-dimension means for a user, or nil when
// nobody has rated them yet.
func (uc *UseCase) AveragesFor(ctx context.Context, userID string) (*domain.RatingAverages, error) {
	return uc.ratingRepo.GetAverages(ctx, userID)
}
