package swipe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/squadup-app/squadup-backend/internal/domain"
	"github.com/squadup-app/squadup-backend/internal/geo"
	"github.com/squadup-app/squadup-backend/internal/repository"
)

// IcebreakerGenerator produces opener lines for a fresh match from the
// two users' favorite games. Optional; a nil generator disables it.
type IcebreakerGenerator interface {
	Icebreakers(ctx context.Context, myGames, theirGames []string) ([]string, error)
}

type UseCase struct {
	swipeRepo   repository.SwipeRepository
	profileRepo repository.ProfileRepository
	gameRepo    repository.FavoriteGameRepository
	icebreakers IcebreakerGenerator
	logger      *slog.Logger
}

func NewUseCase(
	swipeRepo repository.SwipeRepository,
	profileRepo repository.ProfileRepository,
	gameRepo repository.FavoriteGameRepository,
	icebreakers IcebreakerGenerator,
	logger *slog.Logger,
) *UseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &UseCase{
		swipeRepo:   swipeRepo,
		profileRepo: profileRepo,
		gameRepo:    gameRepo,
		icebreakers: icebreakers,
		logger:      logger,
	}
}

// Result reports whether a swipe completed a mutual match.
type Result struct {
	Matched        bool                        `json:"matched"`
	MatchedProfile *domain.ProfileWithDistance `json:"matched_profile,omitempty"`
	Icebreakers    []string                    `json:"icebreakers,omitempty"`
}

// RecordSwipe persists one directional decision and, for likes, checks
// whether the target had already liked the swiper back. The reciprocity
// check is point-in-time: two users liking each other near-simultaneously
// may each see the match on their own call, which converges to the same
// state.
func (uc *UseCase) RecordSwipe(ctx context.Context, swiperID, swipedID string, isLike bool) (*Result, error) {
	if swiperID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if swiperID == swipedID {
		return nil, domain.ErrCannotSwipeSelf
	}

	target, err := uc.profileRepo.GetByID(ctx, swipedID)
	if err != nil {
		return nil, err
	}

	swipe := &domain.Swipe{SwiperID: swiperID, SwipedID: swipedID, IsLike: isLike}
	if err := uc.swipeRepo.Create(ctx, swipe); err != nil {
		return nil, err
	}

	if !isLike {
		return &Result{}, nil
	}

	_, err = uc.swipeRepo.FindLike(ctx, swipedID, swiperID)
	if errors.Is(err, domain.ErrSwipeNotFound) {
		return &Result{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reciprocity check: %v", domain.ErrFetchFailed, err)
	}

	result := &Result{
		Matched:        true,
		MatchedProfile: &domain.ProfileWithDistance{Profile: *target},
	}
	if me, err := uc.profileRepo.GetByID(ctx, swiperID); err == nil {
		if d, ok := geo.Distance(me.Latitude, me.Longitude, target.Latitude, target.Longitude); ok {
			result.MatchedProfile.DistanceKm = &d
		}
	}
	result.Icebreakers = uc.generateIcebreakers(ctx, swiperID, swipedID)

	return result, nil
}

// ListMatches derives the mutual-match set from the swipe log: everyone
// the user liked who liked them back, with distance annotations.
func (uc *UseCase) ListMatches(ctx context.Context, userID string) ([]*domain.ProfileWithDistance, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}

	likedIDs, err := uc.swipeRepo.ListLikedIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list likes: %v", domain.ErrFetchFailed, err)
	}
	if len(likedIDs) == 0 {
		return []*domain.ProfileWithDistance{}, nil
	}

	mutualIDs, err := uc.swipeRepo.ListMutualLikerIDs(ctx, userID, likedIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: list mutual likers: %v", domain.ErrFetchFailed, err)
	}
	if len(mutualIDs) == 0 {
		return []*domain.ProfileWithDistance{}, nil
	}

	profiles, err := uc.profileRepo.ListByIDs(ctx, mutualIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: list matched profiles: %v", domain.ErrFetchFailed, err)
	}

	me, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	matches := make([]*domain.ProfileWithDistance, 0, len(profiles))
	for _, p := range profiles {
		match := &domain.ProfileWithDistance{Profile: *p}
		if d, ok := geo.Distance(me.Latitude, me.Longitude, p.Latitude, p.Longitude); ok {
			match.DistanceKm = &d
		}
		matches = append(matches, match)
	}
	return matches, nil
}

// LikeReceived is one pending incoming like.
type LikeReceived struct {
	Profile   domain.ProfileWithDistance `json:"profile"`
	CreatedAt string                     `json:"created_at"`
}

// ListLikesReceived returns users who liked userID and have not been
// swiped back yet, newest first.
func (uc *UseCase) ListLikesReceived(ctx context.Context, userID string, limit, offset int) ([]*LikeReceived, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if limit <= 0 {
		limit = 20
	}

	likes, err := uc.swipeRepo.ListLikesReceived(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: list likes received: %v", domain.ErrFetchFailed, err)
	}

	me, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*LikeReceived, 0, len(likes))
	for _, like := range likes {
		profile, err := uc.profileRepo.GetByID(ctx, like.SwiperID)
		if errors.Is(err, domain.ErrProfileNotFound) {
			// The liker deleted their profile; skip the stale like.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: liker profile: %v", domain.ErrFetchFailed, err)
		}
		entry := &LikeReceived{
			Profile:   domain.ProfileWithDistance{Profile: *profile},
			CreatedAt: like.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		if d, ok := geo.Distance(me.Latitude, me.Longitude, profile.Latitude, profile.Longitude); ok {
			entry.Profile.DistanceKm = &d
		}
		out = append(out, entry)
	}
	return out, nil
}

// generateIcebreakers is best-effort: failures are logged, never block
// the match response.
func (uc *UseCase) generateIcebreakers(ctx context.Context, swiperID, swipedID string) []string {
	if uc.icebreakers == nil {
		return nil
	}

	mine, err := uc.gameRepo.ListByUser(ctx, swiperID)
	if err != nil {
		uc.logger.Warn("icebreakers: list swiper games", "error", err)
		return nil
	}
	theirs, err := uc.gameRepo.ListByUser(ctx, swipedID)
	if err != nil {
		uc.logger.Warn("icebreakers: list target games", "error", err)
		return nil
	}

	lines, err := uc.icebreakers.Icebreakers(ctx, gameNames(mine), gameNames(theirs))
	if err != nil {
		uc.logger.Warn("icebreakers: generation failed", "error", err)
		return nil
	}
	return lines
}

func gameNames(games []*domain.FavoriteGame) []string {
	names := make([]string, 0, len(games))
	for _, g := range games {
		names = append(names, g.Name)
	}
	return names
}
