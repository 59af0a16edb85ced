package discovery

import (
	"context"
	"fmt"
	"time"

	"github.com/squadup-app/squadup-backend/internal/domain"
	"github.com/squadup-app/squadup-backend/internal/geo"
	"github.com/squadup-app/squadup-backend/internal/repository"
)

const (
	// DefaultLimit matches the page size the discovery UI requests.
	DefaultLimit = 10
	// batchSize is how many unswiped profiles are pulled from the store
	// per page while scanning for matches.
	batchSize = 100
)

type UseCase struct {
	profileRepo repository.ProfileRepository
	swipeRepo   repository.SwipeRepository
	ratingRepo  repository.RatingRepository
	gameRepo    repository.FavoriteGameRepository
	now         func() time.Time
}

func NewUseCase(
	profileRepo repository.ProfileRepository,
	swipeRepo repository.SwipeRepository,
	ratingRepo repository.RatingRepository,
	gameRepo repository.FavoriteGameRepository,
) *UseCase {
	return &UseCase{
		profileRepo: profileRepo,
		swipeRepo:   swipeRepo,
		ratingRepo:  ratingRepo,
		gameRepo:    gameRepo,
		now:         time.Now,
	}
}

// Result is one page of discovery candidates. UsedFallback tells the
// caller the requested filters matched nobody and the page was produced
// by the default spec instead.
type Result struct {
	Candidates   []*domain.ProfileWithDistance `json:"candidates"`
	UsedFallback bool                          `json:"used_fallback"`
}

// GetCandidates returns up to limit profiles eligible for display to
// the requester: never the requester, never anyone they already swiped,
// and only profiles satisfying the filter spec. If the filtered query
// is empty and any rating minimum is above the default, the query is
// re-run once with the spec reset to defaults.
func (uc *UseCase) GetCandidates(ctx context.Context, requesterID string, spec domain.FilterSpec, limit int) (*Result, error) {
	if requesterID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	spec.Normalize()
	if limit <= 0 {
		limit = DefaultLimit
	}

	requester, err := uc.profileRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	swipedIDs, err := uc.swipeRepo.ListSwipedIDs(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("%w: list swiped ids: %v", domain.ErrFetchFailed, err)
	}
	excluded := append(swipedIDs, requesterID)

	candidates, err := uc.query(ctx, requester, excluded, spec, limit)
	if err != nil {
		return nil, err
	}

	if len(candidates) == 0 && spec.HasRatingThresholds() {
		fallback, err := uc.query(ctx, requester, excluded, domain.DefaultFilterSpec(), limit)
		if err != nil {
			return nil, err
		}
		if len(fallback) > 0 {
			return &Result{Candidates: fallback, UsedFallback: true}, nil
		}
	}

	return &Result{Candidates: candidates}, nil
}

// query pages through every unswiped profile in store order, applying
// the filter spec to each, until the page fills or the store runs out.
func (uc *UseCase) query(ctx context.Context, requester *domain.Profile, excludedIDs []string, spec domain.FilterSpec, limit int) ([]*domain.ProfileWithDistance, error) {
	var requesterGames map[string]bool
	if spec.CommonGames {
		ids, err := uc.gameRepo.ListGameIDs(ctx, requester.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: list favorite games: %v", domain.ErrFetchFailed, err)
		}
		requesterGames = make(map[string]bool, len(ids))
		for _, id := range ids {
			requesterGames[id] = true
		}
	}

	checkRatings := spec.HasRatingThresholds()
	out := make([]*domain.ProfileWithDistance, 0, limit)
	for offset := 0; ; offset += batchSize {
		pool, err := uc.profileRepo.ListExcluding(ctx, excludedIDs, batchSize, offset)
		if err != nil {
			return nil, fmt.Errorf("%w: list profiles: %v", domain.ErrFetchFailed, err)
		}

		for _, candidate := range pool {
			distance, hasDistance := geo.Distance(
				requester.Latitude, requester.Longitude,
				candidate.Latitude, candidate.Longitude,
			)

			ok, err := uc.matches(ctx, requester, requesterGames, candidate, spec, distance, hasDistance)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			// No-rating profiles pass the all-1 defaults for free; only
			// consult the aggregate when a threshold is actually raised.
			if checkRatings {
				averages, err := uc.ratingRepo.GetAverages(ctx, candidate.ID)
				if err != nil {
					return nil, fmt.Errorf("%w: rating averages: %v", domain.ErrFetchFailed, err)
				}
				if averages == nil || !averages.Satisfies(spec) {
					continue
				}
			}

			annotated := &domain.ProfileWithDistance{Profile: *candidate}
			if hasDistance {
				d := distance
				annotated.DistanceKm = &d
			}
			out = append(out, annotated)
			if len(out) == limit {
				return out, nil
			}
		}

		if len(pool) < batchSize {
			return out, nil
		}
	}
}

// matches applies every non-rating predicate of the filter spec.
func (uc *UseCase) matches(ctx context.Context, requester *domain.Profile, requesterGames map[string]bool, candidate *domain.Profile, spec domain.FilterSpec, distance float64, hasDistance bool) (bool, error) {
	if spec.Gender != nil {
		if candidate.Gender == nil || *candidate.Gender != *spec.Gender {
			return false, nil
		}
	}

	if age := candidate.Age(uc.now()); age != nil {
		if *age < spec.MinAge || *age > spec.MaxAge {
			return false, nil
		}
	} else if !spec.HasDefaultAgeRange() {
		// Unknown age cannot satisfy a narrowed range.
		return false, nil
	}

	if spec.SameLocation && !requester.SameLocationAs(candidate) {
		return false, nil
	}

	if spec.SamePlatform && !requester.SharesPlatformWith(candidate) {
		return false, nil
	}

	if spec.CommonGames {
		ids, err := uc.gameRepo.ListGameIDs(ctx, candidate.ID)
		if err != nil {
			return false, fmt.Errorf("%w: list favorite games: %v", domain.ErrFetchFailed, err)
		}
		shared := false
		for _, id := range ids {
			if requesterGames[id] {
				shared = true
				break
			}
		}
		if !shared {
			return false, nil
		}
	}

	if spec.MaxDistanceKm != nil {
		// Profiles without coordinates are excluded under an active cap.
		if !hasDistance || distance > *spec.MaxDistanceKm {
			return false, nil
		}
	}

	return true, nil
}
