package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/squadup-app/squadup-backend/internal/domain"
	"github.com/squadup-app/squadup-backend/internal/repository"
)

type UseCase struct {
	profileRepo repository.ProfileRepository
	gameRepo    repository.FavoriteGameRepository
	ratingRepo  repository.RatingRepository
}

func NewUseCase(
	profileRepo repository.ProfileRepository,
	gameRepo repository.FavoriteGameRepository,
	ratingRepo repository.RatingRepository,
) *UseCase {
	return &UseCase{
		profileRepo: profileRepo,
		gameRepo:    gameRepo,
		ratingRepo:  ratingRepo,
	}
}

// GameInput is one favorite game as submitted during onboarding, keyed
// by the external catalog id.
type GameInput struct {
	GameID   string   `json:"game_id" binding:"required"`
	Name     string   `json:"name" binding:"required"`
	CoverURL *string  `json:"cover_url"`
	Genres   []string `json:"genres"`
}

// UpsertRequest carries the full onboarding/edit payload. The profile
// is created on first submission and updated field-by-field afterwards.
type UpsertRequest struct {
	Username  string  `json:"username" binding:"required"`
	FullName  *string `json:"full_name"`
	Bio       *string `json:"bio"`
	BirthDate *string `json:"birth_date"` // YYYY-MM-DD
	Gender    *string `json:"gender"`

	AvatarURL *string  `json:"avatar_url"`
	Photos    []string `json:"photos"`

	City      *string  `json:"city"`
	State     *string  `json:"state"`
	CEP       *string  `json:"cep"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	DiscordHandle *string `json:"discord_handle"`
	PSNHandle     *string `json:"psn_handle"`
	XboxHandle    *string `json:"xbox_handle"`
	SteamHandle   *string `json:"steam_handle"`

	GameGenres   []string            `json:"game_genres"`
	Availability domain.Availability `json:"availability"`

	// Games, when present, replaces the stored favorite set.
	Games []GameInput `json:"games"`
}

// Upsert creates or updates the caller's profile and syncs the favorite
// games when supplied.
func (uc *UseCase) Upsert(ctx context.Context, userID string, req *UpsertRequest) (*domain.Profile, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if req.Username == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(req.Photos) > domain.MaxProfilePhotos {
		return nil, domain.ErrInvalidInput
	}
	// Coordinates are a pair: both present or both absent.
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, domain.ErrInvalidInput
	}

	var birthDate *time.Time
	if req.BirthDate != nil && *req.BirthDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		birthDate = &parsed
	}

	profile := &domain.Profile{
		ID:            userID,
		Username:      req.Username,
		FullName:      req.FullName,
		Bio:           req.Bio,
		BirthDate:     birthDate,
		Gender:        req.Gender,
		AvatarURL:     req.AvatarURL,
		Photos:        req.Photos,
		City:          req.City,
		State:         req.State,
		CEP:           req.CEP,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		DiscordHandle: req.DiscordHandle,
		PSNHandle:     req.PSNHandle,
		XboxHandle:    req.XboxHandle,
		SteamHandle:   req.SteamHandle,
		GameGenres:    req.GameGenres,
		Availability:  req.Availability,
	}

	if err := uc.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	if req.Games != nil {
		games := make([]*domain.FavoriteGame, 0, len(req.Games))
		for _, g := range req.Games {
			games = append(games, &domain.FavoriteGame{
				UserID:   userID,
				GameID:   g.GameID,
				Name:     g.Name,
				CoverURL: g.CoverURL,
				Genres:   g.Genres,
			})
		}
		if err := uc.gameRepo.Sync(ctx, userID, games); err != nil {
			return nil, fmt.Errorf("sync favorite games: %w", err)
		}
	}

	return profile, nil
}

func (uc *UseCase) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	return uc.profileRepo.GetByID(ctx, userID)
}

// Detail is the full profile view: descriptive fields, favorite games
// and the rating aggregate (nil when unrated).
type Detail struct {
	Profile  *domain.Profile        `json:"profile"`
	Games    []*domain.FavoriteGame `json:"games"`
	Averages *domain.RatingAverages `json:"averages,omitempty"`
}

func (uc *UseCase) GetDetail(ctx context.Context, userID string) (*Detail, error) {
	profile, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	games, err := uc.gameRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list favorite games: %v", domain.ErrFetchFailed, err)
	}
	averages, err := uc.ratingRepo.GetAverages(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: rating averages: %v", domain.ErrFetchFailed, err)
	}
	return &Detail{Profile: profile, Games: games, Averages: averages}, nil
}
