package discovery

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/squadup-app/squadup-backend/internal/domain"
	"github.com/squadup-app/squadup-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func birthDate(age int) *time.Time {
	d := time.Now().AddDate(-age, 0, -1)
	return &d
}

func seedProfile(t *testing.T, store *memory.Store, id string, age int) *domain.Profile {
	t.Helper()
	p := &domain.Profile{
		ID:        id,
		Username:  id,
		BirthDate: birthDate(age),
	}
	require.NoError(t, store.Profiles().Upsert(context.Background(), p))
	return p
}

func seedRating(t *testing.T, store *memory.Store, raterID, ratedID string, score int) {
	t.Helper()
	require.NoError(t, store.Ratings().Create(context.Background(), &domain.Rating{
		RaterID:       raterID,
		RatedID:       ratedID,
		Respect:       score,
		Communication: score,
		Humor:         score,
		Collaboration: score,
	}))
}

func newTestUseCase(store *memory.Store) *UseCase {
	return NewUseCase(store.Profiles(), store.Swipes(), store.Ratings(), store.Games())
}

func TestGetCandidatesRequiresAuth(t *testing.T) {
	uc := newTestUseCase(memory.NewStore())

	_, err := uc.GetCandidates(context.Background(), "", domain.DefaultFilterSpec(), 10)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestGetCandidatesExcludesSelfAndSwiped(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedProfile(t, store, "me", 25)
	seedProfile(t, store, "already-swiped", 25)
	seedProfile(t, store, "fresh", 25)

	require.NoError(t, store.Swipes().Create(ctx, &domain.Swipe{
		SwiperID: "me", SwipedID: "already-swiped", IsLike: false,
	}))

	result, err := newTestUseCase(store).GetCandidates(ctx, "me", domain.DefaultFilterSpec(), 10)
	require.NoError(t, err)

	require.Len(t, result.Candidates, 1)
	assert.Equal(t, "fresh", result.Candidates[0].ID)
	assert.False(t, result.UsedFallback)
}

func TestGetCandidatesRatingThresholds(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedProfile(t, store, "me", 25)
	seedProfile(t, store, "well-rated", 25)
	seedProfile(t, store, "unrated", 25)

	// Two raters put well-rated at a flat 4.
	seedRating(t, store, "r1", "well-rated", 4)
	seedRating(t, store, "r2", "well-rated", 4)

	spec := domain.DefaultFilterSpec()
	spec.MinRespect = 4

	result, err := newTestUseCase(store).GetCandidates(ctx, "me", spec, 10)
	require.NoError(t, err)

	// Unrated profiles never satisfy a raised threshold.
	require.Len(t, result.Candidates, 1)
	assert.Equal(t, "well-rated", result.Candidates[0].ID)
	assert.False(t, result.UsedFallback)
}

func TestGetCandidatesFallbackResetsFilters(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedProfile(t, store, "me", 25)
	seedProfile(t, store, "unrated-1", 25)
	seedProfile(t, store, "unrated-2", 25)

	spec := domain.DefaultFilterSpec()
	spec.MinHumor = 5

	result, err := newTestUseCase(store).GetCandidates(ctx, "me", spec, 10)
	require.NoError(t, err)

	assert.True(t, result.UsedFallback)
	assert.Len(t, result.Candidates, 2)
}

func TestGetCandidatesNoFallbackWithoutRaisedThresholds(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedProfile(t, store, "me", 25)
	other := seedProfile(t, store, "other", 25)
	other.Gender = strPtr("male")
	require.NoError(t, store.Profiles().Upsert(ctx, other))

	spec := domain.DefaultFilterSpec()
	spec.Gender = strPtr("female")

	result, err := newTestUseCase(store).GetCandidates(ctx, "me", spec, 10)
	require.NoError(t, err)

	// Non-rating filters that match nobody stay empty; no fallback.
	assert.Empty(t, result.Candidates)
	assert.False(t, result.UsedFallback)
}

func TestGetCandidatesGenderAndAge(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedProfile(t, store, "me", 25)

	young := seedProfile(t, store, "young", 19)
	young.Gender = strPtr("female")
	require.NoError(t, store.Profiles().Upsert(ctx, young))

	older := seedProfile(t, store, "older", 40)
	older.Gender = strPtr("female")
	require.NoError(t, store.Profiles().Upsert(ctx, older))

	male := seedProfile(t, store, "male", 25)
	male.Gender = strPtr("male")
	require.NoError(t, store.Profiles().Upsert(ctx, male))

	spec := domain.DefaultFilterSpec()
	spec.Gender = strPtr("female")
	spec.MinAge = 18
	spec.MaxAge = 30

	result, err := newTestUseCase(store).GetCandidates(ctx, "me", spec, 10)
	require.NoError(t, err)

	require.Len(t, result.Candidates, 1)
	assert.Equal(t, "young", result.Candidates[0].ID)
}

func TestGetCandidatesUnknownAgeOnlyPassesDefaultRange(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedProfile(t, store, "me", 25)

	noBirthDate := &domain.Profile{ID: "ageless", Username: "ageless"}
	require.NoError(t, store.Profiles().Upsert(ctx, noBirthDate))

	uc := newTestUseCase(store)

	result, err := uc.GetCandidates(ctx, "me", domain.DefaultFilterSpec(), 10)
	require.NoError(t, err)
	assert.Len(t, result.Candidates, 1)

	spec := domain.DefaultFilterSpec()
	spec.MaxAge = 30
	result, err = uc.GetCandidates(ctx, "me", spec, 10)
	require.NoError(t, err)
	assert.Empty(t, result.Candidates)
}

func TestGetCandidatesSameLocationAndPlatform(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	me := seedProfile(t, store, "me", 25)
	me.City, me.State = strPtr("Campinas"), strPtr("SP")
	me.SteamHandle = strPtr("me-steam")
	require.NoError(t, store.Profiles().Upsert(ctx, me))

	local := seedProfile(t, store, "local", 25)
	local.City, local.State = strPtr("Campinas"), strPtr("SP")
	local.SteamHandle = strPtr("local-steam")
	require.NoError(t, store.Profiles().Upsert(ctx, local))

	remote := seedProfile(t, store, "remote", 25)
	remote.City, remote.State = strPtr("Manaus"), strPtr("AM")
	remote.DiscordHandle = strPtr("remote#1")
	require.NoError(t, store.Profiles().Upsert(ctx, remote))

	spec := domain.DefaultFilterSpec()
	spec.SameLocation = true
	spec.SamePlatform = true

	result, err := newTestUseCase(store).GetCandidates(ctx, "me", spec, 10)
	require.NoError(t, err)

	require.Len(t, result.Candidates, 1)
	assert.Equal(t, "local", result.Candidates[0].ID)
}

func TestGetCandidatesCommonGames(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedProfile(t, store, "me", 25)
	seedProfile(t, store, "shares", 25)
	seedProfile(t, store, "disjoint", 25)

	require.NoError(t, store.Games().Sync(ctx, "me", []*domain.FavoriteGame{
		{GameID: "g1", Name: "Game One"},
		{GameID: "g2", Name: "Game Two"},
	}))
	require.NoError(t, store.Games().Sync(ctx, "shares", []*domain.FavoriteGame{
		{GameID: "g2", Name: "Game Two"},
	}))
	require.NoError(t, store.Games().Sync(ctx, "disjoint", []*domain.FavoriteGame{
		{GameID: "g3", Name: "Game Three"},
	}))

	spec := domain.DefaultFilterSpec()
	spec.CommonGames = true

	result, err := newTestUseCase(store).GetCandidates(ctx, "me", spec, 10)
	require.NoError(t, err)

	require.Len(t, result.Candidates, 1)
	assert.Equal(t, "shares", result.Candidates[0].ID)
}

func TestGetCandidatesDistanceCap(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	me := seedProfile(t, store, "me", 25)
	me.Latitude, me.Longitude = f64Ptr(-23.5505), f64Ptr(-46.6333) // São Paulo
	require.NoError(t, store.Profiles().Upsert(ctx, me))

	near := seedProfile(t, store, "near", 25)
	near.Latitude, near.Longitude = f64Ptr(-23.55), f64Ptr(-46.64)
	require.NoError(t, store.Profiles().Upsert(ctx, near))

	far := seedProfile(t, store, "far", 25)
	far.Latitude, far.Longitude = f64Ptr(-22.9068), f64Ptr(-43.1729) // Rio
	require.NoError(t, store.Profiles().Upsert(ctx, far))

	seedProfile(t, store, "nowhere", 25) // no coordinates

	spec := domain.DefaultFilterSpec()
	spec.MaxDistanceKm = f64Ptr(50)

	result, err := newTestUseCase(store).GetCandidates(ctx, "me", spec, 10)
	require.NoError(t, err)

	require.Len(t, result.Candidates, 1)
	assert.Equal(t, "near", result.Candidates[0].ID)
	require.NotNil(t, result.Candidates[0].DistanceKm)
	assert.Less(t, *result.Candidates[0].DistanceKm, 50.0)
}

func TestGetCandidatesAnnotatesDistance(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	me := seedProfile(t, store, "me", 25)
	me.Latitude, me.Longitude = f64Ptr(-23.5505), f64Ptr(-46.6333)
	require.NoError(t, store.Profiles().Upsert(ctx, me))

	rio := seedProfile(t, store, "rio", 25)
	rio.Latitude, rio.Longitude = f64Ptr(-22.9068), f64Ptr(-43.1729)
	require.NoError(t, store.Profiles().Upsert(ctx, rio))

	seedProfile(t, store, "nowhere", 25)

	result, err := newTestUseCase(store).GetCandidates(ctx, "me", domain.DefaultFilterSpec(), 10)
	require.NoError(t, err)
	require.Len(t, result.Candidates, 2)

	for _, c := range result.Candidates {
		switch c.ID {
		case "rio":
			require.NotNil(t, c.DistanceKm)
			assert.InDelta(t, 360, *c.DistanceKm, 5)
		case "nowhere":
			assert.Nil(t, c.DistanceKm)
		}
	}
}

func TestGetCandidatesLimit(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedProfile(t, store, "me", 25)
	for i := 0; i < 15; i++ {
		seedProfile(t, store, fmt.Sprintf("candidate-%02d", i), 25)
	}

	uc := newTestUseCase(store)

	result, err := uc.GetCandidates(ctx, "me", domain.DefaultFilterSpec(), 5)
	require.NoError(t, err)
	assert.Len(t, result.Candidates, 5)

	// Zero falls back to the default page size.
	result, err = uc.GetCandidates(ctx, "me", domain.DefaultFilterSpec(), 0)
	require.NoError(t, err)
	assert.Len(t, result.Candidates, DefaultLimit)
}

func TestGetCandidatesScansPastFirstBatch(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedProfile(t, store, "me", 25)

	// The only eligible candidate sits well beyond one store page.
	for i := 0; i < 150; i++ {
		p := seedProfile(t, store, fmt.Sprintf("candidate-%03d", i), 25)
		if i == 120 {
			p.Gender = strPtr("female")
			require.NoError(t, store.Profiles().Upsert(ctx, p))
		}
	}

	spec := domain.DefaultFilterSpec()
	spec.Gender = strPtr("female")

	result, err := newTestUseCase(store).GetCandidates(ctx, "me", spec, 10)
	require.NoError(t, err)

	require.Len(t, result.Candidates, 1)
	assert.Equal(t, "candidate-120", result.Candidates[0].ID)
	assert.False(t, result.UsedFallback)
}

func TestGetCandidatesFillsPageAcrossBatches(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedProfile(t, store, "me", 25)

	// Eligible profiles are spread across several store pages.
	for i := 0; i < 250; i++ {
		p := seedProfile(t, store, fmt.Sprintf("candidate-%03d", i), 25)
		if i%40 == 0 {
			p.Gender = strPtr("female")
			require.NoError(t, store.Profiles().Upsert(ctx, p))
		}
	}

	spec := domain.DefaultFilterSpec()
	spec.Gender = strPtr("female")

	result, err := newTestUseCase(store).GetCandidates(ctx, "me", spec, 5)
	require.NoError(t, err)
	assert.Len(t, result.Candidates, 5)
}

func TestGetCandidatesStoreFailure(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedProfile(t, store, "me", 25)
	store.FailProfileList = errors.New("connection refused")

	_, err := newTestUseCase(store).GetCandidates(ctx, "me", domain.DefaultFilterSpec(), 10)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}
