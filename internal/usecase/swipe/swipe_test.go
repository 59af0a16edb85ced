package swipe

import (
	"context"
	"errors"
	"testing"

	"github.com/squadup-app/squadup-backend/internal/domain"
	"github.com/squadup-app/squadup-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	lines []string
	err   error
	calls int
}

func (g *stubGenerator) Icebreakers(_ context.Context, _, _ []string) ([]string, error) {
	g.calls++
	return g.lines, g.err
}

func seedProfile(t *testing.T, store *memory.Store, id string) {
	t.Helper()
	require.NoError(t, store.Profiles().Upsert(context.Background(), &domain.Profile{
		ID:       id,
		Username: id,
	}))
}

func newTestUseCase(store *memory.Store, generator IcebreakerGenerator) *UseCase {
	return NewUseCase(store.Swipes(), store.Profiles(), store.Games(), generator, nil)
}

func TestRecordSwipeRequiresAuth(t *testing.T) {
	uc := newTestUseCase(memory.NewStore(), nil)
	_, err := uc.RecordSwipe(context.Background(), "", "them", true)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestRecordSwipeRejectsSelf(t *testing.T) {
	uc := newTestUseCase(memory.NewStore(), nil)
	_, err := uc.RecordSwipe(context.Background(), "me", "me", true)
	assert.ErrorIs(t, err, domain.ErrCannotSwipeSelf)
}

func TestRecordSwipeUnknownTarget(t *testing.T) {
	store := memory.NewStore()
	seedProfile(t, store, "me")

	_, err := newTestUseCase(store, nil).RecordSwipe(context.Background(), "me", "ghost", true)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestRecordSwipeLikeWithoutReciprocity(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedProfile(t, store, "me")
	seedProfile(t, store, "them")

	result, err := newTestUseCase(store, nil).RecordSwipe(ctx, "me", "them", true)
	require.NoError(t, err)

	assert.False(t, result.Matched)
	assert.Nil(t, result.MatchedProfile)
}

func TestRecordSwipeMutualLikeMatches(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedProfile(t, store, "me")
	seedProfile(t, store, "them")

	generator := &stubGenerator{lines: []string{"hey, squad up?"}}
	uc := newTestUseCase(store, generator)

	_, err := uc.RecordSwipe(ctx, "them", "me", true)
	require.NoError(t, err)

	result, err := uc.RecordSwipe(ctx, "me", "them", true)
	require.NoError(t, err)

	assert.True(t, result.Matched)
	require.NotNil(t, result.MatchedProfile)
	assert.Equal(t, "them", result.MatchedProfile.ID)
	assert.Equal(t, []string{"hey, squad up?"}, result.Icebreakers)
	assert.Equal(t, 1, generator.calls)
}

func TestRecordSwipeIcebreakerFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedProfile(t, store, "me")
	seedProfile(t, store, "them")

	generator := &stubGenerator{err: errors.New("quota exceeded")}
	uc := newTestUseCase(store, generator)

	_, err := uc.RecordSwipe(ctx, "them", "me", true)
	require.NoError(t, err)

	result, err := uc.RecordSwipe(ctx, "me", "them", true)
	require.NoError(t, err)

	assert.True(t, result.Matched)
	assert.Empty(t, result.Icebreakers)
}

func TestRecordSwipeDislikeNeverMatches(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedProfile(t, store, "me")
	seedProfile(t, store, "them")

	uc := newTestUseCase(store, nil)

	_, err := uc.RecordSwipe(ctx, "them", "me", true)
	require.NoError(t, err)

	result, err := uc.RecordSwipe(ctx, "me", "them", false)
	require.NoError(t, err)
	assert.False(t, result.Matched)
}

func TestRecordSwipeDuplicateRejected(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedProfile(t, store, "me")
	seedProfile(t, store, "them")

	uc := newTestUseCase(store, nil)

	_, err := uc.RecordSwipe(ctx, "me", "them", true)
	require.NoError(t, err)

	_, err = uc.RecordSwipe(ctx, "me", "them", false)
	assert.ErrorIs(t, err, domain.ErrSwipeAlreadyExists)
}

func TestListMatches(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedProfile(t, store, "me")
	seedProfile(t, store, "mutual")
	seedProfile(t, store, "one-way")
	seedProfile(t, store, "admirer")

	uc := newTestUseCase(store, nil)

	// Mutual pair.
	_, err := uc.RecordSwipe(ctx, "me", "mutual", true)
	require.NoError(t, err)
	_, err = uc.RecordSwipe(ctx, "mutual", "me", true)
	require.NoError(t, err)

	// I liked them, no response.
	_, err = uc.RecordSwipe(ctx, "me", "one-way", true)
	require.NoError(t, err)

	// They liked me, I have not swiped.
	_, err = uc.RecordSwipe(ctx, "admirer", "me", true)
	require.NoError(t, err)

	matches, err := uc.ListMatches(ctx, "me")
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, "mutual", matches[0].ID)
}

func TestListMatchesEmpty(t *testing.T) {
	store := memory.NewStore()
	seedProfile(t, store, "me")

	matches, err := newTestUseCase(store, nil).ListMatches(context.Background(), "me")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestListLikesReceived(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedProfile(t, store, "me")
	seedProfile(t, store, "pending")
	seedProfile(t, store, "answered")

	uc := newTestUseCase(store, nil)

	_, err := uc.RecordSwipe(ctx, "pending", "me", true)
	require.NoError(t, err)
	_, err = uc.RecordSwipe(ctx, "answered", "me", true)
	require.NoError(t, err)

	// Swiping back removes the like from the pending list.
	_, err = uc.RecordSwipe(ctx, "me", "answered", false)
	require.NoError(t, err)

	likes, err := uc.ListLikesReceived(ctx, "me", 0, 0)
	require.NoError(t, err)

	require.Len(t, likes, 1)
	assert.Equal(t, "pending", likes[0].Profile.ID)
	assert.NotEmpty(t, likes[0].CreatedAt)
}

func TestListLikesReceivedStoreFailure(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedProfile(t, store, "me")
	seedProfile(t, store, "liker")

	uc := newTestUseCase(store, nil)

	_, err := uc.RecordSwipe(ctx, "liker", "me", true)
	require.NoError(t, err)

	// A failing profile fetch must surface as a fetch error, not an
	// empty list.
	store.FailProfileGet["liker"] = errors.New("connection reset")

	_, err = uc.ListLikesReceived(ctx, "me", 0, 0)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestListLikesReceivedSkipsDeletedProfiles(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedProfile(t, store, "me")
	seedProfile(t, store, "liker")

	uc := newTestUseCase(store, nil)

	_, err := uc.RecordSwipe(ctx, "liker", "me", true)
	require.NoError(t, err)

	// A like from a since-deleted profile is dropped silently.
	require.NoError(t, store.Swipes().Create(ctx, &domain.Swipe{
		SwiperID: "ghost", SwipedID: "me", IsLike: true,
	}))

	likes, err := uc.ListLikesReceived(ctx, "me", 0, 0)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, "liker", likes[0].Profile.ID)
}
