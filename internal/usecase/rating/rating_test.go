package rating

import (
	"context"
	"testing"

	"github.com/squadup-app/squadup-backend/internal/domain"
	"github.com/squadup-app/squadup-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitRequest(ratedID string, score int) *SubmitRequest {
	return &SubmitRequest{
		RatedUserID:   ratedID,
		Respect:       score,
		Communication: score,
		Humor:         score,
		Collaboration: score,
	}
}

func TestSubmitRequiresAuth(t *testing.T) {
	uc := NewUseCase(memory.NewStore().Ratings())
	_, err := uc.Submit(context.Background(), "", submitRequest("them", 3))
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestSubmitRejectsSelf(t *testing.T) {
	uc := NewUseCase(memory.NewStore().Ratings())
	_, err := uc.Submit(context.Background(), "me", submitRequest("me", 3))
	assert.ErrorIs(t, err, domain.ErrCannotRateSelf)
}

func TestSubmitValidatesRange(t *testing.T) {
	uc := NewUseCase(memory.NewStore().Ratings())

	req := submitRequest("them", 3)
	req.Humor = 6
	_, err := uc.Submit(context.Background(), "me", req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = submitRequest("them", 3)
	req.Respect = 0
	_, err = uc.Submit(context.Background(), "me", req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmitOncePerPair(t *testing.T) {
	ctx := context.Background()
	uc := NewUseCase(memory.NewStore().Ratings())

	_, err := uc.Submit(ctx, "me", submitRequest("them", 4))
	require.NoError(t, err)

	_, err = uc.Submit(ctx, "me", submitRequest("them", 2))
	assert.ErrorIs(t, err, domain.ErrRatingAlreadyExists)

	// The reverse direction is a distinct pair.
	_, err = uc.Submit(ctx, "them", submitRequest("me", 5))
	assert.NoError(t, err)
}

func TestAveragesForUnratedUser(t *testing.T) {
	uc := NewUseCase(memory.NewStore().Ratings())

	averages, err := uc.AveragesFor(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, averages)
}

func TestAveragesAcrossRaters(t *testing.T) {
	ctx := context.Background()
	uc := NewUseCase(memory.NewStore().Ratings())

	_, err := uc.Submit(ctx, "r1", &SubmitRequest{
		RatedUserID: "them", Respect: 3, Communication: 5, Humor: 3, Collaboration: 5,
	})
	require.NoError(t, err)
	_, err = uc.Submit(ctx, "r2", &SubmitRequest{
		RatedUserID: "them", Respect: 5, Communication: 3, Humor: 5, Collaboration: 3,
	})
	require.NoError(t, err)

	averages, err := uc.AveragesFor(ctx, "them")
	require.NoError(t, err)
	require.NotNil(t, averages)

	assert.Equal(t, 2, averages.RatingCount)
	assert.InDelta(t, 4.0, averages.AvgRespect, 1e-9)
	assert.InDelta(t, 4.0, averages.AvgCommunication, 1e-9)
	assert.InDelta(t, 4.0, averages.AvgHumor, 1e-9)
	assert.InDelta(t, 4.0, averages.AvgCollaboration, 1e-9)
	assert.InDelta(t, 4.0, averages.Overall(), 1e-9)
}
