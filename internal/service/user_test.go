package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateAssignsID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.users.Create(ctx, "Ada", "ada@example.com")
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	got, err := f.users.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.users.Create(ctx, "Ada", "ada@example.com")
	require.NoError(t, err)

	_, err = f.users.Create(ctx, "Imposter", "ada@example.com")
	require.ErrorIs(t, err, ErrEmailAlreadyExists)

	// The first user must remain retrievable and unchanged.
	got, err := f.users.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, "ada@example.com", got.Email)

	all, err := f.users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUserGetNotFound(t *testing.T) {
	f := newFixture(t)

	user, err := f.users.Get(context.Background(), 9999)
	require.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, user)
}

func TestUserDeleteNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.Delete(context.Background(), 9999)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserDeleteCascadesReviews(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ada := f.mustUser(t, "Ada", "ada@example.com")
	bob := f.mustUser(t, "Bob", "bob@example.com")
	game := f.mustGame(t, "Chess")

	f.mustReview(t, game.ID, ada.ID)
	f.mustReview(t, game.ID, ada.ID)
	kept := f.mustReview(t, game.ID, bob.ID)

	snapshot, err := f.users.Delete(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, ada, snapshot)

	// No review by the deleted user may remain.
	orphans, err := f.reviews.ListForUser(ctx, ada.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans)

	// Reviews by other users are untouched.
	remaining, err := f.reviews.ListForGame(ctx, game.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].ID)

	_, err = f.users.Get(ctx, ada.ID)
	require.ErrorIs(t, err, ErrUserNotFound)
}
