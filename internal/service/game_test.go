package service

import (
	"context"
	"testing"

	"gamerack/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameCreateRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	game, err := f.games.Create(ctx, "Chess", "Classic", 0, models.Platforms{"PC", "Switch"})
	require.NoError(t, err)
	require.NotZero(t, game.ID)

	got, err := f.games.Get(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chess", got.Name)
	assert.Equal(t, "Classic", got.Description)
	assert.Equal(t, 0, got.Price)
	assert.Equal(t, models.Platforms{"PC", "Switch"}, got.Platform)
}

func TestGameCreateDuplicateName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.games.Create(ctx, "Chess", "Classic", 0, models.Platforms{"PC"})
	require.NoError(t, err)

	_, err = f.games.Create(ctx, "Chess", "Impostor", 99, models.Platforms{"Mobile"})
	require.ErrorIs(t, err, ErrGameNameExists)

	all, err := f.games.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGameGetNotFound(t *testing.T) {
	f := newFixture(t)

	game, err := f.games.Get(context.Background(), 9999)
	require.ErrorIs(t, err, ErrGameNotFound)
	assert.Nil(t, game)
}

func TestGameUpdatePartial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	game, err := f.games.Create(ctx, "Chess", "Classic", 0, models.Platforms{"PC"})
	require.NoError(t, err)

	price := 10
	updated, err := f.games.Update(ctx, game.ID, models.GameUpdate{Price: &price})
	require.NoError(t, err)

	// Only price changed; every other field is untouched.
	assert.Equal(t, 10, updated.Price)
	assert.Equal(t, "Chess", updated.Name)
	assert.Equal(t, "Classic", updated.Description)
	assert.Equal(t, models.Platforms{"PC"}, updated.Platform)

	got, err := f.games.Get(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestGameUpdateAllFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	game := f.mustGame(t, "Chess")

	name := "Chess II"
	description := "Revised"
	price := 25
	platform := models.Platforms{"PC", "Mobile"}
	updated, err := f.games.Update(ctx, game.ID, models.GameUpdate{
		Name:        &name,
		Description: &description,
		Price:       &price,
		Platform:    &platform,
	})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, description, updated.Description)
	assert.Equal(t, price, updated.Price)
	assert.Equal(t, platform, updated.Platform)
}

func TestGameUpdateNotFound(t *testing.T) {
	f := newFixture(t)

	price := 10
	_, err := f.games.Update(context.Background(), 9999, models.GameUpdate{Price: &price})
	require.ErrorIs(t, err, ErrGameNotFound)
}

func TestGameUpdateRenameConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.mustGame(t, "Chess")
	checkers := f.mustGame(t, "Checkers")

	name := "Chess"
	_, err := f.games.Update(ctx, checkers.ID, models.GameUpdate{Name: &name})
	require.ErrorIs(t, err, ErrGameNameExists)
}

func TestGameUpdateKeepOwnName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	game := f.mustGame(t, "Chess")

	// Writing the current name back is not a conflict.
	name := "Chess"
	price := 5
	updated, err := f.games.Update(ctx, game.ID, models.GameUpdate{Name: &name, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Chess", updated.Name)
	assert.Equal(t, 5, updated.Price)
}

func TestGameDeleteCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ada := f.mustUser(t, "Ada", "ada@example.com")
	chess, err := f.games.Create(ctx, "Chess", "Classic", 0, models.Platforms{"PC"})
	require.NoError(t, err)

	review, err := f.reviews.Create(ctx, 5, "Great", chess.ID, ada.ID)
	require.NoError(t, err)

	snapshot, err := f.games.Delete(ctx, chess.ID)
	require.NoError(t, err)
	assert.Equal(t, chess, snapshot)

	_, err = f.reviews.Get(ctx, review.ID)
	require.ErrorIs(t, err, ErrReviewNotFound)

	orphans, err := f.reviews.ListForGame(ctx, chess.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans)

	// The reviewer is untouched by the cascade.
	_, err = f.users.Get(ctx, ada.ID)
	require.NoError(t, err)
}

func TestGameDeleteNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.games.Delete(context.Background(), 9999)
	require.ErrorIs(t, err, ErrGameNotFound)
}
