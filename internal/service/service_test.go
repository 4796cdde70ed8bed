package service

import (
	"context"
	"testing"

	"gamerack/backend/internal/models"
	"gamerack/backend/internal/testing/testdb"

	"gorm.io/gorm"
)

// fixture wires the three services over one isolated test database.
type fixture struct {
	db      *gorm.DB
	users   *UserService
	games   *GameService
	reviews *ReviewService
}

func newFixture(t *testing.T) *fixture {
	db := testdb.New(t)
	return &fixture{
		db:      db,
		users:   NewUserService(db),
		games:   NewGameService(db),
		reviews: NewReviewService(db),
	}
}

func (f *fixture) mustUser(t *testing.T, name, email string) *models.User {
	t.Helper()
	user, err := f.users.Create(context.Background(), name, email)
	if err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func (f *fixture) mustGame(t *testing.T, name string) *models.Game {
	t.Helper()
	game, err := f.games.Create(context.Background(), name, "a game", 10, models.Platforms{"PC"})
	if err != nil {
		t.Fatalf("create game %s: %v", name, err)
	}
	return game
}

func (f *fixture) mustReview(t *testing.T, gameID, userID uint) *models.Review {
	t.Helper()
	review, err := f.reviews.Create(context.Background(), 4, "solid", gameID, userID)
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	return review
}
