package service

import (
	"context"
	"errors"

	"gamerack/backend/internal/models"
	"gamerack/backend/internal/repository"

	"gorm.io/gorm"
)

// GameService enforces the invariants the store does not guarantee for games:
// name uniqueness on insert and rename, and review cleanup on delete.
type GameService struct {
	db      *gorm.DB
	games   *repository.GameRepository
	reviews *repository.ReviewRepository
}

// NewGameService creates a new game service.
func NewGameService(db *gorm.DB) *GameService {
	return &GameService{
		db:      db,
		games:   repository.NewGameRepository(db),
		reviews: repository.NewReviewRepository(db),
	}
}

// List returns all games.
func (s *GameService) List(ctx context.Context) ([]models.Game, error) {
	return s.games.FindAll(ctx)
}

// Get returns the game with the given id.
func (s *GameService) Get(ctx context.Context, id uint) (*models.Game, error) {
	game, err := s.games.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGameNotFound
	}
	return game, err
}

// Create inserts a game after checking that the name is unused. The check and
// the insert share one transaction, with the unique index as backstop.
func (s *GameService) Create(ctx context.Context, name, description string, price int, platform models.Platforms) (*models.Game, error) {
	game := &models.Game{
		Name:        name,
		Description: description,
		Price:       price,
		Platform:    platform,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		games := s.games.WithTx(tx)
		_, err := games.FindByName(ctx, name)
		if err == nil {
			return ErrGameNameExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return games.Create(ctx, game)
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

// Update applies only the fields present in the update and returns the row as
// persisted. A rename is checked against the name uniqueness invariant.
func (s *GameService) Update(ctx context.Context, id uint, update models.GameUpdate) (*models.Game, error) {
	var updated *models.Game
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		games := s.games.WithTx(tx)

		if _, err := games.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGameNotFound
			}
			return err
		}

		if update.Name != nil {
			other, err := games.FindByName(ctx, *update.Name)
			if err == nil && other.ID != id {
				return ErrGameNameExists
			}
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		game, err := games.Update(ctx, id, update)
		if err != nil {
			return err
		}
		updated = game
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the game and every review that references it, dependents
// first, in one transaction. It returns the pre-delete snapshot.
func (s *GameService) Delete(ctx context.Context, id uint) (*models.Game, error) {
	var snapshot *models.Game
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		games := s.games.WithTx(tx)

		game, err := games.FindByID(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGameNotFound
		}
		if err != nil {
			return err
		}

		if err := s.reviews.WithTx(tx).DeleteByGameID(ctx, id); err != nil {
			return err
		}
		if err := games.DeleteByID(ctx, id); err != nil {
			return err
		}

		snapshot = game
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}
