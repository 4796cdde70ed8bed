package repository

import (
	"context"

	"gamerack/backend/internal/models"

	"gorm.io/gorm"
)

// GameRepository handles game rows.
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository.
func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle.
func (r *GameRepository) WithTx(tx *gorm.DB) *GameRepository {
	return &GameRepository{db: tx}
}

// FindAll returns every game.
func (r *GameRepository) FindAll(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	if err := r.db.WithContext(ctx).Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// FindByID returns the game with the given id, or gorm.ErrRecordNotFound.
func (r *GameRepository) FindByID(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game
	if err := r.db.WithContext(ctx).First(&game, id).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// FindByName returns the game with the given name, or gorm.ErrRecordNotFound.
func (r *GameRepository) FindByName(ctx context.Context, name string) (*models.Game, error) {
	var game models.Game
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// Create inserts the game and populates its generated id.
func (r *GameRepository) Create(ctx context.Context, game *models.Game) error {
	return r.db.WithContext(ctx).Create(game).Error
}

// Update applies the fields present in the update and returns the row as
// persisted. Fields absent from the update are not touched.
func (r *GameRepository) Update(ctx context.Context, id uint, update models.GameUpdate) (*models.Game, error) {
	changes := update.Changes()
	if len(changes) > 0 {
		res := r.db.WithContext(ctx).Model(&models.Game{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			return nil, res.Error
		}
	}
	return r.FindByID(ctx, id)
}

// DeleteByID removes the game row.
func (r *GameRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Game{}, id).Error
}
