package repository

import (
	"context"

	"gamerack/backend/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository handles review rows.
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository.
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle.
func (r *ReviewRepository) WithTx(tx *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: tx}
}

// FindAll returns every review.
func (r *ReviewRepository) FindAll(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindByID returns the review with the given id, or gorm.ErrRecordNotFound.
func (r *ReviewRepository) FindByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// FindByGameID returns all reviews for the given game.
func (r *ReviewRepository) FindByGameID(ctx context.Context, gameID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).Where("game_id = ?", gameID).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindByUserID returns all reviews written by the given user.
func (r *ReviewRepository) FindByUserID(ctx context.Context, userID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Create inserts the review and populates its generated id.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// DeleteByID removes the review row.
func (r *ReviewRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Review{}, id).Error
}

// DeleteByGameID removes every review referencing the given game.
func (r *ReviewRepository) DeleteByGameID(ctx context.Context, gameID uint) error {
	return r.db.WithContext(ctx).Where("game_id = ?", gameID).Delete(&models.Review{}).Error
}

// DeleteByUserID removes every review written by the given user.
func (r *ReviewRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Review{}).Error
}
