package service

import (
	"context"
	"errors"

	"gamerack/backend/internal/models"
	"gamerack/backend/internal/repository"

	"gorm.io/gorm"
)

// ReviewService validates review references on insert and resolves them back
// to their parent rows.
type ReviewService struct {
	db      *gorm.DB
	users   *repository.UserRepository
	games   *repository.GameRepository
	reviews *repository.ReviewRepository
}

// NewReviewService creates a new review service.
func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{
		db:      db,
		users:   repository.NewUserRepository(db),
		games:   repository.NewGameRepository(db),
		reviews: repository.NewReviewRepository(db),
	}
}

// List returns all reviews.
func (s *ReviewService) List(ctx context.Context) ([]models.Review, error) {
	return s.reviews.FindAll(ctx)
}

// Get returns the review with the given id.
func (s *ReviewService) Get(ctx context.Context, id uint) (*models.Review, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReviewNotFound
	}
	return review, err
}

// ListForGame returns the reviews referencing the given game.
func (s *ReviewService) ListForGame(ctx context.Context, gameID uint) ([]models.Review, error) {
	return s.reviews.FindByGameID(ctx, gameID)
}

// ListForUser returns the reviews written by the given user.
func (s *ReviewService) ListForUser(ctx context.Context, userID uint) ([]models.Review, error) {
	return s.reviews.FindByUserID(ctx, userID)
}

// Create inserts a review after checking that both referenced rows exist.
// The checks and the insert share one transaction so a concurrent cascade
// delete cannot slip in between and leave the review orphaned.
func (s *ReviewService) Create(ctx context.Context, rating int, comment string, gameID, userID uint) (*models.Review, error) {
	review := &models.Review{
		Rating:  rating,
		Comment: comment,
		GameID:  gameID,
		UserID:  userID,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.games.WithTx(tx).FindByID(ctx, gameID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGameNotFound
			}
			return err
		}
		if _, err := s.users.WithTx(tx).FindByID(ctx, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		return s.reviews.WithTx(tx).Create(ctx, review)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

// Delete removes the review and returns the pre-delete snapshot.
func (s *ReviewService) Delete(ctx context.Context, id uint) (*models.Review, error) {
	var snapshot *models.Review
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reviews := s.reviews.WithTx(tx)

		review, err := reviews.FindByID(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		if err != nil {
			return err
		}

		if err := reviews.DeleteByID(ctx, id); err != nil {
			return err
		}

		snapshot = review
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// ResolveUser returns the review's author. A missing author is reported as an
// integrity violation, not an ordinary not-found: a completed cascade should
// make it impossible.
func (s *ReviewService) ResolveUser(ctx context.Context, review *models.Review) (*models.User, error) {
	user, err := s.users.FindByID(ctx, review.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReviewUserMissing
	}
	return user, err
}

// ResolveGame returns the review's game, symmetric to ResolveUser.
func (s *ReviewService) ResolveGame(ctx context.Context, review *models.Review) (*models.Game, error) {
	game, err := s.games.FindByID(ctx, review.GameID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReviewGameMissing
	}
	return game, err
}
