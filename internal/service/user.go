package service

import (
	"context"
	"errors"

	"gamerack/backend/internal/models"
	"gamerack/backend/internal/repository"

	"gorm.io/gorm"
)

// UserService enforces the invariants the store does not guarantee for users:
// email uniqueness on insert and review cleanup on delete.
type UserService struct {
	db      *gorm.DB
	users   *repository.UserRepository
	reviews *repository.ReviewRepository
}

// NewUserService creates a new user service.
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		db:      db,
		users:   repository.NewUserRepository(db),
		reviews: repository.NewReviewRepository(db),
	}
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

// Get returns the user with the given id.
func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

// Create inserts a user after checking that the email is unused. The check
// and the insert share one transaction; the unique index on email backstops
// concurrent inserts that race past the check.
func (s *UserService) Create(ctx context.Context, name, email string) (*models.User, error) {
	user := &models.User{Name: name, Email: email}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)
		_, err := users.FindByEmail(ctx, email)
		if err == nil {
			return ErrEmailAlreadyExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user and every review that references it, dependents
// first so no reader can observe a dangling review. The whole cascade is one
// transaction; it returns the pre-delete snapshot.
func (s *UserService) Delete(ctx context.Context, id uint) (*models.User, error) {
	var snapshot *models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)

		user, err := users.FindByID(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}

		if err := s.reviews.WithTx(tx).DeleteByUserID(ctx, id); err != nil {
			return err
		}
		if err := users.DeleteByID(ctx, id); err != nil {
			return err
		}

		snapshot = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}
