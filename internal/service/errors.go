package service

import "errors"

// Centralized service layer errors. Resolvers branch on these with errors.Is
// to choose the error code surfaced to the caller.

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrGameNotFound   = errors.New("game not found")
	ErrReviewNotFound = errors.New("review not found")

	ErrEmailAlreadyExists = errors.New("a user with this email already exists")
	ErrGameNameExists     = errors.New("a game with this name already exists")

	// A review resolving to a missing parent means a cascade was bypassed or
	// the store was mutated out of band. Kept distinct from the plain
	// not-found errors so it can be logged as an integrity violation.
	ErrReviewUserMissing = errors.New("review references a missing user")
	ErrReviewGameMissing = errors.New("review references a missing game")
)
