package graph

import (
	"errors"
	"log"

	"gamerack/backend/internal/service"
)

// Error codes surfaced in the extensions map of a GraphQL error.
const (
	codeNotFound = "NOT_FOUND"
	codeConflict = "CONFLICT"
	codeInternal = "INTERNAL_SERVER_ERROR"
)

// queryError carries an extensions code alongside the message. The executor
// picks the code up through the Extensions method.
type queryError struct {
	code    string
	message string
}

func (e *queryError) Error() string { return e.message }

func (e *queryError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

// wrapErr maps service errors onto GraphQL error codes. A broken review
// reference is logged before being surfaced: it means a cascade was bypassed,
// not that the caller asked for a missing row.
func wrapErr(err error) error {
	switch {
	case errors.Is(err, service.ErrReviewUserMissing),
		errors.Is(err, service.ErrReviewGameMissing):
		log.Printf("integrity violation: %v", err)
		return &queryError{code: codeNotFound, message: err.Error()}
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrGameNotFound),
		errors.Is(err, service.ErrReviewNotFound):
		return &queryError{code: codeNotFound, message: err.Error()}
	case errors.Is(err, service.ErrEmailAlreadyExists),
		errors.Is(err, service.ErrGameNameExists):
		return &queryError{code: codeConflict, message: err.Error()}
	}
	log.Printf("resolver error: %v", err)
	return &queryError{code: codeInternal, message: "internal server error"}
}
