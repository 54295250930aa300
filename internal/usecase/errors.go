package usecase

import (
	"errors"

	"github.com/fadilmartias/apostila-analyzer/internal/evaluation"
	"github.com/fadilmartias/apostila-analyzer/internal/model"
	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

// UserError carries a message that can be shown to the client as is.
type UserError struct {
	Kind    error
	Message string
}

func (e *UserError) Error() string {
	return e.Kind.Error() + ": " + e.Message
}

func (e *UserError) Unwrap() error {
	return e.Kind
}

func userErr(kind error, message string) error {
	return &UserError{Kind: kind, Message: message}
}

func invalid(message string) error {
	return userErr(evaluation.ErrValidation, message)
}

// Actor is the authenticated caller as seen by the usecases.
type Actor struct {
	ID   uuid.UUID
	Role string
}

func (a Actor) IsAdmin() bool {
	return a.Role == model.RoleAdmin
}
