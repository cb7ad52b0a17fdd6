package usecase

import (
	"errors"

	"github.com/vetlink/vetlink-api/internal/repository"
	"github.com/vetlink/vetlink-api/internal/util"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("already exists")
	ErrUnauthorized        = errors.New("invalid credentials")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrJobClosed           = errors.New("job posting is not accepting applications")
	ErrProviderUnavailable = errors.New("no language model provider configured")
)

// invalid builds a validation error for a single field.
func invalid(field, msg string) error {
	return util.NewFormError("validation failed", map[string]string{field: msg})
}

// fromRepository maps storage sentinels onto usecase errors.
func fromRepository(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrConflict
	default:
		return err
	}
}
