package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/vetlink/vetlink-api/internal/usecase"
	"github.com/vetlink/vetlink-api/internal/util"
)

// fail writes err with the status code of its usecase sentinel. message is
// used for unexpected errors only.
func fail(c *fiber.Ctx, err error, message string) error {
	code := fiber.StatusInternalServerError
	var formErr *util.FormError

	switch {
	case errors.As(err, &formErr):
		code, message = fiber.StatusBadRequest, formErr.Message
	case errors.Is(err, usecase.ErrNotFound):
		code, message = fiber.StatusNotFound, "resource not found"
	case errors.Is(err, usecase.ErrConflict):
		code, message = fiber.StatusConflict, "resource already exists"
	case errors.Is(err, usecase.ErrUnauthorized):
		code, message = fiber.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, usecase.ErrForbidden):
		code, message = fiber.StatusForbidden, "you do not have access to this resource"
	case errors.Is(err, usecase.ErrInvalidTransition):
		code, message = fiber.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, usecase.ErrJobClosed):
		code, message = fiber.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, usecase.ErrProviderUnavailable):
		code, message = fiber.StatusServiceUnavailable, err.Error()
	}

	return util.ErrorResponse(c, util.ErrorResponseFormat{Code: code, Message: message}, err)
}

func badRequest(c *fiber.Ctx, message string, err error) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusBadRequest,
		Message: message,
	}, err)
}

// paramID parses a uuid route parameter.
func paramID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, util.NewFormError("invalid id", map[string]string{name: "must be a valid id"})
	}
	return id, nil
}
