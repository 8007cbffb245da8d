// Package response holds the JSON response helpers shared by handlers.
package response

import (
	"errors"

	domainerrors "paywave/internal/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Respond sends a JSON response with the specified status code.
func Respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// Success sends a successful JSON response.
func Success(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusOK, data)
}

// Created sends a 201 JSON response.
func Created(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusCreated, data)
}

// BadRequest sends a JSON error response with status 400.
func BadRequest(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusBadRequest, fiber.Map{"error": message})
}

// Unauthorized sends a JSON error response with status 401.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusUnauthorized, fiber.Map{"error": message})
}

// DomainError maps a service failure onto the HTTP taxonomy. Unknown
// errors are logged and surfaced as an opaque 500.
func DomainError(c *fiber.Ctx, err error) error {
	var de *domainerrors.DomainError
	if !errors.As(err, &de) {
		logrus.WithError(err).Error("unexpected error")
		return Respond(c, fiber.StatusInternalServerError, fiber.Map{"error": "internal server error"})
	}
	return Respond(c, statusForCode(de.Code), fiber.Map{
		"error": de.Message,
		"code":  de.Code,
	})
}

func statusForCode(code string) int {
	switch code {
	case domainerrors.ErrUnauthenticated.Code:
		return fiber.StatusUnauthorized
	case domainerrors.ErrInvalidAmount.Code,
		domainerrors.ErrSelfTransfer.Code,
		domainerrors.ErrInsufficientBalance.Code:
		return fiber.StatusBadRequest
	case domainerrors.ErrSenderNotFound.Code,
		domainerrors.ErrRecipientNotFound.Code,
		domainerrors.ErrWalletNotFound.Code:
		return fiber.StatusNotFound
	case domainerrors.ErrStoreUnavailable.Code:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
