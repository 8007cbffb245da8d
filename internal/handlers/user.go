package handlers

import (
	"errors"

	"paywave/internal/middleware"
	"paywave/internal/models"
	"paywave/internal/services/user"
	"paywave/internal/services/wallet"
	"paywave/internal/utils/response"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler exposes provisioning and wallet lookup endpoints.
type UserHandler struct {
	users   user.Service
	wallets wallet.Service
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users user.Service, wallets wallet.Service) *UserHandler {
	return &UserHandler{users: users, wallets: wallets}
}

// Create handles POST /users: idempotent provision-or-fetch for the
// authenticated identity.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var input models.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	u, created, err := h.users.EnsureUser(c.Context(), middleware.AuthUID(c), input)
	if err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			return response.BadRequest(c, "invalid profile: name, phone and email are required")
		}
		return response.DomainError(c, err)
	}

	if !created {
		return response.Success(c, fiber.Map{"message": "User already exists", "user": u})
	}
	return response.Created(c, fiber.Map{"message": "User created successfully", "user": u})
}

// Wallet handles GET /wallet: the caller's balance view.
func (h *UserHandler) Wallet(c *fiber.Ctx) error {
	caller, err := h.users.GetByAuthUID(c.Context(), middleware.AuthUID(c))
	if err != nil {
		return response.DomainError(c, err)
	}

	w, err := h.wallets.GetWallet(c.Context(), caller.ID)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, fiber.Map{"wallet": w})
}
