package handlers

import (
	"paywave/internal/middleware"
	"paywave/internal/services/transfer"
	"paywave/internal/services/user"
	"paywave/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// TransferHandler exposes the transfer endpoints.
type TransferHandler struct {
	transfers transfer.Service
	users     user.Service
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transfers transfer.Service, users user.Service) *TransferHandler {
	return &TransferHandler{transfers: transfers, users: users}
}

// TransferRequest is the POST /transfers body.
type TransferRequest struct {
	RecipientPhone string          `json:"recipientPhone"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
}

// Create handles POST /transfers.
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var req TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid transfer details")
	}

	payment, err := h.transfers.Transfer(
		c.Context(),
		middleware.AuthUID(c),
		req.RecipientPhone,
		req.Amount,
		req.Description,
	)
	if err != nil {
		return response.DomainError(c, err)
	}

	return response.Success(c, fiber.Map{
		"message": "Transfer completed successfully",
		"payment": payment.View(),
	})
}

// List handles GET /transfers.
func (h *TransferHandler) List(c *fiber.Ctx) error {
	caller, err := h.users.GetByAuthUID(c.Context(), middleware.AuthUID(c))
	if err != nil {
		return response.DomainError(c, err)
	}

	views, err := h.transfers.ListTransactions(c.Context(), caller.ID)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, views)
}
