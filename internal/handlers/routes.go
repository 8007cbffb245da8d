// Package handlers wires HTTP routes to the service layer.
package handlers

import (
	"paywave/internal/middleware"
	"paywave/internal/services/identity"

	"github.com/gofiber/fiber/v2"
)

// Routes groups the handlers the router registers.
type Routes struct {
	Transfer *TransferHandler
	User     *UserHandler
	Health   *HealthHandler
	Verifier identity.Service
}

// Setup registers all application routes.
func (r *Routes) Setup(app *fiber.App) {
	app.Get("/health", r.Health.Check)

	auth := middleware.Auth(r.Verifier)

	app.Post("/users", auth, r.User.Create)
	app.Get("/wallet", auth, r.User.Wallet)

	app.Post("/transfers", auth, r.Transfer.Create)
	app.Get("/transfers", auth, r.Transfer.List)
}
