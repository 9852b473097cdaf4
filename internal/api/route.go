package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/markethub/offers/internal/api/middleware"
	v1 "github.com/markethub/offers/internal/api/v1"
	"github.com/markethub/offers/internal/model"
	"github.com/markethub/offers/pkg/token"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler, tokens *token.Maker) {
	app.Get("/ping", handler.Pong)

	auth := middleware.RequireAuth(tokens)
	admin := middleware.RequireRole(string(model.RoleAdmin))
	company := middleware.RequireRole(string(model.RoleCompany))
	user := middleware.RequireRole(string(model.RoleUser))

	api := app.Group("/api/v1")

	api.Post("/auth/register", handler.Register)
	api.Post("/auth/login", handler.Login)

	api.Get("/accounts/me", auth, handler.Me)
	api.Post("/accounts/balance", auth, user, handler.TopUp)
	api.Post("/accounts/photo", auth, company, handler.UploadPhoto)
	api.Post("/accounts/:id/activate", auth, admin, handler.ActivateCompany)

	api.Post("/categories", auth, admin, handler.CreateCategory)
	api.Get("/categories", handler.ListCategories)

	api.Post("/offers", auth, company, handler.CreateOffer)
	api.Get("/offers", handler.GetOffersByCategories)
	api.Get("/offers/mine", auth, company, handler.GetMyOffers)
	api.Get("/offers/mine/:id", auth, company, handler.GetMyOffer)
	api.Delete("/offers/:id", auth, company, handler.DeleteOffer)

	api.Post("/transactions", auth, user, handler.CreatePurchase)
	api.Get("/transactions/mine", auth, user, handler.GetMyTransactions)
	api.Get("/transactions/mine/:id", auth, user, handler.GetMyTransaction)
	api.Delete("/transactions/:id", auth, user, handler.RefundTransaction)
}
