package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"campus-trade-api/handler"
	"campus-trade-api/middleware"
)

type ConfigRoute struct {
	*fiber.App
	*middleware.Middleware
	*handler.AuthHandler
	*handler.UserHandler
	*handler.ListingHandler
	*handler.ConversationHandler
	*handler.ReviewHandler
	*handler.FavoriteHandler
}

func (rc *ConfigRoute) GetRoute() {
	rc.GetPublicRoute()
	rc.GetProtectedRoute()
}

func (rc *ConfigRoute) GetPublicRoute() {
	app := rc.App.Group("/api/v1")
	app.Post("/auth/register", rc.AuthHandler.RegisterUser)
	app.Post("/auth/verify", rc.AuthHandler.VerifySignup)
	app.Post("/auth/resend-code", rc.AuthHandler.ResendSignupCode)
	app.Post("/auth/login", rc.AuthHandler.LoginUser)
	app.Post("/auth/forgot-password", rc.AuthHandler.ForgotPassword)
	app.Post("/auth/reset-password", rc.AuthHandler.ResetPassword)

	app.Get("/listings", rc.ListingHandler.BrowseListings)
	app.Get("/listings/slug/:slug", rc.ListingHandler.GetListingBySlug)
	app.Get("/listings/:listingId", rc.ListingHandler.GetListing)

	app.Get("/users/:userId/reviews", rc.ReviewHandler.GetReviewsForUser)
}

func (rc *ConfigRoute) GetProtectedRoute() {
	app := rc.App.Group("/api/v1")
	app.Use(rc.Middleware.JWTProtected)

	app.Get("/auth/me", rc.UserHandler.GetUserByToken)

	app.Get("/users", rc.UserHandler.GetAllUsers)
	app.Get("/users/:userId", rc.UserHandler.GetUserByID)

	identified := app.Group("", rc.Middleware.ExtractUserID)

	identified.Put("/profile", rc.UserHandler.EditProfile)

	identified.Post("/listings", rc.ListingHandler.CreateListing)
	identified.Get("/my-listings", rc.ListingHandler.GetMyListings)
	identified.Put("/listings/:listingId", rc.ListingHandler.UpdateListing)
	identified.Patch("/listings/:listingId/status", rc.ListingHandler.ChangeStatus)
	identified.Delete("/listings/:listingId", rc.ListingHandler.DeleteListing)

	identified.Get("/favorites", rc.FavoriteHandler.GetFavorites)
	identified.Post("/favorites/:listingId", rc.FavoriteHandler.AddFavorite)
	identified.Delete("/favorites/:listingId", rc.FavoriteHandler.RemoveFavorite)

	identified.Get("/conversations", rc.ConversationHandler.GetDirectory)
	identified.Post("/conversations", rc.ConversationHandler.StartConversation)
	identified.Get("/conversations/:conversationId/messages", rc.ConversationHandler.GetMessages)
	identified.Patch("/conversations/:conversationId/read", rc.ConversationHandler.MarkMessagesAsRead)

	identified.Post("/reviews", rc.ReviewHandler.CreateReview)
	identified.Get("/my-reviews", rc.ReviewHandler.GetMyReviews)
}

func (rc *ConfigRoute) GetWebSocketRoute(wsHandler *handler.WebSocketHandler) {
	rc.App.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	rc.App.Get("/ws", rc.Middleware.WebSocketAuth, websocket.New(wsHandler.HandleWebSocket))
}
