package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"campus-trade-api/config/common"
	"campus-trade-api/dto/res"
	"campus-trade-api/security"
)

type Middleware struct {
	*common.Config
	*security.JWT
	Log *logrus.Logger
}

func NewMiddleware(config *common.Config, jwt *security.JWT, logger *logrus.Logger) *Middleware {
	return &Middleware{Config: config, JWT: jwt, Log: logger}
}

func (middleware *Middleware) JWTProtected(c *fiber.Ctx) error {
	secretKey := middleware.GetJwtConfig()

	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: secretKey},
		ContextKey: "jwt",
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			middleware.Log.WithError(err).Error("Failed to validate JWT")
			return c.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
				Status:     fiber.ErrUnauthorized.Message,
				StatusCode: fiber.StatusUnauthorized,
				Error:      "Token is not valid",
			})
		},
	})(c)
}

// ExtractUserID resolves the caller's identity from the bearer token once, at
// the boundary, and hands it to handlers via locals. Handlers never read ids
// from request payloads.
func (middleware *Middleware) ExtractUserID(c *fiber.Ctx) error {
	authorization := c.Get("Authorization")
	if len(authorization) < 8 {
		return c.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
			Status:     fiber.ErrUnauthorized.Message,
			StatusCode: fiber.StatusUnauthorized,
			Error:      "Authorization header is missing",
		})
	}

	token := authorization[7:]
	userID, err := middleware.JWT.GetUserIdFromToken(token)
	if err != nil {
		middleware.Log.WithError(err).Error("Failed to extract user ID from token")
		return c.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
			Status:     fiber.ErrUnauthorized.Message,
			StatusCode: fiber.StatusUnauthorized,
			Error:      "Failed to extract user ID from token",
		})
	}

	c.Locals("user_id", userID)
	return c.Next()
}

// WebSocketAuth authenticates the websocket upgrade. Browsers cannot attach
// headers to a websocket dial, so the token may arrive as a query parameter
// instead of a bearer header. The verified identity lands in locals; the feed
// handler never trusts a client-supplied sender id.
func (middleware *Middleware) WebSocketAuth(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		if authorization := c.Get("Authorization"); len(authorization) >= 8 {
			token = authorization[7:]
		}
	}
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
			Status:     fiber.ErrUnauthorized.Message,
			StatusCode: fiber.StatusUnauthorized,
			Error:      "Token is required",
		})
	}

	userID, err := middleware.JWT.GetUserIdFromToken(token)
	if err != nil {
		middleware.Log.WithError(err).Error("Failed to validate websocket token")
		return c.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
			Status:     fiber.ErrUnauthorized.Message,
			StatusCode: fiber.StatusUnauthorized,
			Error:      "Token is not valid",
		})
	}

	c.Locals("user_id", userID)
	return c.Next()
}
