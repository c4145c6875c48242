package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-trade-api/config/common"
	"campus-trade-api/entity"
	"campus-trade-api/security"
)

func newTestMiddleware(secret string) (*Middleware, *security.JWT) {
	v := viper.New()
	v.Set("JWT_SECRET", secret)
	config := &common.Config{Viper: v}
	jwt := security.NewJWT(config)

	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewMiddleware(config, jwt, log), jwt
}

func newFeedApp(m *Middleware) *fiber.App {
	app := fiber.New()
	app.Get("/feed", m.WebSocketAuth, func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user_id").(string))
	})
	return app
}

func TestWebSocketAuthDerivesIdentityFromToken(t *testing.T) {
	m, jwt := newTestMiddleware("test-secret-key")
	app := newFeedApp(m)

	token, err := jwt.GenerateToken(&entity.User{BaseEntity: entity.BaseEntity{ID: "user-7"}})
	require.NoError(t, err)

	// Token as a query parameter, the browser dial path.
	response, err := app.Test(httptest.NewRequest("GET", "/feed?token="+token, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)
	body, _ := io.ReadAll(response.Body)
	assert.Equal(t, "user-7", string(body), "identity comes from the token, not the client")

	// Token as a bearer header.
	request := httptest.NewRequest("GET", "/feed", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	response, err = app.Test(request)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)
}

func TestWebSocketAuthRejectsMissingOrInvalidToken(t *testing.T) {
	m, _ := newTestMiddleware("test-secret-key")
	app := newFeedApp(m)

	response, err := app.Test(httptest.NewRequest("GET", "/feed", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, response.StatusCode)

	response, err = app.Test(httptest.NewRequest("GET", "/feed?token=not-a-jwt", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, response.StatusCode)

	// A token signed with another secret cannot impersonate anyone.
	_, otherJWT := newTestMiddleware("another-secret")
	forged, err := otherJWT.GenerateToken(&entity.User{BaseEntity: entity.BaseEntity{ID: "user-7"}})
	require.NoError(t, err)
	response, err = app.Test(httptest.NewRequest("GET", "/feed?token="+forged, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, response.StatusCode)
}

func TestExtractUserIDRequiresBearerHeader(t *testing.T) {
	m, _ := newTestMiddleware("test-secret-key")
	app := fiber.New()
	app.Get("/me", m.ExtractUserID, func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user_id").(string))
	})

	response, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, response.StatusCode)
}
