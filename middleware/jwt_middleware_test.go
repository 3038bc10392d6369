package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailspark/config"
	"mailspark/models"
	"mailspark/utils"
)

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/private", Protected(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestProtectedRequiresCredentials(t *testing.T) {
	app := newProtectedApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/private", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// A refresh token presented as a Bearer credential must be refused before
// any identity lookup happens.
func TestProtectedRejectsRefreshTokenAsBearer(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	_, refresh, err := utils.GenerateJWTToken(&models.User{
		ID: "2f1f9be1-3c44-4b1f-9a89-8a2f3a5b6c7d",
	})
	require.NoError(t, err)

	app := newProtectedApp()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
