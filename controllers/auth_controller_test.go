package controller

import (
	"bytes"
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mailspark/config"
	"mailspark/models"
	"mailspark/utils"
)

// refusingConnector fails every connection attempt, standing in for a store
// that is down.
type refusingConnector struct{}

func (refusingConnector) Connect(context.Context) (driver.Conn, error) {
	return nil, errors.New("connection refused")
}

func (refusingConnector) Driver() driver.Driver { return nil }

func newUnreachableDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sql.OpenDB(refusingConnector{}),
	}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)
	return db
}

func withUnreachableDB(t *testing.T) {
	t.Helper()
	orig := config.DB
	config.DB = newUnreachableDB(t)
	t.Cleanup(func() { config.DB = orig })
}

// A token that could never be stored must not be handed out: the failed
// insert has to fail the auth response.
func TestStoreRefreshTokenSurfacesInsertFailure(t *testing.T) {
	withUnreachableDB(t)

	user := &models.User{ID: uuid.NewString()}
	err := storeRefreshToken(user, "refresh-token", "test-agent", "127.0.0.1")
	assert.Error(t, err)
}

func TestLogoutSurfacesRevocationFailure(t *testing.T) {
	withUnreachableDB(t)

	current := &models.User{ID: uuid.NewString()}
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", current)
		return c.Next()
	})
	app.Post("/auth/logout", Logout)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/auth/logout", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

// An access token is not accepted on the refresh endpoint even though both
// token kinds share a claims shape.
func TestRefreshRejectsAccessToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	access, _, err := utils.GenerateJWTToken(&models.User{ID: uuid.NewString()})
	require.NoError(t, err)

	app := fiber.New()
	app.Post("/auth/refresh", RefreshToken)

	body, err := json.Marshal(fiber.Map{"refresh_token": access})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
