package serverutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedApp() *fiber.App {
	app := fiber.New()
	app.Get("/guarded", JwtMiddleware, func(ctx *fiber.Ctx) error {
		userId, _ := ctx.Locals("user_id").(string)
		return ctx.JSON(fiber.Map{"user_id": userId})
	})
	return app
}

func request(t *testing.T, app *fiber.App, authorization string) (*http.Response, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestJwtMiddlewareMissingToken(t *testing.T) {
	resp, body := request(t, newGuardedApp(), "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Authentication failed. Token missing.", body["message"])
}

func TestJwtMiddlewareWrongScheme(t *testing.T) {
	resp, body := request(t, newGuardedApp(), "Token abc")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Authentication failed. Invalid token format.", body["message"])
}

func TestJwtMiddlewareGarbageToken(t *testing.T) {
	resp, body := request(t, newGuardedApp(), "Bearer nonsense")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Authentication failed. Invalid token.", body["message"])
}

func TestJwtMiddlewareExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": "abc",
		"exp":     time.Now().Add(-time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(JwtSecret()))
	require.NoError(t, err)

	resp, body := request(t, newGuardedApp(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Authentication failed. Invalid token.", body["message"])
}

func TestJwtMiddlewareValidToken(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": "8f2e7a44-1111-2222-3333-444455556666",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(JwtSecret()))
	require.NoError(t, err)

	resp, body := request(t, newGuardedApp(), "Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "8f2e7a44-1111-2222-3333-444455556666", body["user_id"])
}
