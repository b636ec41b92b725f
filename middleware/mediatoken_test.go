package middleware

import (
	"net/http/httptest"
	"testing"
	"zpbot/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mediaApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Get("/media/:file", MediaTokenMiddleware(cfg), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestMediaTokenRoundTrip(t *testing.T) {
	cfg := &config.Config{MediaTokenKey: "test-key", MediaTokenTTL: 1, BaseURL: "http://localhost:3000"}
	app := mediaApp(cfg)

	url, err := BuildMediaURL(cfg, "photo.png")
	require.NoError(t, err)
	assert.Contains(t, url, "/media/photo.png?token=")

	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestMediaTokenRejectsMissingToken(t *testing.T) {
	cfg := &config.Config{MediaTokenKey: "test-key", MediaTokenTTL: 1}
	app := mediaApp(cfg)

	resp, err := app.Test(httptest.NewRequest("GET", "/media/photo.png", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestMediaTokenRejectsWrongFile(t *testing.T) {
	cfg := &config.Config{MediaTokenKey: "test-key", MediaTokenTTL: 1}
	app := mediaApp(cfg)

	token, err := SignMediaToken(cfg, "other.png")
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/media/photo.png?token="+token, nil))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestMediaTokenRejectsBadSignature(t *testing.T) {
	cfg := &config.Config{MediaTokenKey: "test-key", MediaTokenTTL: 1}
	signed, err := SignMediaToken(&config.Config{MediaTokenKey: "other-key", MediaTokenTTL: 1}, "photo.png")
	require.NoError(t, err)

	app := mediaApp(cfg)
	resp, err := app.Test(httptest.NewRequest("GET", "/media/photo.png?token="+signed, nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}
