package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"relay/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(c))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	assert.Len(t, string(raw), 36)
	assert.Equal(t, string(raw), resp.Header.Get(fiber.HeaderXRequestID))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(fiber.HeaderXRequestID, "client-id")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	raw, _ = io.ReadAll(resp.Body)
	assert.Equal(t, "client-id", string(raw))
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		expose     bool
		handler    fiber.Handler
		path       string
		wantStatus int
		wantError  string
		wantDetail string
	}{
		{
			name:       "plain error hidden",
			handler:    func(c *fiber.Ctx) error { return errors.New("db exploded") },
			path:       "/boom",
			wantStatus: fiber.StatusInternalServerError,
			wantError:  "Internal Server Error",
		},
		{
			name:       "plain error exposed in development",
			expose:     true,
			handler:    func(c *fiber.Ctx) error { return errors.New("db exploded") },
			path:       "/boom",
			wantStatus: fiber.StatusInternalServerError,
			wantError:  "Internal Server Error",
			wantDetail: "db exploded",
		},
		{
			name:       "panic recovered",
			handler:    func(c *fiber.Ctx) error { panic("nil map") },
			path:       "/boom",
			wantStatus: fiber.StatusInternalServerError,
			wantError:  "Internal Server Error",
		},
		{
			name:       "unknown route keeps 404",
			handler:    func(c *fiber.Ctx) error { return nil },
			path:       "/missing",
			wantStatus: fiber.StatusNotFound,
			wantError:  "Cannot GET /missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(response.NewFormatter(tt.expose))})
			app.Use(recover.New())
			app.Get("/boom", tt.handler)

			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body := decode(t, resp.Body)
			assert.Equal(t, tt.wantError, body["error"])
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, body["message"])
			} else {
				assert.NotContains(t, body, "message")
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	app := fiber.New()
	app.Use(RateLimit(2, time.Minute, nil))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	body := decode(t, resp.Body)
	assert.Equal(t, false, body["success"])
}
