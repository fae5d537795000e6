package auth_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"cdn-manager/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		apiKey     string
		path       string
		header     string
		wantStatus int
	}{
		{"Disabled when key empty", "", "/", "", fiber.StatusOK},
		{"Missing key", "secret", "/", "", fiber.StatusUnauthorized},
		{"Wrong key", "secret", "/", "nope", fiber.StatusUnauthorized},
		{"Header key", "secret", "/", "secret", fiber.StatusOK},
		{"Query key", "secret", "/?api_key=secret", "", fiber.StatusOK},
		{"Skipped path", "secret", "/swagger/index.html", "", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(auth.New(auth.Config{
				ApiKey: tt.apiKey,
				Next: func(c *fiber.Ctx) bool {
					return strings.HasPrefix(c.Path(), "/swagger")
				},
			}))
			app.Get("/*", func(c *fiber.Ctx) error {
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set(auth.Header, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
