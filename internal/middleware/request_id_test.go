package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"TechTalks/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	u := utils.New()

	tests := []struct {
		name     string
		header   string
		wantKept bool
	}{
		{name: "missing header", header: ""},
		{name: "caller id kept", header: "trace-42.abc", wantKept: true},
		{name: "id with spaces", header: "trace 42"},
		{name: "non-ascii id", header: "tracé-42"},
		{name: "id too long", header: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "id at length limit", header: strings.Repeat("a", maxRequestIDLength), wantKept: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var local interface{}
			app := fiber.New()
			app.Use(NewRequestIDMiddleware(u))
			app.Get("/", func(c *fiber.Ctx) error {
				local = c.Locals(RequestIDKey)
				return c.SendStatus(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDKey, tt.header)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)

			got := resp.Header.Get(RequestIDKey)
			assert.Equal(t, got, local)
			if tt.wantKept {
				assert.Equal(t, tt.header, got)
			} else {
				assert.True(t, u.IsULID(got), "expected a minted ULID, got %q", got)
			}
		})
	}
}
