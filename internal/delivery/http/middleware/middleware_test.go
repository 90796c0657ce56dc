package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"staff-match/internal/pkg/apperr"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestBearerTokenFromHeader(t *testing.T) {
	cases := map[string]struct {
		in    string
		token string
		ok    bool
	}{
		"empty":       {"", "", false},
		"no scheme":   {"abc", "", false},
		"basic":       {"Basic abc", "", false},
		"bearer":      {"Bearer abc", "abc", true},
		"lower":       {"bearer  abc ", "abc", true},
		"blank token": {"Bearer   ", "", false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			tok, ok := bearerTokenFromHeader(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.token, tok)
		})
	}
}

func TestErrorMiddleware_RecoversPanic(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	app := fiber.New()
	app.Use(NewErrorMiddleware(zap.New(core)).Middleware())
	app.Get("/boom", func(c fiber.Ctx) error { panic("boom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestErrorMiddleware_DomainErrorsAre500(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	app := fiber.New()
	app.Use(NewErrorMiddleware(zap.New(core)).Middleware())
	app.Get("/missing", func(c fiber.Ctx) error { return apperr.NotFound("Job not found", nil) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(b, &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Job not found", body["error"])

	entries := logs.FilterMessage("request failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, string(apperr.TypeNotFound), entries[0].ContextMap()["type"])
}

func TestErrorMiddleware_UnknownRouteKeepsStatus(t *testing.T) {
	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAccessLog_SetsRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app := fiber.New()
	app.Use(NewAccessLogMiddleware(zap.New(core)).Middleware())
	app.Get("/", func(c fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	rid := resp.Header.Get(HeaderRequestID)
	assert.NotEmpty(t, rid)

	entries := logs.FilterMessage("http access").All()
	require.Len(t, entries, 1)
	assert.Equal(t, rid, entries[0].ContextMap()["rid"])
	assert.EqualValues(t, 200, entries[0].ContextMap()["status"])

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "given-id")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "given-id", resp.Header.Get(HeaderRequestID))
}
