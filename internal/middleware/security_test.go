package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func serveWithSecurityHeaders(t *testing.T, path string) http.Header {
	t.Helper()

	e := echo.New()
	e.Use(SecurityHeaders())
	e.GET(path, func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	return rec.Header()
}

func TestSecurityHeaders_Common(t *testing.T) {
	for _, path := range []string{"/", "/movies", "/chatbot"} {
		t.Run(path, func(t *testing.T) {
			headers := serveWithSecurityHeaders(t, path)

			assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
			assert.Equal(t, "DENY", headers.Get("X-Frame-Options"))
			assert.Equal(t, "1; mode=block", headers.Get("X-XSS-Protection"))
			assert.Equal(t, "max-age=31536000; includeSubDomains", headers.Get("Strict-Transport-Security"))
			assert.Equal(t, "default-src 'self'", headers.Get("Content-Security-Policy"))
			assert.Equal(t, "strict-origin-when-cross-origin", headers.Get("Referrer-Policy"))
			assert.Equal(t, "geolocation=(), microphone=(), camera=()", headers.Get("Permissions-Policy"))
		})
	}
}

func TestSecurityHeaders_CatalogResponsesAreNotCached(t *testing.T) {
	headers := serveWithSecurityHeaders(t, "/movies")

	assert.Equal(t, "no-store, no-cache, must-revalidate, private", headers.Get("Cache-Control"))
	assert.Equal(t, "no-cache", headers.Get("Pragma"))
	assert.Equal(t, "0", headers.Get("Expires"))
}

func TestSecurityHeaders_WelcomePageRevalidates(t *testing.T) {
	headers := serveWithSecurityHeaders(t, "/")

	assert.Equal(t, "no-cache", headers.Get("Cache-Control"))
	assert.Empty(t, headers.Get("Pragma"))
	assert.Empty(t, headers.Get("Expires"))
}
