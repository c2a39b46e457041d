package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// HomeHandlerSuite is the test suite for the welcome page
type HomeHandlerSuite struct {
	suite.Suite
	handler *HomeHandler
	e       *echo.Echo
}

func (s *HomeHandlerSuite) SetupTest() {
	s.handler = NewHomeHandler()
	s.e = echo.New()
}

func TestHomeHandler(t *testing.T) {
	suite.Run(t, new(HomeHandlerSuite))
}

func (s *HomeHandlerSuite) TestHome() {
	s.Run("serves the welcome page", func() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)

		s.NoError(s.handler.Home(c))

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Header().Get("Content-Type"), "text/html")
		s.Equal("<h1>Bienvenido a la API de películas</h1>", rec.Body.String())
		s.NotEmpty(rec.Header().Get("ETag"))
	})

	s.Run("returns 304 when ETag matches", func() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("If-None-Match", s.handler.etag)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)

		s.NoError(s.handler.Home(c))

		s.Equal(http.StatusNotModified, rec.Code)
		s.Empty(rec.Body.String())
	})
}
