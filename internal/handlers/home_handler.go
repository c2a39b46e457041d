package handlers

import (
	"crypto/md5"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

const welcomeHTML = "<h1>Bienvenido a la API de películas</h1>"

// HomeHandler serves the welcome page
type HomeHandler struct {
	html []byte
	etag string
}

// NewHomeHandler creates a new home handler
func NewHomeHandler() *HomeHandler {
	html := []byte(welcomeHTML)
	return &HomeHandler{
		html: html,
		etag: generateETag(html),
	}
}

// Home serves the welcome page
// @Summary Welcome page
// @Tags Home
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *HomeHandler) Home(c echo.Context) error {
	c.Response().Header().Set("ETag", h.etag)
	if match := c.Request().Header.Get("If-None-Match"); match != "" && match == h.etag {
		return c.NoContent(http.StatusNotModified)
	}

	return c.HTMLBlob(http.StatusOK, h.html)
}

func generateETag(content []byte) string {
	return fmt.Sprintf("\"%x\"", md5.Sum(content))
}
