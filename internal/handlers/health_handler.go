package handlers

import (
	"net/http"
	"time"

	"movies-api/internal/dto"
	"movies-api/internal/errors"
	"movies-api/internal/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	catalog services.CatalogInterface
	source  string
	db      *gorm.DB
}

// NewHealthCheckHandler creates a new health check handler. db is nil when
// the catalog is not backed by a database.
func NewHealthCheckHandler(catalog services.CatalogInterface, source string, db *gorm.DB) *HealthCheckHandler {
	return &HealthCheckHandler{
		catalog: catalog,
		source:  source,
		db:      db,
	}
}

// HealthCheck reports catalog and database status
// @Summary Health check
// @Description Check catalog availability and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if !h.catalog.Available() {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Catalog not loaded"))
	}

	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request().Context())
		}
		if err != nil {
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
		}
	}

	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "healthy",
		Source:   h.source,
		Movies:   h.catalog.Len(),
		LoadedAt: h.catalog.LoadedAt().UTC(),
		Time:     time.Now().UTC().Format(time.RFC3339),
	})
}
