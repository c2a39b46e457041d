package handlers

import (
	stderrors "errors"
	"net/http"

	"movies-api/internal/dto"
	"movies-api/internal/errors"
	"movies-api/internal/models"
	"movies-api/internal/services"

	"github.com/labstack/echo/v4"
)

// MovieHandler handles movie catalog HTTP requests
type MovieHandler struct {
	queryService services.MovieQueryServiceInterface
}

// NewMovieHandler creates a new movie handler
func NewMovieHandler(queryService services.MovieQueryServiceInterface) *MovieHandler {
	return &MovieHandler{
		queryService: queryService,
	}
}

// ListMovies returns the whole catalog
// @Summary List movies
// @Tags Movies
// @Produce json
// @Success 200 {array} models.Movie
// @Failure 503 {object} errors.ErrorResponse "CATALOG_001 - Catalog not loaded"
// @Router /movies [get]
func (h *MovieHandler) ListMovies(c echo.Context) error {
	movies, err := h.queryService.GetMovies(c.Request().Context())
	if err != nil {
		if stderrors.Is(err, models.ErrCatalogUnavailable) {
			return SendError(c, errors.CatalogUnavailable)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, movies)
}

// GetMovie returns one movie by id
// @Summary Get movie
// @Tags Movies
// @Produce json
// @Param id path string true "Movie id"
// @Success 200 {object} models.Movie
// @Failure 404 {object} dto.MovieNotFoundResponse
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovie(c echo.Context) error {
	var req dto.GetMovieRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.MovieInvalidID, errors.WithDetails("Invalid movie id"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	lookup := h.queryService.GetMovie(c.Request().Context(), req.ID)
	if !lookup.Found {
		return c.JSON(http.StatusNotFound, dto.MovieNotFoundResponse{
			Detail: errors.GetErrorMessage(errors.MovieNotFound),
		})
	}

	return c.JSON(http.StatusOK, lookup.Movie)
}

// GetMoviesByCategory returns the movies whose category contains the given text
// @Summary Movies by category
// @Description Case-insensitive substring match on the category field. An empty category returns every movie.
// @Tags Movies
// @Produce json
// @Param category query string false "Category text"
// @Success 200 {array} models.Movie
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request parameters"
// @Router /movies/by_category/ [get]
func (h *MovieHandler) GetMoviesByCategory(c echo.Context) error {
	var req dto.MoviesByCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	movies := h.queryService.GetMoviesByCategory(c.Request().Context(), req.Category)
	return c.JSON(http.StatusOK, movies)
}

// Chatbot runs a free-text search with synonym expansion
// @Summary Chatbot search
// @Tags Movies
// @Produce json
// @Param query query string false "Free-text query"
// @Success 200 {object} dto.ChatbotResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request parameters"
// @Router /chatbot [get]
func (h *MovieHandler) Chatbot(c echo.Context) error {
	var req dto.ChatbotRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	result := h.queryService.Chatbot(c.Request().Context(), req.Query)
	return c.JSON(http.StatusOK, dto.NewChatbotResponse(result))
}
