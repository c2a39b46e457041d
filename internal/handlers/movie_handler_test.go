package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movies-api/internal/dto"
	"movies-api/internal/errors"
	"movies-api/internal/models"
	"movies-api/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// MovieHandlerTestSuite is the test suite for MovieHandler
type MovieHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	queryService *service_mocks.MockMovieQueryServiceInterface
	handler      *MovieHandler
	e            *echo.Echo
}

func (s *MovieHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.queryService = service_mocks.NewMockMovieQueryServiceInterface(s.ctrl)
	s.handler = NewMovieHandler(s.queryService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
}

func (s *MovieHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMovieHandlerSuite(t *testing.T) {
	suite.Run(t, new(MovieHandlerTestSuite))
}

func (s *MovieHandlerTestSuite) newContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-abc")
	return c, rec
}

func catalogFixture() []models.Movie {
	return []models.Movie{
		{ID: "1", Title: "Laugh Riot", Year: 2019, Category: "Action, Comedy", Rating: "PG", Overview: "Chaos."},
		{ID: "2", Title: "Heavy Hearts", Year: 2021, Category: "Drama", Rating: "TV-MA", Overview: "Tears."},
	}
}

func (s *MovieHandlerTestSuite) TestListMovies_Success() {
	c, rec := s.newContext("/movies")
	s.queryService.EXPECT().GetMovies(gomock.Any()).Return(catalogFixture(), nil)

	err := s.handler.ListMovies(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var movies []map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &movies))
	s.Len(movies, 2)
	s.Equal("1", movies[0]["id"])
	s.Equal(float64(2019), movies[0]["year"])
	s.Equal("Action, Comedy", movies[0]["category"])
	s.Equal("Chaos.", movies[0]["overview"])
	s.NotContains(movies[0], "Ordinal")
}

func (s *MovieHandlerTestSuite) TestListMovies_CatalogUnavailable() {
	c, rec := s.newContext("/movies")
	s.queryService.EXPECT().GetMovies(gomock.Any()).Return(nil, models.ErrCatalogUnavailable)

	err := s.handler.ListMovies(c)

	s.NoError(err)
	s.Equal(http.StatusServiceUnavailable, rec.Code)

	var response errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(string(errors.CatalogUnavailable), response.Error.Code)
	s.Equal("No hay datos de películas disponibles", response.Error.Message)
	s.Equal("trace-abc", response.Error.TraceID)
}

func (s *MovieHandlerTestSuite) TestListMovies_UnexpectedError() {
	c, rec := s.newContext("/movies")
	s.queryService.EXPECT().GetMovies(gomock.Any()).Return(nil, stderrors.New("connection reset"))

	s.NoError(s.handler.ListMovies(c))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "connection reset")
}

func (s *MovieHandlerTestSuite) TestGetMovie_Found() {
	c, rec := s.newContext("/movies/2")
	c.SetPath("/movies/:id")
	c.SetParamNames("id")
	c.SetParamValues("2")
	s.queryService.EXPECT().GetMovie(gomock.Any(), "2").Return(models.FoundMovie(catalogFixture()[1]))

	err := s.handler.GetMovie(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var movie models.Movie
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &movie))
	s.Equal("2", movie.ID)
	s.Equal("Drama", movie.Category)
}

func (s *MovieHandlerTestSuite) TestGetMovie_NotFound() {
	c, rec := s.newContext("/movies/9")
	c.SetPath("/movies/:id")
	c.SetParamNames("id")
	c.SetParamValues("9")
	s.queryService.EXPECT().GetMovie(gomock.Any(), "9").Return(models.MovieNotFound())

	err := s.handler.GetMovie(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
	s.JSONEq(`{"detalle": "película no encontrada"}`, rec.Body.String())
}

func (s *MovieHandlerTestSuite) TestGetMovie_LongIDIsNotFound() {
	longID := strings.Repeat("x", 65)
	c, rec := s.newContext("/movies/x")
	c.SetPath("/movies/:id")
	c.SetParamNames("id")
	c.SetParamValues(longID)
	s.queryService.EXPECT().GetMovie(gomock.Any(), longID).Return(models.MovieNotFound())

	s.NoError(s.handler.GetMovie(c))

	s.Equal(http.StatusNotFound, rec.Code)
	s.JSONEq(`{"detalle": "película no encontrada"}`, rec.Body.String())
}

func (s *MovieHandlerTestSuite) TestGetMovie_EmptyIDIsRejected() {
	c, _ := s.newContext("/movies/")
	c.SetPath("/movies/:id")
	c.SetParamNames("id")
	c.SetParamValues("")

	err := s.handler.GetMovie(c)

	var validationErrs validator.ValidationErrors
	s.ErrorAs(err, &validationErrs)
	s.Equal("id", validationErrs[0].Field())
}

func (s *MovieHandlerTestSuite) TestGetMoviesByCategory_Success() {
	c, rec := s.newContext("/movies/by_category/?category=drama")
	s.queryService.EXPECT().GetMoviesByCategory(gomock.Any(), "drama").Return(catalogFixture()[1:])

	err := s.handler.GetMoviesByCategory(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var movies []models.Movie
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &movies))
	s.Len(movies, 1)
	s.Equal("2", movies[0].ID)
}

func (s *MovieHandlerTestSuite) TestGetMoviesByCategory_MissingCategoryMatchesAll() {
	c, rec := s.newContext("/movies/by_category/")
	s.queryService.EXPECT().GetMoviesByCategory(gomock.Any(), "").Return(catalogFixture())

	s.NoError(s.handler.GetMoviesByCategory(c))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *MovieHandlerTestSuite) TestGetMoviesByCategory_EmptyResultIsArray() {
	c, rec := s.newContext("/movies/by_category/?category=western")
	s.queryService.EXPECT().GetMoviesByCategory(gomock.Any(), "western").Return([]models.Movie{})

	s.NoError(s.handler.GetMoviesByCategory(c))

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())
}

func (s *MovieHandlerTestSuite) TestGetMoviesByCategory_LongCategoryIsSearched() {
	long := strings.Repeat("a", 201)
	c, rec := s.newContext("/movies/by_category/?category=" + long)
	s.queryService.EXPECT().GetMoviesByCategory(gomock.Any(), long).Return([]models.Movie{})

	s.NoError(s.handler.GetMoviesByCategory(c))

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())
}

func (s *MovieHandlerTestSuite) TestChatbot_ResultsFound() {
	c, rec := s.newContext("/chatbot?query=funny")
	s.queryService.EXPECT().Chatbot(gomock.Any(), "funny").Return(
		models.NewChatbotResult(models.QueryExpansion{Query: "funny"}, catalogFixture()[:1]),
	)

	err := s.handler.Chatbot(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ChatbotResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("Aquí tienes algunas películas relacionadas.", response.StatusMessage)
	s.Len(response.Results, 1)
	s.Equal("1", response.Results[0].ID)
}

func (s *MovieHandlerTestSuite) TestChatbot_NoResults() {
	c, rec := s.newContext("/chatbot?query=zzzznotaword")
	s.queryService.EXPECT().Chatbot(gomock.Any(), "zzzznotaword").Return(
		models.NewChatbotResult(models.QueryExpansion{Query: "zzzznotaword"}, nil),
	)

	s.NoError(s.handler.Chatbot(c))

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status_message": "No encontré películas en esa categoría", "results": []}`, rec.Body.String())
}

func (s *MovieHandlerTestSuite) TestChatbot_MissingQueryIsEmpty() {
	c, rec := s.newContext("/chatbot")
	s.queryService.EXPECT().Chatbot(gomock.Any(), "").Return(
		models.NewChatbotResult(models.QueryExpansion{}, nil),
	)

	s.NoError(s.handler.Chatbot(c))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *MovieHandlerTestSuite) TestChatbot_LongQueryIsSearched() {
	long := strings.Repeat("a", 201)
	c, rec := s.newContext("/chatbot?query=" + long)
	s.queryService.EXPECT().Chatbot(gomock.Any(), long).Return(
		models.NewChatbotResult(models.QueryExpansion{Query: long}, nil),
	)

	s.NoError(s.handler.Chatbot(c))

	s.Equal(http.StatusOK, rec.Code)
}
