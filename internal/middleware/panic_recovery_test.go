package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"movies-api/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// PanicRecoveryTestSuite defines the test suite for panic recovery middleware
type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
	s.echo.Use(RequestID())
	s.echo.Use(PanicRecovery())
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) serve(req *http.Request) (*httptest.ResponseRecorder, errors.ErrorResponse) {
	rec := httptest.NewRecorder()
	s.NotPanics(func() {
		s.echo.ServeHTTP(rec, req)
	})

	var errorResponse errors.ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &errorResponse)
	return rec, errorResponse
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_RecoverFromPanic() {
	s.echo.GET("/boom", func(c echo.Context) error {
		panic("test panic")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(TraceIDHeader, "test-trace-id")
	rec, errorResponse := s.serve(req)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", errorResponse.Error.Code)
	s.Equal("test-trace-id", errorResponse.Error.TraceID)
	s.NotContains(rec.Body.String(), "test panic")
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_ReturnsWrappedError() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	err := PanicRecovery()(func(c echo.Context) error {
		panic("test panic")
	})(c)

	s.ErrorIs(err, ErrPanicRecovered)
	s.Contains(err.Error(), "test panic")
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_NormalFlow() {
	s.echo.GET("/ok", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	rec, _ := s.serve(httptest.NewRequest(http.MethodGet, "/ok", nil))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_DifferentPanicTypes() {
	testCases := []struct {
		name      string
		path      string
		panicWith interface{}
	}{
		{"String panic", "/string", "string panic"},
		{"Int panic", "/int", 42},
		{"Struct panic", "/struct", struct{ msg string }{"error"}},
		{"Nil panic", "/nil", nil},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.echo.GET(tc.path, func(c echo.Context) error {
				panic(tc.panicWith)
			})

			rec, errorResponse := s.serve(httptest.NewRequest(http.MethodGet, tc.path, nil))

			s.Equal(http.StatusInternalServerError, rec.Code)
			s.Equal("SYSTEM_001", errorResponse.Error.Code)
			s.NotEmpty(errorResponse.Error.TraceID)
		})
	}
}
