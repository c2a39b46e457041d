package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"movies-api/internal/models"

	"github.com/stretchr/testify/suite"
)

type flakySource struct {
	calls  int
	err    error
	movies []models.Movie
}

func (f *flakySource) LoadMovies(ctx context.Context) ([]models.Movie, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.movies, nil
}

type CircuitBreakerTestSuite struct {
	suite.Suite
	clock   time.Time
	breaker *CircuitBreaker
}

func TestCircuitBreakerSuite(t *testing.T) {
	suite.Run(t, new(CircuitBreakerTestSuite))
}

func (s *CircuitBreakerTestSuite) SetupTest() {
	s.clock = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.breaker = NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:     2,
		ResetTimeout:    time.Minute,
		HalfOpenMaxSucc: 1,
	})
	s.breaker.now = func() time.Time { return s.clock }
}

func (s *CircuitBreakerTestSuite) TestOpensAfterMaxFailures() {
	s.True(s.breaker.Allow())

	s.breaker.RecordFailure()
	s.Equal(StateClosed, s.breaker.State())

	s.breaker.RecordFailure()
	s.Equal(StateOpen, s.breaker.State())
	s.False(s.breaker.Allow())
}

func (s *CircuitBreakerTestSuite) TestSuccessResetsFailureCount() {
	s.breaker.RecordFailure()
	s.breaker.RecordSuccess()
	s.breaker.RecordFailure()

	s.Equal(StateClosed, s.breaker.State())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenAfterTimeout() {
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()

	s.clock = s.clock.Add(2 * time.Minute)

	s.True(s.breaker.Allow())
	s.Equal(StateHalfOpen, s.breaker.State())

	s.breaker.RecordSuccess()
	s.Equal(StateClosed, s.breaker.State())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenFailureReopens() {
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()
	s.clock = s.clock.Add(2 * time.Minute)
	s.True(s.breaker.Allow())

	s.breaker.RecordFailure()

	s.Equal(StateOpen, s.breaker.State())
	s.False(s.breaker.Allow())
}

func (s *CircuitBreakerTestSuite) TestGuardedSource_ShortCircuitsWhenOpen() {
	source := &flakySource{err: errors.New("connection refused")}
	guarded := NewGuardedSource(source, s.breaker)

	for i := 0; i < 2; i++ {
		_, err := guarded.LoadMovies(context.Background())
		s.EqualError(err, "connection refused")
	}

	_, err := guarded.LoadMovies(context.Background())
	s.ErrorIs(err, ErrCircuitBreakerOpen)
	s.Equal(2, source.calls)
}

func (s *CircuitBreakerTestSuite) TestGuardedSource_RecoversAfterTimeout() {
	source := &flakySource{err: errors.New("connection refused")}
	guarded := NewGuardedSource(source, s.breaker)
	_, _ = guarded.LoadMovies(context.Background())
	_, _ = guarded.LoadMovies(context.Background())

	source.err = nil
	source.movies = fixtureMovies()
	s.clock = s.clock.Add(2 * time.Minute)

	movies, err := guarded.LoadMovies(context.Background())
	s.NoError(err)
	s.Len(movies, len(fixtureMovies()))
	s.Equal(StateClosed, s.breaker.State())
}

func (s *CircuitBreakerTestSuite) TestGuardedSource_CancellationIsNotAFailure() {
	source := &flakySource{err: context.Canceled}
	guarded := NewGuardedSource(source, s.breaker)

	for i := 0; i < 3; i++ {
		_, err := guarded.LoadMovies(context.Background())
		s.ErrorIs(err, context.Canceled)
	}

	s.Equal(StateClosed, s.breaker.State())
}

func (s *CircuitBreakerTestSuite) TestStateString() {
	s.Equal("closed", StateClosed.String())
	s.Equal("open", StateOpen.String())
	s.Equal("half_open", StateHalfOpen.String())
}
