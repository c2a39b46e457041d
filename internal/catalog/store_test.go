package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"movies-api/internal/models"
	"movies-api/internal/repositories/repository_mocks"
	"movies-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	source  *repository_mocks.MockMovieSourceInterface
	logger  *service_mocks.MockMovieLoggerInterface
	metrics *service_mocks.MockMetricsRecorderInterface
	store   *Store
	ctx     context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.source = repository_mocks.NewMockMovieSourceInterface(s.ctrl)
	s.logger = service_mocks.NewMockMovieLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.store = NewStore(s.source, "csv", s.logger, s.metrics)
	s.ctx = context.Background()

	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
}

func (s *StoreTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func fixtureMovies() []models.Movie {
	return []models.Movie{
		{Ordinal: 1, ID: "1", Title: "Laugh Riot", Category: "Action, Comedy"},
		{Ordinal: 2, ID: "2", Title: "Heavy Hearts", Category: "Drama"},
		{Ordinal: 3, ID: "2", Title: "Heavy Hearts Again", Category: "Drama"},
	}
}

func (s *StoreTestSuite) TestNewStore_IsUnavailable() {
	all, err := s.store.All()

	s.ErrorIs(err, ErrCatalogUnavailable)
	s.Nil(all)
	s.False(s.store.Available())
	s.Zero(s.store.Len())
	s.True(s.store.LoadedAt().IsZero())
	s.NotNil(s.store.Movies())
	s.Empty(s.store.Movies())

	_, found := s.store.FindByID("1")
	s.False(found)
}

func (s *StoreTestSuite) TestLoad_Success() {
	s.source.EXPECT().LoadMovies(s.ctx).Return(fixtureMovies(), nil)
	s.logger.EXPECT().LogCatalogLoaded(s.ctx, "csv", 3, gomock.Any())

	s.Require().NoError(s.store.Load(s.ctx))

	all, err := s.store.All()
	s.NoError(err)
	s.Len(all, 3)
	s.True(s.store.Available())
	s.Equal(3, s.store.Len())
	s.False(s.store.LoadedAt().IsZero())
	s.Equal("csv", s.store.SourceName())
}

func (s *StoreTestSuite) TestFindByID_FirstOccurrenceWins() {
	s.source.EXPECT().LoadMovies(s.ctx).Return(fixtureMovies(), nil)
	s.logger.EXPECT().LogCatalogLoaded(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	s.Require().NoError(s.store.Load(s.ctx))

	movie, found := s.store.FindByID("2")
	s.True(found)
	s.Equal("Heavy Hearts", movie.Title)

	_, found = s.store.FindByID("9")
	s.False(found)

	_, found = s.store.FindByID(" 2")
	s.False(found, "lookup is exact")
}

func (s *StoreTestSuite) TestLoad_FailureLeavesStoreUnavailable() {
	sourceErr := errors.New("disk on fire")
	s.source.EXPECT().LoadMovies(s.ctx).Return(nil, sourceErr)
	s.logger.EXPECT().LogCatalogLoadFailed(s.ctx, "csv", gomock.Any())

	err := s.store.Load(s.ctx)

	s.ErrorIs(err, sourceErr)
	s.False(s.store.Available())
}

func (s *StoreTestSuite) TestLoad_EmptySourceLeavesStoreUnavailable() {
	s.source.EXPECT().LoadMovies(s.ctx).Return([]models.Movie{}, nil)
	s.logger.EXPECT().LogCatalogLoadFailed(s.ctx, "csv", gomock.Any())

	err := s.store.Load(s.ctx)

	s.ErrorIs(err, ErrEmptyCatalog)
	_, err = s.store.All()
	s.ErrorIs(err, ErrCatalogUnavailable)
}

func (s *StoreTestSuite) TestReload_FailureKeepsPreviousSnapshot() {
	gomock.InOrder(
		s.source.EXPECT().LoadMovies(s.ctx).Return(fixtureMovies(), nil),
		s.source.EXPECT().LoadMovies(s.ctx).Return(nil, errors.New("truncated file")),
	)
	s.logger.EXPECT().LogCatalogLoaded(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	s.logger.EXPECT().LogCatalogLoadFailed(gomock.Any(), gomock.Any(), gomock.Any())

	s.Require().NoError(s.store.Load(s.ctx))
	loadedAt := s.store.LoadedAt()

	s.Error(s.store.Reload(s.ctx))

	s.Equal(3, s.store.Len())
	s.Equal(loadedAt, s.store.LoadedAt())
}

func (s *StoreTestSuite) TestReload_SwapsSnapshot() {
	first := fixtureMovies()
	second := []models.Movie{{Ordinal: 1, ID: "42", Category: "Horror Movies"}}

	gomock.InOrder(
		s.source.EXPECT().LoadMovies(s.ctx).Return(first, nil),
		s.source.EXPECT().LoadMovies(s.ctx).Return(second, nil),
	)
	s.logger.EXPECT().LogCatalogLoaded(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2)

	s.Require().NoError(s.store.Load(s.ctx))
	before, _ := s.store.All()

	s.Require().NoError(s.store.Reload(s.ctx))

	after, _ := s.store.All()
	s.Len(before, 3, "readers holding the old snapshot are unaffected")
	s.Equal([]models.Movie{{Ordinal: 1, ID: "42", Category: "Horror Movies"}}, after)

	_, found := s.store.FindByID("1")
	s.False(found)
}

func (s *StoreTestSuite) TestConcurrentReadsDuringReload() {
	s.source.EXPECT().LoadMovies(gomock.Any()).Return(fixtureMovies(), nil).AnyTimes()
	s.logger.EXPECT().LogCatalogLoaded(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.Require().NoError(s.store.Load(s.ctx))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, found := s.store.FindByID("1")
				s.True(found)
				s.Len(s.store.Movies(), 3)
			}
		}()
		go func() {
			defer wg.Done()
			s.NoError(s.store.Reload(s.ctx))
		}()
	}
	wg.Wait()

	s.WithinDuration(time.Now(), s.store.LoadedAt(), time.Minute)
}
