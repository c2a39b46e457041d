package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovie_Validate(t *testing.T) {
	tests := []struct {
		name    string
		movie   Movie
		wantErr error
	}{
		{
			name:  "valid movie",
			movie: Movie{ID: "s1", Title: "Dick Johnson Is Dead", Category: "Documentaries"},
		},
		{
			name:  "empty category is allowed",
			movie: Movie{ID: "s2"},
		},
		{
			name:    "missing id",
			movie:   Movie{Title: "Untitled"},
			wantErr: ErrMovieIDRequired,
		},
		{
			name:    "whitespace id",
			movie:   Movie{ID: "   "},
			wantErr: ErrMovieIDRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.movie.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseYear(t *testing.T) {
	assert.Equal(t, 2020, ParseYear("2020"))
	assert.Equal(t, 2019, ParseYear(" 2019 "))
	assert.Equal(t, 2019, ParseYear("2019.0"))
	assert.Equal(t, 0, ParseYear(""))
	assert.Equal(t, 0, ParseYear("unknown"))
}

func TestMovie_TableName(t *testing.T) {
	assert.Equal(t, "movies", Movie{}.TableName())
}

func TestTermSet(t *testing.T) {
	set := NewTermSet("comedy", "funny", "")

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains("comedy"))
	assert.False(t, set.Contains(""))

	set.Union(NewTermSet("drama", "comedy"))
	assert.Equal(t, []string{"comedy", "drama", "funny"}, set.Sorted())
}

func TestNewChatbotResult(t *testing.T) {
	empty := NewChatbotResult(QueryExpansion{Query: "zzzz"}, nil)
	assert.Equal(t, ChatbotNoResultsFound, empty.StatusMessage)
	assert.NotNil(t, empty.Results)
	assert.False(t, empty.HasResults())

	found := NewChatbotResult(QueryExpansion{Query: "funny"}, []Movie{{ID: "1"}})
	assert.Equal(t, ChatbotResultsFound, found.StatusMessage)
	assert.True(t, found.HasResults())
}

func TestMovieLookup(t *testing.T) {
	hit := FoundMovie(Movie{ID: "2", Category: "Drama"})
	assert.True(t, hit.Found)
	assert.Equal(t, "2", hit.Movie.ID)

	miss := MovieNotFound()
	assert.False(t, miss.Found)
}
