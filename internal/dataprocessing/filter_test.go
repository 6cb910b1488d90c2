package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cinepulse/pkg/contracts/domain"
)

func sampleTable() []domain.Movie {
	return []domain.Movie{
		{ID: 1, Title: "Action 2000", ReleaseYear: 2000, Genres: []string{"Action"}},
		{ID: 2, Title: "Horror 2005", ReleaseYear: 2005, Genres: []string{"Horror"}},
		{ID: 3, Title: "Mixed 2010", ReleaseYear: 2010, Genres: []string{"Action", "Drama"}},
		{ID: 4, Title: "Drama 2015", ReleaseYear: 2015, Genres: []string{"Drama"}},
		{ID: 5, Title: "Nothing 2010", ReleaseYear: 2010, Genres: nil},
	}
}

func TestFilter_Apply(t *testing.T) {
	movies := sampleTable()

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []int
	}{
		{
			name:    "empty genre set passes all in range",
			filter:  Filter{YearMin: 2000, YearMax: 2015},
			wantIDs: []int{1, 2, 3, 4, 5},
		},
		{
			name:    "single genre",
			filter:  Filter{Genres: []string{"Horror"}, YearMin: 2000, YearMax: 2015},
			wantIDs: []int{2},
		},
		{
			name:    "genre intersection matches any selected",
			filter:  Filter{Genres: []string{"Horror", "Drama"}, YearMin: 2000, YearMax: 2015},
			wantIDs: []int{2, 3, 4},
		},
		{
			name:    "year bounds are inclusive",
			filter:  Filter{YearMin: 2005, YearMax: 2010},
			wantIDs: []int{2, 3, 5},
		},
		{
			name:    "single year window",
			filter:  Filter{YearMin: 2010, YearMax: 2010},
			wantIDs: []int{3, 5},
		},
		{
			name:    "no genres on movie never matches a genre filter",
			filter:  Filter{Genres: []string{"Action"}, YearMin: 2010, YearMax: 2010},
			wantIDs: []int{3},
		},
		{
			name:    "empty result",
			filter:  Filter{Genres: []string{"Western"}, YearMin: 2000, YearMax: 2015},
			wantIDs: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(movies)
			ids := make([]int, 0, len(got))
			for _, m := range got {
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestGenreUniverse(t *testing.T) {
	got := GenreUniverse(sampleTable())
	assert.Equal(t, []string{"Action", "Drama", "Horror"}, got)
}

func TestGenreUniverse_Empty(t *testing.T) {
	assert.Empty(t, GenreUniverse(nil))
}

func TestYearBounds(t *testing.T) {
	minYear, maxYear := YearBounds(sampleTable())
	assert.Equal(t, 2000, minYear)
	assert.Equal(t, 2015, maxYear)

	minYear, maxYear = YearBounds(nil)
	assert.Equal(t, 0, minYear)
	assert.Equal(t, 0, maxYear)
}
