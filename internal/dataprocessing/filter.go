package dataprocessing

import (
	"sort"

	"cinepulse/pkg/contracts/domain"
)

// Filter selects the subset of the clean table one render cycle works on.
// An empty Genres set imposes no genre restriction. Year bounds are
// inclusive on both ends.
type Filter struct {
	Genres  []string
	YearMin int
	YearMax int
}

// Matches reports whether a movie passes both filter conditions.
func (f Filter) Matches(m *domain.Movie) bool {
	if m.ReleaseYear < f.YearMin || m.ReleaseYear > f.YearMax {
		return false
	}
	if len(f.Genres) == 0 {
		return true
	}
	for _, g := range f.Genres {
		if m.HasGenre(g) {
			return true
		}
	}
	return false
}

// Apply returns the filtered view of the clean table. The result is a fresh
// slice; the underlying movies are shared and must not be mutated.
func (f Filter) Apply(movies []domain.Movie) []domain.Movie {
	filtered := make([]domain.Movie, 0, len(movies))
	for i := range movies {
		if f.Matches(&movies[i]) {
			filtered = append(filtered, movies[i])
		}
	}
	return filtered
}

// GenreUniverse returns the sorted set of distinct genre names across the
// whole clean table. The UI uses it to populate the genre multi-select.
func GenreUniverse(movies []domain.Movie) []string {
	seen := make(map[string]struct{})
	for i := range movies {
		for _, g := range movies[i].Genres {
			seen[g] = struct{}{}
		}
	}
	genres := make([]string, 0, len(seen))
	for g := range seen {
		genres = append(genres, g)
	}
	sort.Strings(genres)
	return genres
}

// YearBounds returns the minimum and maximum release year in the table.
// Both are zero when the table is empty.
func YearBounds(movies []domain.Movie) (minYear, maxYear int) {
	for i := range movies {
		year := movies[i].ReleaseYear
		if minYear == 0 || year < minYear {
			minYear = year
		}
		if year > maxYear {
			maxYear = year
		}
	}
	return minYear, maxYear
}
