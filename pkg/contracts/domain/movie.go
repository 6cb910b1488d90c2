package domain

import (
	"time"
)

// UnknownSentinel is assigned when a film has no credited director or no
// listed production country. The source data does not distinguish "no crew
// data" from "crew data without a Director entry", and neither do we.
const UnknownSentinel = "Unknown"

// Movie is one film that survived cleaning: joined with its credits row,
// financial floors applied, dates parsed, and derived fields populated.
// Instances are built once at load time and never mutated afterwards.
type Movie struct {
	ID                  int       `json:"id"`
	Title               string    `json:"title"`
	Overview            string    `json:"overview,omitempty"`
	Budget              float64   `json:"budget"`
	Revenue             float64   `json:"revenue"`
	Runtime             float64   `json:"runtime"`
	Popularity          float64   `json:"popularity"`
	VoteAverage         float64   `json:"vote_average"`
	VoteCount           int       `json:"vote_count"`
	ReleaseDate         time.Time `json:"release_date"`
	ReleaseYear         int       `json:"release_year"`
	Genres              []string  `json:"genres"`
	ProductionCompanies []string  `json:"production_companies"`
	ProductionCountries []string  `json:"production_countries"`
	PrimaryCountry      string    `json:"primary_country"`
	Director            string    `json:"director"`
	Profit              float64   `json:"profit"`
	ROI                 float64   `json:"roi"`
}

// HasGenre reports whether the movie carries the given genre name.
func (m *Movie) HasGenre(genre string) bool {
	for _, g := range m.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// HasCountry reports whether the movie lists the given production country.
func (m *Movie) HasCountry(country string) bool {
	for _, c := range m.ProductionCountries {
		if c == country {
			return true
		}
	}
	return false
}

// DatasetMeta describes the clean table so the UI can build its widgets:
// the genre multi-select universe and the year slider bounds.
type DatasetMeta struct {
	Genres      []string `json:"genres"`
	MinYear     int      `json:"min_year"`
	MaxYear     int      `json:"max_year"`
	RecordCount int      `json:"record_count"`
}
