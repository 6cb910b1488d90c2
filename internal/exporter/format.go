package exporter

import (
	"fmt"
	"strings"

	"cinepulse/pkg/contracts/domain"
)

// movieHeaders is the column set shared by the CSV and XLSX exports.
var movieHeaders = []string{
	"id", "title", "release_date", "release_year", "genres", "director",
	"primary_country", "budget", "revenue", "profit", "roi", "runtime",
	"popularity", "vote_average", "vote_count",
}

// movieRow renders one movie in movieHeaders order.
func movieRow(m *domain.Movie) []string {
	return []string{
		formatInt(int64(m.ID)),
		m.Title,
		m.ReleaseDate.Format("2006-01-02"),
		formatInt(int64(m.ReleaseYear)),
		strings.Join(m.Genres, "; "),
		m.Director,
		m.PrimaryCountry,
		formatFloat(m.Budget),
		formatFloat(m.Revenue),
		formatFloat(m.Profit),
		formatFloat(m.ROI),
		formatFloat(m.Runtime),
		formatFloat(m.Popularity),
		formatFloat(m.VoteAverage),
		formatInt(int64(m.VoteCount)),
	}
}

// formatFloat formats a float64 value for export with exactly 2 decimal places
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatInt formats an int64 value for export
func formatInt(i int64) string {
	return fmt.Sprintf("%d", i)
}
