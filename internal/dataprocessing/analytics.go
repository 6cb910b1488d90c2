package dataprocessing

import (
	"math"
	"sort"

	"cinepulse/pkg/contracts/domain"
)

const (
	// genreMinCount suppresses genres with too few films from the genre
	// charts; anything at or below this count is statistical noise.
	genreMinCount = 5

	// directorMinFilms is the "active director" threshold: rankings only
	// consider directors credited on at least this many films.
	directorMinFilms = 3

	// topDirectorLimit caps the director ranking.
	topDirectorLimit = 10

	// countryRatingLimit is how many top-volume countries get a mean rating.
	countryRatingLimit = 15
)

// correlationColumns are the numeric columns of the correlation matrix, in
// display order.
var correlationColumns = []string{"budget", "revenue", "vote_average", "popularity"}

// KPIs computes the headline metrics over the filtered subset. An empty
// subset yields zeros with RecordCount 0 rather than NaN.
func KPIs(movies []domain.Movie) domain.DashboardKPIs {
	kpis := domain.DashboardKPIs{RecordCount: len(movies)}
	if len(movies) == 0 {
		return kpis
	}

	var budgetSum, roiSum, voteSum float64
	for i := range movies {
		kpis.TotalRevenue += movies[i].Revenue
		budgetSum += movies[i].Budget
		roiSum += movies[i].ROI
		voteSum += movies[i].VoteAverage
	}

	n := float64(len(movies))
	kpis.MeanBudget = budgetSum / n
	kpis.MeanROI = roiSum / n
	kpis.MeanVoteAverage = voteSum / n
	return kpis
}

// GenreMetrics computes per-genre revenue/ROI means over the filtered
// subset for every genre in the universe with more than genreMinCount
// matching films, sorted by mean revenue descending.
func GenreMetrics(movies []domain.Movie, universe []string) []domain.GenreMetric {
	metrics := make([]domain.GenreMetric, 0, len(universe))

	for _, genre := range universe {
		var revenueSum, roiSum float64
		count := 0
		for i := range movies {
			if movies[i].HasGenre(genre) {
				revenueSum += movies[i].Revenue
				roiSum += movies[i].ROI
				count++
			}
		}
		if count <= genreMinCount {
			continue
		}
		metrics = append(metrics, domain.GenreMetric{
			Genre:       genre,
			MeanRevenue: revenueSum / float64(count),
			MeanROI:     roiSum / float64(count),
			Count:       count,
		})
	}

	sort.SliceStable(metrics, func(i, j int) bool {
		return metrics[i].MeanRevenue > metrics[j].MeanRevenue
	})
	return metrics
}

// Correlations computes the Pearson correlation matrix over budget, revenue,
// vote average and popularity. Columns with zero variance, or subsets with
// fewer than two rows, correlate to 0 (the diagonal stays 1 when defined).
func Correlations(movies []domain.Movie) domain.CorrelationMatrix {
	series := [][]float64{
		column(movies, func(m *domain.Movie) float64 { return m.Budget }),
		column(movies, func(m *domain.Movie) float64 { return m.Revenue }),
		column(movies, func(m *domain.Movie) float64 { return m.VoteAverage }),
		column(movies, func(m *domain.Movie) float64 { return m.Popularity }),
	}

	n := len(correlationColumns)
	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
		for j := range values[i] {
			values[i][j] = pearson(series[i], series[j])
		}
	}

	return domain.CorrelationMatrix{
		Columns: append([]string(nil), correlationColumns...),
		Values:  values,
	}
}

// YearlyTrends groups the filtered subset by release year and computes mean
// budget, revenue and profit per year, ascending.
func YearlyTrends(movies []domain.Movie) []domain.YearlyTrend {
	type accumulator struct {
		budget, revenue, profit float64
		count                   int
	}
	byYear := make(map[int]*accumulator)
	for i := range movies {
		acc := byYear[movies[i].ReleaseYear]
		if acc == nil {
			acc = &accumulator{}
			byYear[movies[i].ReleaseYear] = acc
		}
		acc.budget += movies[i].Budget
		acc.revenue += movies[i].Revenue
		acc.profit += movies[i].Profit
		acc.count++
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)

	trends := make([]domain.YearlyTrend, 0, len(years))
	for _, year := range years {
		acc := byYear[year]
		n := float64(acc.count)
		trends = append(trends, domain.YearlyTrend{
			Year:        year,
			MeanBudget:  acc.budget / n,
			MeanRevenue: acc.revenue / n,
			MeanProfit:  acc.profit / n,
		})
	}
	return trends
}

// TopDirectors ranks active directors (at least directorMinFilms films in
// the filtered subset) by cumulative revenue and returns the top ten.
// The one-film-wonder suppression keeps single outliers off the chart.
func TopDirectors(movies []domain.Movie) []domain.DirectorStats {
	type accumulator struct {
		revenue, votes float64
		count          int
	}
	byDirector := make(map[string]*accumulator)
	for i := range movies {
		acc := byDirector[movies[i].Director]
		if acc == nil {
			acc = &accumulator{}
			byDirector[movies[i].Director] = acc
		}
		acc.revenue += movies[i].Revenue
		acc.votes += movies[i].VoteAverage
		acc.count++
	}

	stats := make([]domain.DirectorStats, 0, len(byDirector))
	for director, acc := range byDirector {
		if acc.count < directorMinFilms {
			continue
		}
		stats = append(stats, domain.DirectorStats{
			Director:        director,
			TotalRevenue:    acc.revenue,
			FilmCount:       acc.count,
			MeanVoteAverage: acc.votes / float64(acc.count),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].TotalRevenue != stats[j].TotalRevenue {
			return stats[i].TotalRevenue > stats[j].TotalRevenue
		}
		return stats[i].Director < stats[j].Director
	})

	if len(stats) > topDirectorLimit {
		stats = stats[:topDirectorLimit]
	}
	return stats
}

// CountryVolumes counts, per production country, how many filtered films
// list it. A film with several countries counts once toward each. Sorted by
// count descending, ties broken by name for deterministic output.
func CountryVolumes(movies []domain.Movie) []domain.CountryVolume {
	counts := make(map[string]int)
	for i := range movies {
		for _, country := range movies[i].ProductionCountries {
			counts[country]++
		}
	}

	volumes := make([]domain.CountryVolume, 0, len(counts))
	for country, count := range counts {
		volumes = append(volumes, domain.CountryVolume{Country: country, Count: count})
	}

	sort.SliceStable(volumes, func(i, j int) bool {
		if volumes[i].Count != volumes[j].Count {
			return volumes[i].Count > volumes[j].Count
		}
		return volumes[i].Country < volumes[j].Country
	})
	return volumes
}

// CountryRatings computes the mean vote average per country for the top
// countryRatingLimit production hubs by volume, sorted by rating descending.
func CountryRatings(movies []domain.Movie, volumes []domain.CountryVolume) []domain.CountryRating {
	limit := countryRatingLimit
	if len(volumes) < limit {
		limit = len(volumes)
	}

	ratings := make([]domain.CountryRating, 0, limit)
	for _, vol := range volumes[:limit] {
		var voteSum float64
		count := 0
		for i := range movies {
			if movies[i].HasCountry(vol.Country) {
				voteSum += movies[i].VoteAverage
				count++
			}
		}
		if count == 0 {
			continue
		}
		ratings = append(ratings, domain.CountryRating{
			Country:         vol.Country,
			MeanVoteAverage: voteSum / float64(count),
		})
	}

	sort.SliceStable(ratings, func(i, j int) bool {
		return ratings[i].MeanVoteAverage > ratings[j].MeanVoteAverage
	})
	return ratings
}

// column extracts one numeric column from the movie slice.
func column(movies []domain.Movie, get func(*domain.Movie) float64) []float64 {
	out := make([]float64, len(movies))
	for i := range movies {
		out[i] = get(&movies[i])
	}
	return out
}

// pearson computes the Pearson correlation coefficient of two equal-length
// series. Fewer than two points or zero variance in either series yields 0.
func pearson(x, y []float64) float64 {
	n := len(x)
	if n < 2 || n != len(y) {
		return 0
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}
