package domain

// DashboardKPIs are the headline metrics shown above the analysis tabs.
// All values are computed over the filtered subset. An empty subset yields
// zeros with RecordCount 0; consumers render that as "no data".
type DashboardKPIs struct {
	TotalRevenue    float64 `json:"total_revenue"`
	MeanBudget      float64 `json:"mean_budget"`
	MeanROI         float64 `json:"mean_roi"`
	MeanVoteAverage float64 `json:"mean_vote_average"`
	RecordCount     int     `json:"record_count"`
}

// GenreMetric summarizes one genre over the filtered subset. Genres with
// five or fewer matching films are suppressed as statistical noise.
type GenreMetric struct {
	Genre       string  `json:"genre"`
	MeanRevenue float64 `json:"mean_revenue"`
	MeanROI     float64 `json:"mean_roi"`
	Count       int     `json:"count"`
}

// CorrelationMatrix is a symmetric Pearson correlation matrix over the
// named numeric columns. Values[i][j] is the correlation of Columns[i]
// with Columns[j].
type CorrelationMatrix struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// YearlyTrend carries the per-year financial means for the market-trends
// view, one entry per release year in ascending order.
type YearlyTrend struct {
	Year        int     `json:"year"`
	MeanBudget  float64 `json:"mean_budget"`
	MeanRevenue float64 `json:"mean_revenue"`
	MeanProfit  float64 `json:"mean_profit"`
}

// DirectorStats ranks a director by cumulative revenue. Only directors
// credited on at least three films in the filtered subset qualify.
type DirectorStats struct {
	Director        string  `json:"director"`
	TotalRevenue    float64 `json:"total_revenue"`
	FilmCount       int     `json:"film_count"`
	MeanVoteAverage float64 `json:"mean_vote_average"`
}

// CountryVolume counts how many filtered films list the country among
// their production countries.
type CountryVolume struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// CountryRating is the mean vote average across filtered films that list
// the country. Computed only for the top production hubs by volume.
type CountryRating struct {
	Country         string  `json:"country"`
	MeanVoteAverage float64 `json:"mean_vote_average"`
}

// Dashboard is the complete view model for one render cycle: every tab's
// aggregates computed over the same filtered subset.
type Dashboard struct {
	KPIs           DashboardKPIs     `json:"kpis"`
	GenreMetrics   []GenreMetric     `json:"genre_metrics"`
	Correlations   CorrelationMatrix `json:"correlations"`
	YearlyTrends   []YearlyTrend     `json:"yearly_trends"`
	TopDirectors   []DirectorStats   `json:"top_directors"`
	CountryVolumes []CountryVolume   `json:"country_volumes"`
	CountryRatings []CountryRating   `json:"country_ratings"`
}
