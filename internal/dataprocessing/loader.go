package dataprocessing

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"cinepulse/internal/infrastructure"
	"cinepulse/pkg/contracts/domain"
)

// Financial floor below which budget and revenue values are considered
// placeholders. Rows at or under the floor are dropped before any ratio is
// computed, which keeps ROI finite everywhere in the clean table.
const financialFloor = 1000

// releaseDateLayout is the calendar date format used by the dataset.
const releaseDateLayout = "2006-01-02"

// Drop reason labels used for the rows_dropped metric and load stats.
const (
	dropReasonUnjoined       = "unjoined"
	dropReasonFinancialFloor = "financial_floor"
	dropReasonIncomplete     = "incomplete"
)

// LoadStats summarizes one load/transform pass.
type LoadStats struct {
	MoviesRead        int
	CreditsRead       int
	Joined            int
	Kept              int
	DroppedUnjoined   int
	DroppedFinancial  int
	DroppedIncomplete int
	DecodeAnomalies   int
	Duration          time.Duration
}

// Loader reads the two dataset files and produces the clean movie table.
type Loader struct {
	moviesPath  string
	creditsPath string
	logger      *slog.Logger
	metrics     *infrastructure.PipelineMetrics
}

// NewLoader creates a loader for the given input files. metrics may be nil.
func NewLoader(moviesPath, creditsPath string, logger *slog.Logger, metrics *infrastructure.PipelineMetrics) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		moviesPath:  moviesPath,
		creditsPath: creditsPath,
		logger:      logger.With(slog.String("component", "loader")),
		metrics:     metrics,
	}
}

// movieRow is one raw row from the movies file after column projection.
type movieRow struct {
	id                  int
	title               string
	overview            string
	budget              float64
	revenue             float64
	runtime             float64
	hasRuntime          bool
	popularity          float64
	voteAverage         float64
	voteCount           int
	releaseDate         string
	genres              string
	productionCompanies string
	productionCountries string
}

// creditsRow is one raw row from the credits file.
type creditsRow struct {
	movieID int
	crew    string
}

// Load runs the full transform pass: read both files, join, filter, decode
// and derive. It returns the immutable clean table. Any file-level failure
// aborts the whole load; no partial table is ever returned.
func (l *Loader) Load(ctx context.Context) ([]domain.Movie, *LoadStats, error) {
	start := time.Now()
	stats := &LoadStats{}

	var movies []movieRow
	var credits []creditsRow

	// The two inputs are independent until the join, so read them in parallel.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := l.readMovies(gctx)
		if err != nil {
			return err
		}
		movies = rows
		return nil
	})
	g.Go(func() error {
		rows, err := l.readCredits(gctx)
		if err != nil {
			return err
		}
		credits = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	stats.MoviesRead = len(movies)
	stats.CreditsRead = len(credits)

	// Inner join on movies.id == credits.movie_id. A film missing on either
	// side is silently excluded: without credits there is no director to
	// analyze, and credits without a film carry no financials.
	creditsByID := make(map[int]creditsRow, len(credits))
	for _, c := range credits {
		if _, dup := creditsByID[c.movieID]; !dup {
			creditsByID[c.movieID] = c
		}
	}

	clean := make([]domain.Movie, 0, len(movies))
	for _, row := range movies {
		cred, ok := creditsByID[row.id]
		if !ok {
			stats.DroppedUnjoined++
			continue
		}
		stats.Joined++

		if row.budget <= financialFloor || row.revenue <= financialFloor {
			stats.DroppedFinancial++
			continue
		}

		if !row.hasRuntime {
			stats.DroppedIncomplete++
			continue
		}

		releaseDate, err := time.Parse(releaseDateLayout, strings.TrimSpace(row.releaseDate))
		if err != nil {
			// An unparseable date is treated as missing, not as a load error.
			stats.DroppedIncomplete++
			continue
		}

		movie := domain.Movie{
			ID:          row.id,
			Title:       row.title,
			Overview:    row.overview,
			Budget:      row.budget,
			Revenue:     row.revenue,
			Runtime:     row.runtime,
			Popularity:  row.popularity,
			VoteAverage: row.voteAverage,
			VoteCount:   row.voteCount,
			ReleaseDate: releaseDate,
			ReleaseYear: releaseDate.Year(),
		}

		rowAnomalies := 0
		var decoded bool
		if movie.Genres, decoded = decodeNameList(row.genres); !decoded {
			rowAnomalies++
		}
		if movie.ProductionCompanies, decoded = decodeNameList(row.productionCompanies); !decoded {
			rowAnomalies++
		}
		if movie.ProductionCountries, decoded = decodeNameList(row.productionCountries); !decoded {
			rowAnomalies++
		}
		if movie.Director, decoded = decodeDirector(cred.crew); !decoded {
			rowAnomalies++
		}
		if rowAnomalies > 0 {
			stats.DecodeAnomalies += rowAnomalies
			l.logger.DebugContext(ctx, "row decode anomaly",
				slog.Int("movie_id", row.id),
				slog.Int("fields", rowAnomalies),
			)
		}

		if len(movie.ProductionCountries) > 0 {
			movie.PrimaryCountry = movie.ProductionCountries[0]
		} else {
			movie.PrimaryCountry = domain.UnknownSentinel
		}

		movie.Profit = movie.Revenue - movie.Budget
		movie.ROI = movie.Profit / movie.Budget

		clean = append(clean, movie)
	}

	stats.Kept = len(clean)
	stats.Duration = time.Since(start)

	l.recordMetrics(ctx, stats)

	l.logger.InfoContext(ctx, "dataset load complete",
		slog.Int("movies_read", stats.MoviesRead),
		slog.Int("credits_read", stats.CreditsRead),
		slog.Int("kept", stats.Kept),
		slog.Int("dropped_unjoined", stats.DroppedUnjoined),
		slog.Int("dropped_financial_floor", stats.DroppedFinancial),
		slog.Int("dropped_incomplete", stats.DroppedIncomplete),
		slog.Int("decode_anomalies", stats.DecodeAnomalies),
		slog.Duration("duration", stats.Duration),
	)

	return clean, stats, nil
}

func (l *Loader) recordMetrics(ctx context.Context, stats *LoadStats) {
	if l.metrics == nil {
		return
	}
	l.metrics.DatasetLoads.Add(ctx, 1)
	l.metrics.RowsKept.Add(ctx, int64(stats.Kept))
	l.metrics.RowsDropped.Add(ctx, int64(stats.DroppedUnjoined), infrastructure.DropReason(dropReasonUnjoined))
	l.metrics.RowsDropped.Add(ctx, int64(stats.DroppedFinancial), infrastructure.DropReason(dropReasonFinancialFloor))
	l.metrics.RowsDropped.Add(ctx, int64(stats.DroppedIncomplete), infrastructure.DropReason(dropReasonIncomplete))
	l.metrics.DecodeAnomalies.Add(ctx, int64(stats.DecodeAnomalies))
	l.metrics.LoadDuration.Record(ctx, stats.Duration.Seconds())
}

// readMovies reads and projects the movies file.
func (l *Loader) readMovies(ctx context.Context) ([]movieRow, error) {
	records, err := readCSVFile(l.moviesPath)
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("dataset file %s has no header row", l.moviesPath)
	}

	cols, err := mapColumns(records[0], []string{
		"id", "budget", "revenue", "runtime", "popularity", "vote_average",
		"vote_count", "release_date", "genres", "production_companies",
		"production_countries", "original_title",
	}, l.moviesPath)
	if err != nil {
		return nil, err
	}
	// overview is informational only; tolerate its absence
	overviewCol := indexOf(records[0], "overview")

	rows := make([]movieRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		id, err := strconv.Atoi(strings.TrimSpace(field(rec, cols["id"])))
		if err != nil {
			// A row without a usable key can never join
			continue
		}

		row := movieRow{
			id:                  id,
			title:               field(rec, cols["original_title"]),
			budget:              parseFloat(field(rec, cols["budget"])),
			revenue:             parseFloat(field(rec, cols["revenue"])),
			popularity:          parseFloat(field(rec, cols["popularity"])),
			voteAverage:         parseFloat(field(rec, cols["vote_average"])),
			voteCount:           int(parseFloat(field(rec, cols["vote_count"]))),
			releaseDate:         field(rec, cols["release_date"]),
			genres:              field(rec, cols["genres"]),
			productionCompanies: field(rec, cols["production_companies"]),
			productionCountries: field(rec, cols["production_countries"]),
		}
		if overviewCol >= 0 {
			row.overview = field(rec, overviewCol)
		}

		if runtimeStr := strings.TrimSpace(field(rec, cols["runtime"])); runtimeStr != "" {
			if runtime, err := strconv.ParseFloat(runtimeStr, 64); err == nil {
				row.runtime = runtime
				row.hasRuntime = true
			}
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// readCredits reads and projects the credits file.
func (l *Loader) readCredits(ctx context.Context) ([]creditsRow, error) {
	records, err := readCSVFile(l.creditsPath)
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("dataset file %s has no header row", l.creditsPath)
	}

	cols, err := mapColumns(records[0], []string{"movie_id", "crew"}, l.creditsPath)
	if err != nil {
		return nil, err
	}

	rows := make([]creditsRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		movieID, err := strconv.Atoi(strings.TrimSpace(field(rec, cols["movie_id"])))
		if err != nil {
			continue
		}

		rows = append(rows, creditsRow{
			movieID: movieID,
			crew:    field(rec, cols["crew"]),
		})
	}

	return rows, nil
}

// readCSVFile reads a whole CSV file, tolerating a UTF-8 BOM and ragged rows.
func readCSVFile(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("dataset file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to open dataset file %s: %w", path, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file %s: %w", path, err)
	}

	// Strip UTF-8 BOM if present
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		content = content[3:]
	}

	reader := csv.NewReader(strings.NewReader(string(content)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset file %s: %w", path, err)
	}

	return records, nil
}

// mapColumns resolves required column names to their indices in the header.
func mapColumns(header []string, required []string, path string) (map[string]int, error) {
	cols := make(map[string]int, len(required))
	var missing []string
	for _, name := range required {
		idx := indexOf(header, name)
		if idx < 0 {
			missing = append(missing, name)
			continue
		}
		cols[name] = idx
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("dataset file %s is missing required columns: %v", path, missing)
	}
	return cols, nil
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
