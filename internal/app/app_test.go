package app

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinepulse/internal/config"
	"cinepulse/internal/infrastructure"
)

// newTestApplication builds an application around a temp-dir config without
// going through config.Load or the global logger.
func newTestApplication(t *testing.T, withDataset bool) *Application {
	t.Helper()
	dir := t.TempDir()

	if withDataset {
		movies := "budget,genres,id,original_title,overview,popularity,production_companies,production_countries,release_date,revenue,runtime,vote_average,vote_count\n" +
			`1000000,"[{""id"": 1, ""name"": ""Action""}]",1,"Alpha","",10.0,"[]","[{""id"": 1, ""name"": ""USA""}]",2010-05-01,5000000,120,7.0,100` + "\n"
		credits := "movie_id,title,cast,crew\n" +
			`1,"Alpha","[]","[{""job"": ""Director"", ""name"": ""X""}]"` + "\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "movies.csv"), []byte(movies), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "credits.csv"), []byte(credits), 0644))
	}

	app := &Application{
		Config: &config.Config{
			Server: config.ServerConfig{
				Port:            8080,
				ReadTimeout:     15 * time.Second,
				WriteTimeout:    15 * time.Second,
				IdleTimeout:     time.Minute,
				ShutdownTimeout: 5 * time.Second,
				RequestTimeout:  10 * time.Second,
			},
			Security: config.SecurityConfig{
				AllowedOrigins: []string{"http://localhost:8080"},
				EnableCORS:     true,
				RateLimit:      config.RateLimitConfig{Enabled: false},
			},
			Paths: config.PathsConfig{
				ExecutableDir: dir,
				DataDir:       dir,
				MoviesFile:    "movies.csv",
				CreditsFile:   "credits.csv",
				ExportDir:     "exports",
				LogsDir:       "logs",
			},
		},
		Logger:        slog.Default(),
		OTelProviders: &infrastructure.OTelProviders{},
	}

	app.initializeServices()
	app.setupRouter()
	app.createServer()
	return app
}

func TestApplication_HealthRoutes(t *testing.T) {
	app := newTestApplication(t, false)

	req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestApplication_VersionRoute(t *testing.T) {
	app := newTestApplication(t, false)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["version"])
}

func TestApplication_DashboardWithDataset(t *testing.T) {
	app := newTestApplication(t, true)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard?genres=Action", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	kpis, ok := body["kpis"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), kpis["record_count"])
}

func TestApplication_DashboardWithoutDataset(t *testing.T) {
	app := newTestApplication(t, false)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")
}

func TestApplication_MetaRoute(t *testing.T) {
	app := newTestApplication(t, true)

	req := httptest.NewRequest(http.MethodGet, "/api/meta", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["record_count"])
}

func TestApplication_ExportRoute(t *testing.T) {
	app := newTestApplication(t, true)

	req := httptest.NewRequest(http.MethodGet, "/api/export/movies.csv", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
}

func TestApplication_UnknownRouteIsProblemJSON(t *testing.T) {
	app := newTestApplication(t, false)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")
}

func TestApplication_SecurityHeaders(t *testing.T) {
	app := newTestApplication(t, false)

	req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
