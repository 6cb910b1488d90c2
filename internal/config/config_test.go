package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "tmdb_5000_movies.csv", cfg.Paths.MoviesFile)
	assert.Equal(t, "tmdb_5000_credits.csv", cfg.Paths.CreditsFile)
	assert.NotEmpty(t, cfg.Paths.ExecutableDir)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CINEPULSE_SERVER_PORT", "9191")
	t.Setenv("CINEPULSE_PATHS_MOVIES_FILE", "movies.csv")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "movies.csv", cfg.Paths.MoviesFile)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: 7070\npaths:\n  data_dir: /var/lib/cinepulse\n")
	require.NoError(t, os.WriteFile(configPath, content, 0644))
	t.Setenv("CINEPULSE_CONFIG", configPath)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "/var/lib/cinepulse", cfg.Paths.DataDir)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server:\n  port: 7070\n"), 0644))
	t.Setenv("CINEPULSE_CONFIG", configPath)
	t.Setenv("CINEPULSE_SERVER_PORT", "6060")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 6060, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "invalid port",
			mutate:  func(c *Config) { c.Server.Port = -1 },
			wantErr: "invalid server port",
		},
		{
			name:    "zero read timeout",
			mutate:  func(c *Config) { c.Server.ReadTimeout = 0 },
			wantErr: "read timeout",
		},
		{
			name:    "missing dataset paths",
			mutate:  func(c *Config) { c.Paths.MoviesFile = "" },
			wantErr: "movies and credits",
		},
		{
			name: "cors without origins",
			mutate: func(c *Config) {
				c.Security.EnableCORS = true
				c.Security.AllowedOrigins = nil
			},
			wantErr: "allowed origin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_NormalizesLogging(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Format = "text"
	cfg.Logging.FilePath = ""

	require.NoError(t, cfg.validate())
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "logs/app.log", cfg.Logging.FilePath)
}

func TestDataPathResolution(t *testing.T) {
	cfg := validConfig()
	cfg.Paths.ExecutableDir = "/opt/cinepulse"
	cfg.Paths.DataDir = "data"

	assert.Equal(t, filepath.Join("/opt/cinepulse", "data", "tmdb_5000_movies.csv"), cfg.MoviesPath())
	assert.Equal(t, filepath.Join("/opt/cinepulse", "data", "tmdb_5000_credits.csv"), cfg.CreditsPath())

	cfg.Paths.MoviesFile = "/srv/datasets/movies.csv"
	assert.Equal(t, "/srv/datasets/movies.csv", cfg.MoviesPath())
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         8080,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Security: SecurityConfig{
			AllowedOrigins: []string{"http://localhost:8080"},
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/app.log",
		},
		Paths: PathsConfig{
			ExecutableDir: "/opt/cinepulse",
			DataDir:       "data",
			MoviesFile:    "tmdb_5000_movies.csv",
			CreditsFile:   "tmdb_5000_credits.csv",
			ExportDir:     "exports",
			LogsDir:       "logs",
		},
	}
}
