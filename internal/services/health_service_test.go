package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinepulse/internal/config"
)

func testConfig(dir string) *config.Config {
	return &config.Config{
		Paths: config.PathsConfig{
			ExecutableDir: dir,
			DataDir:       dir,
			MoviesFile:    "movies.csv",
			CreditsFile:   "credits.csv",
		},
	}
}

func TestHealthService_HealthCheck(t *testing.T) {
	hs := NewHealthService("1.2.0", testConfig(t.TempDir()), nil, nil)

	status := hs.HealthCheck(context.Background())
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "1.2.0", status.Version)
	assert.False(t, status.Timestamp.IsZero())
}

func TestHealthService_ReadinessWithoutFiles(t *testing.T) {
	hs := NewHealthService("1.2.0", testConfig(t.TempDir()), nil, nil)

	status := hs.ReadinessCheck(context.Background())
	assert.Equal(t, "not_ready", status.Status)

	dataset, ok := status.Services["dataset"].(ServiceHealth)
	require.True(t, ok)
	assert.Contains(t, dataset.Message, "dataset file not found")
}

func TestHealthService_ReadinessWithFilesPresent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "movies.csv"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "credits.csv"), []byte("x"), 0644))

	hs := NewHealthService("1.2.0", testConfig(dir), nil, nil)

	status := hs.ReadinessCheck(context.Background())
	assert.Equal(t, "ready", status.Status)
}

func TestHealthService_ReadinessWithLoadedDataset(t *testing.T) {
	datasets := NewDatasetService(writeTestDataset(t), nil)
	_, err := datasets.Movies(context.Background())
	require.NoError(t, err)

	hs := NewHealthService("1.2.0", testConfig(t.TempDir()), datasets, nil)

	status := hs.ReadinessCheck(context.Background())
	assert.Equal(t, "ready", status.Status)

	dataset := status.Services["dataset"].(ServiceHealth)
	assert.Contains(t, dataset.Message, "dataset loaded")
}

func TestHealthService_LivenessAndVersion(t *testing.T) {
	hs := NewHealthService("1.2.0", testConfig(t.TempDir()), nil, nil)

	liveness := hs.LivenessCheck(context.Background())
	assert.Equal(t, "alive", liveness.Status)
	assert.NotEmpty(t, liveness.Runtime)

	version := hs.Version()
	assert.Equal(t, "1.2.0", version["version"])
	assert.NotEmpty(t, version["go_version"])
}
