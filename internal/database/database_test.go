package database

import (
	"path/filepath"
	"testing"

	"github.com/podintel/podintel-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Initialize(Options{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func TestInitialize(t *testing.T) {
	db := newTestDB(t)
	assert.NoError(t, db.HealthCheck())
}

func TestInitializeCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	db, err := Initialize(Options{Path: path, EnableWAL: true})
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.HealthCheck())
}

func TestAutoMigrate(t *testing.T) {
	db := newTestDB(t)

	err := db.AutoMigrate(&models.Podcast{}, &models.Episode{}, &models.Job{})
	require.NoError(t, err)

	// Round-trip a podcast through the migrated schema
	podcast := &models.Podcast{Title: "Test Show", RSSURL: "https://example.com/feed.xml"}
	require.NoError(t, db.Create(podcast).Error)

	var loaded models.Podcast
	require.NoError(t, db.First(&loaded, podcast.ID).Error)
	assert.Equal(t, "Test Show", loaded.Title)
}

func TestHealthCheckUninitialized(t *testing.T) {
	var db *DB
	assert.Error(t, db.HealthCheck())
}
