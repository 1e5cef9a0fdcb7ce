package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"PORT", "GARDEN_STORE_DRIVER", "GARDEN_FILE", "GARDEN_DOC_NAME", "DB_PATH",
		"GARDEN_S3_BUCKET", "GARDEN_S3_REGION", "GARDEN_S3_ENDPOINT", "GARDEN_S3_PATH_STYLE"} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := FromEnv()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "file", cfg.StoreDriver)
	assert.Equal(t, "garden.txt", cfg.GardenFile)
	assert.Equal(t, "garden", cfg.DocName)
	assert.Equal(t, "garden.db", cfg.DBPath)
	assert.Equal(t, "us-east-1", cfg.S3Region)
	assert.False(t, cfg.S3PathStyle)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("GARDEN_STORE_DRIVER", "S3")
	t.Setenv("GARDEN_S3_BUCKET", "plants")
	t.Setenv("GARDEN_S3_PATH_STYLE", "TRUE")
	cfg := FromEnv()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "s3", cfg.StoreDriver)
	assert.Equal(t, "plants", cfg.S3Bucket)
	assert.True(t, cfg.S3PathStyle)
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("GARDEN_FILE")
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("GARDEN_FILE=from-dotenv.txt\n"), 0o644)
	assert.NoError(t, err)
	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg := Load()
	assert.Equal(t, "from-dotenv.txt", cfg.GardenFile)
	os.Unsetenv("GARDEN_FILE")
}
