package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_PATH", "MEDIA_DRIVER", "MEDIA_S3_PATH_STYLE", "IMPORT_ALLOWED_DOMAINS", "IMPORT_MAX_BYTES"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "growlog.db", cfg.DBPath)
	assert.Equal(t, "fs", cfg.MediaDriver)
	assert.False(t, cfg.MediaS3PathStyle)
	assert.Empty(t, cfg.ImportAllowedDomains)
	assert.Equal(t, 1500000, cfg.ImportMaxBytes)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MEDIA_DRIVER", "S3")
	t.Setenv("MEDIA_S3_PATH_STYLE", "TRUE")
	t.Setenv("IMPORT_ALLOWED_DOMAINS", " acme.test, ,shop.example ")
	t.Setenv("IMPORT_MAX_BYTES", "nope")

	cfg := Load()
	assert.Equal(t, "s3", cfg.MediaDriver)
	assert.True(t, cfg.MediaS3PathStyle)
	assert.Equal(t, []string{"acme.test", "shop.example"}, cfg.ImportAllowedDomains)
	assert.Equal(t, 1500000, cfg.ImportMaxBytes)
}
