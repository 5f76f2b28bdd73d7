package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	Timezone string
	DBPath   string

	MediaDriver      string // fs or s3
	MediaRoot        string
	MediaS3Bucket    string
	MediaS3Region    string
	MediaS3Endpoint  string
	MediaS3PathStyle bool

	ImportAllowedDomains []string
	ImportMaxBytes       int
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	maxBytes, err := strconv.Atoi(get("IMPORT_MAX_BYTES", "1500000"))
	if err != nil || maxBytes <= 0 {
		log.Printf("[cfg] bad IMPORT_MAX_BYTES, using default: %v", err)
		maxBytes = 1500000
	}
	cfg := AppConfig{
		Port:                 get("PORT", "8080"),
		Timezone:             get("TZ", "UTC"),
		DBPath:               get("DB_PATH", "growlog.db"),
		MediaDriver:          strings.ToLower(get("MEDIA_DRIVER", "fs")),
		MediaRoot:            get("MEDIA_ROOT", "media"),
		MediaS3Bucket:        get("MEDIA_S3_BUCKET", ""),
		MediaS3Region:        get("MEDIA_S3_REGION", "us-east-1"),
		MediaS3Endpoint:      get("MEDIA_S3_ENDPOINT", ""),
		MediaS3PathStyle:     strings.EqualFold(get("MEDIA_S3_PATH_STYLE", "false"), "true"),
		ImportAllowedDomains: splitList(get("IMPORT_ALLOWED_DOMAINS", "")),
		ImportMaxBytes:       maxBytes,
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
