package directory

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/korninw/thai-food-finder/internal/middleware"
	"github.com/korninw/thai-food-finder/internal/navigation"
)

// Source identifies where the dataset is loaded from.
type Source string

const (
	SourceFile     Source = "file"
	SourcePostgres Source = "postgres"
)

const (
	DefaultDatasetPath  = "data/provinces.yaml"
	DefaultPopularLimit = 6
	DefaultSearchLimit  = 8
)

var (
	ErrMissingDatasetPath = errors.New("DATASET_PATH is required for the file source")
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is required for the postgres source")
	ErrUnknownSource      = errors.New("unknown dataset source")
	ErrInvalidLimit       = errors.New("display limits must be positive")
)

// Config holds the directory service settings.
type Config struct {
	Port string

	// Dataset source: "file" or "postgres"
	Source      Source
	DatasetPath string
	DatabaseURL string

	// Display counts; the engines return full result sets and handlers truncate.
	PopularLimit  int
	SearchLimit   int
	DebounceDelay time.Duration

	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// LoadFromEnv loads configuration from environment variables.
//
// Environment variables:
//   - PORT: listen port (default: 5050)
//   - DATASET_SOURCE: "file" or "postgres" (default: "file")
//   - DATASET_PATH: YAML or JSON dataset (default: data/provinces.yaml)
//   - DATABASE_URL: Postgres DSN (required if using postgres)
//   - POPULAR_LIMIT, SEARCH_LIMIT: display counts (default: 6, 8)
//   - SEARCH_DEBOUNCE_MS: quiet period for live search (default: 200)
//   - CORS_ALLOWED_ORIGINS: comma separated allow-list
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST: request limiting, off when RPS is 0
func LoadFromEnv() Config {
	source := Source(strings.ToLower(strings.TrimSpace(os.Getenv("DATASET_SOURCE"))))
	if source == "" {
		source = SourceFile
	}

	path := strings.TrimSpace(os.Getenv("DATASET_PATH"))
	if path == "" {
		path = DefaultDatasetPath
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}

	origins := middleware.ParseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if len(origins) == 0 {
		origins = middleware.DefaultOrigins
	}

	rps, _ := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)

	return Config{
		Port:           port,
		Source:         source,
		DatasetPath:    path,
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		PopularLimit:   envInt("POPULAR_LIMIT", DefaultPopularLimit),
		SearchLimit:    envInt("SEARCH_LIMIT", DefaultSearchLimit),
		DebounceDelay:  time.Duration(envInt("SEARCH_DEBOUNCE_MS", int(navigation.DefaultQuietPeriod/time.Millisecond))) * time.Millisecond,
		AllowedOrigins: origins,
		RateLimitRPS:   rps,
		RateLimitBurst: envInt("RATE_LIMIT_BURST", 20),
	}
}

// Validate checks that the configuration is usable for the selected source.
func (c Config) Validate() error {
	switch c.Source {
	case SourceFile:
		if c.DatasetPath == "" {
			return ErrMissingDatasetPath
		}
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return ErrMissingDatabaseURL
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSource, c.Source)
	}
	if c.PopularLimit <= 0 || c.SearchLimit <= 0 {
		return ErrInvalidLimit
	}
	return nil
}

func envInt(key string, def int) int {
	if s := strings.TrimSpace(os.Getenv(key)); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return def
}
