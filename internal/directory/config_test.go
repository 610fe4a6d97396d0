package directory

import (
	"errors"
	"testing"
	"time"
)

// TestLoadFromEnvDefaults verifies the values used when nothing is set.
func TestLoadFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATASET_SOURCE", "DATASET_PATH", "POPULAR_LIMIT", "SEARCH_LIMIT", "SEARCH_DEBOUNCE_MS", "CORS_ALLOWED_ORIGINS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		t.Setenv(k, "")
	}

	cfg := LoadFromEnv()
	if cfg.Port != "5050" || cfg.Source != SourceFile || cfg.DatasetPath != DefaultDatasetPath {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.PopularLimit != 6 || cfg.SearchLimit != 8 {
		t.Errorf("limits = %d, %d", cfg.PopularLimit, cfg.SearchLimit)
	}
	if cfg.DebounceDelay != 200*time.Millisecond {
		t.Errorf("debounce = %v", cfg.DebounceDelay)
	}
	if cfg.RateLimitRPS != 0 || len(cfg.AllowedOrigins) == 0 {
		t.Errorf("rps = %v, origins = %v", cfg.RateLimitRPS, cfg.AllowedOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

// TestLoadFromEnvOverrides verifies that set variables take effect.
func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DATASET_SOURCE", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/food")
	t.Setenv("SEARCH_LIMIT", "3")
	t.Setenv("SEARCH_DEBOUNCE_MS", "50")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg := LoadFromEnv()
	if cfg.Port != "8080" || cfg.Source != SourcePostgres || cfg.SearchLimit != 3 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.DebounceDelay != 50*time.Millisecond || cfg.RateLimitRPS != 2.5 {
		t.Errorf("debounce = %v, rps = %v", cfg.DebounceDelay, cfg.RateLimitRPS)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("origins = %v", cfg.AllowedOrigins)
	}
}

// TestValidate verifies the sentinel error for each bad configuration.
func TestValidate(t *testing.T) {
	ok := Config{Source: SourceFile, DatasetPath: "data.yaml", PopularLimit: 6, SearchLimit: 8}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"file without path", func(c *Config) { c.DatasetPath = "" }, ErrMissingDatasetPath},
		{"postgres without dsn", func(c *Config) { c.Source = SourcePostgres }, ErrMissingDatabaseURL},
		{"unknown source", func(c *Config) { c.Source = "s3" }, ErrUnknownSource},
		{"zero limit", func(c *Config) { c.SearchLimit = 0 }, ErrInvalidLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ok
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
