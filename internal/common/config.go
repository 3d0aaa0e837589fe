package common

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string           `toml:"environment"` // "development" or "production"
	Logging     LoggingConfig    `toml:"logging"`
	Search      SearchConfig     `toml:"search"`
	Crawler     CrawlerConfig    `toml:"crawler"`
	Enrichment  EnrichmentConfig `toml:"enrichment"`
	Cities      CitiesConfig     `toml:"cities"`
}

type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Output []string `toml:"output"` // "stdout", "file"
}

// SearchConfig controls the external search provider.
type SearchConfig struct {
	Region       string `toml:"region"`         // Provider region hint, e.g. "in-en"
	HitsPerQuery int    `toml:"hits_per_query"` // Max hits requested per query (default 8)
	Model        string `toml:"model"`          // Gemini model used for grounded search
	APIKey       string `toml:"api_key"`        // Gemini API key (env GEMINI_API_KEY overrides)
}

// CrawlerConfig controls page fetching and contact-page following.
type CrawlerConfig struct {
	RequestTimeout  string `toml:"request_timeout"`   // Per-fetch timeout, e.g. "15s"
	UserAgent       string `toml:"user_agent"`        // Browser-like User-Agent header
	AcceptLanguage  string `toml:"accept_language"`   // Accept-Language header
	RatePerSecond   int    `toml:"rate_per_second"`   // Token bucket refill rate, validate:"min=1"
	RateBurst       int    `toml:"rate_burst"`        // Token bucket burst size
	MaxContactPages int    `toml:"max_contact_pages"` // Secondary contact pages per site (default 3)
}

// EnrichmentConfig controls batch enrichment behavior.
type EnrichmentConfig struct {
	MaxConcurrent int    `toml:"max_concurrent"` // Concurrency window for batch enrichment
	BatchDelay    string `toml:"batch_delay"`    // Courtesy pause between batches, e.g. "2s"
	CompanyDelay  string `toml:"company_delay"`  // Pause between curated companies, e.g. "1s"
}

// CitiesConfig points at the city tier table resource.
type CitiesConfig struct {
	Path string `toml:"path"` // YAML file mapping tiers to city lists
}

// NewDefaultConfig returns the configuration defaults. File values and
// environment overrides are layered on top by LoadFromFile.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout"},
		},
		Search: SearchConfig{
			Region:       "in-en",
			HitsPerQuery: 8,
			Model:        "gemini-3-flash-preview",
		},
		Crawler: CrawlerConfig{
			RequestTimeout:  "15s",
			UserAgent:       "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			AcceptLanguage:  "en-US,en;q=0.5",
			RatePerSecond:   5,
			RateBurst:       10,
			MaxContactPages: 3,
		},
		Enrichment: EnrichmentConfig{
			MaxConcurrent: 3,
			BatchDelay:    "2s",
			CompanyDelay:  "1s",
		},
		Cities: CitiesConfig{
			Path: "cities.yaml",
		},
	}
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
// An empty path returns defaults with env overrides applied.
func LoadFromFile(path string) (*Config, error) {
	config := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("REPERIO_ENV"); env != "" {
		config.Environment = env
	}
	if level := os.Getenv("REPERIO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		config.Search.APIKey = key
	}
	if path := os.Getenv("REPERIO_CITIES_PATH"); path != "" {
		config.Cities.Path = path
	}
}

// Validate checks structural invariants plus duration fields that the
// validator tags cannot express.
func (c *Config) Validate() error {
	type checked struct {
		HitsPerQuery    int `validate:"min=1,max=25"`
		RatePerSecond   int `validate:"min=1"`
		RateBurst       int `validate:"min=1"`
		MaxContactPages int `validate:"min=0,max=10"`
		MaxConcurrent   int `validate:"min=1,max=20"`
	}
	v := validator.New()
	err := v.Struct(checked{
		HitsPerQuery:    c.Search.HitsPerQuery,
		RatePerSecond:   c.Crawler.RatePerSecond,
		RateBurst:       c.Crawler.RateBurst,
		MaxContactPages: c.Crawler.MaxContactPages,
		MaxConcurrent:   c.Enrichment.MaxConcurrent,
	})
	if err != nil {
		return err
	}

	for _, d := range []struct {
		name  string
		value string
	}{
		{"crawler.request_timeout", c.Crawler.RequestTimeout},
		{"enrichment.batch_delay", c.Enrichment.BatchDelay},
		{"enrichment.company_delay", c.Enrichment.CompanyDelay},
	} {
		if d.value == "" {
			continue
		}
		if _, err := time.ParseDuration(d.value); err != nil {
			return fmt.Errorf("invalid duration for %s: %w", d.name, err)
		}
	}

	return nil
}

// RequestTimeout returns the parsed crawler timeout with a 15s fallback.
func (c *Config) RequestTimeout() time.Duration {
	return parseDurationOr(c.Crawler.RequestTimeout, 15*time.Second)
}

// BatchDelay returns the parsed between-batch pause with a 2s fallback.
func (c *Config) BatchDelay() time.Duration {
	return parseDurationOr(c.Enrichment.BatchDelay, 2*time.Second)
}

// CompanyDelay returns the parsed between-company pause with a 1s fallback.
func (c *Config) CompanyDelay() time.Duration {
	return parseDurationOr(c.Enrichment.CompanyDelay, time.Second)
}

// IsProduction returns true when running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func parseDurationOr(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
