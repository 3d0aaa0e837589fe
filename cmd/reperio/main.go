// -----------------------------------------------------------------------
// Reperio - business contact discovery and enrichment CLI
// -----------------------------------------------------------------------

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/reperio/internal/common"
	"github.com/ternarybob/reperio/internal/httpclient"
	"github.com/ternarybob/reperio/internal/interfaces"
	"github.com/ternarybob/reperio/internal/models"
	"github.com/ternarybob/reperio/internal/services/cities"
	"github.com/ternarybob/reperio/internal/services/crawler"
	"github.com/ternarybob/reperio/internal/services/discovery"
	"github.com/ternarybob/reperio/internal/services/webfind"
)

var (
	// Command-line flags
	configFile   = flag.String("config", "", "Configuration file path")
	mode         = flag.String("mode", "discover", "Mode: discover, deep, strategy, curated, scrape, enrich, cities")
	city         = flag.String("city", "Mumbai", "Target city")
	allCities    = flag.Bool("all-cities", false, "Run discovery across every configured city")
	strategyID   = flag.String("strategy", "directories", "Strategy ID for -mode strategy")
	limit        = flag.Int("limit", 20, "Maximum results")
	targetURL    = flag.String("url", "", "Website URL for -mode scrape")
	inputFile    = flag.String("input", "", "JSON file of leads for -mode enrich")
	outputFile   = flag.String("output", "", "Write JSON results to file instead of stdout")
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")

	// Global state
	config *common.Config
	logger arbor.ILogger
)

func main() {
	flag.Parse()

	if *showVersion || *showVersionV {
		fmt.Printf("Reperio version %s\n", common.GetVersion())
		os.Exit(0)
	}

	// Startup sequence (REQUIRED ORDER):
	// 1. Load config (defaults -> file -> env)
	// 2. Initialize logger
	// 3. Print banner
	var err error

	path := *configFile
	if path == "" {
		if _, statErr := os.Stat("reperio.toml"); statErr == nil {
			path = "reperio.toml"
		}
	}

	config, err = common.LoadFromFile(path)
	if err != nil {
		tempLogger := arbor.NewLogger()
		tempLogger.Fatal().Str("path", path).Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	logger = common.InitLogger(config)
	common.PrintBanner(common.GetVersion())

	logger.Info().
		Str("mode", *mode).
		Str("city", *city).
		Str("region", config.Search.Region).
		Msg("Configuration loaded")

	// Cancel on SIGINT/SIGTERM so partial results still flush
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Run failed")
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	service, err := buildService(ctx)
	if err != nil {
		return err
	}

	switch *mode {
	case "discover":
		if *allCities {
			results, err := service.SearchAllCities(ctx, *limit)
			if err != nil {
				return err
			}
			return writeResults(results)
		}
		results, err := service.DiscoverBusinesses(ctx, *city, *limit)
		if err != nil {
			return err
		}
		return writeResults(results)

	case "deep":
		results, err := service.DeepSearch(ctx, *city, *limit)
		if err != nil {
			return err
		}
		return writeResults(results)

	case "strategy":
		results, err := service.DiscoverByStrategy(ctx, *city, *strategyID, *limit)
		if err != nil {
			return err
		}
		return writeResults(results)

	case "curated":
		results, err := service.DiscoverFromCuratedList(ctx, *city)
		if err != nil {
			return err
		}
		return writeResults(results)

	case "scrape":
		if *targetURL == "" {
			return fmt.Errorf("-url is required for scrape mode")
		}
		return writeResults(service.ScrapeWebsiteContacts(ctx, *targetURL, true))

	case "enrich":
		if *inputFile == "" {
			return fmt.Errorf("-input is required for enrich mode")
		}
		leads, err := readLeads(*inputFile)
		if err != nil {
			return err
		}
		enriched := service.EnrichLeadsBatch(ctx, leads, config.Enrichment.MaxConcurrent)
		return writeResults(enriched)

	case "cities":
		return writeResults(service.GetAllCities())

	default:
		return fmt.Errorf("unknown mode %q", *mode)
	}
}

// buildService wires the provider, fetcher, crawler and city table into a
// discovery service sharing one rate limiter.
func buildService(ctx context.Context) (interfaces.DiscoveryService, error) {
	provider, err := webfind.NewProvider(ctx, config, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create search provider: %w", err)
	}

	fetcher := httpclient.NewFetcher(
		config.RequestTimeout(),
		config.Crawler.UserAgent,
		config.Crawler.AcceptLanguage,
	)

	limiter := crawler.NewRateLimiter(config.Crawler.RatePerSecond, config.Crawler.RateBurst)
	crawlerService := crawler.NewService(fetcher, limiter, config, logger)
	cityService := cities.NewService(config.Cities.Path, logger)

	return discovery.NewService(provider, crawlerService, cityService, limiter, config, logger), nil
}

func readLeads(path string) ([]models.BusinessRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read leads file: %w", err)
	}
	var leads []models.BusinessRecord
	if err := json.Unmarshal(data, &leads); err != nil {
		return nil, fmt.Errorf("failed to parse leads file: %w", err)
	}
	return leads, nil
}

func writeResults(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	data = append(data, '\n')

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Info().Str("path", *outputFile).Msg("Results written")
		return nil
	}

	_, err = os.Stdout.Write(data)
	return err
}
