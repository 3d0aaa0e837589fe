// Package cities loads the static city tier table used to bucket
// discovered leads by market importance.
package cities

import (
	"os"
	"strings"

	"github.com/ternarybob/arbor"
	"gopkg.in/yaml.v3"

	"github.com/ternarybob/reperio/internal/models"
)

// tierOrder fixes iteration order so GetAllCities output is stable.
var tierOrder = []models.Tier{models.TierOne, models.TierTwo, models.TierThree}

// Service holds the tier table loaded once at startup. A missing resource
// yields three empty tiers, not an error.
type Service struct {
	tiers  map[models.Tier][]string
	logger arbor.ILogger
}

type tierFile struct {
	TierOne   []string `yaml:"tier_1"`
	TierTwo   []string `yaml:"tier_2"`
	TierThree []string `yaml:"tier_3"`
}

// NewService loads the tier table from the given YAML resource.
func NewService(path string, logger arbor.ILogger) *Service {
	s := &Service{
		tiers: map[models.Tier][]string{
			models.TierOne:   {},
			models.TierTwo:   {},
			models.TierThree: {},
		},
		logger: logger,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("City tier table not found, using empty tiers")
		return s
	}

	var parsed tierFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Failed to parse city tier table, using empty tiers")
		return s
	}

	s.tiers[models.TierOne] = parsed.TierOne
	s.tiers[models.TierTwo] = parsed.TierTwo
	s.tiers[models.TierThree] = parsed.TierThree

	logger.Debug().
		Int("tier_1", len(parsed.TierOne)).
		Int("tier_2", len(parsed.TierTwo)).
		Int("tier_3", len(parsed.TierThree)).
		Msg("Loaded city tier table")

	return s
}

// TierFor returns the tier a city belongs to, defaulting to tier_2 when
// the city is not listed.
func (s *Service) TierFor(city string) models.Tier {
	for _, tier := range tierOrder {
		for _, name := range s.tiers[tier] {
			if strings.EqualFold(name, city) {
				return tier
			}
		}
	}
	return models.TierTwo
}

// GetAllCities lists every configured city with its tier, tier_1 first.
func (s *Service) GetAllCities() []models.CityInfo {
	cities := make([]models.CityInfo, 0)
	for _, tier := range tierOrder {
		for _, name := range s.tiers[tier] {
			cities = append(cities, models.CityInfo{Name: name, Tier: tier})
		}
	}
	return cities
}
