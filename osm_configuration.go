package osm2graph

import (
	"os"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// DEFAULT_MAX_SPEED is used for ways which have no declared (or parsable) `maxspeed` tag
	DEFAULT_MAX_SPEED = 150
	DEFAULT_ENTITY    = "highway"
)

// Configuration Allows to filter ways by certain tags from OSM data
type Configuration struct {
	EntityName      string        `yaml:"entity"` // Currrently we support 'highway' only
	Highways        []HighwayType `yaml:"highways"`
	DefaultMaxSpeed int           `yaml:"default_maxspeed"`
}

// DefaultConfiguration returns configuration with default allow-list of road categories
func DefaultConfiguration() *Configuration {
	highways := make([]HighwayType, len(DefaultHighways))
	copy(highways, DefaultHighways)
	return &Configuration{
		EntityName:      DEFAULT_ENTITY,
		Highways:        highways,
		DefaultMaxSpeed: DEFAULT_MAX_SPEED,
	}
}

// LoadConfiguration reads YAML file. Omitted fields are taken from DefaultConfiguration()
func LoadConfiguration(fileName string) (*Configuration, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read configuration file")
	}
	return ParseConfiguration(data)
}

// ParseConfiguration parses YAML contents. Omitted fields are taken from DefaultConfiguration()
func ParseConfiguration(data []byte) (*Configuration, error) {
	cfg := DefaultConfiguration()
	cfg.Highways = nil
	err := yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "Can't parse configuration")
	}
	if cfg.Highways == nil {
		cfg.Highways = DefaultConfiguration().Highways
	}
	if cfg.EntityName == "" {
		cfg.EntityName = DEFAULT_ENTITY
	}
	if cfg.DefaultMaxSpeed <= 0 {
		return nil, errors.Errorf("Default max speed should be positive, got %d", cfg.DefaultMaxSpeed)
	}
	return cfg, nil
}

// CheckTag Checks if incoming tag is represented in configuration
func (cfg *Configuration) CheckTag(tag string) bool {
	highway := getHighwayType(tag)
	if highway == 0 {
		return false
	}
	for i := range cfg.Highways {
		if cfg.Highways[i] == highway {
			return true
		}
	}
	return false
}

// Match returns true if any of tags has configured key and allowed value.
// Key comparison is case-sensitive.
func (cfg *Configuration) Match(tags osm.Tags) bool {
	for _, tag := range tags {
		if tag.Key == cfg.EntityName && cfg.CheckTag(tag.Value) {
			return true
		}
	}
	return false
}
