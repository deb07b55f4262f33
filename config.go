package osm2net

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config Import run settings for the attribute resolution
/*
	Example:

	use_builtin_defaults: true
	scaled_freespeed: false
	default_speeds:           # road class -> free flow speed (m/s)
	  motorway: 31.3
	  residential: 8.3
*/
type Config struct {
	// Populate the defaults table with the built-in road class ladder
	UseBuiltinDefaults bool `yaml:"use_builtin_defaults"`
	// Scale resolved free flow speeds by the per-class freespeed factor
	ScaledFreespeed bool `yaml:"scaled_freespeed"`
	// Per-class free flow speed overrides (meters per second), keyed by
	// road class label. Consulted during built-in defaults population only.
	DefaultSpeeds map[string]float64 `yaml:"default_speeds"`
}

// LoadConfig Reads configuration from YAML file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read config file")
	}
	config := &Config{}
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, errors.Wrap(err, "Can't unmarshal config file")
	}
	return config, nil
}

// SpeedOverrides Converts the label-keyed speed overrides into the
// enumeration-keyed mapping consumed by NewDefaultsTable
func (config *Config) SpeedOverrides() (map[HighwayType]float64, error) {
	speeds := make(map[HighwayType]float64, len(config.DefaultSpeeds))
	for name, speed := range config.DefaultSpeeds {
		highwayType, err := ParseHighwayType(name)
		if err != nil {
			return nil, errors.Wrap(err, "Bad road class in `default_speeds`")
		}
		speeds[highwayType] = speed
	}
	return speeds, nil
}

// DefaultsTable Builds defaults table according to the configuration
func (config *Config) DefaultsTable() (*DefaultsTable, error) {
	speeds, err := config.SpeedOverrides()
	if err != nil {
		return nil, errors.Wrap(err, "Can't prepare speed overrides")
	}
	return NewDefaultsTable(config.UseBuiltinDefaults, speeds), nil
}
