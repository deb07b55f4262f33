package osm2net

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "import.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(contents), 0644))
	return filename
}

func TestLoadConfig(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		config, err := LoadConfig(writeConfig(t, `
use_builtin_defaults: true
scaled_freespeed: true
default_speeds:
  motorway: 31.3
  residential: 8.3
`))
		require.NoError(t, err)
		assert.True(t, config.UseBuiltinDefaults)
		assert.True(t, config.ScaledFreespeed)
		assert.Equal(t, map[string]float64{"motorway": 31.3, "residential": 8.3}, config.DefaultSpeeds)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "use_builtin_defaults: [broken"))
		require.Error(t, err)
	})
}

func TestConfigSpeedOverrides(t *testing.T) {
	t.Run("converts labels to highway types", func(t *testing.T) {
		config := &Config{DefaultSpeeds: map[string]float64{
			"motorway":      31.3,
			"trunk_link":    12.0,
			"living_street": 4.2,
		}}
		speeds, err := config.SpeedOverrides()
		require.NoError(t, err)
		assert.Equal(t, map[HighwayType]float64{
			HIGHWAY_MOTORWAY:      31.3,
			HIGHWAY_TRUNK_LINK:    12.0,
			HIGHWAY_LIVING_STREET: 4.2,
		}, speeds)
	})

	t.Run("rejects unknown road class", func(t *testing.T) {
		config := &Config{DefaultSpeeds: map[string]float64{"autobahn": 42.0}}
		_, err := config.SpeedOverrides()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "autobahn")
	})
}

func TestConfigDefaultsTable(t *testing.T) {
	config := &Config{
		UseBuiltinDefaults: true,
		DefaultSpeeds:      map[string]float64{"residential": 8.3},
	}
	table, err := config.DefaultsTable()
	require.NoError(t, err)

	residential, ok := table.Get("residential")
	require.True(t, ok)
	assert.Equal(t, 8.3, residential.Freespeed)

	motorway, ok := table.Get("motorway")
	require.True(t, ok)
	assert.InDelta(t, milesPerHourToMetersPerSecond(75), motorway.Freespeed, 1e-9)
}

func TestParseHighwayType(t *testing.T) {
	highwayType, err := ParseHighwayType("secondary_link")
	require.NoError(t, err)
	assert.Equal(t, HIGHWAY_SECONDARY_LINK, highwayType)
	assert.Equal(t, "secondary_link", highwayType.String())

	_, err = ParseHighwayType("bridleway")
	require.Error(t, err)
}
