package osm2net

import (
	"github.com/pkg/errors"
)

// HighwayType is the closed set of road classes covered by the built-in
// defaults ladder. It keys the per-class speed override mapping.
type HighwayType uint16

const (
	HIGHWAY_MOTORWAY = HighwayType(iota + 1)
	HIGHWAY_MOTORWAY_LINK
	HIGHWAY_TRUNK
	HIGHWAY_TRUNK_LINK
	HIGHWAY_PRIMARY
	HIGHWAY_PRIMARY_LINK
	HIGHWAY_SECONDARY
	HIGHWAY_SECONDARY_LINK
	HIGHWAY_TERTIARY
	HIGHWAY_TERTIARY_LINK
	HIGHWAY_MINOR
	HIGHWAY_RESIDENTIAL
	HIGHWAY_LIVING_STREET
	HIGHWAY_UNCLASSIFIED
)

func (iotaIdx HighwayType) String() string {
	return [...]string{"motorway", "motorway_link", "trunk", "trunk_link", "primary", "primary_link", "secondary", "secondary_link", "tertiary", "tertiary_link", "minor", "residential", "living_street", "unclassified"}[iotaIdx-1]
}

var highwayTypeByName = map[string]HighwayType{
	"motorway":       HIGHWAY_MOTORWAY,
	"motorway_link":  HIGHWAY_MOTORWAY_LINK,
	"trunk":          HIGHWAY_TRUNK,
	"trunk_link":     HIGHWAY_TRUNK_LINK,
	"primary":        HIGHWAY_PRIMARY,
	"primary_link":   HIGHWAY_PRIMARY_LINK,
	"secondary":      HIGHWAY_SECONDARY,
	"secondary_link": HIGHWAY_SECONDARY_LINK,
	"tertiary":       HIGHWAY_TERTIARY,
	"tertiary_link":  HIGHWAY_TERTIARY_LINK,
	"minor":          HIGHWAY_MINOR,
	"residential":    HIGHWAY_RESIDENTIAL,
	"living_street":  HIGHWAY_LIVING_STREET,
	"unclassified":   HIGHWAY_UNCLASSIFIED,
}

// ParseHighwayType Returns highway type for given OSM highway tag value
func ParseHighwayType(name string) (HighwayType, error) {
	highwayType, ok := highwayTypeByName[name]
	if !ok {
		return 0, errors.Errorf("Unknown highway type: '%s'", name)
	}
	return highwayType, nil
}
