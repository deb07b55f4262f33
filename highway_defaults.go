package osm2net

// Freespeed ratios of "_link" variants relative to their parent class.
const (
	motorwayLinkRatio  = 80.0 / 120.0
	primaryLinkRatio   = 60.0 / 80.0
	trunkLinkRatio     = 50.0 / 80.0
	secondaryLinkRatio = 0.66
	tertiaryLinkRatio  = 0.66
)

// HighwayDefaults Bundle of default link attributes for a single road class
type HighwayDefaults struct {
	// Hierarchy layer the road class appears in. Lower is more important.
	// Informational only, carries no decision logic.
	Hierarchy int
	// Number of lanes in each direction
	LanesPerDirection float64
	// Free flow speed (meters per second)
	Freespeed float64
	// Scaling factor for the free flow speed. Applied only when scaled
	// freespeed is enabled on the resolver.
	FreespeedFactor float64
	// Capacity per lane (vehicles per hour)
	LaneCapacity float64
	// Default directionality of the road class
	Oneway bool
}

// DefaultsTable Maps road class labels to their default link attributes.
// Populated once at construction time and read-only afterwards, so it may be
// shared between concurrent resolver calls.
type DefaultsTable struct {
	highwayDefaults map[string]HighwayDefaults
}

// NewDefaultsTable Prepares defaults table for the link attributes resolution
/*
	When useBuiltinDefaults is set the table is filled with the built-in
	ladder of road classes. The provided speeds mapping overrides the free
	flow speed per class; classes absent from the mapping fall back to fixed
	reference speeds (miles per hour, converted). Lane capacities of the
	built-in ladder are fixed and can't be overridden via speeds; use
	SetHighwayDefaults to replace whole bundles instead.

	speeds may be nil.
*/
func NewDefaultsTable(useBuiltinDefaults bool, speeds map[HighwayType]float64) *DefaultsTable {
	table := &DefaultsTable{
		highwayDefaults: make(map[string]HighwayDefaults),
	}
	if !useBuiltinDefaults {
		return table
	}
	speedOrDefault := func(highwayType HighwayType, fallback float64) float64 {
		if speed, ok := speeds[highwayType]; ok {
			return speed
		}
		return fallback
	}
	table.SetHighwayDefaults(1, "motorway", 2, speedOrDefault(HIGHWAY_MOTORWAY, milesPerHourToMetersPerSecond(75)), 1.0, 2500, true)
	table.SetHighwayDefaults(1, "motorway_link", 1, speedOrDefault(HIGHWAY_MOTORWAY_LINK, motorwayLinkRatio*milesPerHourToMetersPerSecond(75)), 1.0, 2000, true)
	table.SetHighwayDefaults(3, "primary", 1, speedOrDefault(HIGHWAY_PRIMARY, milesPerHourToMetersPerSecond(65)), 1.0, 2300, false)
	table.SetHighwayDefaults(3, "primary_link", 1, speedOrDefault(HIGHWAY_PRIMARY_LINK, primaryLinkRatio*milesPerHourToMetersPerSecond(65)), 1.0, 1800, false)
	table.SetHighwayDefaults(2, "trunk", 1, speedOrDefault(HIGHWAY_TRUNK, milesPerHourToMetersPerSecond(60)), 1.0, 2200, false)
	table.SetHighwayDefaults(2, "trunk_link", 1, speedOrDefault(HIGHWAY_TRUNK_LINK, trunkLinkRatio*milesPerHourToMetersPerSecond(60)), 1.0, 1500, false)
	table.SetHighwayDefaults(4, "secondary", 1, speedOrDefault(HIGHWAY_SECONDARY, milesPerHourToMetersPerSecond(60)), 1.0, 2200, false)
	table.SetHighwayDefaults(4, "secondary_link", 1, speedOrDefault(HIGHWAY_SECONDARY_LINK, secondaryLinkRatio*milesPerHourToMetersPerSecond(60)), 1.0, 1500, false)
	table.SetHighwayDefaults(5, "tertiary", 1, speedOrDefault(HIGHWAY_TERTIARY, milesPerHourToMetersPerSecond(55)), 1.0, 2100, false)
	table.SetHighwayDefaults(5, "tertiary_link", 1, speedOrDefault(HIGHWAY_TERTIARY_LINK, tertiaryLinkRatio*milesPerHourToMetersPerSecond(55)), 1.0, 1500, false)
	table.SetHighwayDefaults(6, "minor", 1, speedOrDefault(HIGHWAY_MINOR, milesPerHourToMetersPerSecond(25)), 1.0, 1000, false)
	table.SetHighwayDefaults(6, "residential", 1, speedOrDefault(HIGHWAY_RESIDENTIAL, milesPerHourToMetersPerSecond(25)), 1.0, 1000, false)
	table.SetHighwayDefaults(6, "living_street", 1, speedOrDefault(HIGHWAY_LIVING_STREET, milesPerHourToMetersPerSecond(25)), 1.0, 1000, false)
	table.SetHighwayDefaults(6, "unclassified", 1, speedOrDefault(HIGHWAY_UNCLASSIFIED, milesPerHourToMetersPerSecond(28)), 1.0, 800, false)
	return table
}

// SetHighwayDefaults Inserts or replaces the defaults bundle for given road class
/*
	Last write wins. Values are not validated: callers are trusted, negative
	or zero values propagate as-is into resolved links.
*/
func (table *DefaultsTable) SetHighwayDefaults(hierarchy int, highwayType string, lanesPerDirection, freespeed, freespeedFactor, laneCapacity float64, oneway bool) {
	table.highwayDefaults[highwayType] = HighwayDefaults{
		Hierarchy:         hierarchy,
		LanesPerDirection: lanesPerDirection,
		Freespeed:         freespeed,
		FreespeedFactor:   freespeedFactor,
		LaneCapacity:      laneCapacity,
		Oneway:            oneway,
	}
}

// Get Returns the defaults bundle for given road class label
func (table *DefaultsTable) Get(highwayType string) (HighwayDefaults, bool) {
	defaults, ok := table.highwayDefaults[highwayType]
	return defaults, ok
}

// Len Returns number of road classes in the table
func (table *DefaultsTable) Len() int {
	return len(table.highwayDefaults)
}
