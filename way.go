package osm2net

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// WaySegment Raw road segment handed to the resolver by the import pipeline.
/*
	The pipeline owns everything here: tags come straight from the OSM way,
	topology identifiers and endpoint node IDs come from the topology
	construction step, length and geometry from the geometry step, allowed
	modes from the mode filtering step.
*/
type WaySegment struct {
	// Tags of the original OSM way. Keys are case-sensitive.
	TagMap osm.Tags
	// ID of the original OSM way. Kept on the produced link as metadata only.
	OsmID osm.WayID
	// Caller-assigned topology identifier. The produced link's own ID.
	LinkID NetworkLinkID
	// Endpoint node identifiers. Both must be present in the target graph.
	SourceNodeID NetworkNodeID
	TargetNodeID NetworkNodeID
	// Length of the segment in meters
	LengthMeters float64
	// Travel mode labels allowed on the segment
	AllowedModes []string
	// Optional geometry. Carried through onto the produced link untouched.
	Geom orb.LineString
}
