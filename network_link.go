package osm2net

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

/* Links stuff */
type NetworkLinkID int64

// NetworkLink Edge of the target graph carrying resolved traffic attributes.
// Immutable once produced by the resolver.
type NetworkLink struct {
	geom         orb.LineString
	allowedModes map[string]struct{}
	linkType     string
	lengthMeters float64
	freeSpeed    float64
	capacity     float64
	lanes        float64
	id           NetworkLinkID
	osmWayID     osm.WayID
	sourceNodeID NetworkNodeID
	targetNodeID NetworkNodeID
}

// ID Returns link identifier. Derived from the caller-assigned topology
// identifier, not from the OSM way ID.
func (link *NetworkLink) ID() NetworkLinkID {
	return link.id
}

// SourceNodeID Returns identifier of the source node
func (link *NetworkLink) SourceNodeID() NetworkNodeID {
	return link.sourceNodeID
}

// TargetNodeID Returns identifier of the target node
func (link *NetworkLink) TargetNodeID() NetworkNodeID {
	return link.targetNodeID
}

// OsmWayID Returns ID of the OSM way the link originates from (metadata)
func (link *NetworkLink) OsmWayID() osm.WayID {
	return link.osmWayID
}

// LinkType Returns resolved road class label (e.g. "motorway")
func (link *NetworkLink) LinkType() string {
	return link.linkType
}

// LengthMeters Returns length of the link in meters
func (link *NetworkLink) LengthMeters() float64 {
	return link.lengthMeters
}

// FreeSpeed Returns free flow speed in meters per second
func (link *NetworkLink) FreeSpeed() float64 {
	return link.freeSpeed
}

// Capacity Returns throughput limit in vehicles per hour
// (lanes x capacity per lane)
func (link *NetworkLink) Capacity() float64 {
	return link.capacity
}

// Lanes Returns resolved number of lanes in link direction
func (link *NetworkLink) Lanes() float64 {
	return link.lanes
}

// AllowsMode Checks if given travel mode is allowed on the link
func (link *NetworkLink) AllowsMode(mode string) bool {
	_, ok := link.allowedModes[mode]
	return ok
}

// AllowedModes Returns sorted copy of allowed travel mode labels
func (link *NetworkLink) AllowedModes() []string {
	modes := make([]string, 0, len(link.allowedModes))
	for mode := range link.allowedModes {
		modes = append(modes, mode)
	}
	sort.Strings(modes)
	return modes
}

// Geom Returns geometry passed through from the raw segment. Never computed
// or reprojected here.
func (link *NetworkLink) Geom() orb.LineString {
	return link.geom
}
