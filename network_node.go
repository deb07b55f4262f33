package osm2net

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

/* Nodes stuff */
type NetworkNodeID int64

// NetworkNode Vertex of the target graph. Created by the topology
// construction collaborator; the resolver only checks its presence.
type NetworkNode struct {
	ID        NetworkNodeID
	OsmNodeID osm.NodeID
	Geom      orb.Point
}
