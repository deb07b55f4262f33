package osm2net

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const (
	tagHighway  = "highway"
	tagLanes    = "lanes"
	tagMaxspeed = "maxspeed"
	tagJunction = "junction"
	tagOneway   = "oneway"
)

// fallbackHighwayType Universal fallback road class. Must be present in the
// defaults table for resolution of unknown classes to work.
const fallbackHighwayType = "unclassified"

// LinkResolver Resolves link attributes for raw road segments
/*
	Combines per-class defaults with an ordered set of tag-based override
	rules. Safe for concurrent use: the defaults table is read-only after
	construction and the warn-once bookkeeping is guarded by a mutex.
*/
type LinkResolver struct {
	nodes           NodeChecker
	defaults        *DefaultsTable
	warnOutput      io.Writer
	scaledFreespeed bool

	mtx                 sync.Mutex
	unknownOnewayTags   map[string]struct{}
	unknownMaxspeedTags map[string]struct{}
	unknownLanesTags    map[string]struct{}
}

// NewLinkResolver Prepares resolver for given target graph and defaults table
func NewLinkResolver(nodes NodeChecker, defaults *DefaultsTable, options ...func(*LinkResolver)) *LinkResolver {
	resolver := &LinkResolver{
		nodes:               nodes,
		defaults:            defaults,
		warnOutput:          os.Stderr,
		scaledFreespeed:     false,
		unknownOnewayTags:   make(map[string]struct{}),
		unknownMaxspeedTags: make(map[string]struct{}),
		unknownLanesTags:    make(map[string]struct{}),
	}
	for _, option := range options {
		option(resolver)
	}
	return resolver
}

// WithScaledFreespeed Enables scaling of the resolved free flow speed by the
// class defaults' freespeed factor. Disabled by default.
func WithScaledFreespeed(scaledFreespeed bool) func(*LinkResolver) {
	return func(resolver *LinkResolver) {
		resolver.scaledFreespeed = scaledFreespeed
	}
}

// WithWarnOutput Redirects tag parsing warnings. Defaults to STDERR.
func WithWarnOutput(w io.Writer) func(*LinkResolver) {
	return func(resolver *LinkResolver) {
		resolver.warnOutput = w
	}
}

// CreateLink Resolves link attributes for the given raw segment
/*
	Seeds the working attributes from the defaults bundle of the segment's
	highway class (falling back to "unclassified" for absent or unknown
	classes) and applies tag overrides in fixed order: junction, oneway,
	oneway lanes correction, maxspeed, lanes.

	Unparseable tag values keep the seeded attribute and produce a single
	warning per distinct offending value for the lifetime of the resolver.
	The only error case is an endpoint node missing from the target graph;
	no link is produced then.
*/
func (resolver *LinkResolver) CreateLink(way *WaySegment) (*NetworkLink, error) {
	highway := way.TagMap.Find(tagHighway)
	if highway == "" {
		highway = fallbackHighwayType
	}
	defaults, ok := resolver.defaults.Get(highway)
	if !ok {
		defaults, ok = resolver.defaults.Get(fallbackHighwayType)
		if !ok {
			return nil, errors.Errorf("No defaults for highway type '%s' and no '%s' fallback in the table", highway, fallbackHighwayType)
		}
	}

	lanes := defaults.LanesPerDirection
	laneCapacity := defaults.LaneCapacity
	freespeed := defaults.Freespeed
	oneway := defaults.Oneway
	onewayReverse := false

	// Roundabouts are oneway no matter what the class defaults say
	if way.TagMap.Find(tagJunction) == "roundabout" {
		oneway = true
	}

	if onewayTag := way.TagMap.Find(tagOneway); onewayTag != "" {
		switch onewayTag {
		case "yes", "true", "1":
			oneway = true
		case "-1":
			oneway = false
			onewayReverse = true
		case "no":
			// explicit override of the class default
			oneway = false
		default:
			resolver.warnOnce(resolver.unknownOnewayTags, onewayTag, "Could not interpret `oneway` tag value '%s'. Way ID: '%d'. Ignoring it.", onewayTag, way.OsmID)
		}
	}

	// The one-direction default of these classes assumes a bidirectional
	// total of one lane, so oneway roads get two.
	switch strings.ToLower(highway) {
	case "trunk", "primary", "secondary":
		if (oneway || onewayReverse) && lanes == 1.0 {
			lanes = 2.0
		}
	}

	if maxspeedTag := way.TagMap.Find(tagMaxspeed); maxspeedTag != "" {
		var value float64
		var err error
		if strings.HasSuffix(maxspeedTag, "mph") {
			value, err = strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(maxspeedTag, "mph")), 64)
			if err == nil {
				freespeed = milesPerHourToMetersPerSecond(value)
			}
		} else {
			value, err = strconv.ParseFloat(maxspeedTag, 64)
			if err == nil {
				freespeed = kilometersPerHourToMetersPerSecond(value)
			}
		}
		if err != nil {
			resolver.warnOnce(resolver.unknownMaxspeedTags, maxspeedTag, "Could not parse `maxspeed` tag value '%s'. Way ID: '%d'. Ignoring it.", maxspeedTag, way.OsmID)
		}
	}

	if lanesTag := way.TagMap.Find(tagLanes); lanesTag != "" {
		totalLanes, err := strconv.ParseFloat(lanesTag, 64)
		if err != nil {
			resolver.warnOnce(resolver.unknownLanesTags, lanesTag, "Could not parse `lanes` tag value '%s'. Way ID: '%d'. Ignoring it.", lanesTag, way.OsmID)
		} else if totalLanes > 0 {
			lanes = totalLanes
			// The OSM `lanes` tag counts lanes of both directions, so
			// bidirectional roads get half of it per direction.
			if !oneway && !onewayReverse {
				lanes /= 2.0
			}
		}
	}

	capacity := lanes * laneCapacity

	if resolver.scaledFreespeed {
		freespeed *= defaults.FreespeedFactor
	}

	// Nodes outside the import extent are dropped earlier in the pipeline,
	// so a segment may reference nodes the graph never got.
	if !resolver.nodes.HasNode(way.SourceNodeID) {
		return nil, errors.Errorf("Source node '%d' is not in the network. Way ID: '%d'", way.SourceNodeID, way.OsmID)
	}
	if !resolver.nodes.HasNode(way.TargetNodeID) {
		return nil, errors.Errorf("Target node '%d' is not in the network. Way ID: '%d'", way.TargetNodeID, way.OsmID)
	}

	allowedModes := make(map[string]struct{}, len(way.AllowedModes))
	for _, mode := range way.AllowedModes {
		allowedModes[mode] = struct{}{}
	}
	geom := make(orb.LineString, len(way.Geom))
	copy(geom, way.Geom)

	return &NetworkLink{
		id:           way.LinkID,
		sourceNodeID: way.SourceNodeID,
		targetNodeID: way.TargetNodeID,
		osmWayID:     way.OsmID,
		linkType:     highway,
		geom:         geom,
		lengthMeters: way.LengthMeters,
		freeSpeed:    freespeed,
		capacity:     capacity,
		lanes:        lanes,
		allowedModes: allowedModes,
	}, nil
}

// warnOnce Reports the message for given offending value exactly once for the
// lifetime of the resolver
func (resolver *LinkResolver) warnOnce(seen map[string]struct{}, value string, format string, args ...interface{}) {
	resolver.mtx.Lock()
	defer resolver.mtx.Unlock()
	if _, ok := seen[value]; ok {
		return
	}
	seen[value] = struct{}{}
	fmt.Fprintf(resolver.warnOutput, "[WARNING]: "+format+"\n", args...)
}
