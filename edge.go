package osm2graph

import (
	"github.com/paulmach/osm"
)

// Edge is a directed connection between two adjacent nodes of recorded way
type Edge struct {
	Source       int64
	Target       int64
	SourceNodeID osm.NodeID
	TargetNodeID osm.NodeID
	WayID        osm.WayID
	WasOneway    bool
	IsReversed   bool
	CostMeters   float64
	MaxSpeed     int
	Geom         []GeoPoint
}
