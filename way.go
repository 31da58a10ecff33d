package osm2graph

import (
	"github.com/paulmach/osm"
)

// Way is a road segment with resolved node references
type Way struct {
	ID         osm.WayID
	Nodes      []osm.NodeID
	MaxSpeed   string
	WasOneway  bool // Former OSM object was one way.
	IsReversed bool // Way has been synthesized from two-way OSM object
}

// reversed returns twin with reversed order of nodes
func (way *Way) reversed() *Way {
	inputLen := len(way.Nodes)
	nodes := make([]osm.NodeID, inputLen)
	for i, n := range way.Nodes {
		nodes[inputLen-i-1] = n
	}
	return &Way{
		ID:         way.ID,
		Nodes:      nodes,
		MaxSpeed:   way.MaxSpeed,
		WasOneway:  way.WasOneway,
		IsReversed: !way.IsReversed,
	}
}

// edgesNum returns number of adjacent node pairs
func (way *Way) edgesNum() int64 {
	if len(way.Nodes) < 2 {
		return 0
	}
	return int64(len(way.Nodes) - 1)
}
