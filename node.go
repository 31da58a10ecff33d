package osm2graph

import (
	"github.com/paulmach/osm"
)

const noCompactID = int64(-1)

type Node struct {
	ID  osm.NodeID
	Lat float64
	Lon float64

	used      bool
	compactID int64
}

// Used returns true if node is referenced by at least one recorded way
func (node *Node) Used() bool {
	return node.used
}

// CompactID returns dense identifier of the node. Second value is false if none has been assigned
func (node *Node) CompactID() (int64, bool) {
	return node.compactID, node.compactID != noCompactID
}

func (node *Node) GeoPoint() GeoPoint {
	return GeoPoint{Lat: node.Lat, Lon: node.Lon}
}
