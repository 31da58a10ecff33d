package osm2graph

import (
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// Graph is result of conversion: used nodes with compact identifiers and recorded ways
type Graph struct {
	Nodes    *NodeTable
	Ways     []*Way
	NodesNum int64
	EdgesNum int64

	defaultMaxSpeed int
}

// EachNode calls fn for every used node in compact identifier order
func (graph *Graph) EachNode(fn func(node *Node) error) error {
	var err error
	graph.Nodes.Each(func(node *Node) bool {
		if !node.used {
			return true
		}
		err = fn(node)
		return err == nil
	})
	return err
}

// EachEdge calls fn for every adjacent pair of nodes in every recorded way
func (graph *Graph) EachEdge(fn func(edge Edge) error) error {
	for _, way := range graph.Ways {
		maxSpeed := parseMaxSpeed(way.MaxSpeed, graph.defaultMaxSpeed)
		for i := 1; i < len(way.Nodes); i++ {
			source, err := graph.compactNode(way.Nodes[i-1])
			if err != nil {
				return err
			}
			target, err := graph.compactNode(way.Nodes[i])
			if err != nil {
				return err
			}
			sourcePt, targetPt := source.GeoPoint(), target.GeoPoint()
			err = fn(Edge{
				Source:       source.compactID,
				Target:       target.compactID,
				SourceNodeID: source.ID,
				TargetNodeID: target.ID,
				WayID:        way.ID,
				WasOneway:    way.WasOneway,
				IsReversed:   way.IsReversed,
				CostMeters:   greatCircleDistance(sourcePt, targetPt),
				MaxSpeed:     maxSpeed,
				Geom:         []GeoPoint{sourcePt, targetPt},
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// compactNode returns used node with assigned compact identifier
func (graph *Graph) compactNode(id osm.NodeID) (*Node, error) {
	node, ok := graph.Nodes.Get(id)
	if !ok {
		return nil, errors.Errorf("Missing node with id: %d", id)
	}
	if _, ok := node.CompactID(); !ok {
		return nil, errors.Errorf("Node with id %d has no compact identifier", id)
	}
	return node, nil
}
