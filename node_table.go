package osm2graph

import (
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

var (
	ErrDuplicateNode = errors.New("duplicate node")
)

// NodeTable keeps every parsed node. Iteration order is insertion order,
// so compact identifiers are reproducible between runs.
type NodeTable struct {
	index map[osm.NodeID]int
	nodes []*Node
	used  int
}

func NewNodeTable() *NodeTable {
	return &NodeTable{
		index: make(map[osm.NodeID]int),
		nodes: []*Node{},
	}
}

// Insert adds node to the table. Table is left unchanged on duplicate ID
func (table *NodeTable) Insert(id osm.NodeID, lat, lon float64) error {
	if _, ok := table.index[id]; ok {
		return errors.Wrapf(ErrDuplicateNode, "node %d", id)
	}
	table.index[id] = len(table.nodes)
	table.nodes = append(table.nodes, &Node{
		ID:        id,
		Lat:       lat,
		Lon:       lon,
		compactID: noCompactID,
	})
	return nil
}

func (table *NodeTable) Get(id osm.NodeID) (*Node, bool) {
	idx, ok := table.index[id]
	if !ok {
		return nil, false
	}
	return table.nodes[idx], true
}

// MarkUsed flags node as referenced. Returns false for unknown ID
func (table *NodeTable) MarkUsed(id osm.NodeID) bool {
	node, ok := table.Get(id)
	if !ok {
		return false
	}
	if !node.used {
		node.used = true
		table.used++
	}
	return true
}

// Each calls fn for every node in insertion order until fn returns false
func (table *NodeTable) Each(fn func(node *Node) bool) {
	for _, node := range table.nodes {
		if !fn(node) {
			return
		}
	}
}

func (table *NodeTable) Len() int {
	return len(table.nodes)
}

func (table *NodeTable) UsedCount() int {
	return table.used
}
