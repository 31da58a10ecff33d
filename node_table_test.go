package osm2graph

import (
	"testing"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

func TestNodeTableInsertionOrder(t *testing.T) {
	table := NewNodeTable()
	ids := []osm.NodeID{42, 7, 1000, 3}
	for i, id := range ids {
		if err := table.Insert(id, float64(i), float64(-i)); err != nil {
			t.Error(err)
		}
	}
	if table.Len() != len(ids) {
		t.Errorf("Table length must be %d, but got %d", len(ids), table.Len())
	}
	// Check twice: iteration must be restartable
	for pass := 0; pass < 2; pass++ {
		got := []osm.NodeID{}
		table.Each(func(node *Node) bool {
			got = append(got, node.ID)
			return true
		})
		if len(got) != len(ids) {
			t.Errorf("Pass %d: number of iterated nodes must be %d, but got %d", pass, len(ids), len(got))
			continue
		}
		for i := range ids {
			if got[i] != ids[i] {
				t.Errorf("Pass %d: node #%d must be %d, but got %d", pass, i, ids[i], got[i])
			}
		}
	}
}

func TestNodeTableDuplicate(t *testing.T) {
	table := NewNodeTable()
	if err := table.Insert(1, 10.0, 20.0); err != nil {
		t.Error(err)
	}
	err := table.Insert(1, 30.0, 40.0)
	if errors.Cause(err) != ErrDuplicateNode {
		t.Errorf("Duplicate insert must return ErrDuplicateNode, but got %v", err)
	}
	node, ok := table.Get(1)
	if !ok {
		t.Errorf("Node 1 must be present")
		return
	}
	if node.Lat != 10.0 || node.Lon != 20.0 {
		t.Errorf("First inserted node must win, but got %v", node.GeoPoint())
	}
	if table.Len() != 1 {
		t.Errorf("Table length must be 1, but got %d", table.Len())
	}
}

func TestNodeTableMarkUsed(t *testing.T) {
	table := NewNodeTable()
	table.Insert(1, 0, 0)
	table.Insert(2, 0, 0)
	if table.MarkUsed(3) {
		t.Errorf("Unknown node can't be marked as used")
	}
	if !table.MarkUsed(2) || !table.MarkUsed(2) {
		t.Errorf("Known node must be marked as used")
	}
	if table.UsedCount() != 1 {
		t.Errorf("Used count must be 1, but got %d", table.UsedCount())
	}
	node, _ := table.Get(1)
	if node.Used() {
		t.Errorf("Node 1 must not be used")
	}
	if _, ok := node.CompactID(); ok {
		t.Errorf("Compact ID must not be assigned before compaction")
	}
}

func TestNodeTableEachStops(t *testing.T) {
	table := NewNodeTable()
	for i := 1; i <= 5; i++ {
		table.Insert(osm.NodeID(i), 0, 0)
	}
	visited := 0
	table.Each(func(node *Node) bool {
		visited++
		return node.ID != 2
	})
	if visited != 2 {
		t.Errorf("Iteration must stop after 2 nodes, but visited %d", visited)
	}
}
