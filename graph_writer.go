package osm2graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// WriteGraph writes graph in text format:
//
//	<number of nodes>
//	<number of edges>
//	<compact_id> <lat> <lon>          (one line per node)
//	<source> <target> <meters> <maxspeed>  (one line per edge)
func (graph *Graph) WriteGraph(w io.Writer) error {
	bw := bufio.NewWriter(w)
	_, err := fmt.Fprintf(bw, "%d\n%d\n", graph.NodesNum, graph.EdgesNum)
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}
	err = graph.EachNode(func(node *Node) error {
		_, err := fmt.Fprintf(bw, "%d %s %s\n", node.compactID, formatCoordinate(node.Lat), formatCoordinate(node.Lon))
		return err
	})
	if err != nil {
		return errors.Wrap(err, "Can't write nodes")
	}
	edgesWritten := int64(0)
	err = graph.EachEdge(func(edge Edge) error {
		edgesWritten++
		_, err := fmt.Fprintf(bw, "%d %d %s %d\n", edge.Source, edge.Target, strconv.FormatFloat(edge.CostMeters, 'f', 1, 64), edge.MaxSpeed)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "Can't write edges")
	}
	if edgesWritten != graph.EdgesNum {
		return errors.Errorf("Number of written edges %d differs from header %d", edgesWritten, graph.EdgesNum)
	}
	return errors.Wrap(bw.Flush(), "Can't flush graph")
}

// WriteMapping writes pairs '<osm_node_id> <compact_id>' for every used node
func (graph *Graph) WriteMapping(w io.Writer) error {
	bw := bufio.NewWriter(w)
	err := graph.EachNode(func(node *Node) error {
		_, err := fmt.Fprintf(bw, "%d %d\n", node.ID, node.compactID)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "Can't write mapping")
	}
	return errors.Wrap(bw.Flush(), "Can't flush mapping")
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
