package osm2graph

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	errMissingAttribute = errors.New("missing attribute")
)

// NodeError describes single node which has been skipped
type NodeError struct {
	ID    string
	Field string
	Value string
	Err   error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("node '%s': can't use '%s' value '%s': %s", e.ID, e.Field, e.Value, e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}

// parseNode extracts identifier and coordinates of node element
func parseNode(elem Element) (osm.NodeID, float64, float64, error) {
	idText, _ := elem.Attr("id")
	id, err := strconv.ParseInt(strings.TrimSpace(idText), 10, 64)
	if err != nil {
		return 0, 0, 0, &NodeError{ID: idText, Field: "id", Value: idText, Err: err}
	}
	coords := [2]float64{}
	for i, field := range [2]string{"lat", "lon"} {
		text, ok := elem.Attr(field)
		if !ok {
			return 0, 0, 0, &NodeError{ID: idText, Field: field, Err: errMissingAttribute}
		}
		coords[i], err = strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return 0, 0, 0, &NodeError{ID: idText, Field: field, Value: text, Err: err}
		}
	}
	return osm.NodeID(id), coords[0], coords[1], nil
}

// prepareNodes fills node table with every node of the document.
// Nodes which can't be parsed are reported and skipped
func (conv *Converter) prepareNodes(doc Document, stats *Stats) (*NodeTable, error) {
	conv.logger.Info("Scanning nodes...")
	st := time.Now()
	nodes := NewNodeTable()
	err := doc.EachNode(func(elem Element) error {
		id, lat, lon, err := parseNode(elem)
		if err != nil {
			stats.NodesSkipped++
			conv.logger.Warn("Skip node", zap.Error(err))
			return nil
		}
		err = nodes.Insert(id, lat, lon)
		if err != nil {
			stats.NodesSkipped++
			conv.logger.Warn("Skip node", zap.Error(err))
			return nil
		}
		stats.NodesParsed++
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "Can't scan nodes")
	}
	conv.logger.Info("Done", zap.Duration("elapsed", time.Since(st)), zap.Int("nodes", nodes.Len()), zap.Int("skipped", stats.NodesSkipped))
	return nodes, nil
}

// compactIdentifiers assigns dense zero-based identifiers to used nodes in table order.
// Returns number of assigned identifiers
func compactIdentifiers(nodes *NodeTable) int64 {
	newID := int64(0)
	nodes.Each(func(node *Node) bool {
		if !node.used {
			return true
		}
		node.compactID = newID
		newID++
		return true
	})
	return newID
}
