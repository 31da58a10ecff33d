package osm2graph

import (
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// prepareWays selects ways of allowed categories, resolves their nodes and marks them as used.
// Two-way roads produce additional reversed way
func (conv *Converter) prepareWays(doc Document, nodes *NodeTable, stats *Stats) ([]*Way, error) {
	conv.logger.Info("Scanning ways...")
	st := time.Now()
	ways := []*Way{}
	defaultMaxSpeed := strconv.Itoa(conv.cfg.DefaultMaxSpeed)
	err := doc.EachWay(conv.cfg.Match, func(elem WayElement) error {
		var wayID osm.WayID
		if idText, ok := elem.Attr("id"); ok {
			if id, err := strconv.ParseInt(strings.TrimSpace(idText), 10, 64); err == nil {
				wayID = osm.WayID(id)
			}
		}

		refs := elem.Refs()
		preparedWay := &Way{
			ID:    wayID,
			Nodes: make([]osm.NodeID, 0, len(refs)),
		}
		for _, ref := range refs {
			nodeID, ok := resolveRef(nodes, ref)
			if !ok {
				// Dangling references are expected for clipped exports
				continue
			}
			preparedWay.Nodes = append(preparedWay.Nodes, nodeID)
		}
		if len(preparedWay.Nodes) < 2 {
			stats.WaysDiscarded++
			conv.logger.Debug("Way has not enough nodes", zap.Int64("way_id", int64(wayID)), zap.Int("nodes", len(preparedWay.Nodes)))
			return nil
		}

		tags := elem.Tags()
		maxSpeed, ok := lastTagValue(tags, "maxspeed")
		if !ok {
			stats.WaysWithoutMaxSpeed++
			maxSpeed = defaultMaxSpeed
		}
		preparedWay.MaxSpeed = maxSpeed

		for _, nodeID := range preparedWay.Nodes {
			nodes.MarkUsed(nodeID)
		}

		preparedWay.WasOneway = isOneway(tags)
		ways = append(ways, preparedWay)
		stats.Edges += preparedWay.edgesNum()
		if !preparedWay.WasOneway {
			reverseWay := preparedWay.reversed()
			ways = append(ways, reverseWay)
			stats.Edges += reverseWay.edgesNum()
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "Can't scan ways")
	}
	stats.Ways = len(ways)
	conv.logger.Info("Done", zap.Duration("elapsed", time.Since(st)), zap.Int("ways", len(ways)), zap.Int64("edges", stats.Edges))
	return ways, nil
}

// resolveRef returns node identifier if reference points to known node
func resolveRef(nodes *NodeTable, ref string) (osm.NodeID, bool) {
	id, err := strconv.ParseInt(ref, 10, 64)
	if err != nil {
		return 0, false
	}
	if _, ok := nodes.Get(osm.NodeID(id)); !ok {
		return 0, false
	}
	return osm.NodeID(id), true
}

// lastTagValue returns value of the last tag with given key
func lastTagValue(tags osm.Tags, key string) (string, bool) {
	value, found := "", false
	for _, tag := range tags {
		if tag.Key == key {
			value, found = tag.Value, true
		}
	}
	return value, found
}

// isOneway returns true if any `oneway` tag equals 'yes' (case insensitive)
func isOneway(tags osm.Tags) bool {
	for _, tag := range tags {
		if tag.Key == "oneway" && strings.EqualFold(tag.Value, "yes") {
			return true
		}
	}
	return false
}
