package osm2graph

import (
	"context"
	"io"
	"strconv"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
)

type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

type pbfDocument struct {
	nodes []*osm.Node
	ways  []*osm.Way
}

func readPBF(ctx context.Context, r io.Reader, procs int) (*pbfDocument, error) {
	var scanner OSMScanner = osmpbf.New(ctx, r, procs)
	defer scanner.Close()

	data := pbfDocument{
		nodes: []*osm.Node{},
		ways:  []*osm.Way{},
	}
	for scanner.Scan() {
		switch obj := scanner.Object().(type) {
		case *osm.Node:
			data.nodes = append(data.nodes, obj)
		case *osm.Way:
			data.ways = append(data.ways, obj)
		}
	}
	err := scanner.Err()
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (data *pbfDocument) EachNode(fn func(node Element) error) error {
	for _, node := range data.nodes {
		if err := fn(pbfNode{node: node}); err != nil {
			return err
		}
	}
	return nil
}

func (data *pbfDocument) EachWay(match func(tags osm.Tags) bool, fn func(way WayElement) error) error {
	for _, way := range data.ways {
		if !match(way.Tags) {
			continue
		}
		if err := fn(pbfWay{way: way}); err != nil {
			return err
		}
	}
	return nil
}

type pbfNode struct {
	node *osm.Node
}

func (elem pbfNode) Attr(key string) (string, bool) {
	switch key {
	case "id":
		return strconv.FormatInt(int64(elem.node.ID), 10), true
	case "lat":
		return strconv.FormatFloat(elem.node.Lat, 'f', -1, 64), true
	case "lon":
		return strconv.FormatFloat(elem.node.Lon, 'f', -1, 64), true
	}
	return "", false
}

type pbfWay struct {
	way *osm.Way
}

func (elem pbfWay) Attr(key string) (string, bool) {
	if key == "id" {
		return strconv.FormatInt(int64(elem.way.ID), 10), true
	}
	return "", false
}

func (elem pbfWay) Refs() []string {
	refs := make([]string, len(elem.way.Nodes))
	for i, wayNode := range elem.way.Nodes {
		refs[i] = strconv.FormatInt(int64(wayNode.ID), 10)
	}
	return refs
}

func (elem pbfWay) Tags() osm.Tags {
	return elem.way.Tags
}
