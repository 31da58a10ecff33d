package osm2graph

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

type GeometryFormat uint16

const (
	GEOM_WKT = GeometryFormat(iota + 1)
	GEOM_GEOJSON
)

func (iotaIdx GeometryFormat) String() string {
	return [...]string{"wkt", "geojson"}[iotaIdx-1]
}

// ParseGeometryFormat Expected values: wkt / geojson
func ParseGeometryFormat(str string) (GeometryFormat, error) {
	switch strings.ToLower(str) {
	case "wkt":
		return GEOM_WKT, nil
	case "geojson":
		return GEOM_GEOJSON, nil
	default:
		return 0, errors.Errorf("Unknown geometry format: '%s'", str)
	}
}

// WriteGeometry writes every edge with its geometry as ';'-separated CSV
//
//	from_vertex_id - int64, compact ID of source vertex
//	to_vertex_id - int64, compact ID of target vertex
//	weight - float64, length of edge (meters)
//	max_speed - int, declared max speed (or default one)
//	osm_way_id - int64, ID of source OSM Way
//	was_one_way - if edge was one way
//	source_osm_id - int64, ID of source OSM Node
//	target_osm_id - int64, ID of target OSM Node
//	is_reversed - if edge belongs to reversed copy of two-way OSM Way
//	geom - geometry (WKT or GeoJSON representation)
func (graph *Graph) WriteGeometry(w io.Writer, format GeometryFormat) error {
	writer := csv.NewWriter(w)
	writer.Comma = ';'
	err := writer.Write([]string{"from_vertex_id", "to_vertex_id", "weight", "max_speed", "osm_way_id", "was_one_way", "source_osm_id", "target_osm_id", "is_reversed", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}
	err = graph.EachEdge(func(edge Edge) error {
		var geomStr string
		switch format {
		case GEOM_GEOJSON:
			var err error
			geomStr, err = PrepareGeoJSONLinestring(edge.Geom)
			if err != nil {
				return err
			}
		default:
			geomStr = PrepareWKTLinestring(edge.Geom)
		}
		return writer.Write([]string{
			fmt.Sprintf("%d", edge.Source),
			fmt.Sprintf("%d", edge.Target),
			fmt.Sprintf("%.1f", edge.CostMeters),
			fmt.Sprintf("%d", edge.MaxSpeed),
			fmt.Sprintf("%d", edge.WayID),
			fmt.Sprintf("%t", edge.WasOneway),
			fmt.Sprintf("%d", edge.SourceNodeID),
			fmt.Sprintf("%d", edge.TargetNodeID),
			fmt.Sprintf("%t", edge.IsReversed),
			geomStr,
		})
	})
	if err != nil {
		return errors.Wrap(err, "Can't write edges geometry")
	}
	writer.Flush()
	return writer.Error()
}
