package osm2graph

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// PrepareWKTLinestring returns WKT representation of LineString
func PrepareWKTLinestring(pts []GeoPoint) string {
	line := make(orb.LineString, len(pts))
	for i := range pts {
		line[i] = pts[i].Point()
	}
	return wkt.MarshalString(line)
}
