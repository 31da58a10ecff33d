package osm2graph

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// PrepareGeoJSONLinestring returns GeoJSON representation of LineString
func PrepareGeoJSONLinestring(pts []GeoPoint) (string, error) {
	pts2d := make([][]float64, len(pts))
	for i := range pts {
		pts2d[i] = []float64{pts[i].Lon, pts[i].Lat}
	}
	b, err := geojson.NewLineStringGeometry(pts2d).MarshalJSON()
	if err != nil {
		return "", errors.Wrap(err, "Can not convert geometry to geojson format")
	}
	return string(b), nil
}
