package osm2graph

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

const (
	earthRadius = 6371000.0 // meters
	pi180       = math.Pi / 180.0
)

// GeoPoint representation of point on Earth
type GeoPoint struct {
	Lat float64
	Lon float64
}

// String returns pretty printed value for for GeoPoint
func (gp GeoPoint) String() string {
	return fmt.Sprintf("Lon: %f | Lat: %f", gp.Lon, gp.Lat)
}

// Point returns orb representation of GeoPoint (X == Lon, Y == Lat)
func (gp GeoPoint) Point() orb.Point {
	return orb.Point{gp.Lon, gp.Lat}
}

// degreesToRadians deg = r * pi / 180
func degreesToRadians(d float64) float64 {
	return d * pi180
}

// Distance returns great circle distance between two coordinates (meters)
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	return greatCircleDistance(GeoPoint{Lat: lat1, Lon: lon1}, GeoPoint{Lat: lat2, Lon: lon2})
}

// greatCircleDistance returns distance between two geo-points (meters)
func greatCircleDistance(p, q GeoPoint) float64 {
	diffLat := degreesToRadians(q.Lat - p.Lat)
	diffLon := degreesToRadians(q.Lon - p.Lon)
	lat1 := degreesToRadians(p.Lat)
	lat2 := degreesToRadians(q.Lat)
	a := math.Pow(math.Sin(diffLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(diffLon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return c * earthRadius
}
