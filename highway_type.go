package osm2graph

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type HighwayType uint16

const (
	HIGHWAY_MOTORWAY = HighwayType(iota + 1)
	HIGHWAY_MOTORWAY_LINK
	HIGHWAY_TRUNK
	HIGHWAY_TRUNK_LINK
	HIGHWAY_PRIMARY
	HIGHWAY_PRIMARY_LINK
	HIGHWAY_SECONDARY
	HIGHWAY_SECONDARY_LINK
	HIGHWAY_TERTIARY
	HIGHWAY_TERTIARY_LINK
	HIGHWAY_RESIDENTIAL
	HIGHWAY_RESIDENTIAL_LINK
	HIGHWAY_LIVING_STREET
	HIGHWAY_SERVICE
	HIGHWAY_SERVICES
	HIGHWAY_REST_AREA
	HIGHWAY_CYCLEWAY
	HIGHWAY_FOOTWAY
	HIGHWAY_PEDESTRIAN
	HIGHWAY_STEPS
	HIGHWAY_PATH
	HIGHWAY_TRACK
	HIGHWAY_ROAD
	HIGHWAY_UNCLASSIFIED
)

func (iotaIdx HighwayType) String() string {
	return [...]string{"motorway", "motorway_link", "trunk", "trunk_link", "primary", "primary_link", "secondary", "secondary_link", "tertiary", "tertiary_link", "residential", "residential_link", "living_street", "service", "services", "rest_area", "cycleway", "footway", "pedestrian", "steps", "path", "track", "road", "unclassified"}[iotaIdx-1]
}

// MarshalYAML writes highway type as its OSM tag value
func (iotaIdx HighwayType) MarshalYAML() (interface{}, error) {
	return iotaIdx.String(), nil
}

// UnmarshalYAML reads highway type from its OSM tag value
func (iotaIdx *HighwayType) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	found := getHighwayType(str)
	if found == 0 {
		return errors.Errorf("Unknown highway type: '%s'", str)
	}
	*iotaIdx = found
	return nil
}

func getHighwayType(str string) HighwayType {
	if found, ok := highwaysTypes[str]; ok {
		return found
	}
	return 0
}

// ParseHighwayTypes converts OSM tag values into highway types. Unknown values are reported as error
func ParseHighwayTypes(values []string) ([]HighwayType, error) {
	types := make([]HighwayType, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		found := getHighwayType(value)
		if found == 0 {
			return nil, errors.Errorf("Unknown highway type: '%s'", value)
		}
		types = append(types, found)
	}
	return types, nil
}

var (
	// DefaultHighways is the set of road categories which form routable graph by default.
	// 'track' is listed twice on purpose: repeated entries must not change anything.
	DefaultHighways = []HighwayType{
		HIGHWAY_MOTORWAY, HIGHWAY_TRUNK, HIGHWAY_PRIMARY, HIGHWAY_SECONDARY, HIGHWAY_TERTIARY, HIGHWAY_UNCLASSIFIED, HIGHWAY_RESIDENTIAL, HIGHWAY_SERVICE,
		HIGHWAY_MOTORWAY_LINK, HIGHWAY_TRUNK_LINK, HIGHWAY_PRIMARY_LINK, HIGHWAY_SECONDARY_LINK, HIGHWAY_TERTIARY_LINK,
		HIGHWAY_LIVING_STREET, HIGHWAY_TRACK,
		HIGHWAY_TRACK,
		HIGHWAY_REST_AREA, HIGHWAY_SERVICES,
	}

	highwaysTypes = map[string]HighwayType{
		"motorway":         HIGHWAY_MOTORWAY,
		"motorway_link":    HIGHWAY_MOTORWAY_LINK,
		"trunk":            HIGHWAY_TRUNK,
		"trunk_link":       HIGHWAY_TRUNK_LINK,
		"primary":          HIGHWAY_PRIMARY,
		"primary_link":     HIGHWAY_PRIMARY_LINK,
		"secondary":        HIGHWAY_SECONDARY,
		"secondary_link":   HIGHWAY_SECONDARY_LINK,
		"tertiary":         HIGHWAY_TERTIARY,
		"tertiary_link":    HIGHWAY_TERTIARY_LINK,
		"residential":      HIGHWAY_RESIDENTIAL,
		"residential_link": HIGHWAY_RESIDENTIAL_LINK,
		"living_street":    HIGHWAY_LIVING_STREET,
		"service":          HIGHWAY_SERVICE,
		"services":         HIGHWAY_SERVICES,
		"rest_area":        HIGHWAY_REST_AREA,
		"cycleway":         HIGHWAY_CYCLEWAY,
		"footway":          HIGHWAY_FOOTWAY,
		"pedestrian":       HIGHWAY_PEDESTRIAN,
		"steps":            HIGHWAY_STEPS,
		"path":             HIGHWAY_PATH,
		"track":            HIGHWAY_TRACK,
		"road":             HIGHWAY_ROAD,
		"unclassified":     HIGHWAY_UNCLASSIFIED,
	}
)
