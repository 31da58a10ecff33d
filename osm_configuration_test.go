package osm2graph

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/osm"
)

func TestCheckTag(t *testing.T) {
	cfg := DefaultConfiguration()
	allowed := []string{
		"motorway", "trunk", "primary", "secondary", "tertiary", "unclassified", "residential", "service",
		"motorway_link", "trunk_link", "primary_link", "secondary_link", "tertiary_link",
		"living_street", "track", "rest_area", "services",
	}
	for _, tag := range allowed {
		if !cfg.CheckTag(tag) {
			t.Errorf("Tag '%s' must be allowed", tag)
		}
	}
	for _, tag := range []string{"footway", "cycleway", "residential_link", "Primary", "", "bus_stop"} {
		if cfg.CheckTag(tag) {
			t.Errorf("Tag '%s' must not be allowed", tag)
		}
	}
}

func TestMatch(t *testing.T) {
	cfg := DefaultConfiguration()
	cases := []struct {
		tags     osm.Tags
		expected bool
	}{
		{osm.Tags{{Key: "highway", Value: "primary"}}, true},
		{osm.Tags{{Key: "name", Value: "Main"}, {Key: "highway", Value: "track"}}, true},
		{osm.Tags{{Key: "highway", Value: "footway"}}, false},
		{osm.Tags{{Key: "Highway", Value: "primary"}}, false},
		{osm.Tags{{Key: "railway", Value: "primary"}}, false},
		{osm.Tags{}, false},
	}
	for i, c := range cases {
		if cfg.Match(c.tags) != c.expected {
			t.Errorf("Case #%d: match for %v must be %t", i, c.tags, c.expected)
		}
	}
}

func TestParseConfiguration(t *testing.T) {
	data := []byte(`
highways:
  - footway
  - cycleway
default_maxspeed: 20
`)
	cfg, err := ParseConfiguration(data)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.EntityName != DEFAULT_ENTITY {
		t.Errorf("Entity must be '%s', but got '%s'", DEFAULT_ENTITY, cfg.EntityName)
	}
	if cfg.DefaultMaxSpeed != 20 {
		t.Errorf("Default max speed must be 20, but got %d", cfg.DefaultMaxSpeed)
	}
	if len(cfg.Highways) != 2 || cfg.Highways[0] != HIGHWAY_FOOTWAY || cfg.Highways[1] != HIGHWAY_CYCLEWAY {
		t.Errorf("Wrong highways: %v", cfg.Highways)
	}
	if cfg.CheckTag("primary") {
		t.Errorf("Tag 'primary' must not be allowed")
	}
}

func TestParseConfigurationDefaults(t *testing.T) {
	cfg, err := ParseConfiguration([]byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultMaxSpeed != DEFAULT_MAX_SPEED {
		t.Errorf("Default max speed must be %d, but got %d", DEFAULT_MAX_SPEED, cfg.DefaultMaxSpeed)
	}
	if len(cfg.Highways) != len(DefaultHighways) {
		t.Errorf("Highways must be default ones, but got %v", cfg.Highways)
	}
}

func TestParseConfigurationErrors(t *testing.T) {
	bad := []string{
		"highways: [primary, spaceway]",
		"default_maxspeed: -10",
		"highways: primary: [",
	}
	for _, data := range bad {
		if _, err := ParseConfiguration([]byte(data)); err == nil {
			t.Errorf("Configuration '%s' must produce an error", data)
		}
	}
}

func TestLoadConfiguration(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "conf.yaml")
	err := os.WriteFile(fname, []byte("entity: highway\nhighways: [motorway]\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfiguration(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.CheckTag("motorway") || cfg.CheckTag("trunk") {
		t.Errorf("Only 'motorway' must be allowed, but got %v", cfg.Highways)
	}
	_, err = LoadConfiguration(fname + ".missing")
	if err == nil {
		t.Errorf("Missing file must produce an error")
	}
}

func TestParseHighwayTypes(t *testing.T) {
	types, err := ParseHighwayTypes([]string{"primary", "rest_area", "track", "track"})
	if err != nil {
		t.Fatal(err)
	}
	if len(types) != 4 || types[1] != HIGHWAY_REST_AREA || types[1].String() != "rest_area" {
		t.Errorf("Wrong highway types: %v", types)
	}
	types, err = ParseHighwayTypes(strings.Split("primary, secondary ,track", ","))
	if err != nil {
		t.Fatal(err)
	}
	if len(types) != 3 || types[0] != HIGHWAY_PRIMARY || types[1] != HIGHWAY_SECONDARY || types[2] != HIGHWAY_TRACK {
		t.Errorf("Spaces around tags must be ignored, but got %v", types)
	}
	_, err = ParseHighwayTypes([]string{"primary", "unknown"})
	if err == nil {
		t.Errorf("Unknown highway type must produce an error")
	}
}
