package osm2graph

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestPrepareWKTLinestring(t *testing.T) {
	line := []GeoPoint{{Lat: 55.5, Lon: 37.25}, {Lat: 55.75, Lon: 37.5}}
	correct := "LINESTRING(37.25 55.5,37.5 55.75)"
	if got := PrepareWKTLinestring(line); got != correct {
		t.Errorf("WKT must be '%s', but got '%s'", correct, got)
	}
}

func TestPrepareGeoJSONLinestring(t *testing.T) {
	line := []GeoPoint{{Lat: 55.5, Lon: 37.25}, {Lat: 55.75, Lon: 37.5}}
	got, err := PrepareGeoJSONLinestring(line)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `"LineString"`) || !strings.Contains(got, "[37.25,55.5]") {
		t.Errorf("Wrong GeoJSON: '%s'", got)
	}
}

func TestParseGeometryFormat(t *testing.T) {
	if format, err := ParseGeometryFormat("GeoJSON"); err != nil || format != GEOM_GEOJSON {
		t.Errorf("Format must be geojson, but got %v (%v)", format, err)
	}
	if format, err := ParseGeometryFormat("wkt"); err != nil || format != GEOM_WKT {
		t.Errorf("Format must be wkt, but got %v (%v)", format, err)
	}
	if _, err := ParseGeometryFormat("kml"); err == nil {
		t.Errorf("Unknown format must produce an error")
	}
}

func TestWriteGeometry(t *testing.T) {
	doc, err := ReadDocument(context.Background(), strings.NewReader(sampleTwoWay), FORMAT_XML)
	if err != nil {
		t.Fatal(err)
	}
	graph, _, err := NewConverter().BuildGraph(doc)
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.Buffer{}
	err = graph.WriteGeometry(&buf, GEOM_WKT)
	if err != nil {
		t.Fatal(err)
	}
	compareLines(t, "Geometry", splitLines(buf.String()), []string{
		"from_vertex_id;to_vertex_id;weight;max_speed;osm_way_id;was_one_way;source_osm_id;target_osm_id;is_reversed;geom",
		"0;1;111194.9;150;10;false;1;2;false;LINESTRING(0 0,1 0)",
		"1;0;111194.9;150;10;false;2;1;true;LINESTRING(1 0,0 0)",
	})

	buf.Reset()
	err = graph.WriteGeometry(&buf, GEOM_GEOJSON)
	if err != nil {
		t.Fatal(err)
	}
	lines := splitLines(buf.String())
	if len(lines) != 3 || !strings.Contains(lines[1], "LineString") {
		t.Errorf("Wrong GeoJSON geometry output: %v", lines)
	}
}
