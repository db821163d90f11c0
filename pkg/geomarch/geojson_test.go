package geomarch

import (
	"encoding/json"
	"testing"
)

func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		v         float64
		precision int
		want      float64
	}{
		{0.125, 2, 0.13},
		{1.25, 1, 1.3},
		{-1.25, 1, -1.3},
		{2.5, 0, 3},
	}
	for _, c := range cases {
		got := roundHalfUp(c.v, c.precision)
		if got != c.want {
			t.Errorf("roundHalfUp(%v, %d) = %v, want %v", c.v, c.precision, got, c.want)
		}
	}
}

func TestToGeoJSONProducesValidFeatureCollection(t *testing.T) {
	set := PolygonSet{
		{Outer: Ring{{Lon: 0.123456, Lat: 1.654321}, {Lon: 1, Lat: 1}, {Lon: 1, Lat: 0}, {Lon: 0, Lat: 0}, {Lon: 0.123456, Lat: 1.654321}}},
	}
	out := ToGeoJSON([]PolygonSet{set}, 3)

	var fc map[string]interface{}
	if err := json.Unmarshal(out, &fc); err != nil {
		t.Fatalf("ToGeoJSON did not produce valid JSON: %v", err)
	}
	if fc["type"] != "FeatureCollection" {
		t.Fatalf("expected type FeatureCollection, got %v", fc["type"])
	}
	features, ok := fc["features"].([]interface{})
	if !ok || len(features) != 1 {
		t.Fatalf("expected 1 feature, got %v", fc["features"])
	}
}

func TestBandsToGeoJSONAttachesBounds(t *testing.T) {
	bands := []Band{
		{Lower: 5, Upper: 15, Polygons: PolygonSet{{Outer: Ring{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}, {Lon: 1, Lat: 1}, {Lon: 0, Lat: 0}}}}},
	}
	out := BandsToGeoJSON(bands, 6)

	var fc struct {
		Features []struct {
			Properties map[string]float64 `json:"properties"`
		} `json:"features"`
	}
	if err := json.Unmarshal(out, &fc); err != nil {
		t.Fatalf("BandsToGeoJSON did not produce valid JSON: %v", err)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("expected 1 feature, got %d", len(fc.Features))
	}
	if fc.Features[0].Properties["lower"] != 5 || fc.Features[0].Properties["upper"] != 15 {
		t.Errorf("expected lower=5 upper=15, got %+v", fc.Features[0].Properties)
	}
}
