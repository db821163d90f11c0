package geomarch

import (
	"encoding/json"
	"math"
)

// geoJSON types follow RFC 7946. No third-party geomarch dependency
// offers GeoJSON encoding, so this is built directly on encoding/json.

type geoJSONFeatureCollection struct {
	Type     string           `json:"type"`
	Features []geoJSONFeature `json:"features"`
}

type geoJSONFeature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   geoJSONGeometry        `json:"geometry"`
}

type geoJSONGeometry struct {
	Type        string          `json:"type"`
	Coordinates [][][][]float64 `json:"coordinates"`
}

// roundHalfUp rounds v to precision decimal digits, rounding a .5
// remainder away from zero rather than to even.
func roundHalfUp(v float64, precision int) float64 {
	factor := math.Pow(10, float64(precision))
	if v >= 0 {
		return math.Floor(v*factor+0.5) / factor
	}
	return math.Ceil(v*factor-0.5) / factor
}

func ringCoords(r Ring, precision int) [][]float64 {
	coords := make([][]float64, len(r))
	for i, p := range r {
		coords[i] = []float64{roundHalfUp(p.Lon, precision), roundHalfUp(p.Lat, precision)}
	}
	return coords
}

// polygonCoordinates renders a Polygon as GeoJSON Polygon coordinates:
// the outer ring followed by each hole.
func polygonCoordinates(p Polygon, precision int) [][][]float64 {
	rings := make([][][]float64, 0, 1+len(p.Holes))
	rings = append(rings, ringCoords(p.Outer, precision))
	for _, h := range p.Holes {
		rings = append(rings, ringCoords(h, precision))
	}
	return rings
}

// ToGeoJSON renders a slice of polygon sets as a GeoJSON FeatureCollection,
// one MultiPolygon Feature per set, with coordinates rounded half-up to
// precision decimal digits. No rounding happens anywhere upstream of this
// function; it is the single point where geomarch trades exactness for a
// serialization-friendly representation.
func ToGeoJSON(sets []PolygonSet, precision int) []byte {
	fc := geoJSONFeatureCollection{Type: "FeatureCollection"}
	for _, set := range sets {
		coords := make([][][][]float64, len(set))
		for i, p := range set {
			coords[i] = polygonCoordinates(p, precision)
		}
		fc.Features = append(fc.Features, geoJSONFeature{
			Type:       "Feature",
			Properties: map[string]interface{}{},
			Geometry:   geoJSONGeometry{Type: "MultiPolygon", Coordinates: coords},
		})
	}
	out, _ := json.Marshal(fc)
	return out
}

// BandsToGeoJSON is ToGeoJSON for a set of isobands, attaching each
// feature's [Lower, Upper) bounds as GeoJSON properties.
func BandsToGeoJSON(bands []Band, precision int) []byte {
	sets := make([]PolygonSet, len(bands))
	for i, b := range bands {
		sets[i] = b.Polygons
	}
	raw := ToGeoJSON(sets, precision)

	var fc geoJSONFeatureCollection
	if err := json.Unmarshal(raw, &fc); err != nil {
		return raw
	}
	for i := range fc.Features {
		fc.Features[i].Properties["lower"] = bands[i].Lower
		fc.Features[i].Properties["upper"] = bands[i].Upper
	}
	out, _ := json.Marshal(fc)
	return out
}

// IsolinesToGeoJSON is ToGeoJSON for a set of isolines, attaching each
// feature's contour level as a GeoJSON property.
func IsolinesToGeoJSON(lines []Isoline, precision int) []byte {
	sets := make([]PolygonSet, len(lines))
	for i, l := range lines {
		sets[i] = l.Polygons
	}
	raw := ToGeoJSON(sets, precision)

	var fc geoJSONFeatureCollection
	if err := json.Unmarshal(raw, &fc); err != nil {
		return raw
	}
	for i := range fc.Features {
		fc.Features[i].Properties["level"] = lines[i].Level
	}
	out, _ := json.Marshal(fc)
	return out
}
