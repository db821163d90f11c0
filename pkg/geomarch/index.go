package geomarch

import "github.com/dhconnelly/rtreego"

// indexedPolygon wraps a Polygon for R-tree storage.
type indexedPolygon struct {
	polygon Polygon
	bounds  Bounds
}

// Bounds implements rtreego.Spatial.
func (p *indexedPolygon) Bounds() rtreego.Rect {
	point := rtreego.Point{p.bounds.MinLon, p.bounds.MinLat}

	lonLength := p.bounds.MaxLon - p.bounds.MinLon
	latLength := p.bounds.MaxLat - p.bounds.MinLat

	// Degenerate rings (a single-point sliver) still need non-zero extent
	// for the R-tree; ~11 meters at the equator.
	const epsilon = 0.0001
	if lonLength < epsilon {
		lonLength = epsilon
	}
	if latLength < epsilon {
		latLength = epsilon
	}

	rect, _ := rtreego.NewRect(point, []float64{lonLength, latLength})
	return rect
}

func ringBoundsOf(r Ring) Bounds {
	b := Bounds{MinLon: r[0].Lon, MaxLon: r[0].Lon, MinLat: r[0].Lat, MaxLat: r[0].Lat}
	for _, p := range r {
		if p.Lon < b.MinLon {
			b.MinLon = p.Lon
		}
		if p.Lon > b.MaxLon {
			b.MaxLon = p.Lon
		}
		if p.Lat < b.MinLat {
			b.MinLat = p.Lat
		}
		if p.Lat > b.MaxLat {
			b.MaxLat = p.Lat
		}
	}
	return b
}

// RingIndex is an R-tree over a set of polygons, keyed by their outer
// ring's bounding box, supporting O(log n) viewport queries instead of a
// linear scan over every polygon a band or isoline produced.
type RingIndex struct {
	rtree *rtreego.Rtree
}

// NewRingIndex builds a RingIndex over the outer rings of polys.
func NewRingIndex(polys []Polygon) *RingIndex {
	rtree := rtreego.NewTree(2, 25, 50)
	for i := range polys {
		if len(polys[i].Outer) == 0 {
			continue
		}
		indexed := &indexedPolygon{polygon: polys[i], bounds: ringBoundsOf(polys[i].Outer)}
		rtree.Insert(indexed)
	}
	return &RingIndex{rtree: rtree}
}

// Query returns every polygon whose outer ring's bounding box intersects
// bounds.
func (idx *RingIndex) Query(bounds Bounds) []Polygon {
	point := rtreego.Point{bounds.MinLon, bounds.MinLat}
	lengths := []float64{bounds.MaxLon - bounds.MinLon, bounds.MaxLat - bounds.MinLat}
	queryRect, _ := rtreego.NewRect(point, lengths)

	spatials := idx.rtree.SearchIntersect(queryRect)
	result := make([]Polygon, 0, len(spatials))
	for _, s := range spatials {
		result = append(result, s.(*indexedPolygon).polygon)
	}
	return result
}
