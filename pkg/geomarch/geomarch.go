package geomarch

import "github.com/beetlebugorg/geomarch/internal/marching"

// GeoPoint is a geographic coordinate carrying a scalar field value, e.g.
// an elevation or pressure sample.
type GeoPoint struct {
	Lon, Lat, Value float64
}

// Bounds is a geographic bounding box in WGS-84 decimal degrees.
type Bounds struct {
	MinLon, MaxLon float64
	MinLat, MaxLat float64
}

func convertBounds(b marching.Bounds) Bounds {
	return Bounds{MinLon: b.MinLon, MaxLon: b.MaxLon, MinLat: b.MinLat, MaxLat: b.MaxLat}
}

// Grid is a rectangular lattice of GeoPoints ready for contouring.
type Grid struct {
	inner *marching.Grid
}

// NewGrid validates rows and constructs a Grid. Every row must have the
// same length C >= 2, there must be R >= 2 rows, and no sample may carry a
// NaN value.
func NewGrid(rows [][]GeoPoint) (*Grid, error) {
	internalRows := make([][]marching.GridPoint, len(rows))
	for i, row := range rows {
		internalRows[i] = make([]marching.GridPoint, len(row))
		for j, p := range row {
			internalRows[i][j] = marching.GridPoint{Lon: p.Lon, Lat: p.Lat, Value: p.Value}
		}
	}
	g, err := marching.BuildGrid(internalRows)
	if err != nil {
		return nil, err
	}
	return &Grid{inner: g}, nil
}

// Bounds returns the geographic bounding box of every sample in the grid.
func (g *Grid) Bounds() Bounds { return convertBounds(g.inner.Bounds()) }

// MinMax returns the minimum and maximum scalar value across all samples.
func (g *Grid) MinMax() (min, max float64) { return g.inner.MinMax() }

// Rows returns the number of sample rows.
func (g *Grid) Rows() int { return g.inner.Rows() }

// Cols returns the number of sample columns.
func (g *Grid) Cols() int { return g.inner.Cols() }

// Ring is a closed sequence of points, first and last equal.
type Ring []GeoPoint

// Polygon is one outer ring plus zero or more holes nested directly
// inside it.
type Polygon struct {
	Outer Ring
	Holes []Ring
}

// PolygonSet is the polygon forest produced for one band or contour level.
type PolygonSet []Polygon

// Band is the polygon forest produced for one [Lower, Upper) threshold
// band.
type Band struct {
	Lower, Upper float64
	Polygons     PolygonSet
}

// Isoline is the polygon forest produced for one contour level.
type Isoline struct {
	Level    float64
	Polygons PolygonSet
}

func convertRing(r marching.Ring) Ring {
	ring := make(Ring, len(r))
	for i, p := range r {
		ring[i] = GeoPoint{Lon: p.Lon, Lat: p.Lat}
	}
	return ring
}

func convertPolygons(ps []marching.Polygon) []Polygon {
	out := make([]Polygon, len(ps))
	for i, p := range ps {
		holes := make([]Ring, len(p.Holes))
		for j, h := range p.Holes {
			holes[j] = convertRing(h)
		}
		out[i] = Polygon{Outer: convertRing(p.Outer), Holes: holes}
	}
	return out
}
