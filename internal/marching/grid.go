package marching

import "math"

// GridPoint is an input corner: a geographic coordinate carrying a scalar
// field value. Immutable once the grid is constructed.
type GridPoint struct {
	Lon, Lat float64
	Value    float64
}

// Grid is a rectangular lattice of GridPoints. Rows x Cols corners form
// (Rows-1) x (Cols-1) cells.
type Grid struct {
	rows [][]GridPoint
}

// BuildGrid validates rows and constructs a Grid.
//
// Every row must have the same length C >= 2, there must be R >= 2 rows,
// and no corner may carry a NaN value.
func BuildGrid(rows [][]GridPoint) (*Grid, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	if len(rows) < 2 || cols < 2 {
		return nil, &ErrTooSmall{Rows: len(rows), Cols: cols}
	}

	want := len(rows[0])
	for r, row := range rows {
		if len(row) != want {
			return nil, &ErrNonRectangular{Row: r, Got: len(row), Want: want}
		}
		for c, p := range row {
			if math.IsNaN(p.Value) {
				return nil, &ErrNaNValue{Row: r, Col: c}
			}
		}
	}

	return &Grid{rows: rows}, nil
}

// Rows returns the number of corner rows.
func (g *Grid) Rows() int { return len(g.rows) }

// Cols returns the number of corner columns.
func (g *Grid) Cols() int { return len(g.rows[0]) }

// At returns the corner at (row, col).
func (g *Grid) At(row, col int) GridPoint { return g.rows[row][col] }

// CellRows returns the number of cell rows: Rows()-1.
func (g *Grid) CellRows() int { return g.Rows() - 1 }

// CellCols returns the number of cell columns: Cols()-1.
func (g *Grid) CellCols() int { return g.Cols() - 1 }

// Bounds returns the geographic bounding box of every corner in the grid.
func (g *Grid) Bounds() Bounds {
	first := g.rows[0][0]
	b := Bounds{MinLon: first.Lon, MaxLon: first.Lon, MinLat: first.Lat, MaxLat: first.Lat}
	for _, row := range g.rows {
		for _, p := range row {
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
	}
	return b
}

// MinMax returns the minimum and maximum scalar value across all corners.
func (g *Grid) MinMax() (min, max float64) {
	min, max = g.rows[0][0].Value, g.rows[0][0].Value
	for _, row := range g.rows {
		for _, p := range row {
			if p.Value < min {
				min = p.Value
			}
			if p.Value > max {
				max = p.Value
			}
		}
	}
	return min, max
}

// Bounds is a geographic bounding box in WGS-84 decimal degrees.
type Bounds struct {
	MinLon, MaxLon float64
	MinLat, MaxLat float64
}

// Intersects reports whether two bounds overlap.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxLon < b.MinLon ||
		other.MinLon > b.MaxLon ||
		other.MaxLat < b.MinLat ||
		other.MinLat > b.MaxLat)
}
