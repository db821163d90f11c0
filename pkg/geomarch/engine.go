package geomarch

import "github.com/beetlebugorg/geomarch/internal/marching"

// EngineOptions tunes an Engine. Reserved for future knobs (simplification
// tolerance, coordinate precision); currently empty.
type EngineOptions struct{}

// DefaultEngineOptions returns the zero-value options.
func DefaultEngineOptions() EngineOptions { return EngineOptions{} }

// Engine computes isobands and isolines over a fixed Grid.
type Engine struct {
	grid *Grid
	opts EngineOptions
}

// NewEngine binds an Engine to a Grid.
func NewEngine(g *Grid, opts EngineOptions) *Engine {
	return &Engine{grid: g, opts: opts}
}

// Grid returns the Engine's bound grid.
func (e *Engine) Grid() *Grid { return e.grid }

// Isobands partitions the grid's scalar field into the bands formed by
// adjacent pairs of thresholds: [thresholds[0], thresholds[1]),
// [thresholds[1], thresholds[2]), and so on. thresholds must be strictly
// increasing and contain at least 2 values.
func (e *Engine) Isobands(thresholds []float64) ([]Band, error) {
	results, err := marching.Isobands(e.grid.inner, thresholds)
	if err != nil {
		return nil, err
	}
	bands := make([]Band, len(results))
	for i, r := range results {
		bands[i] = Band{Lower: r.Lower, Upper: r.Upper, Polygons: convertPolygons(r.Polygons)}
	}
	return bands, nil
}

// IsolinesOf traces one contour polygon forest per level. Each level is
// computed as the isoband [level, +Inf), which collapses marching squares'
// ternary classification to the classic binary case.
func (e *Engine) IsolinesOf(levels []float64) ([]Isoline, error) {
	results, err := marching.Isolines(e.grid.inner, levels)
	if err != nil {
		return nil, err
	}
	lines := make([]Isoline, len(results))
	for i, r := range results {
		lines[i] = Isoline{Level: r.Level, Polygons: convertPolygons(r.Polygons)}
	}
	return lines, nil
}
