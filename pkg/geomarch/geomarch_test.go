package geomarch

import (
	"errors"
	"testing"

	"github.com/beetlebugorg/geomarch/internal/marching"
)

func plateauGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := NewGrid([][]GeoPoint{
		{{Lon: 0, Lat: 2, Value: 20}, {Lon: 1, Lat: 2, Value: 20}, {Lon: 2, Lat: 2, Value: 0}},
		{{Lon: 0, Lat: 1, Value: 20}, {Lon: 1, Lat: 1, Value: 20}, {Lon: 2, Lat: 1, Value: 0}},
		{{Lon: 0, Lat: 0, Value: 0}, {Lon: 1, Lat: 0, Value: 0}, {Lon: 2, Lat: 0, Value: 0}},
	})
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func TestNewGridRejectsTooSmall(t *testing.T) {
	_, err := NewGrid([][]GeoPoint{{{Lon: 0, Lat: 0, Value: 1}}})
	var target *marching.ErrTooSmall
	if !errors.As(err, &target) {
		t.Fatalf("expected *marching.ErrTooSmall, got %T: %v", err, err)
	}
}

func TestNewGridRejectsNonRectangular(t *testing.T) {
	_, err := NewGrid([][]GeoPoint{
		{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}},
		{{Lon: 0, Lat: 1}},
	})
	var target *marching.ErrNonRectangular
	if !errors.As(err, &target) {
		t.Fatalf("expected *marching.ErrNonRectangular, got %T: %v", err, err)
	}
}

func TestGridBoundsAndMinMax(t *testing.T) {
	g := plateauGrid(t)
	b := g.Bounds()
	if b.MinLon != 0 || b.MaxLon != 2 || b.MinLat != 0 || b.MaxLat != 2 {
		t.Fatalf("unexpected bounds: %+v", b)
	}
	min, max := g.MinMax()
	if min != 0 || max != 20 {
		t.Fatalf("expected MinMax (0,20), got (%v,%v)", min, max)
	}
	if g.Rows() != 3 || g.Cols() != 3 {
		t.Fatalf("expected 3x3 grid, got %dx%d", g.Rows(), g.Cols())
	}
}
