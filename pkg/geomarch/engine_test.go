package geomarch

import (
	"errors"
	"testing"

	"github.com/beetlebugorg/geomarch/internal/marching"
)

func TestEngineIsobandsProducesPolygons(t *testing.T) {
	g := plateauGrid(t)
	e := NewEngine(g, DefaultEngineOptions())

	bands, err := e.Isobands([]float64{5, 15})
	if err != nil {
		t.Fatalf("Isobands: %v", err)
	}
	if len(bands) != 1 {
		t.Fatalf("expected 1 band, got %d", len(bands))
	}
	if len(bands[0].Polygons) == 0 {
		t.Fatal("expected at least 1 polygon for the [5,15) band")
	}
}

func TestEngineIsobandsRejectsTooFewThresholds(t *testing.T) {
	g := plateauGrid(t)
	e := NewEngine(g, DefaultEngineOptions())

	_, err := e.Isobands([]float64{5})
	var target *marching.ErrTooFewThresholds
	if !errors.As(err, &target) {
		t.Fatalf("expected *marching.ErrTooFewThresholds, got %T: %v", err, err)
	}
}

func TestEngineIsolinesOfProducesPolygons(t *testing.T) {
	g := plateauGrid(t)
	e := NewEngine(g, DefaultEngineOptions())

	lines, err := e.IsolinesOf([]float64{10})
	if err != nil {
		t.Fatalf("IsolinesOf: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 isoline, got %d", len(lines))
	}
	if lines[0].Level != 10 {
		t.Fatalf("expected level 10, got %v", lines[0].Level)
	}
}

func TestEngineIsolinesOfRejectsNoLevels(t *testing.T) {
	g := plateauGrid(t)
	e := NewEngine(g, DefaultEngineOptions())

	_, err := e.IsolinesOf(nil)
	var target *marching.ErrNoLevels
	if !errors.As(err, &target) {
		t.Fatalf("expected *marching.ErrNoLevels, got %T: %v", err, err)
	}
}
