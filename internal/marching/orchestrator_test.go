package marching

import (
	"errors"
	"testing"
)

func plateauGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := BuildGrid([][]GridPoint{
		{gp(0, 2, 20), gp(1, 2, 20), gp(2, 2, 0)},
		{gp(0, 1, 20), gp(1, 1, 20), gp(2, 1, 0)},
		{gp(0, 0, 0), gp(1, 0, 0), gp(2, 0, 0)},
	})
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	return g
}

func TestIsobandsRejectsTooFewThresholds(t *testing.T) {
	g := plateauGrid(t)
	_, err := Isobands(g, []float64{5})
	var target *ErrTooFewThresholds
	if !errors.As(err, &target) {
		t.Fatalf("expected *ErrTooFewThresholds, got %T: %v", err, err)
	}
}

func TestIsobandsRejectsUnsortedThresholds(t *testing.T) {
	g := plateauGrid(t)
	_, err := Isobands(g, []float64{15, 5})
	var target *ErrThresholdsNotSorted
	if !errors.As(err, &target) {
		t.Fatalf("expected *ErrThresholdsNotSorted, got %T: %v", err, err)
	}
}

func TestIsolinesRejectsNoLevels(t *testing.T) {
	g := plateauGrid(t)
	_, err := Isolines(g, nil)
	var target *ErrNoLevels
	if !errors.As(err, &target) {
		t.Fatalf("expected *ErrNoLevels, got %T: %v", err, err)
	}
}

func TestIsobandsProducesPolygons(t *testing.T) {
	g := plateauGrid(t)
	results, err := Isobands(g, []float64{5, 15})
	if err != nil {
		t.Fatalf("Isobands: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 band result, got %d", len(results))
	}
	if len(results[0].Polygons) == 0 {
		t.Fatal("expected at least 1 polygon for the [5,15) band")
	}
}

// TestIsobandsAndIsolinesAgreeOnASharpStep is the isoline/isoband
// consistency property (spec §8, S5): an isoline at level L should trace
// the same boundary as the lower edge of the isoband [L, +Inf).
func TestIsobandsAndIsolinesAgreeOnASharpStep(t *testing.T) {
	g := plateauGrid(t)

	bandResults, err := Isobands(g, []float64{10, 1e9})
	if err != nil {
		t.Fatalf("Isobands: %v", err)
	}
	lineResults, err := Isolines(g, []float64{10})
	if err != nil {
		t.Fatalf("Isolines: %v", err)
	}

	bandCount := countRings(bandResults[0].Polygons)
	lineCount := countRings(lineResults[0].Polygons)
	if bandCount != lineCount {
		t.Errorf("isoband [10,1e9) produced %d rings, isoline at 10 produced %d", bandCount, lineCount)
	}
}

// TestIsobandsDeterministic is scenario S6: running the same grid and
// thresholds twice must produce the same set of polygons.
func TestIsobandsDeterministic(t *testing.T) {
	g := plateauGrid(t)
	first, err := Isobands(g, []float64{5, 15})
	if err != nil {
		t.Fatalf("Isobands: %v", err)
	}
	second, err := Isobands(g, []float64{5, 15})
	if err != nil {
		t.Fatalf("Isobands: %v", err)
	}
	if countRings(first[0].Polygons) != countRings(second[0].Polygons) {
		t.Error("expected identical ring counts across repeated runs")
	}
}

func countRings(polys []Polygon) int {
	n := 0
	for _, p := range polys {
		n += 1 + len(p.Holes)
	}
	return n
}
