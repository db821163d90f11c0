package marching

// traceRings drains a cellStore into closed point rings (spec §4.5),
// discarding any chain that cannot be closed into a ring instead of
// surfacing an error: a malformed chain only arises from a band that
// exits the grid edge, which is an expected, silent condition rather than
// a caller mistake.
func traceRings(store *cellStore) [][]Point {
	var rings [][]Point
	for {
		row, col, chain, ok := store.any()
		if !ok {
			break
		}
		if ring, closed := traceOneRing(store, row, col, chain); closed {
			rings = append(rings, ring)
		}
	}
	return rings
}

// traceOneRing walks a single chain starting at (row, col), following each
// edge's Move into the neighboring cell and continuing from the matching
// starting point there (bit-identical equality), until the walk returns to
// its own starting point. A Move whose target turns out to have nothing to
// continue from (no such neighboring cell, or its matching chain already
// consumed) does not abort the walk: the rest of the current chain's own
// edges are still its own boundary and must still be walked and checked
// for closure. Only when the whole current chain has been exhausted
// without closing, and without ever finding a live jump target, is the
// ring declared malformed.
func traceOneRing(store *cellStore, row, col int, chain []Edge) ([]Point, bool) {
	if len(chain) == 0 {
		return nil, false
	}
	start := chain[0].Start
	points := []Point{start}
	curRow, curCol := row, col
	cur := chain

	for {
		var next []Edge
		nextRow, nextCol := curRow, curCol
		jumped := false

		for _, e := range cur {
			points = append(points, e.End)
			if e.End.equal(start) {
				return points, true
			}
			if jumped || e.Move == Stay {
				continue
			}

			dRow, dCol := moveDelta(e.Move)
			nRow, nCol := curRow+dRow, curCol+dCol
			m, ok := store.at(nRow, nCol)
			if !ok {
				continue
			}
			n, ok := m.takeChainFrom(e.End)
			if !ok {
				continue
			}
			next, nextRow, nextCol, jumped = n, nRow, nCol, true
		}
		if !jumped {
			return nil, false
		}
		cur, curRow, curCol = next, nextRow, nextCol
	}
}
