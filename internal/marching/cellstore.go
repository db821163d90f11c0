package marching

// cellEdgeMap holds the chains of Edges one cell contributes for one band,
// plus which edges in each chain have been consumed by the tracer. A cell
// normally contributes one chain; a saddle that resolves as split
// contributes two.
type cellEdgeMap struct {
	chains  [][]Edge
	cleared []bool // cleared[i] tracks whether chains[i] has been fully consumed
}

func newCellEdgeMap(chains [][]Edge) *cellEdgeMap {
	return &cellEdgeMap{chains: chains, cleared: make([]bool, len(chains))}
}

func (m *cellEdgeMap) isCleared() bool {
	for _, c := range m.cleared {
		if !c {
			return false
		}
	}
	return true
}

// takeStartingEdge returns the whole first unconsumed chain, starting at
// its first edge, and marks that chain consumed as it is handed out.
// Returning the whole chain up front lets the tracer walk it in order
// without re-querying the cell.
func (m *cellEdgeMap) takeStartingEdge() ([]Edge, bool) {
	for i, cleared := range m.cleared {
		if cleared {
			continue
		}
		m.cleared[i] = true
		return m.chains[i], true
	}
	return nil, false
}

// takeChainFrom finds and consumes the unconsumed chain in this cell that
// has an edge starting at the given point (bit-identical equality), and
// returns that chain rotated so the matching edge comes first. Used when
// the tracer crosses into this cell from a neighbor and must continue the
// ring from that exact shared point.
func (m *cellEdgeMap) takeChainFrom(start Point) ([]Edge, bool) {
	for i, cleared := range m.cleared {
		if cleared {
			continue
		}
		chain := m.chains[i]
		for j, e := range chain {
			if e.Start.equal(start) {
				m.cleared[i] = true
				return append(append([]Edge{}, chain[j:]...), chain[:j]...), true
			}
		}
	}
	return nil, false
}

// cellStore indexes every cell's edge contribution for one band by (row,
// col) of the cell's top-left corner.
type cellStore struct {
	cellRows, cellCols int
	cells              map[[2]int]*cellEdgeMap
}

func newCellStore(g *Grid, lower, upper float64) *cellStore {
	s := &cellStore{
		cellRows: g.CellRows(),
		cellCols: g.CellCols(),
		cells:    make(map[[2]int]*cellEdgeMap),
	}
	for row := 0; row < s.cellRows; row++ {
		for col := 0; col < s.cellCols; col++ {
			tl, tr := g.At(row, col), g.At(row, col+1)
			bl, br := g.At(row+1, col), g.At(row+1, col+1)
			cc := &cellCorners{
				tl: actualPoint(tl.Lon, tl.Lat), tr: actualPoint(tr.Lon, tr.Lat),
				br: actualPoint(br.Lon, br.Lat), bl: actualPoint(bl.Lon, bl.Lat),
				tlVal: tl.Value, trVal: tr.Value, brVal: br.Value, blVal: bl.Value,
			}
			atTop, atBottom := row == 0, row == s.cellRows-1
			atLeft, atRight := col == 0, col == s.cellCols-1
			cfg := classifyCell(tl.Value, tr.Value, br.Value, bl.Value, lower, upper, atTop, atRight, atBottom, atLeft)
			chains := buildCellRings(cfg, cc, lower, upper)
			if len(chains) == 0 {
				continue
			}
			s.cells[[2]int{row, col}] = newCellEdgeMap(chains)
		}
	}
	return s
}

func (s *cellStore) at(row, col int) (*cellEdgeMap, bool) {
	m, ok := s.cells[[2]int{row, col}]
	return m, ok
}

// isEmpty reports whether every cell's contribution has been consumed.
func (s *cellStore) isEmpty() bool {
	for _, m := range s.cells {
		if !m.isCleared() {
			return false
		}
	}
	return true
}

// any returns the (row, col) and chain of the first unconsumed cell in a
// row-major sweep, the starting point for a new ring trace. Each ring
// starts at its starting cell's chain, so a fixed sweep order keeps the
// traced rings, and their point sequences, the same from run to run.
func (s *cellStore) any() (row, col int, chain []Edge, ok bool) {
	for r := 0; r < s.cellRows; r++ {
		for c := 0; c < s.cellCols; c++ {
			m, present := s.cells[[2]int{r, c}]
			if !present || m.isCleared() {
				continue
			}
			chain, ok = m.takeStartingEdge()
			return r, c, chain, ok
		}
	}
	return 0, 0, nil, false
}
