package marching

// cornerSides lists the two sides each corner lies on, used to find the
// shared side between two consecutive ring points (the side determines the
// Move; no shared side means the edge cuts through the cell interior and
// carries Stay).
var cornerSides = map[string][2]Side{
	"tl": {Top, Left},
	"tr": {Top, Right},
	"br": {Right, Bottom},
	"bl": {Bottom, Left},
}

func moveForSide(s Side) Move {
	switch s {
	case Top:
		return MoveUp
	case Right:
		return MoveRight
	case Bottom:
		return MoveDown
	default: // Left
		return MoveLeft
	}
}

// ringPoint is one vertex of a cell's boundary chain: its coordinates plus
// the side(s) of the cell it lies on.
type ringPoint struct {
	pt    Point
	sides []Side
}

func (r ringPoint) sharedSide(o ringPoint) (Side, bool) {
	for _, a := range r.sides {
		for _, b := range o.sides {
			if a == b {
				return a, true
			}
		}
	}
	return 0, false
}

// rawSlot is one of the eight fixed positions walked clockwise around a
// cell's boundary (spec §4.3), before compression: top-right's two sides,
// then right's two corners, then bottom's, then left's.
type rawSlot struct {
	side     Side
	present  bool
	pt       Point
	isCorner bool
	corner   string // "tl", "tr", "br", "bl"; valid when isCorner
}

// eightSlots generates the eight raw clockwise positions for a cell: two
// per side, one referencing each of that side's two corners. A side with
// both corners on the same strict side of the band contributes two absent
// slots; otherwise each slot resolves to the referenced corner directly
// (if it lies in the band) or a deferred crossing at the threshold that
// corner lies beyond.
func eightSlots(c cellConfig, lower, upper float64) [8]rawSlot {
	limitFor := func(s cornerState) float64 {
		if s == stateAbove {
			return upper
		}
		return lower
	}

	mk := func(side Side, ref, other cornerState, refCorner string) rawSlot {
		if blank(ref, other) {
			return rawSlot{side: side, present: false}
		}
		if ref == stateIn {
			return rawSlot{side: side, present: true, isCorner: true, corner: refCorner}
		}
		return rawSlot{side: side, present: true, corner: refCorner}
	}

	slots := [8]rawSlot{
		mk(Top, c.tr, c.tl, "tr"),
		mk(Right, c.tr, c.br, "tr"),
		mk(Right, c.br, c.tr, "br"),
		mk(Bottom, c.br, c.bl, "br"),
		mk(Bottom, c.bl, c.br, "bl"),
		mk(Left, c.bl, c.tl, "bl"),
		mk(Left, c.tl, c.bl, "tl"),
		mk(Top, c.tl, c.tr, "tl"),
	}
	states := map[string]cornerState{"tl": c.tl, "tr": c.tr, "br": c.br, "bl": c.bl}
	for i, s := range slots {
		if s.present && !s.isCorner {
			slots[i].pt = deferredPoint(0, limitFor(states[s.corner]), s.side)
		}
	}
	return slots
}

func cornerPoint(cc *cellCorners, name string) Point {
	switch name {
	case "tl":
		return cc.tl
	case "tr":
		return cc.tr
	case "br":
		return cc.br
	default:
		return cc.bl
	}
}

// materializeOne resolves a raw slot into a ring point: a corner slot
// yields the corner's actual coordinates; a crossing slot is interpolated
// against the corner it was deferred from.
func materializeOne(s rawSlot, cc *cellCorners) ringPoint {
	if s.isCorner {
		sides := cornerSides[s.corner]
		return ringPoint{pt: cornerPoint(cc, s.corner), sides: sides[:]}
	}
	return ringPoint{pt: interpolateSide(cc, s.pt.Limit, s.pt.Side), sides: []Side{s.side}}
}

// compressSlots drops later entries equal to an earlier retained entry
// (spec §4.3): the two slots on either side of an in-band corner both
// resolve to that corner's exact coordinates and collapse to one point.
func compressSlots(slots [8]rawSlot, cc *cellCorners) []ringPoint {
	kept := make([]ringPoint, 0, 8)
	for _, s := range slots {
		if !s.present {
			continue
		}
		rp := materializeOne(s, cc)
		dup := false
		for _, k := range kept {
			if k.pt.equal(rp.pt) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, rp)
		}
	}
	return kept
}

// ringToEdges connects consecutive ring points (wrapping) into Edges,
// assigning Move by the side the two endpoints share; an edge between two
// points with no common side cuts through the cell's interior and stays.
// A shared side that sits on the grid's outer boundary (spec.md:126) has no
// neighboring cell to move into, so it is forced to Stay as well.
func ringToEdges(points []ringPoint, c cellConfig) []Edge {
	edges := make([]Edge, len(points))
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		move := Stay
		if side, ok := a.sharedSide(b); ok && !c.blockedSide(side) {
			move = moveForSide(side)
		}
		edges[i] = Edge{Start: a.pt, End: b.pt, Move: move}
	}
	return edges
}

// cellAverage is the mean of the four corner values, used to disambiguate
// saddle configurations (spec §4.3).
func cellAverage(cc *cellCorners) float64 {
	return (cc.tlVal + cc.trVal + cc.brVal + cc.blVal) / 4
}

// buildCellRings returns the closed chains of Edges a cell contributes for
// one band. Every non-saddle, non-empty configuration produces exactly one
// chain from the compressed eight-slot walk; a saddle that resolves as
// split produces two disjoint chains.
func buildCellRings(c cellConfig, cc *cellCorners, lower, upper float64) [][]Edge {
	if c.isEmpty() {
		return nil
	}

	slots := eightSlots(c, lower, upper)

	if !c.isSaddle() {
		return [][]Edge{ringToEdges(compressSlots(slots, cc), c)}
	}

	avg := cellAverage(cc)
	if c.isDoubleSaddle() {
		return buildDoubleSaddle(slots, cc, c, avg, lower, upper)
	}
	return buildSingleSaddle(slots, cc, c, avg, lower, upper)
}

// singleSaddleCrossings names, for each in-band corner, the two slots
// bounding the triangle that isolates it from the rest of the cell when
// the saddle resolves as disconnected.
var singleSaddleCrossings = map[string][2]int{
	"tl": {0, 5},
	"tr": {7, 2},
	"br": {1, 4},
	"bl": {3, 6},
}

// buildSingleSaddle resolves the case where one diagonal lies in the band
// and the other lies entirely below or entirely above it. The relevant
// threshold is whichever one the out-of-band diagonal actually crosses
// (lower if it's below the band, upper if it's above). When the cell
// average lies on the in-band side of that threshold (at or above lower,
// or below upper), the two in-band corners connect through the middle of
// the cell (the natural eight-slot compressed loop, six points);
// otherwise they resolve as two disjoint triangles, one around each
// in-band corner.
func buildSingleSaddle(slots [8]rawSlot, cc *cellCorners, c cellConfig, avg, lower, upper float64) [][]Edge {
	outState := c.tr
	if c.tl != stateIn {
		outState = c.tl
	}
	connected := avg >= lower
	if outState == stateAbove {
		connected = avg < upper
	}
	if connected {
		return [][]Edge{ringToEdges(compressSlots(slots, cc), c)}
	}

	states := map[string]cornerState{"tl": c.tl, "tr": c.tr, "br": c.br, "bl": c.bl}
	var inCorners []string
	for _, name := range [...]string{"tl", "tr", "br", "bl"} {
		if states[name] == stateIn {
			inCorners = append(inCorners, name)
		}
	}

	rings := make([][]Edge, 0, 2)
	for _, name := range inCorners {
		idx := singleSaddleCrossings[name]
		a := materializeOne(slots[idx[0]], cc)
		b := materializeOne(slots[idx[1]], cc)
		sides := cornerSides[name]
		center := ringPoint{pt: cornerPoint(cc, name), sides: sides[:]}
		rings = append(rings, ringToEdges([]ringPoint{center, a, b}, c))
	}
	return rings
}

// buildDoubleSaddle resolves the case where neither diagonal lies in the
// band (spec.md:239, scenario S3). When the cell average itself falls in
// the band, the two diagonals' crossings connect through the middle into
// one ring, the same generic eight-slot loop every non-saddle
// configuration uses (an octagon here: unlike a single saddle, no corner
// is in-band, so none of the eight slots collapse by compression).
// Otherwise the band misses the cell's center value
// entirely: the diagonal on the same side as the center connects through
// the middle, and the eight slots (always all present for a double saddle)
// split into two disjoint quads, one around each corner of the other
// diagonal. Each quad holds the four crossings on that corner's two sides:
// slots 5,6,7,0 around tl and 1,2,3,4 around br, or 7,0,1,2 around tr and
// 3,4,5,6 around bl.
func buildDoubleSaddle(slots [8]rawSlot, cc *cellCorners, c cellConfig, avg, lower, upper float64) [][]Edge {
	if avg >= lower && avg < upper {
		return [][]Edge{ringToEdges(compressSlots(slots, cc), c)}
	}

	// tl and br are cut off when they sit on the opposite side of the band
	// from the center value.
	tlIsolated := (avg >= upper) == (c.tl == stateBelow)

	group := func(start int) []Edge {
		pts := make([]ringPoint, 4)
		for i := 0; i < 4; i++ {
			pts[i] = materializeOne(slots[(start+i)%8], cc)
		}
		return ringToEdges(pts, c)
	}

	if tlIsolated {
		return [][]Edge{group(5), group(1)}
	}
	return [][]Edge{group(7), group(3)}
}
