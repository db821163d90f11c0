package marching

// cornerState is a corner's ternary classification against a band
// [lower, upper): 0 = below lower, 1 = in band, 2 = at-or-above upper.
type cornerState int

const (
	stateBelow cornerState = 0
	stateIn    cornerState = 1
	stateAbove cornerState = 2
)

func classifyCorner(v, lower, upper float64) cornerState {
	switch {
	case v < lower:
		return stateBelow
	case v >= upper:
		return stateAbove
	default:
		return stateIn
	}
}

// configCode packs the four corner states into the sparse [0,170] code
// from spec §3: two bits per corner, ordered top-left, top-right,
// bottom-right, bottom-left, at bit positions 6/4/2/0.
func configCode(tl, tr, br, bl cornerState) int {
	return int(tl)<<6 | int(tr)<<4 | int(br)<<2 | int(bl)
}

// cellConfig is the full classification of one cell against one band,
// plus the four boundary flags (spec.md:39, spec.md:88) recording which of
// the cell's sides sit on the outer edge of the grid. A boundary side has
// no neighboring cell, so an edge lying on it can never carry a real
// cross-cell Move.
type cellConfig struct {
	tl, tr, br, bl                   cornerState
	code                             int
	atTop, atRight, atBottom, atLeft bool
}

func classifyCell(tlVal, trVal, brVal, blVal, lower, upper float64, atTop, atRight, atBottom, atLeft bool) cellConfig {
	tl := classifyCorner(tlVal, lower, upper)
	tr := classifyCorner(trVal, lower, upper)
	br := classifyCorner(brVal, lower, upper)
	bl := classifyCorner(blVal, lower, upper)
	return cellConfig{
		tl: tl, tr: tr, br: br, bl: bl, code: configCode(tl, tr, br, bl),
		atTop: atTop, atRight: atRight, atBottom: atBottom, atLeft: atLeft,
	}
}

// blockedSide reports whether an edge lying on side s has a neighboring
// cell to move into: if the cell sits on the grid's outer boundary on that
// side, there is none, and any Move computed for it must be suppressed.
func (c cellConfig) blockedSide(s Side) bool {
	switch s {
	case Top:
		return c.atTop
	case Right:
		return c.atRight
	case Bottom:
		return c.atBottom
	default: // Left
		return c.atLeft
	}
}

// isEmpty reports whether the cell contributes no geometry: every corner
// strictly below lower, or every corner at-or-above upper (codes 0 and 170).
func (c cellConfig) isEmpty() bool {
	return c.code == 0 || c.code == 170
}

// isSquare reports whether every corner lies in the band (code 85): the
// trivial case where the cell's four actual corners, taken clockwise, are
// the polygon boundary.
func (c cellConfig) isSquare() bool {
	return c.code == 85
}

// isSaddle reports the ambiguous two-diagonal configuration (spec §4.3):
// opposite corners share a state, the other pair of opposite corners
// shares a different state. Disambiguated elsewhere using the cell
// average.
func (c cellConfig) isSaddle() bool {
	return c.tl == c.br && c.tr == c.bl && c.tl != c.tr
}

// isDoubleSaddle reports the saddle sub-case where neither diagonal lies
// in the band (one diagonal below lower, the other at-or-above upper):
// this can split into two disjoint regions within the cell.
func (c cellConfig) isDoubleSaddle() bool {
	return c.isSaddle() && c.tl != stateIn && c.tr != stateIn
}

// blank reports whether a side has no crossing: both its corners lie on
// the same strict side of the band (spec §4.2: both below lower, or both
// at-or-above upper).
func blank(a, b cornerState) bool {
	return (a == stateBelow && b == stateBelow) || (a == stateAbove && b == stateAbove)
}
