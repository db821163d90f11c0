package marching

import "math"

// centerBias is the load-bearing constant from spec §4.1: it guarantees an
// interpolated point never coincides bit-exactly with a cell corner, so
// corner points and interpolated points stay distinguishable under the
// bit-identical equality the tracer and shape compression depend on.
// Implementations must not change this value.
const centerBias = 0.999

// interpolate finds the point along the segment p0->p1 (with field values
// v0, v1, v0 != v1) where the field crosses level, using a cosine easing
// curve rather than linear interpolation.
func interpolate(level, v0, v1 float64, p0, p1 Point) Point {
	mu := (level - v0) / (v1 - v0)
	mu2 := (1 - math.Cos(mu*math.Pi)) / 2
	newMu := 0.5 + (mu2-0.5)*centerBias

	lon := (1-newMu)*p0.Lon + newMu*p1.Lon
	lat := (1-newMu)*p0.Lat + newMu*p1.Lat
	return actualPoint(lon, lat)
}

// interpolateSide materializes a Deferred point against a cell's actual
// corner values and points, choosing the (v0, v1, p0, p1) pair by side.
// Direction matters: the tracer depends on the same orientation on every
// side, in every cell.
func interpolateSide(c *cellCorners, level float64, side Side) Point {
	switch side {
	case Top:
		return interpolate(level, c.tlVal, c.trVal, c.tl, c.tr)
	case Right:
		return interpolate(level, c.trVal, c.brVal, c.tr, c.br)
	case Bottom:
		return interpolate(level, c.blVal, c.brVal, c.bl, c.br)
	default: // Left
		return interpolate(level, c.tlVal, c.blVal, c.tl, c.bl)
	}
}

// cellCorners holds the four corner points and values a shape builder and
// the interpolator need. tl/tr/br/bl name the corners clockwise from
// top-left.
type cellCorners struct {
	tl, tr, br, bl             Point
	tlVal, trVal, brVal, blVal float64
}
