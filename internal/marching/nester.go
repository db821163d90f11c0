package marching

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// Ring is a closed sequence of points, first and last bit-identical
// (tracer.go guarantees this before a ring reaches the nester).
type Ring []Point

// Polygon is one outer ring plus zero or more holes nested directly
// inside it.
type Polygon struct {
	Outer Ring
	Holes []Ring
}

func ringArea(r Ring) float64 {
	var a float64
	for i := 0; i < len(r)-1; i++ {
		a += r[i].Lon*r[i+1].Lat - r[i+1].Lon*r[i].Lat
	}
	return a / 2
}

func ringBounds(r Ring) Bounds {
	b := Bounds{MinLon: r[0].Lon, MaxLon: r[0].Lon, MinLat: r[0].Lat, MaxLat: r[0].Lat}
	for _, p := range r {
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
	return b
}

// ringContainsPoint is a standard even-odd ray cast.
func ringContainsPoint(r Ring, lon, lat float64) bool {
	inside := false
	for i, j := 0, len(r)-1; i < len(r); j, i = i, i+1 {
		pi, pj := r[i], r[j]
		if (pi.Lat > lat) != (pj.Lat > lat) {
			lonAtLat := (pj.Lon-pi.Lon)*(lat-pi.Lat)/(pj.Lat-pi.Lat) + pi.Lon
			if lon < lonAtLat {
				inside = !inside
			}
		}
	}
	return inside
}

// ringContains reports whether outer geometrically contains inner. Rings
// produced by the tracer never cross, so testing a single vertex of inner
// against outer's boundary (after a cheap bounding-box check) is
// sufficient.
func ringContains(outer, inner Ring) bool {
	ob, ib := ringBounds(outer), ringBounds(inner)
	if ib.MinLon < ob.MinLon || ib.MaxLon > ob.MaxLon || ib.MinLat < ob.MinLat || ib.MaxLat > ob.MaxLat {
		return false
	}
	return ringContainsPoint(outer, inner[0].Lon, inner[0].Lat)
}

type nestNode struct {
	ring   Ring
	area   float64
	parent int
	depth  int
}

// boundsRect converts a ring's bounding box into an rtreego.Rect, with the
// same degenerate-extent floor index.go uses for single-point slivers.
func boundsRect(b Bounds) rtreego.Rect {
	point := rtreego.Point{b.MinLon, b.MinLat}
	lonLength := b.MaxLon - b.MinLon
	latLength := b.MaxLat - b.MinLat

	const epsilon = 0.0001
	if lonLength < epsilon {
		lonLength = epsilon
	}
	if latLength < epsilon {
		latLength = epsilon
	}

	rect, _ := rtreego.NewRect(point, []float64{lonLength, latLength})
	return rect
}

// indexedNode wraps a placed nestNode's index for storage in the nesting
// R-tree; the tree only ever needs to answer "which already-placed rings'
// boxes could this one be nested inside," never the node's own contents.
type indexedNode struct {
	idx    int
	bounds rtreego.Rect
}

func (n *indexedNode) Bounds() rtreego.Rect { return n.bounds }

// nestRings assembles traced rings into a forest of Polygons (spec §4.6).
// Rings are processed largest-area-first; a stack of currently open
// ancestors is popped until its top geometrically contains the next ring,
// which attaches there (as a hole if its depth is odd, as a new top-level
// polygon or nested island if even) and is pushed in turn. This keeps each
// ring's containment test against only its candidate ancestors rather
// than every previously placed ring.
//
// Each candidate ancestor is first checked against an R-tree
// (github.com/dhconnelly/rtreego, the same library the teacher used for
// chart lookup) of every already-placed ring's bounding box: a ring whose
// box doesn't even intersect the candidate's can't possibly contain it, so
// the stack pops straight past it without ever running the exact
// even-odd point test.
func nestRings(rings [][]Point) []Polygon {
	order := make([]Ring, len(rings))
	for i, r := range rings {
		order[i] = Ring(r)
	}
	sort.Slice(order, func(i, j int) bool {
		return absf(ringArea(order[i])) > absf(ringArea(order[j]))
	})

	nodes := make([]nestNode, 0, len(order))
	stack := make([]int, 0, len(order))
	tree := rtreego.NewTree(2, 25, 50)

	for _, r := range order {
		rRect := boundsRect(ringBounds(r))
		intersecting := make(map[int]bool)
		for _, s := range tree.SearchIntersect(rRect) {
			intersecting[s.(*indexedNode).idx] = true
		}

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if intersecting[top] && ringContains(nodes[top].ring, r) {
				break
			}
			stack = stack[:len(stack)-1]
		}
		parent := -1
		depth := 0
		if len(stack) > 0 {
			parent = stack[len(stack)-1]
			depth = nodes[parent].depth + 1
		}
		nodes = append(nodes, nestNode{ring: r, area: ringArea(r), parent: parent, depth: depth})
		nodeIdx := len(nodes) - 1
		stack = append(stack, nodeIdx)
		tree.Insert(&indexedNode{idx: nodeIdx, bounds: rRect})
	}

	polyIndex := make(map[int]int) // node index (depth even) -> polygons index
	var polys []Polygon
	for i, n := range nodes {
		if n.depth%2 == 0 {
			polyIndex[i] = len(polys)
			polys = append(polys, Polygon{Outer: n.ring})
		}
	}
	for _, n := range nodes {
		if n.depth%2 != 0 {
			pi := polyIndex[n.parent]
			polys[pi].Holes = append(polys[pi].Holes, n.ring)
		}
	}
	return polys
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
