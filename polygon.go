package aoc

import (
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// FindPolygon collects every marker cell of g as a vertex (x = row,
// y = col) and orders them into a closed polygon.
//
// The ordering is a gift-wrap heuristic: the vertex with the greatest x
// (then greatest y) is the pivot, and the rest are sorted by polar angle
// around it, nearer first when collinear. It is exact for convex shapes
// and for many simple concave ones, but collinear runs of vertices can
// end up on the wrong side of the ring. With fewer than three vertices the
// scan order is kept.
func FindPolygon[T comparable](g *Grid[T], marker T) orb.Polygon {
	var ring orb.Ring
	for p, v := range g.All() {
		if v == marker {
			ring = append(ring, orb.Point{float64(p.Row), float64(p.Col)})
		}
	}

	if len(ring) > 2 {
		pivot := 0
		for i := 1; i < len(ring); i++ {
			if ring[i][0] > ring[pivot][0] || (ring[i][0] == ring[pivot][0] && ring[i][1] > ring[pivot][1]) {
				pivot = i
			}
		}
		ring[0], ring[pivot] = ring[pivot], ring[0]
		s := ring[0]
		slices.SortStableFunc(ring[1:], func(a, b orb.Point) int {
			cross := (a[0]-s[0])*(b[1]-s[1]) - (a[1]-s[1])*(b[0]-s[0])
			switch {
			case cross > 0:
				return -1
			case cross < 0:
				return 1
			}
			da, db := planar.DistanceSquared(s, a), planar.DistanceSquared(s, b)
			switch {
			case da < db:
				return -1
			case da > db:
				return 1
			}
			return 0
		})
	}

	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}
	return orb.Polygon{ring}
}

// PolygonContains reports whether the cell p lies inside poly, using the
// same (x = row, y = col) convention as FindPolygon.
func PolygonContains(poly orb.Polygon, p Pos) bool {
	return planar.PolygonContains(poly, orb.Point{float64(p.Row), float64(p.Col)})
}

// PolygonVertices returns the vertices of the outer ring of poly as grid
// positions, without the closing repeat of the first vertex.
func PolygonVertices(poly orb.Polygon) []Pos {
	if len(poly) == 0 {
		return nil
	}
	ring := poly[0]
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		ring = ring[:len(ring)-1]
	}
	out := make([]Pos, len(ring))
	for i, pt := range ring {
		out[i] = Pos{int(pt[0]), int(pt[1])}
	}
	return out
}

// PolygonArea returns the area of the closed polygon pts (first point
// repeated at the end) using the shoelace formula.
func PolygonArea(pts []Pos) int {
	var area int
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		area += a.Row*b.Col - a.Col*b.Row
	}
	return AbsDiff(area, 0) >> 1
}

// PolygonPerimeter returns the perimeter of the closed polygon pts.
func PolygonPerimeter(pts []Pos) int {
	var perimeter int
	for i := 1; i < len(pts); i++ {
		perimeter += pts[i-1].MDist(pts[i])
	}
	return perimeter
}

// PolygonBoundedPoints returns the number of integer points on or inside
// the closed axis-aligned polygon pts.
func PolygonBoundedPoints(pts []Pos) int {
	// Pick's theorem: A = i + b/2 - 1, so i + b = A + b/2 + 1.
	return PolygonArea(pts) + PolygonPerimeter(pts)>>1 + 1
}
