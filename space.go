package aoc

import "math"

// XY is a point in the plane.
type XY struct {
	X, Y float64
}

func (p XY) DistanceTo(o XY) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

func (p *XY) MoveBy(dx, dy float64) {
	p.X += dx
	p.Y += dy
}

// XYZ is a point in space.
type XYZ struct {
	X, Y, Z float64
}

func (p XYZ) DistanceTo(o XYZ) float64 {
	dx, dy, dz := p.X-o.X, p.Y-o.Y, p.Z-o.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func (p *XYZ) MoveBy(dx, dy, dz float64) {
	p.X += dx
	p.Y += dy
	p.Z += dz
}
