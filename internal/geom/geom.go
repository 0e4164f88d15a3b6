// Package geom provides the 2D value types the layout engine is built on:
// points (also used as sizes, offsets, and alignment vectors) and rectangles
// described by a center and dimensions.
package geom

import "math"

// Pt is a 2D point or vector.
type Pt struct {
	X, Y float64
}

func NewPt(x, y float64) Pt {
	return Pt{X: x, Y: y}
}

// Add returns p + q.
func (p Pt) Add(q Pt) Pt {
	return Pt{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Pt) Sub(q Pt) Pt {
	return Pt{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by s on both axes.
func (p Pt) Scale(s float64) Pt {
	return Pt{X: p.X * s, Y: p.Y * s}
}

// Mul returns the component-wise product of p and q.
func (p Pt) Mul(q Pt) Pt {
	return Pt{X: p.X * q.X, Y: p.Y * q.Y}
}

// Neg returns -p.
func (p Pt) Neg() Pt {
	return Pt{X: -p.X, Y: -p.Y}
}

// Length returns the Euclidean length of p treated as a vector.
func (p Pt) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// IsZero reports whether both components are exactly zero.
func (p Pt) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Rect is an axis-aligned rectangle described by its center and dimensions.
// A dimension of 0 on an axis means the rectangle is unconstrained on that
// axis; callers that auto-size content rely on that sentinel.
type Rect struct {
	Center Pt
	Size   Pt
}

func NewRect(center, size Pt) Rect {
	return Rect{Center: center, Size: size}
}

// WithCorners returns the rectangle spanning the two given corner points,
// in either relative order.
func WithCorners(a, b Pt) Rect {
	size := Pt{X: math.Abs(b.X - a.X), Y: math.Abs(b.Y - a.Y)}
	center := Pt{X: .5 * (a.X + b.X), Y: .5 * (a.Y + b.Y)}
	return Rect{Center: center, Size: size}
}

func (r Rect) Width() float64 {
	return r.Size.X
}

func (r Rect) Height() float64 {
	return r.Size.Y
}

func (r Rect) TopLeft() Pt {
	return r.Center.Sub(r.Size.Scale(.5))
}

func (r Rect) BottomRight() Pt {
	return r.Center.Add(r.Size.Scale(.5))
}

// Add returns the rectangle translated by the given offset.
func (r Rect) Add(offset Pt) Rect {
	return Rect{Center: r.Center.Add(offset), Size: r.Size}
}

// Contains reports whether the given point lies inside the rectangle.
// Points exactly on an edge count as inside.
func (r Rect) Contains(p Pt) bool {
	d := p.Sub(r.Center)
	return math.Abs(d.X) <= .5*r.Size.X && math.Abs(d.Y) <= .5*r.Size.Y
}
