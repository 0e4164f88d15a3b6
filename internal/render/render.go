// Package render exposes the low-level draw primitives the interface
// engine dispatches to: lines, ring gauges, sprites, and sprite outlines.
// Each primitive is a swappable hook defaulting to a raylib
// implementation, so the engine itself never touches the graphics API and
// tests can record draw calls without a window.
package render

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/hudkit/internal/geom"
	"github.com/appengine-ltd/hudkit/internal/sprite"
)

type (
	// LineFunc draws a straight line segment of the given stroke width.
	LineFunc func(from, to geom.Pt, width float64, clr rl.Color)

	// RingFunc draws a circular gauge filled to value in [0,1], starting
	// at twelve o'clock and sweeping clockwise. A segment count above 1
	// subdivides the fill into that many runs with small gaps.
	RingFunc func(center geom.Pt, radius, width float64, value float64, clr rl.Color, segments float64)

	// SpriteFunc draws a sprite centered on the given point at a uniform
	// scale factor.
	SpriteFunc func(s *sprite.Sprite, center geom.Pt, scale float64)

	// OutlineFunc draws a sprite silhouette filling the given size,
	// oriented along the unit vector, at the given animation frame.
	OutlineFunc func(s *sprite.Sprite, center, size geom.Pt, clr rl.Color, unit geom.Pt, frame int)
)

var (
	lineFn    LineFunc    = drawLine
	ringFn    RingFunc    = drawRing
	spriteFn  SpriteFunc  = drawSprite
	outlineFn OutlineFunc = drawOutline
)

// SetHooks replaces any non-nil subset of the draw primitives.
func SetHooks(line LineFunc, ring RingFunc, spr SpriteFunc, outline OutlineFunc) {
	if line != nil {
		lineFn = line
	}
	if ring != nil {
		ringFn = ring
	}
	if spr != nil {
		spriteFn = spr
	}
	if outline != nil {
		outlineFn = outline
	}
}

// ResetHooks restores the default raylib primitives.
func ResetHooks() {
	lineFn = drawLine
	ringFn = drawRing
	spriteFn = drawSprite
	outlineFn = drawOutline
}

func Line(from, to geom.Pt, width float64, clr rl.Color) {
	lineFn(from, to, width, clr)
}

func Ring(center geom.Pt, radius, width, value float64, clr rl.Color, segments float64) {
	ringFn(center, radius, width, value, clr, segments)
}

func Sprite(s *sprite.Sprite, center geom.Pt, scale float64) {
	spriteFn(s, center, scale)
}

func Outline(s *sprite.Sprite, center, size geom.Pt, clr rl.Color, unit geom.Pt, frame int) {
	outlineFn(s, center, size, clr, unit, frame)
}

func drawLine(from, to geom.Pt, width float64, clr rl.Color) {
	rl.DrawLineEx(vec(from), vec(to), float32(width), clr)
}

func drawRing(center geom.Pt, radius, width, value float64, clr rl.Color, segments float64) {
	if radius <= 0 || width <= 0 || value <= 0 {
		return
	}
	inner := float32(radius - .5*width)
	outer := float32(radius + .5*width)
	if inner < 0 {
		inner = 0
	}
	const start = -90.
	if segments <= 1 {
		rl.DrawRing(vec(center), inner, outer, start, float32(start+360*value), 64, clr)
		return
	}

	// Subdivide the sweep like the bar: equal filled arcs with gaps sized
	// to the stroke width at the gauge radius.
	gap := (width / (2 * math.Pi * radius))
	filled := (1 - gap*(segments-1)) / segments
	if filled <= 0 {
		rl.DrawRing(vec(center), inner, outer, start, float32(start+360*value), 64, clr)
		return
	}
	v := 0.
	for v < value {
		from := start + 360*v
		v += filled
		to := start + 360*math.Min(v, value)
		v += gap
		rl.DrawRing(vec(center), inner, outer, float32(from), float32(to), 32, clr)
	}
}

func drawSprite(s *sprite.Sprite, center geom.Pt, scale float64) {
	if s == nil || s.Texture.ID == 0 || scale <= 0 {
		return
	}
	w := s.Width * scale
	h := s.Height * scale
	src := rl.NewRectangle(0, 0, float32(s.Width), float32(s.Height))
	dst := rl.NewRectangle(float32(center.X-.5*w), float32(center.Y-.5*h), float32(w), float32(h))
	rl.DrawTexturePro(s.Texture, src, dst, rl.NewVector2(0, 0), 0, rl.White)
}

func drawOutline(s *sprite.Sprite, center, size geom.Pt, clr rl.Color, unit geom.Pt, frame int) {
	if s == nil || s.Texture.ID == 0 || size.X <= 0 || size.Y <= 0 {
		return
	}
	// The unit vector gives the facing; rotate the silhouette to match.
	angle := float32(math.Atan2(unit.X, -unit.Y) * 180 / math.Pi)
	src := rl.NewRectangle(0, 0, float32(s.Width), float32(s.Height))
	dst := rl.NewRectangle(float32(center.X), float32(center.Y), float32(size.X), float32(size.Y))
	origin := rl.NewVector2(float32(.5*size.X), float32(.5*size.Y))
	rl.DrawTexturePro(s.Texture, src, dst, origin, angle, clr)
}

func vec(p geom.Pt) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}
