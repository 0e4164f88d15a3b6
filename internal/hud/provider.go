package hud

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/hudkit/internal/geom"
	"github.com/appengine-ltd/hudkit/internal/sprite"
)

// State is the per-frame activation state of an element. An element is
// inactive when its activation condition is false; otherwise it is
// active, promoted to hover while the mouse is inside its box.
type State int

const (
	StateInactive State = iota
	StateActive
	StateHover

	stateCount = 3
)

// Provider supplies the dynamic values an interface is drawn against:
// condition results, strings, sprites, bar readings, and the mouse
// position. It is read-only for the duration of a draw pass.
type Provider interface {
	// Condition reports whether the named condition currently holds.
	// The empty name always holds.
	Condition(name string) bool
	// String returns the current value of a dynamic string.
	String(name string) string
	// Sprite returns the sprite currently bound to a dynamic image, or
	// nil if none is.
	Sprite(name string) *sprite.Sprite
	// SpriteUnit returns the facing unit vector for a dynamic image.
	SpriteUnit(name string) geom.Pt
	// SpriteFrame returns the animation frame for a dynamic image.
	SpriteFrame(name string) int
	// BarValue returns a gauge reading in [0, 1].
	BarValue(name string) float64
	// BarSegments returns the segment count for a gauge; values of 1 or
	// less mean the gauge is continuous.
	BarSegments(name string) float64
	// Mouse is the current pointer position in viewport coordinates.
	Mouse() geom.Pt
	// OutlineColor is the themed color for colored outline elements.
	OutlineColor() rl.Color
}

// ZoneAdder receives the clickable rectangles button elements occupy.
// Zones are registered every visible frame, even for inactive buttons,
// so the surrounding panel can explain why a button is disabled.
type ZoneAdder interface {
	AddZone(box geom.Rect, key rune)
}
