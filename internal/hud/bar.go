package hud

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/hudkit/internal/datanode"
	"github.com/appengine-ltd/hudkit/internal/geom"
	"github.com/appengine-ltd/hudkit/internal/render"
	"github.com/appengine-ltd/hudkit/internal/theme"
)

// barKind draws a progress gauge, reading its fill value and segment
// count from the provider by name each frame. A "ring" is a circular
// gauge; a "bar" is a line from the bounds' bottom-right corner toward
// its top-left.
type barKind struct {
	name   string
	color  *rl.Color
	width  float64
	isRing bool
}

func newBarElement(node *datanode.Node, globalAlign geom.Pt) *Element {
	if node.Size() < 2 {
		return nil
	}
	k := &barKind{name: node.Token(1), isRing: node.Token(0) == "ring"}

	e := &Element{kind: k}
	e.load(node, globalAlign)

	if k.color == nil {
		k.color = theme.Ref("active")
	}
	return e
}

func (k *barKind) parseLine(node *datanode.Node) bool {
	switch {
	case node.Token(0) == "color" && node.Size() >= 2:
		c := theme.Ref(node.Token(1))
		if c == nil {
			node.Trace(fmt.Sprintf("Unknown color %q:", node.Token(1)))
			return true
		}
		k.color = c
	case node.Token(0) == "size" && node.Size() >= 2:
		k.width = node.Value(1)
	default:
		return false
	}
	return true
}

func (k *barKind) nativeDimensions(v Provider, state State, bounds geom.Rect) geom.Pt {
	return bounds.Size
}

func (k *barKind) draw(rect geom.Rect, v Provider, state State) {
	value := v.BarValue(k.name)
	segments := v.BarSegments(k.name)
	if segments <= 1 {
		segments = 0
	}

	// A bar with no color, no stroke width, or a zero reading is only
	// partially configured; drawing it is a silent no-op.
	if k.color == nil || k.width == 0 || value == 0 {
		return
	}

	if k.isRing {
		if rect.Width() == 0 || rect.Height() == 0 {
			return
		}
		render.Ring(rect.Center, .5*rect.Width(), k.width, value, *k.color, segments)
		return
	}

	// The bar runs from the bottom-right corner toward the top-left,
	// split into equal filled runs with gaps one stroke width long.
	start := rect.BottomRight()
	span := rect.Size.Neg()
	length := span.Length()

	empty := 0.
	filled := 1.
	if segments > 0 && length > 0 {
		empty = k.width / length
		filled = (1 - empty*(segments-1)) / segments
	}

	v0 := 0.
	for v0 < value {
		from := start.Add(span.Scale(v0))
		v0 += filled
		to := start.Add(span.Scale(math.Min(v0, value)))
		v0 += empty

		render.Line(from, to, k.width, *k.color)
	}
}

func (k *barKind) place(box geom.Rect, zones ZoneAdder) {
}
