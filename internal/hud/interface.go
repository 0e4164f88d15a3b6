// Package hud resolves declarative interface descriptions into screen
// rectangles and draws them each frame. An interface is a named set of
// elements (images, text, gauges) anchored to a corner, edge, or the
// center of the viewport, plus named points other code can query to
// position its own drawing.
package hud

import (
	"fmt"

	"github.com/appengine-ltd/hudkit/internal/datanode"
	"github.com/appengine-ltd/hudkit/internal/geom"
)

var elementKeywords = []string{
	"sprite", "image", "outline", "label", "string", "button",
	"bar", "ring", "point", "box", "visible", "active",
}

// Viewport dimensions the anchor math is computed against. The demo sets
// this from the window size each frame.
var viewport = geom.NewPt(1280, 720)

// SetViewport sets the viewport dimensions used to place interfaces.
func SetViewport(size geom.Pt) {
	viewport = size
}

// Viewport returns the current viewport dimensions.
func Viewport() geom.Pt {
	return viewport
}

// Interface owns an ordered list of elements (insertion order is draw
// order) and a set of named points. Element bounds are relative to the
// interface's anchor; absolute coordinates exist only during a draw or
// point query.
type Interface struct {
	name      string
	alignment geom.Pt
	elements  []*Element
	points    map[string]*Element
}

// Load parses one interface node: the interface's own alignment tokens,
// then its child elements in order. Unnamed interfaces yield nil.
// Configuration problems inside the node trace and skip; they never fail
// the load.
func Load(node *datanode.Node) *Interface {
	if node.Size() < 2 {
		return nil
	}
	ui := &Interface{
		name:   node.Token(1),
		points: make(map[string]*Element),
	}
	parseAlign(node, 2, &ui.alignment)

	// "visible if" and "active if" lines set the conditions applied to
	// every element that follows them.
	visibleIf := ""
	activeIf := ""
	for i := range node.Children {
		child := &node.Children[i]
		key := child.Token(0)
		switch {
		case (key == "point" || key == "box") && child.Size() >= 2:
			p := &Element{}
			p.load(child, ui.alignment)
			ui.points[child.Token(1)] = p

		case key == "visible" || key == "active":
			cond := ""
			if child.Size() >= 3 && child.Token(1) == "if" {
				cond = child.Token(2)
			}
			if key == "visible" {
				visibleIf = cond
			} else {
				activeIf = cond
			}

		default:
			var e *Element
			switch key {
			case "sprite", "image", "outline":
				e = newImageElement(child, ui.alignment)
			case "label", "string", "button":
				e = newTextElement(child, ui.alignment)
			case "bar", "ring":
				e = newBarElement(child, ui.alignment)
			default:
				msg := fmt.Sprintf("Unrecognized element %q", key)
				if hint, ok := datanode.Suggest(key, elementKeywords); ok {
					msg += fmt.Sprintf(" (did you mean %q?)", hint)
				}
				child.Trace(msg + ":")
				continue
			}
			if e == nil {
				continue
			}
			e.setConditions(visibleIf, activeIf)
			ui.elements = append(ui.elements, e)
		}
	}
	return ui
}

// Name returns the interface's configured name.
func (ui *Interface) Name() string {
	return ui.name
}

// anchor is the viewport point the interface's relative coordinates are
// added to: a corner, edge midpoint, or the center of the screen.
func (ui *Interface) anchor() geom.Pt {
	return viewport.Scale(.5).Mul(ui.alignment)
}

// Draw visits every element in insertion order: visibility, state, zone
// placement, and the kind-specific draw. Zones may be nil when no
// clickable surface is wanted.
func (ui *Interface) Draw(v Provider, zones ZoneAdder) {
	anchor := ui.anchor()
	for _, e := range ui.elements {
		e.drawAt(anchor, v, zones)
	}
}

// HasPoint reports whether a named point exists.
func (ui *Interface) HasPoint(name string) bool {
	_, ok := ui.points[name]
	return ok
}

// Point returns the center of the named point in viewport coordinates,
// or the zero point if it does not exist.
func (ui *Interface) Point(name string) geom.Pt {
	p, ok := ui.points[name]
	if !ok {
		return geom.Pt{}
	}
	return p.Bounds().Center.Add(ui.anchor())
}

// PointSize returns the dimensions of the named point, or the zero point
// if it does not exist.
func (ui *Interface) PointSize(name string) geom.Pt {
	p, ok := ui.points[name]
	if !ok {
		return geom.Pt{}
	}
	return p.Bounds().Size
}

// PointBox returns the named point's rectangle in viewport coordinates,
// or the zero rectangle if it does not exist.
func (ui *Interface) PointBox(name string) geom.Rect {
	p, ok := ui.points[name]
	if !ok {
		return geom.Rect{}
	}
	return p.Bounds().Add(ui.anchor())
}
