package hud

import (
	"fmt"

	"github.com/appengine-ltd/hudkit/internal/datanode"
	"github.com/appengine-ltd/hudkit/internal/geom"
)

// attributeKeywords are every line keyword an element can carry, shared
// geometry directives and kind-specific ones alike; used only for "did
// you mean" hints on unrecognized lines.
var attributeKeywords = []string{
	"align", "width", "height", "dimensions", "center", "from", "to", "pad",
	"size", "color", "inactive", "hover", "colored",
}

// kind is the behavior a concrete element variant plugs into the shared
// geometry and draw contract.
type kind interface {
	// parseLine is offered any config line the shared loader does not
	// recognize; it reports whether it consumed the line.
	parseLine(node *datanode.Node) bool
	// nativeDimensions reports the content-driven size the element will
	// actually draw at, given its resolved bounds.
	nativeDimensions(v Provider, state State, bounds geom.Rect) geom.Pt
	// draw renders into the final placement rectangle.
	draw(rect geom.Rect, v Provider, state State)
	// place registers any clickable zone for the element's box.
	place(box geom.Rect, zones ZoneAdder)
}

// Element is one region of an interface: resolved bounds relative to the
// interface anchor, placement alignment and padding, visibility and
// activation conditions, and the concrete kind that draws it. Named
// points are Elements with no kind.
type Element struct {
	bounds    geom.Rect
	alignment geom.Pt
	padding   geom.Pt
	visibleIf string
	activeIf  string
	kind      kind
}

// Bounds returns the element's rectangle relative to the anchor point.
func (e *Element) Bounds() geom.Rect {
	return e.bounds
}

func (e *Element) setConditions(visible, active string) {
	e.visibleIf = visible
	e.activeIf = active
}

// load folds the node's child lines, in order, into the element's
// geometry. Order matters: each directive edits the rectangle produced
// by the ones before it.
func (e *Element) load(node *datanode.Node, globalAlign geom.Pt) {
	// Once a literal "center" is given the element stops following the
	// global alignment when resized. A centered global alignment behaves
	// the same way from the start.
	isCentered := globalAlign.IsZero()

	for i := range node.Children {
		child := &node.Children[i]

		hasDimensions := child.Token(0) == "dimensions" && child.Size() >= 3
		hasWidth := hasDimensions || (child.Token(0) == "width" && child.Size() >= 2)
		hasHeight := hasDimensions || (child.Token(0) == "height" && child.Size() >= 2)

		switch {
		case child.Token(0) == "align" && child.Size() > 1:
			parseAlign(child, 1, &e.alignment)

		case hasWidth || hasHeight:
			// Resizing an axis shifts the center so that the edge the
			// global alignment points away from stays fixed, unless the
			// element is centered, in which case it grows symmetrically.
			if hasWidth {
				newWidth := child.Value(1)
				if !isCentered {
					e.bounds.Center.X += .5 * globalAlign.X * (e.bounds.Size.X - newWidth)
				}
				e.bounds.Size.X = newWidth
			}
			if hasHeight {
				idx := 1
				if hasDimensions {
					idx = 2
				}
				newHeight := child.Value(idx)
				if !isCentered {
					e.bounds.Center.Y += .5 * globalAlign.Y * (e.bounds.Size.Y - newHeight)
				}
				e.bounds.Size.Y = newHeight
			}

		case child.Token(0) == "center" && child.Size() >= 3:
			isCentered = true
			e.bounds.Center = geom.NewPt(child.Value(1), child.Value(2))

		case child.Token(0) == "from" && child.Size() >= 6 && child.Token(3) == "to":
			e.bounds = geom.WithCorners(
				geom.NewPt(child.Value(1), child.Value(2)),
				geom.NewPt(child.Value(4), child.Value(5)))

		case child.Token(0) == "from" && child.Size() >= 3:
			// Anchor the box so the given point sits at the edge or
			// corner the element's own alignment selects.
			e.bounds.Center = geom.NewPt(child.Value(1), child.Value(2)).
				Sub(e.alignment.Mul(e.bounds.Size).Scale(.5))

		case child.Token(0) == "pad" && child.Size() >= 3:
			e.padding = geom.NewPt(child.Value(1), child.Value(2))

		default:
			if e.kind != nil && e.kind.parseLine(child) {
				continue
			}
			msg := fmt.Sprintf("Unrecognized element attribute %q", child.Token(0))
			if hint, ok := datanode.Suggest(child.Token(0), attributeKeywords); ok {
				msg += fmt.Sprintf(" (did you mean %q?)", hint)
			}
			child.Trace(msg + ":")
		}
	}
}

// drawAt runs the per-frame contract for one element: visibility check,
// state computation, zone placement, content-sized alignment inside the
// bounds, and the kind-specific draw.
func (e *Element) drawAt(anchor geom.Pt, v Provider, zones ZoneAdder) {
	if e.kind == nil || !v.Condition(e.visibleIf) {
		return
	}

	box := e.bounds.Add(anchor)
	state := StateInactive
	if v.Condition(e.activeIf) {
		state = StateActive
		if box.Contains(v.Mouse()) {
			state = StateHover
		}
	}
	// Zones are placed even for inactive elements so the surrounding
	// panel can respond to clicks on a disabled button.
	if zones != nil {
		e.kind.place(box, zones)
	}

	native := e.kind.nativeDimensions(v, state, e.bounds)
	slack := e.bounds.Size.Sub(native).Scale(.5).Sub(e.padding)
	rect := geom.NewRect(e.bounds.Center.Add(anchor).Add(e.alignment.Mul(slack)), native)
	e.kind.draw(rect, v, state)
}
