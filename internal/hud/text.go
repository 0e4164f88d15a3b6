package hud

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/hudkit/internal/datanode"
	"github.com/appengine-ltd/hudkit/internal/geom"
	"github.com/appengine-ltd/hudkit/internal/theme"
)

const defaultFontSize = 14

// textKind draws a line of text: a static label, a dynamic string
// resolved through the provider each frame, or a button whose first name
// character is its trigger key.
type textKind struct {
	colors    [stateCount]*rl.Color
	str       string
	fontSize  int32
	isDynamic bool
	buttonKey rune
}

func newTextElement(node *datanode.Node, globalAlign geom.Pt) *Element {
	if node.Size() < 2 {
		return nil
	}
	k := &textKind{fontSize: defaultFontSize, isDynamic: node.Token(0) == "string"}
	if node.Token(0) == "button" {
		for _, r := range node.Token(1) {
			k.buttonKey = r
			break
		}
		if node.Size() >= 3 {
			k.str = node.Token(2)
		}
	} else {
		k.str = node.Token(1)
	}

	e := &Element{kind: k}
	e.load(node, globalAlign)

	// Color cascade: labels default to "medium", strings to "bright",
	// and buttons without an explicit color to the themed state colors.
	// Any state left unset falls back to the active color.
	if k.colors[StateActive] == nil && k.buttonKey == 0 {
		if k.isDynamic {
			k.colors[StateActive] = theme.Ref("bright")
		} else {
			k.colors[StateActive] = theme.Ref("medium")
		}
	}
	if k.colors[StateActive] == nil {
		k.colors[StateActive] = theme.Ref("active")
		if k.colors[StateInactive] == nil {
			k.colors[StateInactive] = theme.Ref("inactive")
		}
		if k.colors[StateHover] == nil {
			k.colors[StateHover] = theme.Ref("hover")
		}
	} else {
		if k.colors[StateInactive] == nil {
			k.colors[StateInactive] = k.colors[StateActive]
		}
		if k.colors[StateHover] == nil {
			k.colors[StateHover] = k.colors[StateActive]
		}
	}
	return e
}

func (k *textKind) parseLine(node *datanode.Node) bool {
	switch {
	case node.Token(0) == "size" && node.Size() >= 2:
		k.fontSize = int32(node.Value(1))
	case node.Token(0) == "color" && node.Size() >= 2:
		k.setColor(node, StateActive)
	case node.Token(0) == "inactive" && node.Size() >= 2:
		k.setColor(node, StateInactive)
	case node.Token(0) == "hover" && node.Size() >= 2:
		k.setColor(node, StateHover)
	default:
		return false
	}
	return true
}

func (k *textKind) setColor(node *datanode.Node, state State) {
	c := theme.Ref(node.Token(1))
	if c == nil {
		node.Trace(fmt.Sprintf("Unknown color %q:", node.Token(1)))
		return
	}
	k.colors[state] = c
}

func (k *textKind) nativeDimensions(v Provider, state State, bounds geom.Rect) geom.Pt {
	text := k.text(v)
	return geom.NewPt(float64(theme.MeasureText(text, k.fontSize)), float64(k.fontSize))
}

func (k *textKind) draw(rect geom.Rect, v Provider, state State) {
	// A state with no color means the element is only partially
	// configured; drawing it is a silent no-op.
	if k.colors[state] == nil {
		return
	}
	tl := rect.TopLeft()
	theme.DrawText(k.text(v), int32(tl.X), int32(tl.Y), k.fontSize, *k.colors[state])
}

func (k *textKind) place(box geom.Rect, zones ZoneAdder) {
	if k.buttonKey != 0 {
		zones.AddZone(box, k.buttonKey)
	}
}

func (k *textKind) text(v Provider) string {
	if k.isDynamic {
		return v.String(k.str)
	}
	return k.str
}
