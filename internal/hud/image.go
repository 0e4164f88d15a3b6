package hud

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/hudkit/internal/datanode"
	"github.com/appengine-ltd/hudkit/internal/geom"
	"github.com/appengine-ltd/hudkit/internal/render"
	"github.com/appengine-ltd/hudkit/internal/sprite"
)

// imageKind draws a sprite scaled uniformly to fit the element bounds.
// A "sprite" element names a fixed sprite (with optional per-state
// variants); "image" and "outline" elements resolve their sprite through
// the provider each frame. Outlines draw an oriented silhouette.
type imageKind struct {
	sprites   [stateCount]*sprite.Sprite
	name      string
	isOutline bool
	isColored bool
}

func newImageElement(node *datanode.Node, globalAlign geom.Pt) *Element {
	if node.Size() < 2 {
		return nil
	}
	k := &imageKind{isOutline: node.Token(0) == "outline"}
	if node.Token(0) == "sprite" {
		k.sprites[StateActive] = sprite.Get(node.Token(1))
	} else {
		k.name = node.Token(1)
	}

	e := &Element{kind: k}
	e.load(node, globalAlign)

	// Any state without its own sprite reuses the active one.
	if k.sprites[StateActive] != nil {
		if k.sprites[StateInactive] == nil {
			k.sprites[StateInactive] = k.sprites[StateActive]
		}
		if k.sprites[StateHover] == nil {
			k.sprites[StateHover] = k.sprites[StateActive]
		}
	}
	return e
}

func (k *imageKind) parseLine(node *datanode.Node) bool {
	// Per-state sprites only apply to fixed images; "colored" only to
	// outlines.
	switch {
	case node.Token(0) == "inactive" && node.Size() >= 2 && k.name == "":
		k.sprites[StateInactive] = sprite.Get(node.Token(1))
	case node.Token(0) == "hover" && node.Size() >= 2 && k.name == "":
		k.sprites[StateHover] = sprite.Get(node.Token(1))
	case k.isOutline && node.Token(0) == "colored":
		k.isColored = true
	default:
		return false
	}
	return true
}

func (k *imageKind) nativeDimensions(v Provider, state State, bounds geom.Rect) geom.Pt {
	s := k.get(v, state)
	if s == nil || s.Width == 0 || s.Height == 0 {
		return geom.Pt{}
	}
	size := geom.NewPt(s.Width, s.Height)
	if bounds.Size.IsZero() {
		return size
	}

	// Scale uniformly so the sprite fits whichever axis constrains it;
	// an axis with zero size places no constraint at all.
	scale := math.Inf(1)
	if bounds.Width() > 0 {
		scale = bounds.Width() / size.X
	}
	if bounds.Height() > 0 {
		scale = math.Min(scale, bounds.Height()/size.Y)
	}
	if math.IsInf(scale, 1) {
		return size
	}
	return size.Scale(scale)
}

func (k *imageKind) draw(rect geom.Rect, v Provider, state State) {
	s := k.get(v, state)
	if s == nil || s.Width == 0 || s.Height == 0 {
		return
	}

	if k.isOutline {
		clr := rl.White
		if k.isColored {
			clr = v.OutlineColor()
		}
		render.Outline(s, rect.Center, rect.Size, clr, v.SpriteUnit(k.name), v.SpriteFrame(k.name))
		return
	}
	render.Sprite(s, rect.Center, rect.Width()/s.Width)
}

func (k *imageKind) place(box geom.Rect, zones ZoneAdder) {
}

func (k *imageKind) get(v Provider, state State) *sprite.Sprite {
	if k.name == "" {
		return k.sprites[state]
	}
	return v.Sprite(k.name)
}
