package hud

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/hudkit/internal/geom"
	"github.com/appengine-ltd/hudkit/internal/render"
	"github.com/appengine-ltd/hudkit/internal/sprite"
)

type drawnSprite struct {
	name  string
	scale float64
}

type drawnOutline struct {
	name  string
	size  geom.Pt
	clr   rl.Color
	unit  geom.Pt
	frame int
}

func installSpriteRecorder(t *testing.T) (*[]drawnSprite, *[]drawnOutline) {
	t.Helper()
	var sprites []drawnSprite
	var outlines []drawnOutline
	render.SetHooks(nil, nil,
		func(s *sprite.Sprite, center geom.Pt, scale float64) {
			sprites = append(sprites, drawnSprite{name: s.Name, scale: scale})
		},
		func(s *sprite.Sprite, center, size geom.Pt, clr rl.Color, unit geom.Pt, frame int) {
			outlines = append(outlines, drawnOutline{s.Name, size, clr, unit, frame})
		},
	)
	t.Cleanup(render.ResetHooks)
	return &sprites, &outlines
}

func loadImage(t *testing.T, lines ...string) *Interface {
	t.Helper()
	src := "interface test\n"
	for _, line := range lines {
		src += "\t" + line + "\n"
	}
	nodes := parseNodes(t, src)
	return Load(&nodes[0])
}

func TestSpriteFitUsesConstrainingAxis(t *testing.T) {
	sprite.Register(&sprite.Sprite{Name: "icon", Width: 32, Height: 16})

	// Width 64, height unconstrained: the 32x16 sprite scales uniformly
	// by 2 to (64, 32).
	ui := loadImage(t,
		"sprite icon",
		"\twidth 64",
	)
	k := ui.elements[0].kind.(*imageKind)
	got := k.nativeDimensions(NewValues(), StateActive, ui.elements[0].Bounds())
	if got != geom.NewPt(64, 32) {
		t.Fatalf("expected fit (64,32), got %+v", got)
	}

	// Both axes constrained: the tighter one wins.
	ui = loadImage(t,
		"sprite icon",
		"\tdimensions 64 8",
	)
	k = ui.elements[0].kind.(*imageKind)
	got = k.nativeDimensions(NewValues(), StateActive, ui.elements[0].Bounds())
	if got != geom.NewPt(16, 8) {
		t.Fatalf("expected fit (16,8), got %+v", got)
	}

	// No constraint at all: native sprite size.
	ui = loadImage(t, "sprite icon")
	k = ui.elements[0].kind.(*imageKind)
	got = k.nativeDimensions(NewValues(), StateActive, ui.elements[0].Bounds())
	if got != geom.NewPt(32, 16) {
		t.Fatalf("expected native size (32,16), got %+v", got)
	}
}

func TestSpriteDrawScale(t *testing.T) {
	spriteCalls, _ := installSpriteRecorder(t)
	SetViewport(geom.NewPt(1000, 600))
	sprite.Register(&sprite.Sprite{Name: "icon", Width: 32, Height: 16})

	ui := loadImage(t,
		"sprite icon",
		"\twidth 64",
		"\tcenter 0 0",
	)
	v := NewValues()
	v.SetMouse(geom.NewPt(-499, -299))
	ui.Draw(v, nil)

	if len(*spriteCalls) != 1 {
		t.Fatalf("expected 1 sprite draw, got %d", len(*spriteCalls))
	}
	if got := (*spriteCalls)[0].scale; got != 2 {
		t.Fatalf("expected uniform scale 2, got %v", got)
	}
}

func TestMissingSpriteIsNoOp(t *testing.T) {
	spriteCalls, _ := installSpriteRecorder(t)

	// Dynamic image with nothing bound in the provider.
	ui := loadImage(t,
		"image damaged",
		"\twidth 64",
	)
	ui.Draw(NewValues(), nil)
	if len(*spriteCalls) != 0 {
		t.Fatalf("missing sprite must not draw")
	}

	// Fixed sprite that was never registered.
	ui = loadImage(t,
		"sprite never-registered",
		"\twidth 64",
	)
	ui.Draw(NewValues(), nil)
	if len(*spriteCalls) != 0 {
		t.Fatalf("unregistered sprite must not draw")
	}
}

func TestStateSpritesFallBackToActive(t *testing.T) {
	sprite.Register(&sprite.Sprite{Name: "on", Width: 10, Height: 10})
	sprite.Register(&sprite.Sprite{Name: "off", Width: 10, Height: 10})

	ui := loadImage(t,
		"sprite on",
		"\tinactive off",
	)
	k := ui.elements[0].kind.(*imageKind)
	if k.sprites[StateInactive] == nil || k.sprites[StateInactive].Name != "off" {
		t.Fatalf("explicit inactive sprite lost")
	}
	if k.sprites[StateHover] == nil || k.sprites[StateHover].Name != "on" {
		t.Fatalf("hover should fall back to the active sprite")
	}
}

func TestColoredOutlineUsesProviderValues(t *testing.T) {
	_, outlineCalls := installSpriteRecorder(t)
	SetViewport(geom.NewPt(1000, 600))

	target := &sprite.Sprite{Name: "ship", Width: 40, Height: 40}
	ui := loadImage(t,
		"outline target",
		"\tdimensions 80 80",
		"\tcenter 0 0",
		"\tcolored",
	)
	v := NewValues()
	v.SetSprite("target", target, geom.NewPt(0, -1), 3)
	v.SetOutlineColor(rl.NewColor(1, 2, 3, 255))
	v.SetMouse(geom.NewPt(-499, -299))
	ui.Draw(v, nil)

	if len(*outlineCalls) != 1 {
		t.Fatalf("expected 1 outline draw, got %d", len(*outlineCalls))
	}
	got := (*outlineCalls)[0]
	if got.name != "ship" || got.size != geom.NewPt(80, 80) {
		t.Fatalf("outline geometry wrong: %+v", got)
	}
	if got.clr != rl.NewColor(1, 2, 3, 255) {
		t.Fatalf("colored outline must use the provider color, got %v", got.clr)
	}
	if got.unit != geom.NewPt(0, -1) || got.frame != 3 {
		t.Fatalf("outline orientation/frame wrong: %+v", got)
	}
}
