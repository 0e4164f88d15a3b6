package hud

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/hudkit/internal/geom"
	"github.com/appengine-ltd/hudkit/internal/sprite"
	"github.com/appengine-ltd/hudkit/internal/theme"
)

// Values is the standard Provider implementation: a bag of per-frame
// dynamic values the caller fills in before drawing.
type Values struct {
	conditions   map[string]bool
	strings      map[string]string
	sprites      map[string]*sprite.Sprite
	spriteUnits  map[string]geom.Pt
	spriteFrames map[string]int
	barValues    map[string]float64
	barSegments  map[string]float64
	mouse        geom.Pt
	outline      *rl.Color
}

func NewValues() *Values {
	return &Values{
		conditions:   make(map[string]bool),
		strings:      make(map[string]string),
		sprites:      make(map[string]*sprite.Sprite),
		spriteUnits:  make(map[string]geom.Pt),
		spriteFrames: make(map[string]int),
		barValues:    make(map[string]float64),
		barSegments:  make(map[string]float64),
	}
}

// SetCondition sets the result of a named boolean condition.
func (v *Values) SetCondition(name string, value bool) {
	v.conditions[name] = value
}

// SetString sets the current value of a dynamic string.
func (v *Values) SetString(name, value string) {
	v.strings[name] = value
}

// SetSprite binds a sprite, facing vector, and animation frame to a
// dynamic image name.
func (v *Values) SetSprite(name string, s *sprite.Sprite, unit geom.Pt, frame int) {
	v.sprites[name] = s
	v.spriteUnits[name] = unit
	v.spriteFrames[name] = frame
}

// SetBar sets a gauge's fill value and segment count.
func (v *Values) SetBar(name string, value, segments float64) {
	v.barValues[name] = value
	v.barSegments[name] = segments
}

// SetMouse sets the pointer position in viewport coordinates.
func (v *Values) SetMouse(p geom.Pt) {
	v.mouse = p
}

// SetOutlineColor overrides the themed outline color.
func (v *Values) SetOutlineColor(c rl.Color) {
	v.outline = &c
}

func (v *Values) Condition(name string) bool {
	return name == "" || v.conditions[name]
}

func (v *Values) String(name string) string {
	return v.strings[name]
}

func (v *Values) Sprite(name string) *sprite.Sprite {
	return v.sprites[name]
}

func (v *Values) SpriteUnit(name string) geom.Pt {
	return v.spriteUnits[name]
}

func (v *Values) SpriteFrame(name string) int {
	return v.spriteFrames[name]
}

func (v *Values) BarValue(name string) float64 {
	return v.barValues[name]
}

func (v *Values) BarSegments(name string) float64 {
	return v.barSegments[name]
}

func (v *Values) Mouse() geom.Pt {
	return v.mouse
}

func (v *Values) OutlineColor() rl.Color {
	if v.outline != nil {
		return *v.outline
	}
	if c, ok := theme.Color("outline"); ok {
		return c
	}
	return rl.White
}
