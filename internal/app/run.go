// Package app is the hudkit demo shell: it loads an interface
// definition, opens a window, and drives the per-frame draw loop with
// live values so every element kind can be seen working.
package app

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/hudkit/internal/datanode"
	"github.com/appengine-ltd/hudkit/internal/geom"
	"github.com/appengine-ltd/hudkit/internal/hud"
	"github.com/appengine-ltd/hudkit/internal/sprite"
	"github.com/appengine-ltd/hudkit/internal/theme"
)

type Config struct {
	ConfigPath  string
	PalettePath string
	SpriteDir   string
}

type App struct {
	cfg Config
}

func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// builtinDemo exercises every element kind against the demo values the
// frame loop feeds in.
const builtinDemo = `
interface demo
	label "hudkit demo"
		center 0 -250
		size 24
	visible if "has target"
	outline target
		dimensions 120 120
		center 0 -120
		colored
	visible
	string clock
		center 0 0
		size 18
	bar fuel
		from -150 220 to 150 226
		size 4
		color bright
	ring shield
		dimensions 90 90
		center 0 120
		size 8
	active if "can buy"
	button B "Buy fuel"
		dimensions 120 30
		center 0 180
	point readout
		center 0 260
		dimensions 200 20
`

func (a *App) Run() error {
	ui, err := a.loadInterface()
	if err != nil {
		return err
	}
	if err := theme.LoadPalette(a.cfg.PalettePath); err != nil {
		return err
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "hudkit demo")
	defer rl.CloseWindow()
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	if a.cfg.SpriteDir != "" {
		if err := sprite.LoadDir(a.cfg.SpriteDir); err != nil {
			return fmt.Errorf("load sprites: %w", err)
		}
	}

	values := hud.NewValues()
	zones := &zoneList{}
	start := time.Now()
	lastKey := rune(0)

	for !rl.WindowShouldClose() {
		w := float64(rl.GetScreenWidth())
		h := float64(rl.GetScreenHeight())
		hud.SetViewport(geom.NewPt(w, h))

		elapsed := time.Since(start).Seconds()
		mouse := rl.GetMousePosition()
		values.SetMouse(geom.NewPt(float64(mouse.X)-.5*w, float64(mouse.Y)-.5*h))
		values.SetString("clock", time.Now().Format("15:04:05"))
		values.SetBar("fuel", .5+.5*math.Sin(elapsed/3), 0)
		values.SetBar("shield", .5+.5*math.Sin(elapsed), 8)
		values.SetCondition("has target", math.Mod(elapsed, 6) < 4)
		values.SetCondition("can buy", math.Mod(elapsed, 2) < 1.5)
		values.SetSprite("target", sprite.Get("target"),
			geom.NewPt(math.Sin(elapsed), -math.Cos(elapsed)), int(elapsed*10))

		zones.reset()

		// Interface coordinates are centered on the screen; a camera
		// offset maps them onto raylib's top-left origin.
		camera := rl.Camera2D{
			Offset: rl.NewVector2(float32(.5*w), float32(.5*h)),
			Zoom:   1,
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(0x14, 0x1A, 0x1F, 255))
		rl.BeginMode2D(camera)
		ui.Draw(values, zones)
		rl.EndMode2D()
		if key, ok := zones.triggered(values.Mouse()); ok {
			lastKey = key
		}
		if lastKey != 0 {
			rl.DrawText(fmt.Sprintf("last trigger: %c", lastKey), 10, 10, 18, rl.Gray)
		}
		rl.EndDrawing()
	}
	return nil
}

func (a *App) loadInterface() (*hud.Interface, error) {
	var nodes []datanode.Node
	var err error
	if a.cfg.ConfigPath != "" {
		nodes, err = datanode.ParseFile(a.cfg.ConfigPath)
	} else {
		nodes, err = datanode.Parse("builtin", strings.NewReader(builtinDemo))
	}
	if err != nil {
		return nil, err
	}
	for i := range nodes {
		if nodes[i].Token(0) != "interface" {
			continue
		}
		if ui := hud.Load(&nodes[i]); ui != nil {
			return ui, nil
		}
	}
	return nil, fmt.Errorf("no interface found in configuration")
}

// zoneList collects the clickable zones placed during one frame and
// turns clicks and bound keys into triggers.
type zoneList struct {
	zones []zone
}

type zone struct {
	box geom.Rect
	key rune
}

func (z *zoneList) AddZone(box geom.Rect, key rune) {
	z.zones = append(z.zones, zone{box: box, key: key})
}

func (z *zoneList) reset() {
	z.zones = z.zones[:0]
}

// triggered reports a zone activation: a click inside its box, or its
// bound key being pressed.
func (z *zoneList) triggered(mouse geom.Pt) (rune, bool) {
	for _, zn := range z.zones {
		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && zn.box.Contains(mouse) {
			return zn.key, true
		}
		if rl.IsKeyPressed(int32(unicode.ToUpper(zn.key))) {
			return zn.key, true
		}
	}
	return 0, false
}
