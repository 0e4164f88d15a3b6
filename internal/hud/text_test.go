package hud

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/hudkit/internal/geom"
	"github.com/appengine-ltd/hudkit/internal/theme"
)

type drawnText struct {
	text     string
	x, y     int32
	fontSize int32
	clr      rl.Color
}

// installTextRecorder replaces the theme text hooks with a deterministic
// measure (7 px per byte) and a recorder for draw calls.
func installTextRecorder(t *testing.T) *[]drawnText {
	t.Helper()
	var calls []drawnText
	theme.SetTextRenderer(
		func(text string, x, y, fontSize int32, clr rl.Color) {
			calls = append(calls, drawnText{text, x, y, fontSize, clr})
		},
		func(text string, fontSize int32) int32 {
			return int32(7 * len(text))
		},
	)
	return &calls
}

type zoneRecord struct {
	box geom.Rect
	key rune
}

type zoneRecorder struct {
	zones []zoneRecord
}

func (z *zoneRecorder) AddZone(box geom.Rect, key rune) {
	z.zones = append(z.zones, zoneRecord{box: box, key: key})
}

func TestButtonDefaultsActiveColorAndRegistersZone(t *testing.T) {
	calls := installTextRecorder(t)
	SetViewport(geom.NewPt(1000, 600))

	nodes := parseNodes(t,
		"interface test\n" +
			"\tbutton B \"Buy\"\n" +
			"\t\tdimensions 80 20\n" +
			"\t\tcenter 100 100\n")
	ui := Load(&nodes[0])
	if ui == nil {
		t.Fatalf("interface failed to load")
	}

	v := NewValues()
	v.SetMouse(geom.NewPt(-400, -200)) // far outside the button
	zones := &zoneRecorder{}
	ui.Draw(v, zones)

	if len(zones.zones) != 1 {
		t.Fatalf("expected 1 zone, got %d", len(zones.zones))
	}
	if zones.zones[0].key != 'B' {
		t.Fatalf("expected key 'B', got %q", zones.zones[0].key)
	}
	if got := zones.zones[0].box.Center; got != geom.NewPt(100, 100) {
		t.Fatalf("zone box center wrong: %+v", got)
	}

	if len(*calls) != 1 {
		t.Fatalf("expected 1 text draw, got %d", len(*calls))
	}
	want, _ := theme.Color("active")
	if (*calls)[0].clr != want {
		t.Fatalf("expected themed active color %v, got %v", want, (*calls)[0].clr)
	}
	if (*calls)[0].text != "Buy" {
		t.Fatalf("expected label Buy, got %q", (*calls)[0].text)
	}
}

func TestButtonHoverAndInactiveColors(t *testing.T) {
	calls := installTextRecorder(t)
	SetViewport(geom.NewPt(1000, 600))

	nodes := parseNodes(t,
		"interface test\n" +
			"\tactive if ready\n" +
			"\tbutton B \"Buy\"\n" +
			"\t\tdimensions 80 20\n" +
			"\t\tcenter 100 100\n")
	ui := Load(&nodes[0])

	// Condition false: inactive even with the mouse inside the box.
	v := NewValues()
	v.SetCondition("ready", false)
	v.SetMouse(geom.NewPt(100, 100))
	ui.Draw(v, nil)
	wantInactive, _ := theme.Color("inactive")
	if (*calls)[0].clr != wantInactive {
		t.Fatalf("expected inactive color %v, got %v", wantInactive, (*calls)[0].clr)
	}

	// Condition true with the mouse inside: hover.
	*calls = nil
	v.SetCondition("ready", true)
	ui.Draw(v, nil)
	wantHover, _ := theme.Color("hover")
	if (*calls)[0].clr != wantHover {
		t.Fatalf("expected hover color %v, got %v", wantHover, (*calls)[0].clr)
	}
}

func TestLabelAndStringDefaultColors(t *testing.T) {
	calls := installTextRecorder(t)
	SetViewport(geom.NewPt(1000, 600))

	nodes := parseNodes(t,
		"interface test\n" +
			"\tlabel \"Fuel\"\n" +
			"\t\tcenter 0 0\n" +
			"\tstring fuel\n" +
			"\t\tcenter 0 40\n")
	ui := Load(&nodes[0])

	v := NewValues()
	v.SetString("fuel", "78%")
	v.SetMouse(geom.NewPt(-499, -299))
	ui.Draw(v, nil)

	if len(*calls) != 2 {
		t.Fatalf("expected 2 draws, got %d", len(*calls))
	}
	wantMedium, _ := theme.Color("medium")
	wantBright, _ := theme.Color("bright")
	if (*calls)[0].clr != wantMedium || (*calls)[0].text != "Fuel" {
		t.Fatalf("label draw wrong: %+v", (*calls)[0])
	}
	if (*calls)[1].clr != wantBright || (*calls)[1].text != "78%" {
		t.Fatalf("string draw wrong: %+v", (*calls)[1])
	}
}

func TestExplicitColorFillsUnsetStates(t *testing.T) {
	installTextRecorder(t)
	nodes := parseNodes(t,
		"interface test\n" +
			"\tbutton B \"Buy\"\n" +
			"\t\tcolor bright\n")
	ui := Load(&nodes[0])
	k := ui.elements[0].kind.(*textKind)

	bright := theme.Ref("bright")
	for state := StateInactive; state <= StateHover; state++ {
		if k.colors[state] == nil || *k.colors[state] != *bright {
			t.Fatalf("state %d did not inherit explicit color", state)
		}
	}
}

func TestInvisibleElementIsSkippedEntirely(t *testing.T) {
	calls := installTextRecorder(t)
	nodes := parseNodes(t,
		"interface test\n" +
			"\tvisible if shown\n" +
			"\tbutton B \"Buy\"\n" +
			"\t\tdimensions 80 20\n")
	ui := Load(&nodes[0])

	v := NewValues()
	v.SetCondition("shown", false)
	zones := &zoneRecorder{}
	ui.Draw(v, zones)

	if len(*calls) != 0 || len(zones.zones) != 0 {
		t.Fatalf("invisible element must not draw or place zones")
	}
}

func TestTextAlignmentAndPaddingPlacement(t *testing.T) {
	calls := installTextRecorder(t)
	SetViewport(geom.NewPt(1000, 600))

	// 80x20 box at origin, right-aligned text with 5,2 padding.
	nodes := parseNodes(t,
		"interface test\n" +
			"\tlabel Hi\n" +
			"\t\tdimensions 80 20\n" +
			"\t\tcenter 0 0\n" +
			"\t\talign right\n" +
			"\t\tpad 5 2\n")
	ui := Load(&nodes[0])

	v := NewValues()
	v.SetMouse(geom.NewPt(-499, -299))
	ui.Draw(v, nil)

	// Native size is 14x14 ("Hi" at 7 px/byte, font size 14). Slack is
	// (80-14)/2 - 5 = 28 on X, zero alignment on Y. The draw rectangle's
	// center lands at (28, 0), so the top-left is (21, -7).
	got := (*calls)[0]
	if got.x != 21 || got.y != -7 {
		t.Fatalf("expected text top-left (21,-7), got (%d,%d)", got.x, got.y)
	}
}
