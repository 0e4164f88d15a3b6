// Package theme holds the named color palette and the text draw/measure
// hooks the interface engine renders with. The palette ships with builtin
// values and can be overlaid from a YAML file.
package theme

import (
	"fmt"
	"log"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// Builtin palette. Elements look these up by name; the state cascade in
// the interface engine relies on "active"/"inactive"/"hover" and the text
// defaults on "bright"/"medium".
var palette = map[string]rl.Color{
	"active":   rl.NewColor(0xE8, 0xE2, 0xD8, 255),
	"inactive": rl.NewColor(0x7D, 0x85, 0x8A, 255),
	"hover":    rl.NewColor(0xD4, 0x6A, 0x1E, 255),
	"bright":   rl.NewColor(0xFF, 0xFF, 0xFF, 255),
	"medium":   rl.NewColor(0xA6, 0xAD, 0xB1, 255),
	"dim":      rl.NewColor(0x4A, 0x52, 0x57, 255),
	"outline":  rl.NewColor(0xC1, 0x8B, 0x2F, 255),
}

// Color looks up a named palette color.
func Color(name string) (rl.Color, bool) {
	c, ok := palette[name]
	return c, ok
}

// Ref returns a pointer to a copy of the named color, or nil if the name
// is not in the palette. Interface elements hold these pointers; nil
// means "unset" and suppresses drawing for that state.
func Ref(name string) *rl.Color {
	c, ok := palette[name]
	if !ok {
		return nil
	}
	return &c
}

// Set adds or replaces a named palette color.
func Set(name string, c rl.Color) {
	palette[name] = c
}

// LoadPalette overlays the palette with name -> "#RRGGBB[AA]" pairs from
// a YAML file. A missing file is not an error; entries that do not parse
// are skipped with a log line.
func LoadPalette(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read palette: %w", err)
	}
	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse palette %s: %w", path, err)
	}
	for name, hex := range entries {
		c, ok := ParseHexColor(hex)
		if !ok {
			log.Printf("palette %s: skipping %q: bad color %q", path, name, hex)
			continue
		}
		palette[name] = c
	}
	return nil
}

// ParseHexColor parses "#RGB", "#RRGGBB", or "#RRGGBBAA" into a color.
func ParseHexColor(s string) (rl.Color, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return rl.Color{}, false
	}
	hex := s[1:]
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return rl.Color{}, false
		}
	}
	switch len(hex) {
	case 3:
		return rl.NewColor(hexByte(hex[0])*17, hexByte(hex[1])*17, hexByte(hex[2])*17, 255), true
	case 6:
		return rl.NewColor(
			hexByte(hex[0])<<4+hexByte(hex[1]),
			hexByte(hex[2])<<4+hexByte(hex[3]),
			hexByte(hex[4])<<4+hexByte(hex[5]),
			255), true
	case 8:
		return rl.NewColor(
			hexByte(hex[0])<<4+hexByte(hex[1]),
			hexByte(hex[2])<<4+hexByte(hex[3]),
			hexByte(hex[4])<<4+hexByte(hex[5]),
			hexByte(hex[6])<<4+hexByte(hex[7])), true
	}
	return rl.Color{}, false
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexByte(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
