// Package sprite keeps the process-wide registry of named sprites the
// interface engine draws. Sprites are registered during asset load; the
// engine only ever looks them up by name.
package sprite

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sprite is a named image with its pixel dimensions. The texture handle
// is zero for sprites registered without GPU data (as tests do).
type Sprite struct {
	Name    string
	Width   float64
	Height  float64
	Texture rl.Texture2D
}

var registry = map[string]*Sprite{}

// Register adds a sprite to the registry, replacing any previous sprite
// with the same name.
func Register(s *Sprite) {
	if s == nil || s.Name == "" {
		return
	}
	registry[s.Name] = s
}

// Get returns the named sprite, or nil if none is registered.
func Get(name string) *Sprite {
	return registry[name]
}

// LoadDir registers every .png in dir under its base name (without the
// extension). Files that fail to load are skipped with a log line.
func LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".png") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		tex := rl.LoadTexture(path)
		if tex.ID == 0 {
			log.Printf("sprite: failed to load %s", path)
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".png")
		Register(&Sprite{
			Name:    name,
			Width:   float64(tex.Width),
			Height:  float64(tex.Height),
			Texture: tex,
		})
	}
	return nil
}
