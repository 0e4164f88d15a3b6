//go:build ignore

// gen_sprites.go – run with:
//
//	go run scripts/gen_sprites.go
//
// Creates assets/sprites/*.png placeholder sprites for the hudkit demo.
// Each file is a small PNG with a coloured border so scaling and outline
// orientation are easy to see. Replace with real art at any time; the
// demo loads whatever is in the directory passed via -sprites.
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

func main() {
	if err := os.MkdirAll(filepath.Join("assets", "sprites"), 0o755); err != nil {
		log.Fatal(err)
	}

	// target.png – 64×64, asymmetric border so the outline's facing
	// rotation is visible.
	genSprite("assets/sprites/target.png", 64, 64, 6,
		color.RGBA{0xD4, 0x6A, 0x1E, 0xFF}, // border: ember
		color.RGBA{0x2F, 0x5D, 0x42, 0xFF}, // centre: forest
	)

	// icon.png – 32×16, non-square to exercise the constrained-axis fit.
	genSprite("assets/sprites/icon.png", 32, 16, 3,
		color.RGBA{0xC1, 0x8B, 0x2F, 0xFF}, // border: amber
		color.RGBA{0x1C, 0x23, 0x29, 0xFF}, // centre: panel dark
	)

	log.Println("Placeholder sprites written to assets/sprites/")
}

// genSprite writes a PNG of size w×h with the outer 'border' pixels on
// all four sides coloured border and the centre coloured centre.
func genSprite(path string, w, h, border int, borderCol, centreCol color.RGBA) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < border || y < border || x >= w-border || y >= h-border {
				img.Set(x, y, borderCol)
			} else {
				img.Set(x, y, centreCol)
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%dx%d)", path, w, h)
}
