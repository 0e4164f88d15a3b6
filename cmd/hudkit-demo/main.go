package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/hudkit/internal/app"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		configPath  string
		palettePath string
		spriteDir   string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&configPath, "config", "", "interface definition file (builtin demo if empty)")
	flag.StringVar(&palettePath, "palette", "palette.yaml", "optional YAML palette overlay")
	flag.StringVar(&spriteDir, "sprites", "", "directory of .png sprites to register")
	flag.Parse()

	if showVersion {
		fmt.Printf("hudkit %s (%s) %s\n", version, commit, date)
		return
	}

	demo := app.New(app.Config{
		ConfigPath:  configPath,
		PalettePath: palettePath,
		SpriteDir:   spriteDir,
	})
	if err := demo.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
