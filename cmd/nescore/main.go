// Command nescore runs an iNES ROM in an ebiten window.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jfrost-dev/nescore/internal/cartridge"
	"github.com/jfrost-dev/nescore/internal/console"
	"github.com/jfrost-dev/nescore/internal/host"
)

var (
	romFile = flag.String("rom", "", "Path to the iNES ROM to run.")
	scale   = flag.Int("scale", 3, "Integer window scale factor.")
	debug   = flag.Bool("debug", false, "Print a per-instruction CPU trace to stdout.")
)

func main() {
	flag.Parse()

	if *romFile == "" {
		log.Fatal("nescore: -rom is required")
	}

	rom, err := cartridge.Load(*romFile)
	if err != nil {
		log.Fatalf("nescore: invalid ROM: %v", err)
	}

	c, err := console.New(rom)
	if err != nil {
		log.Fatalf("nescore: couldn't build console: %v", err)
	}
	c.SetDebug(*debug)
	c.Reset()

	game := host.NewGame(c, *scale)
	w, h := game.WindowSize()
	ebiten.SetWindowTitle("nescore")
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
