// Package host adapts a console.Console to an output backend: an
// interactive ebiten window, or a headless sink for tests and
// diagnostics.
package host

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jfrost-dev/nescore/internal/console"
	"github.com/jfrost-dev/nescore/internal/controller"
	"github.com/jfrost-dev/nescore/internal/ppu"
)

// defaultKeyMap is the standard control scheme: arrow keys for the
// d-pad, A/S for A/B, Enter for Start and Space for Select.
var defaultKeyMap = map[ebiten.Key]controller.Button{
	ebiten.KeyA:          controller.ButtonA,
	ebiten.KeyS:          controller.ButtonB,
	ebiten.KeySpace:      controller.ButtonSelect,
	ebiten.KeyEnter:      controller.ButtonStart,
	ebiten.KeyArrowUp:    controller.ButtonUp,
	ebiten.KeyArrowDown:  controller.ButtonDown,
	ebiten.KeyArrowLeft:  controller.ButtonLeft,
	ebiten.KeyArrowRight: controller.ButtonRight,
}

// Game implements ebiten.Game, driving the emulator one frame per
// Update call and blitting the PPU's framebuffer on Draw.
type Game struct {
	console *console.Console
	screen  *ebiten.Image
	scale   int
}

// NewGame wraps c for display at the given integer window scale.
func NewGame(c *console.Console, scale int) *Game {
	if scale < 1 {
		scale = 1
	}
	return &Game{
		console: c,
		screen:  ebiten.NewImage(ppu.Width, ppu.Height),
		scale:   scale,
	}
}

// WindowSize returns the scaled window dimensions for ebiten.SetWindowSize.
func (g *Game) WindowSize() (int, int) {
	return ppu.Width * g.scale, ppu.Height * g.scale
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	pollInput(g.console.Controller1())

	for !g.console.Step() {
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.console.Bus.PPU.Frame()
	img := image.NewRGBA(image.Rect(0, 0, ppu.Width, ppu.Height))
	for i, c := range frame {
		img.SetRGBA(i%ppu.Width, i/ppu.Width, color.RGBA{c.R, c.G, c.B, 0xFF})
	}
	g.screen.WritePixels(img.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.screen, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.Width, ppu.Height
}

func pollInput(pad *controller.Controller) {
	for key, button := range defaultKeyMap {
		pad.SetButton(button, ebiten.IsKeyPressed(key))
	}
}
