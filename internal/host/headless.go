package host

import (
	"bufio"
	"fmt"
	"os"

	"github.com/jfrost-dev/nescore/internal/console"
	"github.com/jfrost-dev/nescore/internal/ppu"
)

// Headless drives a console without any display backend, for tests
// and command-line diagnostics. It keeps the most recently produced
// frame so callers can inspect or dump it.
type Headless struct {
	console    *console.Console
	frameCount int
	lastFrame  *[ppu.Width * ppu.Height]ppu.RGB
}

// NewHeadless wraps c for headless stepping.
func NewHeadless(c *console.Console) *Headless {
	return &Headless{console: c}
}

// RunFrames steps the console through n complete frames and keeps the
// last one produced.
func (h *Headless) RunFrames(n int) {
	for i := 0; i < n; i++ {
		h.lastFrame = h.console.RunFrame()
		h.frameCount++
	}
}

// FrameCount reports how many frames have been produced so far.
func (h *Headless) FrameCount() int {
	return h.frameCount
}

// LastFrame returns the most recently completed frame, or nil if none
// has been produced yet.
func (h *Headless) LastFrame() *[ppu.Width * ppu.Height]ppu.RGB {
	return h.lastFrame
}

// DumpPPM writes the most recently completed frame to path in plain
// PPM (P3) format, useful for eyeballing a frame without a window.
func (h *Headless) DumpPPM(path string) error {
	if h.lastFrame == nil {
		return fmt.Errorf("dump PPM: no frame produced yet")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dump PPM: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "P3\n%d %d\n255\n", ppu.Width, ppu.Height)
	for _, px := range h.lastFrame {
		fmt.Fprintf(w, "%d %d %d\n", px.R, px.G, px.B)
	}
	return w.Flush()
}
