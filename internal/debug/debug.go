package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Stats is the per-frame simulation counters shown by the overlay.
type Stats struct {
	Bodies   int
	Shapes   int
	Contacts int
}

// Debug holds runtime debugging overlays (FPS, heap, simulation
// counters). All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowSimStats bool

	stats        Stats
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastSimText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the heap allocation counter is drawn
// (top-right, under FPS).
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetShowSimStats sets whether body/shape/contact counts are drawn.
func (d *Debug) SetShowSimStats(show bool) {
	d.ShowSimStats = show
}

// SetStats records the simulation counters for the next Draw.
func (d *Debug) SetStats(s Stats) {
	d.stats = s
}

// Draw renders any enabled debug overlays at the top-right. Call after
// the scene in the draw loop. Text is only recomputed every
// updateInterval frames to limit allocations.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}
	if d.ShowSimStats && d.lastSimText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, screenW, y, rl.Green)
		y += lineHeight
	}

	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		drawRight(d.lastMemText, screenW, y, rl.Green)
		y += lineHeight
	}

	if d.ShowSimStats {
		if update {
			d.lastSimText = fmt.Sprintf("Bodies: %d  Shapes: %d  Contacts: %d",
				d.stats.Bodies, d.stats.Shapes, d.stats.Contacts)
		}
		drawRight(d.lastSimText, screenW, y, rl.Green)
	}
}

// drawRight draws text right-aligned against the screen edge.
func drawRight(text string, screenW, y int32, color rl.Color) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, color)
}
