package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// FixedDt is the simulation timestep in seconds. Rendering runs at
// whatever rate the display allows; simulation always advances in
// FixedDt increments so results are frame-rate independent.
const FixedDt = 1.0 / 60.0

// maxFrameTime caps how much real time one frame may feed into the
// accumulator, so a stall (window drag, breakpoint) does not trigger a
// catch-up burst of steps.
const maxFrameTime = 0.25

// Run opens the window and drives the main loop. Each frame it feeds
// elapsed real time into a fixed-timestep accumulator, calls step(FixedDt)
// zero or more times, then clears the screen and calls draw.
// This keeps the simulation cadence separate from render cadence.
func Run(title string, width, height int, step func(dt float64), draw func()) {
	rl.InitWindow(int32(width), int32(height), title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	accumulator := 0.0
	for !rl.WindowShouldClose() {
		frameTime := float64(rl.GetFrameTime())
		if frameTime > maxFrameTime {
			frameTime = maxFrameTime
		}
		accumulator += frameTime
		for accumulator >= FixedDt {
			step(FixedDt)
			accumulator -= FixedDt
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
