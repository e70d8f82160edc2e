package systems

import (
	"github.com/automoto/showdown/components"
	cfg "github.com/automoto/showdown/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdateSession in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Taps = input.Taps[:0]

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		input.Taps = append(input.Taps, components.Point{X: float64(x), Y: float64(y)})
	}

	cx, cy := ebiten.CursorPosition()
	input.Cursor = components.Point{X: float64(cx), Y: float64(cy)}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		input.Taps = append(input.Taps, input.Cursor)
	}

	// A fresh scene starts with keys still held from the previous one
	if !input.Primed {
		input.Previous = input.Current
		input.Primed = true
	}

	if input.JustPressed(cfg.ActionFullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
}

// getOrCreateInput returns the singleton Input component, creating it if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}
