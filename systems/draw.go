package systems

import (
	"image/color"

	"github.com/automoto/showdown/components"
	"github.com/automoto/showdown/core"
	"github.com/automoto/showdown/fonts"
	"github.com/automoto/showdown/shared/arena"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// snapshot returns the session snapshot taken this frame.
func snapshot(e *ecs.ECS) (core.SessionSnapshot, bool) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return core.SessionSnapshot{}, false
	}
	return components.Session.Get(entry).Snapshot, true
}

// drawCentered draws s horizontally centered on cx with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, f fonts.FontName, cx, y int, clr color.Color) {
	w, _ := fonts.Measure(f, s)
	text.Draw(screen, s, f.Get(), cx-w/2, y, clr)
}

// drawButton fills a control zone and centers a label in it.
func drawButton(screen *ebiten.Image, r arena.Rect, label string, fill, textColor color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)
	_, ascent := fonts.Measure(fonts.Regular, label)
	drawCentered(screen, label, fonts.Regular, int(r.X+r.W/2), int(r.Y+r.H/2)+ascent/2, textColor)
}
