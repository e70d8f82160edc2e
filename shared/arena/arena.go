// Package arena describes the fixed geometry of the duel screen: screen
// bounds, the two gunslinger boxes on the ground line, and the touch control
// zones. Layouts are authored in Tiled and loaded from TMX; a built-in layout
// is used when the map cannot be read.
package arena

import (
	"fmt"
	"io/fs"

	"github.com/automoto/showdown/shared/duelconfig"
	"github.com/lafriks/go-tiled"
)

// Object group and object names expected in the TMX file.
const (
	GroupGunslingers = "Gunslingers"
	GroupControls    = "Controls"

	ObjectPlayer1 = "player1"
	ObjectPlayer2 = "player2"
)

// Control zone names.
const (
	ControlArcade       = "arcade"
	ControlVersus       = "versus"
	ControlAchievements = "achievements"
	ControlFireLeft     = "fire_left"
	ControlFireRight    = "fire_right"
)

// Rect is an axis-aligned box in logical screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Layout is the complete screen geometry used by the core and the renderer.
type Layout struct {
	Width, Height float64
	GroundY       float64
	Gunslingers   [duelconfig.SideCount]Rect
	Controls      map[string]Rect
}

// Gunslinger returns the home box for a side.
func (l Layout) Gunslinger(side duelconfig.Side) Rect {
	if !side.Valid() {
		return Rect{}
	}
	return l.Gunslingers[side]
}

// ControlAt returns the name of the first control zone containing the point,
// checking names in the given order.
func (l Layout) ControlAt(x, y float64, names ...string) (string, bool) {
	for _, name := range names {
		if r, ok := l.Controls[name]; ok && r.Contains(x, y) {
			return name, true
		}
	}
	return "", false
}

// Default returns the built-in 1280x720 layout. Gunslingers are 120x150,
// standing on a ground line at 90% of the screen height, at 20% and 80% of
// the width.
func Default() Layout {
	const (
		w, h           = 1280.0, 720.0
		spriteW        = 120.0
		spriteH        = 150.0
		groundY        = h * 0.9
		buttonW        = w / 2.5
		buttonH        = h / 8
		buttonSpacing  = 20.0
		menuStartY     = h / 3
		fireButtonTopY = h - buttonH
	)

	return Layout{
		Width:   w,
		Height:  h,
		GroundY: groundY,
		Gunslingers: [duelconfig.SideCount]Rect{
			duelconfig.SidePlayer:   {X: w * 0.2, Y: groundY - spriteH, W: spriteW, H: spriteH},
			duelconfig.SideOpponent: {X: w*0.8 - spriteW, Y: groundY - spriteH, W: spriteW, H: spriteH},
		},
		Controls: map[string]Rect{
			ControlArcade:       {X: w/2 - buttonW/2, Y: menuStartY, W: buttonW, H: buttonH},
			ControlVersus:       {X: w/2 - buttonW/2, Y: menuStartY + buttonH + buttonSpacing, W: buttonW, H: buttonH},
			ControlAchievements: {X: w/2 - buttonW/2, Y: menuStartY + 2*(buttonH+buttonSpacing), W: buttonW, H: buttonH},
			ControlFireLeft:     {X: 0, Y: fireButtonTopY, W: buttonW, H: buttonH},
			ControlFireRight:    {X: w - buttonW, Y: fireButtonTopY, W: buttonW, H: buttonH},
		},
	}
}

// Load parses a TMX map and builds a Layout from its object groups. It takes
// an fs.FS so callers can pass embed.FS (game) or fstest.MapFS (tests).
// Controls missing from the map fall back to the built-in zones.
func Load(fsys fs.FS, tmxPath string) (Layout, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return Layout{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	fallback := Default()
	layout := Layout{
		Width:    float64(m.Width * m.TileWidth),
		Height:   float64(m.Height * m.TileHeight),
		Controls: make(map[string]Rect, len(fallback.Controls)),
	}
	if layout.Width <= 0 || layout.Height <= 0 {
		return Layout{}, fmt.Errorf("TMX %s: empty map size", tmxPath)
	}

	var found [duelconfig.SideCount]bool
	for _, og := range m.ObjectGroups {
		switch og.Name {
		case GroupGunslingers:
			for _, o := range og.Objects {
				side := sideForObject(o.Name)
				if !side.Valid() {
					continue
				}
				layout.Gunslingers[side] = Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
				found[side] = true
			}
		case GroupControls:
			for _, o := range og.Objects {
				if o.Name == "" {
					continue
				}
				layout.Controls[o.Name] = Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			}
		}
	}

	for side, ok := range found {
		if !ok {
			return Layout{}, fmt.Errorf("TMX %s: missing %s object in %s group",
				tmxPath, duelconfig.Side(side), GroupGunslingers)
		}
	}

	p1 := layout.Gunslingers[duelconfig.SidePlayer]
	p2 := layout.Gunslingers[duelconfig.SideOpponent]
	if p1.Right() >= p2.X {
		return Layout{}, fmt.Errorf("TMX %s: player1 must stand left of player2", tmxPath)
	}
	layout.GroundY = p1.Bottom()

	for name, r := range fallback.Controls {
		if _, ok := layout.Controls[name]; !ok {
			layout.Controls[name] = r
		}
	}

	return layout, nil
}

func sideForObject(name string) duelconfig.Side {
	switch name {
	case ObjectPlayer1:
		return duelconfig.SidePlayer
	case ObjectPlayer2:
		return duelconfig.SideOpponent
	}
	return duelconfig.SideNone
}
