package main

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/automoto/showdown/assets"
	"github.com/automoto/showdown/config"
	"github.com/automoto/showdown/core"
	"github.com/automoto/showdown/fonts"
	"github.com/automoto/showdown/scenes"
	"github.com/automoto/showdown/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	session *core.Session
	scene   Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	layout := assets.LoadArena(config.C.ArenaPath)
	ledger := systems.InitLedger(config.Env.AppName, time.Now())

	seed := config.Env.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session := core.NewSession(layout, ledger, rand.New(rand.NewSource(seed)))

	g := &Game{session: session}
	deps := &scenes.Deps{
		Session: session,
		Clock:   core.NewMonotonicClock(),
		Layout:  layout,
		Sprites: assets.NewSprites(layout),
		Toasts:  systems.NewToastBoard(),
	}
	g.scene = scenes.ForState(g, deps, session.State()).(Scene)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.session.ExitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: Could not read environment, using defaults: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetFullscreen(config.Env.Fullscreen)

	systems.PreloadAllSFX()
	systems.SetMuted(config.Env.Mute)

	if err := ebiten.RunGame(NewGame()); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
