package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/showdown/assets"
	cfg "github.com/automoto/showdown/config"
	"github.com/automoto/showdown/core"
	"github.com/automoto/showdown/shared/arena"
	dc "github.com/automoto/showdown/shared/duelconfig"
	"github.com/automoto/showdown/shared/toast"
	"github.com/automoto/showdown/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Deps is the state shared by every scene. The session outlives scenes; each
// scene only renders and feeds it.
type Deps struct {
	Session *core.Session
	Clock   core.Clock
	Layout  arena.Layout
	Sprites *assets.Sprites
	Toasts  *toast.Board
}

// ForState returns the scene that shows a session screen
func ForState(sc SceneChanger, deps *Deps, state dc.SessionStateID) interface{} {
	switch state {
	case dc.SessionMatch:
		return NewDuelScene(sc, deps)
	case dc.SessionAchievements:
		return NewAchievementsScene(sc, deps)
	}
	return NewMenuScene(sc, deps)
}

// baseScene runs an ECS whose session system reports screen changes; the
// switch happens after the frame's update so systems never see a half-built
// world.
type baseScene struct {
	ecs          *ecs.ECS
	deps         *Deps
	sceneChanger SceneChanger
	once         sync.Once
	configure    func(*ecs.ECS)

	pending    dc.SessionStateID
	hasPending bool
}

func (s *baseScene) bind(sc SceneChanger, deps *Deps, configure func(*ecs.ECS)) {
	s.sceneChanger = sc
	s.deps = deps
	s.configure = configure
}

func (s *baseScene) Update() {
	s.once.Do(s.setup)
	s.ecs.Update()

	if s.hasPending {
		s.hasPending = false
		s.sceneChanger.ChangeScene(ForState(s.sceneChanger, s.deps, s.pending))
	}
}

func (s *baseScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *baseScene) setup() {
	s.ecs = ecs.NewECS(donburi.NewWorld())

	// Input, then the session tick, then the sounds it queued. Audio runs in
	// the same frame so a cue survives a scene switch.
	s.ecs.AddSystem(systems.UpdateInput)
	s.ecs.AddSystem(systems.NewUpdateSession(s.deps.Session, s.deps.Clock, s.deps.Layout, s.deps.Toasts, s.onState))
	s.ecs.AddSystem(systems.UpdateAudio)

	s.ecs.AddSystem(systems.NewUpdateToasts(s.deps.Toasts))

	s.configure(s.ecs)

	// Toasts draw over every screen
	s.ecs.AddRenderer(cfg.Default, systems.NewDrawToasts(s.deps.Toasts))
}

func (s *baseScene) onState(state dc.SessionStateID) {
	s.pending = state
	s.hasPending = true
}
