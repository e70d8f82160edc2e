package scenes

import (
	cfg "github.com/automoto/showdown/config"
	"github.com/automoto/showdown/systems"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu
type MenuScene struct {
	baseScene
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, deps *Deps) *MenuScene {
	ms := &MenuScene{}
	ms.bind(sc, deps, ms.configure)
	return ms
}

func (ms *MenuScene) configure(e *ecs.ECS) {
	e.AddSystem(systems.NewUpdateMenu(ms.deps.Layout))

	e.AddRenderer(cfg.Default, systems.NewDrawMenu(ms.deps.Layout, ms.deps.Sprites.Background))
}
