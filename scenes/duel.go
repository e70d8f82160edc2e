package scenes

import (
	cfg "github.com/automoto/showdown/config"
	"github.com/automoto/showdown/systems"
	"github.com/yohamta/donburi/ecs"
)

// DuelScene shows an arcade or versus match
type DuelScene struct {
	baseScene
}

// NewDuelScene creates a new duel scene
func NewDuelScene(sc SceneChanger, deps *Deps) *DuelScene {
	ds := &DuelScene{}
	ds.bind(sc, deps, ds.configure)
	return ds
}

func (ds *DuelScene) configure(e *ecs.ECS) {
	e.AddSystem(systems.UpdateCountdown)

	e.AddRenderer(cfg.Default, systems.NewDrawDuel(ds.deps.Layout, ds.deps.Sprites))
	e.AddRenderer(cfg.Default, systems.NewDrawDuelHUD(ds.deps.Layout))
}
