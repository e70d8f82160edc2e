package scenes

import (
	cfg "github.com/automoto/showdown/config"
	"github.com/automoto/showdown/systems"
	"github.com/yohamta/donburi/ecs"
)

// AchievementsScene lists the achievements and today's progress
type AchievementsScene struct {
	baseScene
}

// NewAchievementsScene creates a new achievements scene
func NewAchievementsScene(sc SceneChanger, deps *Deps) *AchievementsScene {
	as := &AchievementsScene{}
	as.bind(sc, deps, as.configure)
	return as
}

func (as *AchievementsScene) configure(e *ecs.ECS) {
	e.AddRenderer(cfg.Default, systems.NewDrawAchievements(as.deps.Sprites.Background))
}
