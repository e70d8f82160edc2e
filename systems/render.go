package systems

import (
	"github.com/automoto/showdown/assets"
	"github.com/automoto/showdown/shared/arena"
	dc "github.com/automoto/showdown/shared/duelconfig"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// NewDrawDuel creates the renderer for the arena, both gunslingers and the
// bullets in flight
func NewDrawDuel(layout arena.Layout, sprites *assets.Sprites) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		screen.DrawImage(sprites.Background, nil)

		snap, ok := snapshot(e)
		if !ok || snap.Duel == nil {
			return
		}

		for _, c := range snap.Duel.Combatants {
			img := sprites.Gunslinger(c.Side, c.Anim)
			if img == nil {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(c.Box.X, c.Box.Y)
			screen.DrawImage(img, op)
		}

		bw := float64(sprites.Bullet.Bounds().Dx())
		bh := float64(sprites.Bullet.Bounds().Dy())
		for _, p := range snap.Duel.Projectiles {
			op := &ebiten.DrawImageOptions{}
			x := p.X
			if p.Owner == dc.SideOpponent {
				x -= bw
			}
			op.GeoM.Translate(x, p.Y-bh/2)
			screen.DrawImage(sprites.Bullet, op)
		}
	}
}
