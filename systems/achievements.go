package systems

import (
	"fmt"

	cfg "github.com/automoto/showdown/config"
	"github.com/automoto/showdown/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// NewDrawAchievements creates the renderer listing every achievement with its
// lock state and daily progress
func NewDrawAchievements(background *ebiten.Image) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		screen.DrawImage(background, nil)

		snap, ok := snapshot(e)
		if !ok {
			return
		}
		width := screen.Bounds().Dx()
		height := screen.Bounds().Dy()

		drawCentered(screen, cfg.Achievements.Title, fonts.Title, width/2, 80, cfg.Menu.TextColor)
		if snap.Today != "" {
			drawCentered(screen, snap.Today, fonts.Small, width/2, 108, cfg.Menu.HintColor)
		}

		left := width / 6
		for i, row := range snap.Achievements {
			y := int(cfg.Achievements.StartY + float64(i)*cfg.Achievements.RowHeight)
			info := cfg.Achievements.Text[row.ID]

			clr := cfg.Achievements.LockedColor
			mark := "[ ]"
			if row.Unlocked {
				clr = cfg.Achievements.UnlockedColor
				mark = "[x]"
			}
			text.Draw(screen, mark+" "+info.Name, fonts.Regular.Get(), left, y+24, clr)
			text.Draw(screen, info.Description, fonts.Small.Get(), left+48, y+44, clr)

			if row.Goal > 0 && !row.Unlocked {
				progress := fmt.Sprintf("%d/%d", row.Progress, row.Goal)
				w, _ := fonts.Measure(fonts.Regular, progress)
				text.Draw(screen, progress, fonts.Regular.Get(), width-left-w, y+24, cfg.Achievements.ProgressColor)
			}
		}

		drawCentered(screen, cfg.Achievements.BackHint, fonts.Small, width/2, height-16, cfg.Menu.HintColor)
	}
}
