package systems

import (
	"github.com/automoto/showdown/components"
	cfg "github.com/automoto/showdown/config"
	"github.com/automoto/showdown/fonts"
	"github.com/automoto/showdown/shared/arena"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var menuButtons = []string{arena.ControlArcade, arena.ControlVersus, arena.ControlAchievements}

// NewUpdateMenu creates the system tracking which menu button is under the cursor
func NewUpdateMenu(layout arena.Layout) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		menu.Hovered, _ = layout.ControlAt(input.Cursor.X, input.Cursor.Y, menuButtons...)
	}
}

// NewDrawMenu creates the main menu renderer
func NewDrawMenu(layout arena.Layout, background *ebiten.Image) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		menu := GetOrCreateMenu(e)
		width := screen.Bounds().Dx()
		height := screen.Bounds().Dy()

		screen.DrawImage(background, nil)

		drawCentered(screen, cfg.Menu.Title, fonts.Title, width/2, int(cfg.Menu.TitleY), cfg.Menu.TextColor)

		for _, name := range menuButtons {
			fill := cfg.Menu.ButtonColor
			if name == menu.Hovered {
				fill = cfg.Menu.ButtonHover
			}
			drawButton(screen, layout.Controls[name], cfg.Menu.ButtonLabels[name], fill, cfg.Menu.TextColor)
		}

		drawCentered(screen, cfg.Menu.HintText, fonts.Small, width/2, height-16, cfg.Menu.HintColor)
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating it if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
	}
	return components.Menu.Get(entry)
}
