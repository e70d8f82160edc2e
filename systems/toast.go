package systems

import (
	cfg "github.com/automoto/showdown/config"
	"github.com/automoto/showdown/fonts"
	"github.com/automoto/showdown/shared/toast"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewToastBoard creates the unlock notification board shared by all scenes.
func NewToastBoard() *toast.Board {
	return toast.NewBoard(toast.Config{
		Height:    float32(cfg.Toast.Height),
		Duration:  cfg.Toast.Duration,
		SlideTime: cfg.Toast.SlideTime,
	})
}

// NewUpdateToasts creates the system advancing toast animations
func NewUpdateToasts(board *toast.Board) ecs.System {
	return func(e *ecs.ECS) {
		board.Update(float32(1) / float32(ebiten.TPS()))
	}
}

// NewDrawToasts creates the renderer stacking live toasts from the top
// center of the screen
func NewDrawToasts(board *toast.Board) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		face := fonts.Regular.Get()
		x := float32(cfg.C.Width)/2 - float32(cfg.Toast.Width)/2

		for _, t := range board.Live() {
			y := t.Y + float32(t.Slot)*float32(cfg.Toast.Height+8) + 8

			vector.FillRect(screen, x, y, float32(cfg.Toast.Width), float32(cfg.Toast.Height), cfg.Toast.Background, false)

			w, ascent := fonts.Measure(fonts.Regular, t.Text)
			tx := int(x) + (int(cfg.Toast.Width)-w)/2
			ty := int(y) + (int(cfg.Toast.Height)+ascent)/2
			text.Draw(screen, t.Text, face, tx, ty, cfg.Toast.TextColor)
		}
	}
}
