package systems

import (
	"fmt"
	"strconv"

	"github.com/automoto/showdown/archetypes"
	"github.com/automoto/showdown/components"
	cfg "github.com/automoto/showdown/config"
	"github.com/automoto/showdown/core"
	"github.com/automoto/showdown/fonts"
	"github.com/automoto/showdown/shared/arena"
	dc "github.com/automoto/showdown/shared/duelconfig"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// drawBannerMS is how long "DRAW!" stays up after the countdown ends.
const drawBannerMS = 800

// UpdateCountdown restarts the pulse each time a new countdown number shows
func UpdateCountdown(e *ecs.ECS) {
	snap, ok := snapshot(e)
	if !ok || snap.Duel == nil {
		return
	}
	cd := getOrCreateCountdown(e)

	if snap.Duel.Countdown != cd.Shown {
		cd.Shown = snap.Duel.Countdown
		cd.Pulse = gween.New(1.6, 1.0, cfg.HUD.CountdownPulse, ease.OutQuad)
	}
	if cd.Pulse != nil {
		cd.Scale, _ = cd.Pulse.Update(float32(1) / float32(ebiten.TPS()))
	}
}

func getOrCreateCountdown(e *ecs.ECS) *components.CountdownData {
	entry, ok := components.Countdown.First(e.World)
	if !ok {
		entry = archetypes.Countdown.Spawn(e)
		components.Countdown.SetValue(entry, components.CountdownData{Scale: 1})
	}
	return components.Countdown.Get(entry)
}

// NewDrawDuelHUD creates the renderer for the countdown, match counters,
// touch fire buttons and the result overlay
func NewDrawDuelHUD(layout arena.Layout) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		snap, ok := snapshot(e)
		if !ok || snap.Duel == nil || snap.Match == nil {
			return
		}
		width := screen.Bounds().Dx()
		duel, match := snap.Duel, snap.Match

		drawCounters(screen, match, width)

		switch duel.State {
		case dc.DuelCountdown:
			drawCountdown(e, screen, duel.Countdown, width)
			drawFireButtons(screen, layout, match.Mode)
		case dc.DuelActive:
			if snap.Now-duel.ActiveAt < drawBannerMS {
				drawCentered(screen, cfg.HUD.DrawText, fonts.Countdown, width/2, int(layout.Height/2), cfg.HUD.DrawColor)
			}
			drawFireButtons(screen, layout, match.Mode)
		case dc.DuelResolved:
			drawResult(screen, layout, match, duel)
		}
	}
}

func drawCounters(screen *ebiten.Image, m *core.MatchSnapshot, width int) {
	margin := int(cfg.HUD.Margin)
	_, ascent := fonts.Measure(fonts.Regular, "0")
	y := margin + ascent

	switch m.Mode {
	case dc.ModeArcade:
		text.Draw(screen, fmt.Sprintf("Round %d/%d", m.Round, core.ArcadeRounds), fonts.Regular.Get(), margin, y, cfg.HUD.TextColor)
		diff := fmt.Sprintf("Difficulty %.1f/%.1f", m.Difficulty, core.OpponentMaxDifficulty)
		w, _ := fonts.Measure(fonts.Regular, diff)
		text.Draw(screen, diff, fonts.Regular.Get(), width-margin-w, y, cfg.HUD.TextColor)
	case dc.ModeVersus:
		score := fmt.Sprintf("%d - %d", m.Score[dc.SidePlayer], m.Score[dc.SideOpponent])
		drawCentered(screen, score, fonts.Title, width/2, y+24, cfg.HUD.TextColor)
	}
}

func drawCountdown(e *ecs.ECS, screen *ebiten.Image, n, width int) {
	if n <= 0 {
		return
	}
	cd := getOrCreateCountdown(e)
	s := strconv.Itoa(n)
	w, ascent := fonts.Measure(fonts.Countdown, s)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, float64(ascent)/2)
	op.GeoM.Scale(float64(cd.Scale), float64(cd.Scale))
	op.GeoM.Translate(float64(width)/2, float64(screen.Bounds().Dy())/2)
	op.ColorScale.ScaleWithColor(cfg.HUD.CountdownColor)
	text.DrawWithOptions(screen, s, fonts.Countdown.Get(), op)
}

func drawFireButtons(screen *ebiten.Image, layout arena.Layout, mode dc.ModeID) {
	drawButton(screen, layout.Controls[arena.ControlFireLeft], "FIRE", cfg.HUD.FireButtonColor, cfg.HUD.TextColor)
	if mode == dc.ModeVersus {
		drawButton(screen, layout.Controls[arena.ControlFireRight], "FIRE", cfg.HUD.FireButtonColor, cfg.HUD.TextColor)
	}
}

func drawResult(screen *ebiten.Image, layout arena.Layout, m *core.MatchSnapshot, d *core.DuelSnapshot) {
	w, h := float32(layout.Width), float32(layout.Height)
	vector.FillRect(screen, 0, 0, w, h, cfg.HUD.OverlayColor, false)

	cx := int(layout.Width / 2)
	y := int(layout.Height / 3)

	var title, detail string
	titleColor := cfg.HUD.VictoryColor
	switch m.Mode {
	case dc.ModeArcade:
		if d.Winner == dc.SidePlayer {
			title = "VICTORY"
		} else {
			title = "DEFEAT"
			titleColor = cfg.HUD.DefeatColor
		}
		detail = fmt.Sprintf("Round %d   Accuracy %.0f%%", m.Round, d.Accuracy(dc.SidePlayer))
	case dc.ModeVersus:
		title = fmt.Sprintf("PLAYER %d WINS", int(d.Winner)+1)
		detail = fmt.Sprintf("Score %d - %d", m.Score[dc.SidePlayer], m.Score[dc.SideOpponent])
	}

	drawCentered(screen, title, fonts.Title, cx, y, titleColor)
	drawCentered(screen, detail, fonts.Regular, cx, y+60, cfg.HUD.TextColor)
	if m.Finished {
		drawCentered(screen, "Match over", fonts.Regular, cx, y+100, cfg.HUD.TextColor)
	}
	drawCentered(screen, cfg.HUD.ContinueHint, fonts.Small, cx, int(layout.Height)-40, cfg.HUD.TextColor)
}
