package assets

import (
	"image/color"

	cfg "github.com/automoto/showdown/config"
	"github.com/automoto/showdown/shared/arena"
	dc "github.com/automoto/showdown/shared/duelconfig"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const animCount = 3

// Sprites holds the procedurally drawn art.
type Sprites struct {
	Gunslingers [dc.SideCount][animCount]*ebiten.Image // by side, then AnimState
	Bullet      *ebiten.Image
	Background  *ebiten.Image
}

// Gunslinger returns the image for a side in a pose.
func (s *Sprites) Gunslinger(side dc.Side, anim dc.AnimState) *ebiten.Image {
	if !side.Valid() || anim < 0 || int(anim) >= animCount {
		return nil
	}
	return s.Gunslingers[side][anim]
}

// NewSprites draws every sprite for the given layout.
func NewSprites(layout arena.Layout) *Sprites {
	s := &Sprites{
		Bullet:     newBullet(),
		Background: newBackground(int(layout.Width), int(layout.Height), layout.GroundY),
	}
	for _, side := range []dc.Side{dc.SidePlayer, dc.SideOpponent} {
		box := layout.Gunslinger(side)
		body := cfg.Sprite.PlayerColor
		if side == dc.SideOpponent {
			body = cfg.Sprite.OpponentColor
		}
		for anim := dc.AnimIdle; anim <= dc.AnimDead; anim++ {
			s.Gunslingers[side][anim] = newGunslinger(int(box.W), int(box.H), body, side.Facing(), anim)
		}
	}
	return s
}

// newGunslinger draws a silhouette facing +1 (right) or -1 (left).
func newGunslinger(w, h int, body color.RGBA, facing float64, anim dc.AnimState) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)

	// mirror maps an x measured from the back edge to image space
	mirror := func(x, width float32) float32 {
		if facing > 0 {
			return x
		}
		return fw - x - width
	}

	if anim == dc.AnimDead {
		lying := fh * 0.22
		vector.FillRect(img, fw*0.05, fh-lying, fw*0.9, lying, cfg.Sprite.DeadTint, false)
		vector.FillCircle(img, mirror(fw*0.12, 0), fh-lying/2, lying*0.6, cfg.Sprite.DeadTint, true)
		return img
	}

	torsoW := fw * 0.34
	torsoX := mirror(fw*0.3, torsoW)
	vector.FillRect(img, torsoX, fh*0.3, torsoW, fh*0.4, body, false)
	// legs
	vector.FillRect(img, torsoX, fh*0.7, torsoW*0.4, fh*0.3, body, false)
	vector.FillRect(img, torsoX+torsoW*0.6, fh*0.7, torsoW*0.4, fh*0.3, body, false)
	// head and hat
	headX := torsoX + torsoW/2
	vector.FillCircle(img, headX, fh*0.2, fw*0.12, body, true)
	vector.FillRect(img, headX-fw*0.22, fh*0.1, fw*0.44, fh*0.03, cfg.Sprite.HatColor, false)
	vector.FillRect(img, headX-fw*0.12, fh*0.02, fw*0.24, fh*0.09, cfg.Sprite.HatColor, false)

	armW := fw * 0.3
	if anim == dc.AnimShoot {
		// arm raised toward the opponent, gun at the front edge
		vector.FillRect(img, mirror(fw*0.6, armW), fh*0.35, armW, fh*0.06, body, false)
		vector.FillRect(img, mirror(fw*0.86, fw*0.14), fh*0.33, fw*0.14, fh*0.05, cfg.Sprite.GunColor, false)
	} else {
		// arm down with the gun holstered
		vector.FillRect(img, mirror(fw*0.62, fw*0.07), fh*0.34, fw*0.07, fh*0.3, body, false)
		vector.FillRect(img, mirror(fw*0.6, fw*0.1), fh*0.6, fw*0.1, fh*0.08, cfg.Sprite.GunColor, false)
	}
	return img
}

func newBullet() *ebiten.Image {
	w, h := int(cfg.HUD.BulletWidth), int(cfg.HUD.BulletHeight)
	img := ebiten.NewImage(w, h)
	img.Fill(cfg.HUD.BulletColor)
	return img
}

// newBackground draws a vertical sky gradient and the ground below groundY.
func newBackground(w, h int, groundY float64) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	top, bot := cfg.Menu.BackgroundTop, cfg.Menu.BackgroundBot
	const bands = 48
	bandH := float32(groundY) / bands
	for i := 0; i < bands; i++ {
		t := float64(i) / (bands - 1)
		c := color.RGBA{
			R: lerp(top.R, bot.R, t),
			G: lerp(top.G, bot.G, t),
			B: lerp(top.B, bot.B, t),
			A: 255,
		}
		vector.FillRect(img, 0, float32(i)*bandH, float32(w), bandH+1, c, false)
	}
	vector.FillRect(img, 0, float32(groundY), float32(w), float32(h)-float32(groundY), cfg.HUD.GroundColor, false)
	return img
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
