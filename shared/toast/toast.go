// Package toast keeps the achievement notifications on screen. The board
// outlives scenes so a toast raised just before a screen change keeps
// playing on the next one.
package toast

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Config sets the toast size and timing, in pixels and seconds.
type Config struct {
	Height    float32
	Duration  float32 // total time on screen
	SlideTime float32 // time to slide in, and again to slide out
}

// Toast is one notification. Y is its offset from the resting position;
// it starts at -Height and settles at 0.
type Toast struct {
	Text string
	Y    float32
	Slot int // stacking order among live toasts

	slide *gween.Sequence
}

// Board holds the live toasts in spawn order.
type Board struct {
	cfg    Config
	toasts []*Toast
}

func NewBoard(cfg Config) *Board {
	return &Board{cfg: cfg}
}

// Push adds a toast below any live ones.
func (b *Board) Push(text string) {
	slot := 0
	for _, t := range b.toasts {
		if t.Slot >= slot {
			slot = t.Slot + 1
		}
	}

	hidden := -b.cfg.Height
	hold := b.cfg.Duration - 2*b.cfg.SlideTime
	if hold < 0 {
		hold = 0
	}
	b.toasts = append(b.toasts, &Toast{
		Text: text,
		Y:    hidden,
		Slot: slot,
		slide: gween.NewSequence(
			gween.New(hidden, 0, b.cfg.SlideTime, ease.OutQuad),
			gween.New(0, 0, hold, ease.Linear),
			gween.New(0, hidden, b.cfg.SlideTime, ease.InQuad),
		),
	})
}

// Update advances every toast by dt seconds and drops the ones whose slide
// out has finished.
func (b *Board) Update(dt float32) {
	kept := b.toasts[:0]
	for _, t := range b.toasts {
		y, _, done := t.slide.Update(dt)
		t.Y = y
		if done {
			continue
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(b.toasts); i++ {
		b.toasts[i] = nil
	}
	b.toasts = kept
}

// Live returns copies of the live toasts.
func (b *Board) Live() []Toast {
	out := make([]Toast, len(b.toasts))
	for i, t := range b.toasts {
		out[i] = *t
	}
	return out
}

// Len returns the number of live toasts.
func (b *Board) Len() int { return len(b.toasts) }
