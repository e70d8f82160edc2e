// Package synth renders the fallback sound effects and music loops from
// note lists when no audio files are supplied.
package synth

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects an oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Note is one synthesized tone. A zero frequency is a rest unless the wave
// is noise.
type Note struct {
	Freq     float64
	Duration float64 // seconds
	Wave     WaveType
}

// Shape is the attack and release applied to every note, in seconds.
type Shape struct {
	Attack  float64
	Release float64
}

// oscillator generates one raw wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

func newOscillator(n Note, rate beep.SampleRate, noise *rand.Rand) beep.Streamer {
	return &oscillator{
		freq:     n.Freq,
		duration: rate.N(seconds(n.Duration)),
		wave:     n.Wave,
		rate:     rate,
		noise:    noise,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, total, attack, release int) beep.Streamer {
	if attack+release > total {
		attack, release = total/2, total/2
	}
	return &envelope{streamer: s, attack: attack, release: release, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release {
			vol = float64(remaining) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Streamer chains the notes into one shaped stream. Rests are silence.
func Streamer(notes []Note, shape Shape, rate beep.SampleRate, vol float64) beep.Streamer {
	noise := rand.New(rand.NewSource(1))
	attack := rate.N(seconds(shape.Attack))
	release := rate.N(seconds(shape.Release))

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		total := rate.N(seconds(n.Duration))
		if n.Freq <= 0 && n.Wave != WaveNoise {
			parts = append(parts, beep.Silence(total))
			continue
		}
		parts = append(parts, newEnvelope(newOscillator(n, rate, noise), total, attack, release))
	}
	return newVolume(beep.Seq(parts...), vol)
}

// PCM renders notes as 16-bit little-endian stereo samples, the format
// ebiten's audio players consume.
func PCM(notes []Note, shape Shape, sampleRate int, vol float64) []byte {
	s := Streamer(notes, shape, beep.SampleRate(sampleRate), vol)

	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(v)))
			}
		}
		if !ok {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// Length returns the total duration of notes.
func Length(notes []Note) time.Duration {
	var total float64
	for _, n := range notes {
		total += n.Duration
	}
	return seconds(total)
}
