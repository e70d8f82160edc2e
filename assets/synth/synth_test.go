package synth

import (
	"encoding/binary"
	"testing"
	"time"
)

const testRate = 8000

func TestPCMLength(t *testing.T) {
	notes := []Note{
		{Freq: 440, Duration: 0.25, Wave: WaveSquare},
		{Freq: 0, Duration: 0.25},
	}

	pcm := PCM(notes, Shape{Attack: 0.01, Release: 0.01}, testRate, 1)

	// 0.5s of stereo 16-bit frames
	want := testRate / 2 * 4
	if len(pcm) != want {
		t.Fatalf("len = %d, want %d", len(pcm), want)
	}
}

func TestRestIsSilent(t *testing.T) {
	notes := []Note{{Freq: 0, Duration: 0.1}}
	pcm := PCM(notes, Shape{}, testRate, 1)
	for i := 0; i+1 < len(pcm); i += 2 {
		if v := int16(binary.LittleEndian.Uint16(pcm[i:])); v != 0 {
			t.Fatalf("sample %d = %d, want silence", i/2, v)
		}
	}
}

func TestToneIsAudible(t *testing.T) {
	notes := []Note{{Freq: 440, Duration: 0.1, Wave: WaveSine}}
	pcm := PCM(notes, Shape{Attack: 0.01, Release: 0.01}, testRate, 1)

	var peak int16
	for i := 0; i+1 < len(pcm); i += 2 {
		v := int16(binary.LittleEndian.Uint16(pcm[i:]))
		if v > peak {
			peak = v
		}
	}
	if peak < 10000 {
		t.Fatalf("peak = %d, tone too quiet", peak)
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	notes := []Note{{Freq: 440, Duration: 0.05, Wave: WaveSaw}}
	pcm := PCM(notes, Shape{}, testRate, 0)
	for i := 0; i+1 < len(pcm); i += 2 {
		if binary.LittleEndian.Uint16(pcm[i:]) != 0 {
			t.Fatalf("muted stream produced sound")
		}
	}
}

func TestLength(t *testing.T) {
	notes := []Note{{Duration: 0.2}, {Duration: 0.3}}
	if got := Length(notes); got != 500*time.Millisecond {
		t.Fatalf("Length = %v, want 500ms", got)
	}
}
