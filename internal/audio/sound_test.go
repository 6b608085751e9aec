package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestChirpGeneratorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	g := NewChirpGenerator(rate, 300, 900, 100*time.Millisecond)

	want := rate.N(100 * time.Millisecond)
	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := g.Stream(buf)
		total += n
		if !ok {
			break
		}
		if total > want*2 {
			t.Fatal("generator does not end")
		}
	}

	if total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
	if g.Err() != nil {
		t.Errorf("Err() = %v", g.Err())
	}
}

func TestChirpGeneratorRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	g := NewChirpGenerator(rate, 300, 900, 50*time.Millisecond)

	samples := make([][2]float64, 1000)
	n, ok := g.Stream(samples)
	if !ok || n != 1000 {
		t.Fatalf("Stream() = (%d, %v), want (1000, true)", n, ok)
	}

	nonZero := false
	for i := 0; i < n; i++ {
		l, r := samples[i][0], samples[i][1]
		if l < -0.3 || l > 0.3 {
			t.Errorf("sample %d out of range: %f", i, l)
		}
		if l != r {
			t.Errorf("sample %d not mono: %f / %f", i, l, r)
		}
		if l != 0 {
			nonZero = true
		}
	}
	if !nonZero {
		t.Error("chirp is silent")
	}
}

func TestPlayJumpBeforeInitialize(t *testing.T) {
	sm := NewSoundManager()

	// Must not touch the speaker or panic.
	sm.PlayJump()
	sm.Cleanup()
}
