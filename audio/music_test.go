package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

func TestOpenTrackUnsupportedFormat(t *testing.T) {
	_, _, err := openTrack("bgm.ogg")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("openTrack error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestOpenTrackMissingFile(t *testing.T) {
	_, _, err := openTrack(filepath.Join(t.TempDir(), "missing.mp3"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("openTrack error = %v, want os.ErrNotExist", err)
	}
}

func TestOpenTrackWav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bgm.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: 22050, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, beep.Silence(2205), format); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	streamer, got, err := openTrack(path)
	if err != nil {
		t.Fatalf("openTrack: %v", err)
	}
	defer streamer.Close()

	if got.SampleRate != format.SampleRate {
		t.Errorf("SampleRate = %v, want %v", got.SampleRate, format.SampleRate)
	}
	if streamer.Len() != 2205 {
		t.Errorf("Len() = %d, want 2205", streamer.Len())
	}
}

// A failed Play must leave the player retryable and never mark it playing.
func TestPlayFailureIsRetryable(t *testing.T) {
	m := NewMusic(filepath.Join(t.TempDir(), "missing.wav"))

	for i := 0; i < 2; i++ {
		if err := m.Play(); err == nil {
			t.Fatalf("attempt %d: Play() succeeded on a missing file", i)
		}
		if m.Playing() {
			t.Fatalf("attempt %d: Playing() = true after failure", i)
		}
	}
	if err := m.Close(); err != nil {
		t.Errorf("Close() on an idle player = %v", err)
	}
}
