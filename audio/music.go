package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// ErrUnsupportedFormat is returned for tracks that are neither mp3 nor wav
var ErrUnsupportedFormat = errors.New("unsupported audio format")

const bufferDuration = 100 * time.Millisecond

// Music plays one track on an endless loop through the speaker
type Music struct {
	mu       sync.Mutex
	path     string
	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	playing  bool
}

// NewMusic creates a player for the track at path. Nothing is opened until Play.
func NewMusic(path string) *Music {
	return &Music{
		path: path,
	}
}

// Play decodes the track, initializes the speaker and starts looping. Calling
// Play while the track is playing is a no-op. A failed Play leaves the player
// ready for another attempt.
func (m *Music) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.playing {
		return nil
	}

	streamer, format, err := openTrack(m.path)
	if err != nil {
		return err
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(bufferDuration)); err != nil {
		streamer.Close()
		return fmt.Errorf("init speaker: %w", err)
	}

	m.streamer = streamer
	m.ctrl = &beep.Ctrl{Streamer: beep.Loop(-1, streamer), Paused: false}
	speaker.Play(m.ctrl)
	m.playing = true
	return nil
}

// Playing reports whether the loop has been started
func (m *Music) Playing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playing
}

// Close stops playback and releases the decoder
func (m *Music) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.playing {
		return nil
	}

	speaker.Lock()
	m.ctrl.Paused = true
	speaker.Unlock()
	speaker.Clear()

	m.playing = false
	err := m.streamer.Close()
	m.streamer = nil
	m.ctrl = nil
	return err
}

func openTrack(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".mp3" && ext != ".wav" {
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("open track: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return streamer, format, nil
}
