package audio

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
	"go.uber.org/zap"

	"goosechase/internal/audio/synth"
)

const (
	SampleRate   = synth.SampleRate
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind = synth.Kind

const (
	SoundHonk      = synth.Honk
	SoundChime     = synth.Chime
	SoundPowerDown = synth.PowerDown
	SoundPlop      = synth.Plop
	SoundFanfare   = synth.Fanfare
	SoundSelect    = synth.Select
)

// System owns the oto device.
type System struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	log    *zap.Logger

	// Plops come in bursts from a big flock; cap how many overlap.
	activePlops int32
	muted       atomic.Bool

	cacheOnce sync.Once
	cache     [synth.KindCount][]byte
}

var globalAudio atomic.Pointer[System]

// Init opens the audio device. On failure the game runs silent.
func Init(volume float64, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio.Store(&System{ctx: ctx, ready: ready, volume: clamp01(volume), log: log})
	log.Debug("audio context opened", zap.Int("sample_rate", SampleRate))
	return nil
}

// Play is fire-and-forget. It is a no-op until the device is ready.
func Play(kind SoundKind) {
	sys := globalAudio.Load()
	if sys == nil {
		return
	}
	sys.play(kind, 1.0)
}

// PlayWithGain scales the effect volume by gain in [0,1].
func PlayWithGain(kind SoundKind, gain float64) {
	sys := globalAudio.Load()
	if sys == nil || gain <= 0 {
		return
	}
	sys.play(kind, gain)
}

// SetMuted silences new sounds without closing the device.
func SetMuted(m bool) {
	if sys := globalAudio.Load(); sys != nil {
		sys.muted.Store(m)
	}
}

// Muted reports whether playback is silenced.
func Muted() bool {
	sys := globalAudio.Load()
	return sys != nil && sys.muted.Load()
}

func (s *System) play(kind SoundKind, gain float64) {
	if s.muted.Load() {
		return
	}
	select {
	case <-s.ready:
	default:
		return
	}
	if kind < 0 || kind >= synth.KindCount {
		return
	}
	if kind == SoundPlop {
		if atomic.LoadInt32(&s.activePlops) >= 3 {
			return
		}
		atomic.AddInt32(&s.activePlops, 1)
	}
	s.cacheOnce.Do(func() {
		for k := SoundKind(0); k < synth.KindCount; k++ {
			s.cache[k] = synth.Generate(k)
		}
	})
	samples := s.cache[kind]

	go func() {
		if kind == SoundPlop {
			defer atomic.AddInt32(&s.activePlops, -1)
		}
		player := s.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(s.volume * clamp01(gain))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			s.log.Debug("audio player close", zap.Error(err))
		}
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
