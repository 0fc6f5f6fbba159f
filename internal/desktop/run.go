package desktop

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"goosechase/internal/audio"
	"goosechase/internal/desktop/scene"
	"goosechase/internal/game"
)

// maxFrameTime caps how much simulation one slow frame may owe.
const maxFrameTime = 0.25

var ErrNoSession = errors.New("desktop: no session")

type Options struct {
	Session *game.GameSession
	Scale   int       // window pixels per field unit
	VSync   bool      // sync swaps to the display
	Demo    bool      // autopilot plays both start screen and field
	Mode    game.Mode // mode the autopilot starts in
	Audio   bool      // route cues to the audio system
	Seed    uint64
	Log     *zap.Logger
}

// Run opens the window and drives the session at a fixed 60 Hz until the
// window closes, Escape is pressed or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Session == nil {
		return ErrNoSession
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Scale < 1 {
		opts.Scale = 1
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	session := opts.Session
	field := session.Settings.Field
	w := int(field.Width) * opts.Scale
	h := int(field.Height) * opts.Scale

	window, err := initWindow(w, h, opts.VSync)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Info("window opened",
		zap.Int("width", w), zap.Int("height", h),
		zap.String("gl_version", gl.GoStr(gl.GetString(gl.VERSION))))

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	bus := game.NewEventBus()
	if opts.Audio {
		audio.Subscribe(bus)
	}
	fx := scene.NewEffects(opts.Seed, field)
	fx.Subscribe(bus)

	demo := opts.Demo
	pilot := game.NewAutopilot(opts.Mode)
	pilot.Loop = true

	input := NewInput()
	var (
		prev, cur game.Snapshot
		cues      []game.Cue
		frame     scene.Frame
		hud       scene.HUD
		glowBuf   []float32
		normBuf   []float32
	)
	session.SnapshotInto(&prev)

	tick := 0
	dt := game.TickDuration.Seconds()
	acc := 0.0
	last := glfw.GetTime()
	for !window.ShouldClose() {
		select {
		case <-ctx.Done():
			log.Debug("desktop loop cancelled")
			return nil
		default:
		}

		now := glfw.GetTime()
		elapsed := now - last
		last = now
		if elapsed > maxFrameTime {
			elapsed = maxFrameTime
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		if input.JustPressed(window, glfw.KeyF1) {
			demo = !demo
			log.Info("demo toggled", zap.Bool("demo", demo))
		}
		if input.JustPressed(window, glfw.KeyM) {
			audio.SetMuted(!audio.Muted())
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		acc += elapsed
		for acc >= dt {
			in := Sample(window)
			if demo {
				in = pilot.Next(&prev)
			}
			session.Step(in)
			session.SnapshotInto(&cur)
			cues = game.DiffCues(cues[:0], &prev, &cur)
			bus.EmitAll(cues)
			prev, cur = cur, prev

			fx.Update(dt)
			acc -= dt
			tick++
		}

		fx.Camera.Fit(field, fbW, fbH)
		frame.Build(&prev, tick)
		hud.Build(&prev, fx.Camera, fbW, fbH, demo)

		rend.BeginFrame(fx.Camera, fbW, fbH)
		rend.DrawRects(frame.Rects)
		rend.DrawSquares(frame.Ground, false)
		rend.DrawGlowSprites(frame.Glows)
		rend.DrawDiscs(frame.Discs)
		rend.DrawSquares(frame.Marks, false)

		// Particles: two passes (normal + glow).
		glowBuf, normBuf = fx.Particles.ParticleRenderData(glowBuf, normBuf)
		rend.DrawSquares(normBuf, false)
		rend.DrawSquares(glowBuf, true)

		rend.DrawLines(hud.Lines)
		rend.FlushText()
		window.SwapBuffers()
	}
	return nil
}
