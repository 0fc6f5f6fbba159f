package tty

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goosechase/internal/game"
)

func newSession(t *testing.T, flock int) *game.GameSession {
	t.Helper()
	cfg := game.Settings{Field: game.DefaultField(), FlockSize: flock, Seed: 11}
	s, err := game.NewGameSession(cfg, game.NewManualClock(time.Unix(0, 0)), nil)
	require.NoError(t, err)
	return s
}

func TestRunQuitsOnEscape(t *testing.T) {
	screen := newScreen(t, 84, 30)
	session := newSession(t, 5)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, Run(ctx, screen, session, Options{}))
	assert.NoError(t, ctx.Err(), "returned on the key, not the timeout")
	assert.Equal(t, game.StateNotStarted, session.State)
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := newScreen(t, 84, 30)
	session := newSession(t, 5)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(30*time.Millisecond, cancel)
	assert.NoError(t, Run(ctx, screen, session, Options{Interval: time.Millisecond}))
}

func TestRunDemoStartsAndDraws(t *testing.T) {
	screen := newScreen(t, 84, 30)
	session := newSession(t, 5)

	err := Run(context.Background(), screen, session, Options{
		Interval: time.Millisecond,
		MaxTicks: 5,
		Demo:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, game.StateRunning, session.State)
	assert.Equal(t, 4, session.S.Tick, "first tick leaves the start screen")

	status := row(screen, 29)
	assert.Contains(t, status, "Geese 0/5")
	assert.Contains(t, status, "[DEMO]")
	assert.Contains(t, screenText(screen), "X")
}

func TestRunStartKeyPicksDuo(t *testing.T) {
	screen := newScreen(t, 84, 30)
	session := newSession(t, 5)
	screen.InjectKey(tcell.KeyRune, '2', tcell.ModNone)

	err := Run(context.Background(), screen, session, Options{Interval: time.Millisecond, MaxTicks: 60})
	require.NoError(t, err)
	assert.Equal(t, game.StateRunning, session.State)
	assert.Equal(t, game.ModeDuo, session.Mode)
	out := screenText(screen)
	assert.Contains(t, out, "X")
	assert.Contains(t, out, "Y")
}

func TestRunNilSession(t *testing.T) {
	screen := newScreen(t, 10, 5)
	assert.Error(t, Run(context.Background(), screen, nil, Options{}))
}
