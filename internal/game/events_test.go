package game

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cueTypes(cues []Cue) []CueType {
	out := make([]CueType, 0, len(cues))
	for _, c := range cues {
		out = append(out, c.Type)
	}
	return out
}

func TestEventBus(t *testing.T) {
	bus := NewEventBus()
	var got []Cue
	bus.Subscribe(CueHerded, func(c Cue) { got = append(got, c) })
	bus.Subscribe(CueHerded, func(c Cue) { got = append(got, c) })

	bus.EmitAll([]Cue{{Type: CueHerded, Data: 1}, {Type: CueWon}})
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Data)
}

func TestDiffCuesStartAndRestart(t *testing.T) {
	prev := &Snapshot{State: StateNotStarted}
	cur := &Snapshot{State: StateRunning, SessionID: uuid.New(), Mode: ModeDuo}
	assert.Equal(t, []Cue{{Type: CueStarted, Data: int(ModeDuo)}}, DiffCues(nil, prev, cur))

	won := &Snapshot{State: StateWon, SessionID: cur.SessionID, Herded: 5}
	again := &Snapshot{State: StateRunning, SessionID: uuid.New(), Restarts: 1}
	assert.Equal(t, []Cue{{Type: CueRestarted, Data: 1}}, DiffCues(nil, won, again))

	assert.Empty(t, DiffCues(nil, prev, prev))
	assert.Empty(t, DiffCues(nil, nil, cur))
}

func TestDiffCuesDuringPlay(t *testing.T) {
	id := uuid.New()
	f := DefaultField()
	prev := &Snapshot{
		State: StateRunning, SessionID: id, Field: f,
		Herded:   2,
		Players:  [2]PlayerView{{Active: true, BoostTicks: 1}, {Active: true}},
		PowerUps: []PowerUpView{{X: 1}, {X: 2}},
		Poops:    []Poop{{X: 1}},
	}
	cur := &Snapshot{
		State: StateRunning, SessionID: id, Field: f,
		Herded:          4,
		Players:         [2]PlayerView{{Active: true, BoostTicks: 0}, {Active: true, BoostTicks: PowerUpBoostTicks, Grabs: 1, X: 9, Y: 8}},
		PowerUps:        nil,
		PowerUpsGrabbed: 1,
		Poops:           []Poop{{X: 1}, {X: 5, Y: 6}},
	}
	cues := DiffCues(nil, prev, cur)
	assert.Equal(t, []CueType{CueHerded, CuePowerDown, CuePowerUpGrabbed, CuePowerUpExpired, CuePoop}, cueTypes(cues))
	assert.Equal(t, 2, cues[0].Data)
	assert.Equal(t, 1, cues[2].Data, "grabbed by player 2")
	assert.Equal(t, 1, cues[3].Data)
	assert.Equal(t, 5.0, cues[4].X)
}

func TestDiffCuesBackToBackPickups(t *testing.T) {
	id := uuid.New()
	prev := &Snapshot{
		State: StateRunning, SessionID: id,
		Players: [2]PlayerView{{Active: true, BoostTicks: PowerUpBoostTicks, Grabs: 1}},
	}
	cur := &Snapshot{
		State: StateRunning, SessionID: id,
		Players:         [2]PlayerView{{Active: true, BoostTicks: PowerUpBoostTicks, Grabs: 2}},
		PowerUpsGrabbed: 1,
	}
	cues := DiffCues(nil, prev, cur)
	assert.Equal(t, []CueType{CuePowerUpGrabbed}, cueTypes(cues))
	assert.Equal(t, 0, cues[0].Data)
}

func TestDiffCuesWin(t *testing.T) {
	id := uuid.New()
	prev := &Snapshot{State: StateRunning, SessionID: id, Herded: 3}
	cur := &Snapshot{State: StateWon, SessionID: id, Herded: 4, FinalScore: 4242}
	cues := DiffCues(nil, prev, cur)
	assert.Equal(t, []CueType{CueHerded, CueWon}, cueTypes(cues))
	assert.Equal(t, 4242, cues[1].Data)

	assert.Empty(t, DiffCues(nil, cur, cur), "win is reported once")
}

func TestDiffCuesFromSession(t *testing.T) {
	s, clk := newTestSession(t, 1)
	var prev, cur Snapshot
	s.SnapshotInto(&prev)

	s.Step(Input{StartOne: true})
	s.SnapshotInto(&cur)
	assert.Equal(t, []CueType{CueStarted}, cueTypes(DiffCues(nil, &prev, &cur)))

	s.S.Flock.Geese = []Goose{idleGoose(291, 270)}
	prev, cur = cur, prev
	clk.Advance(TickDuration)
	s.Step(Input{})
	s.SnapshotInto(&cur)
	assert.Equal(t, []CueType{CueHerded, CueWon}, cueTypes(DiffCues(nil, &prev, &cur)))
}
