package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutopilotStartScreen(t *testing.T) {
	snap := &Snapshot{State: StateNotStarted}
	assert.Equal(t, Input{StartOne: true}, NewAutopilot(ModeSolo).Next(snap))
	assert.Equal(t, Input{StartTwo: true}, NewAutopilot(ModeDuo).Next(snap))
}

func TestAutopilotLoopReleasesConfirm(t *testing.T) {
	snap := &Snapshot{State: StateWon}
	a := NewAutopilot(ModeSolo)
	assert.False(t, a.Next(snap).Confirm, "no restart unless looping")

	a.Loop = true
	presses := []bool{a.Next(snap).Confirm, a.Next(snap).Confirm, a.Next(snap).Confirm}
	assert.Equal(t, []bool{true, false, true}, presses)
}

func TestAutopilotSteersBehindGoose(t *testing.T) {
	snap := &Snapshot{
		State:   StateRunning,
		Field:   DefaultField(),
		Geese:   []GooseView{{X: 200, Y: 131, Size: GooseSize}},
		Players: [2]PlayerView{{X: 50, Y: 50, Active: true}},
	}
	in := NewAutopilot(ModeSolo).Next(snap)
	assert.Equal(t, Direction{Right: true, Down: true}, in.P1)
	assert.True(t, in.P2.Idle())
}

func TestAutopilotDetoursAroundGoose(t *testing.T) {
	// Player sits between the goose and the elevator.
	snap := &Snapshot{
		State:   StateRunning,
		Field:   DefaultField(),
		Geese:   []GooseView{{X: 200, Y: 131, Size: GooseSize}},
		Players: [2]PlayerView{{X: 215, Y: 150, Active: true}},
	}
	a := NewAutopilot(ModeSolo)
	tx, ty := a.herdPoint(&snap.Geese[0], &snap.Players[0], 291, 272)
	// Must not head straight for the standoff point through the goose.
	assert.Greater(t, tx, 210.0)
	assert.Less(t, ty, 131.0)
}

func TestAutopilotSplitsTargets(t *testing.T) {
	snap := &Snapshot{
		State: StateRunning,
		Field: DefaultField(),
		Geese: []GooseView{
			{X: 60, Y: 60},   // far from goal
			{X: 250, Y: 200}, // nearest goal
		},
		Players: [2]PlayerView{
			{X: 250, Y: 150, Active: true},
			{X: 60, Y: 40, Active: true},
		},
	}
	in := NewAutopilot(ModeDuo).Next(snap)
	// Player 1 takes the goose nearest the goal, player 2 the other one.
	assert.Equal(t, Direction{Left: true, Down: true}, in.P1)
	assert.False(t, in.P2.Idle())
}
