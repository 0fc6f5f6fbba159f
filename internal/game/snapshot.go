package game

import (
	"time"

	"github.com/google/uuid"
)

type GooseView struct {
	X, Y, VX, VY float64
	Size         float64
	Chased       bool
}

type PlayerView struct {
	X, Y       float64
	Size       float64
	BoostTicks int
	Grabs      int
	Active     bool
}

type PowerUpView struct {
	X, Y      float64
	Radius    float64
	Remaining int // ticks of life left
}

// Snapshot is a read-only copy of the session for presentation layers,
// taken once per tick after Step.
type Snapshot struct {
	State     GameState
	Mode      Mode
	SessionID uuid.UUID
	Tick      int
	Field     Field

	Geese    []GooseView
	Players  [2]PlayerView
	PowerUps []PowerUpView
	Poops    []Poop

	Herded, Total, Remaining int

	Elapsed    time.Duration
	LiveScore  int
	FinalScore int
	Coverage   float64

	PowerUpsSpawned int
	PowerUpsGrabbed int
	Restarts        int
}

func (s *GameSession) Snapshot() Snapshot {
	var snap Snapshot
	s.SnapshotInto(&snap)
	return snap
}

// SnapshotInto fills dst, reusing its slices.
func (s *GameSession) SnapshotInto(dst *Snapshot) {
	st := s.S

	dst.State = s.State
	dst.Mode = s.Mode
	dst.SessionID = s.ID
	dst.Tick = st.Tick
	dst.Field = s.Settings.Field

	dst.Geese = dst.Geese[:0]
	for i := range st.Flock.Geese {
		g := &st.Flock.Geese[i]
		dst.Geese = append(dst.Geese, GooseView{
			X: g.X, Y: g.Y, VX: g.VX, VY: g.VY,
			Size:   g.Size,
			Chased: g.WasBeingChased,
		})
	}

	for i, slot := range [2]*PlayerSlot{&st.P1, &st.P2} {
		p := slot.Player()
		if p == nil {
			dst.Players[i] = PlayerView{}
			continue
		}
		dst.Players[i] = PlayerView{X: p.X, Y: p.Y, Size: p.Size, BoostTicks: p.BoostTicks, Grabs: p.Grabs, Active: true}
	}

	dst.PowerUps = dst.PowerUps[:0]
	for i := range st.PowerUps.Active {
		pu := &st.PowerUps.Active[i]
		dst.PowerUps = append(dst.PowerUps, PowerUpView{X: pu.X, Y: pu.Y, Radius: pu.Radius, Remaining: pu.Remaining()})
	}

	dst.Poops = append(dst.Poops[:0], st.Fouling.Markers...)

	dst.Herded = st.Herded
	dst.Total = st.Total
	dst.Remaining = st.Remaining()
	dst.Elapsed = s.Elapsed
	dst.LiveScore = s.LiveScore()
	dst.FinalScore = s.FinalScore
	dst.Coverage = s.Coverage
	dst.PowerUpsSpawned = st.PowerUps.Spawned
	dst.PowerUpsGrabbed = st.PowerUps.Grabbed
	dst.Restarts = s.Restarts
}
