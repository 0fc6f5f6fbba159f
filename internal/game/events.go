package game

type CueType int

const (
	CueStarted CueType = iota
	CueRestarted
	CueHerded
	CuePowerUpGrabbed
	CuePowerUpExpired
	CuePowerDown
	CuePoop
	CueWon
)

// Cue is a presentation hint derived from two consecutive snapshots.
type Cue struct {
	Type CueType
	X, Y float64
	Data int // count, or player index for power-up cues
}

type CueHandler func(Cue)

type EventBus struct {
	handlers map[CueType][]CueHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[CueType][]CueHandler),
	}
}

func (eb *EventBus) Subscribe(t CueType, fn CueHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(c Cue) {
	for _, fn := range eb.handlers[c.Type] {
		fn(c)
	}
}

// EmitAll dispatches cues in order.
func (eb *EventBus) EmitAll(cues []Cue) {
	for _, c := range cues {
		eb.Emit(c)
	}
}

// DiffCues compares two polled snapshots and appends the cues that explain
// the change to dst. The session itself never pushes events.
func DiffCues(dst []Cue, prev, cur *Snapshot) []Cue {
	if prev == nil || cur == nil {
		return dst
	}
	if prev.SessionID != cur.SessionID && cur.State == StateRunning {
		if prev.State == StateNotStarted {
			return append(dst, Cue{Type: CueStarted, Data: int(cur.Mode)})
		}
		return append(dst, Cue{Type: CueRestarted, Data: cur.Restarts})
	}
	if cur.State == StateNotStarted {
		return dst
	}

	goal := cur.Field.Goal
	if n := cur.Herded - prev.Herded; n > 0 {
		dst = append(dst, Cue{
			Type: CueHerded,
			X:    (goal.X0 + goal.X1) / 2,
			Y:    goal.Y0,
			Data: n,
		})
	}

	for i := range cur.Players {
		p, q := &prev.Players[i], &cur.Players[i]
		if !q.Active {
			continue
		}
		switch {
		case q.Grabs > p.Grabs:
			dst = append(dst, Cue{Type: CuePowerUpGrabbed, X: q.X, Y: q.Y, Data: i})
		case p.BoostTicks > 0 && q.BoostTicks == 0:
			dst = append(dst, Cue{Type: CuePowerDown, X: q.X, Y: q.Y, Data: i})
		}
	}

	spawned := cur.PowerUpsSpawned - prev.PowerUpsSpawned
	grabbed := cur.PowerUpsGrabbed - prev.PowerUpsGrabbed
	if n := len(prev.PowerUps) + spawned - grabbed - len(cur.PowerUps); n > 0 {
		dst = append(dst, Cue{Type: CuePowerUpExpired, Data: n})
	}

	for i := len(prev.Poops); i < len(cur.Poops); i++ {
		dst = append(dst, Cue{Type: CuePoop, X: cur.Poops[i].X, Y: cur.Poops[i].Y})
	}

	if prev.State == StateRunning && cur.State == StateWon {
		dst = append(dst, Cue{Type: CueWon, Data: cur.FinalScore})
	}
	return dst
}
