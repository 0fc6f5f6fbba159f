package game

// Salts for the per-subsystem random streams forked at every reset.
const (
	saltFlock   = 0xF10C
	saltPowerUp = 0xB0057
	saltFouling = 0x9003
)

// SessionState is everything a restart throws away. It is replaced as a
// whole, never patched field by field.
type SessionState struct {
	P1, P2   PlayerSlot
	Flock    *Flock
	PowerUps *PowerUpSystem
	Fouling  *Fouling
	Herded   int
	Total    int
	Tick     int
}

func newSessionState(cfg Settings, mode Mode, r *Rand) *SessionState {
	f := cfg.Field
	st := &SessionState{
		P1:       ActiveSlot(NewPlayer(f.Width/3, f.Height/2)),
		P2:       InactiveSlot(),
		Flock:    NewFlock(r.Fork(saltFlock), f, cfg.FlockSize),
		PowerUps: NewPowerUpSystem(r.Fork(saltPowerUp)),
		Fouling:  NewFouling(r.Fork(saltFouling)),
		Total:    cfg.FlockSize,
	}
	if mode == ModeDuo {
		st.P2 = ActiveSlot(NewPlayer(f.Width*2/3, f.Height/2))
	}
	return st
}

// Remaining is the number of geese still on the field.
func (st *SessionState) Remaining() int { return st.Flock.Len() }
