package game

// Input is the instantaneous control state sampled once at tick start.
type Input struct {
	P1, P2   Direction
	StartOne bool // single-player start
	StartTwo bool // two-player start
	Confirm  bool // restart on the win screen; level, edge detected by the session
}
