package constants

// LoopState represents the state of the render loop.
// Values use snake_case so they read well in structured logs.
type LoopState string

// Render loop states:
//
//	Running → Stopped (on a close event)
//
// Stopped is terminal.
const (
	// LoopStateRunning indicates the loop is drawing and presenting frames.
	LoopStateRunning LoopState = "running"

	// LoopStateStopped indicates a close event was observed and the loop has exited.
	LoopStateStopped LoopState = "stopped"
)

// String returns the string representation of the LoopState.
func (s LoopState) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are possible from s.
func (s LoopState) IsTerminal() bool {
	return s == LoopStateStopped
}
