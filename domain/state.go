package domain

// State is the lifecycle of one member's local copy of a replicated object.
// StatePaused is never stored: it is reported when a READY object has a non-empty pause set.
type State int

const (
	StateNew State = iota
	StateReady
	StatePaused
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateReady:
		return "RDY"
	case StatePaused:
		return "PSD"
	case StateDisposed:
		return "DSP"
	default:
		return "UNK"
	}
}
