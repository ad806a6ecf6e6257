package controller

// State is the lifecycle position of the current request.
type State int

const (
	StateIdle State = iota
	StateInFlight
	StateSuccess
	StateFailure
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInFlight:
		return "in-flight"
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Busy reports whether a request is outstanding. Success and Failure are
// resting states, so a new submission may start from either.
func (s State) Busy() bool {
	return s == StateInFlight
}
