package event

import "github.com/lixenwraith/ventbreak/vmath"

// TriggerSource identifies which external stimulus requested activation
type TriggerSource int

const (
	TriggerInteract TriggerSource = iota // Designated input event
	TriggerContact                       // Proximity/contact with the grate's trigger volume
)

func (s TriggerSource) String() string {
	switch s {
	case TriggerInteract:
		return "interact"
	case TriggerContact:
		return "contact"
	default:
		return "unknown"
	}
}

// BreakRequestPayload carries the activation stimulus
type BreakRequestPayload struct {
	Source TriggerSource
}

// BreakStartedPayload carries the captured endpoints of the rotation
type BreakStartedPayload struct {
	Initial vmath.Euler
	Target  vmath.Euler
}

// BreakCompletedPayload carries the final resting orientation
type BreakCompletedPayload struct {
	Final vmath.Euler
}
