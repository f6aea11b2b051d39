package event

import "time"

// EventType represents the type of game event
type EventType int

const (
	// EventBreakRequest asks the vent break sequence to activate
	// Trigger: interact input or proximity contact with the grate
	// Consumer: sequence activation handler | Payload: *BreakRequestPayload
	EventBreakRequest EventType = iota

	// EventBreakStarted signals the sequence latched and began its run
	// Trigger: first successful Activate(), before the initial delay
	// Consumer: camera focus, HUD prompt suppression | Payload: *BreakStartedPayload
	EventBreakStarted

	// EventBreakCompleted signals the grate settled open
	// Trigger: end of the post-snap wait, before the player-state handoff
	// Consumer: puzzle tracker, autosave | Payload: *BreakCompletedPayload
	EventBreakCompleted
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
