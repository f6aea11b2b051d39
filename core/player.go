package core

// PlayerState is the movement capability of the player character
// The break sequence hands control back by setting PlayerFreeMove once
type PlayerState uint8

const (
	PlayerLocked   PlayerState = iota // Movement pinned during scripted moments
	PlayerFreeMove                    // Normal movement control
)

func (s PlayerState) String() string {
	switch s {
	case PlayerLocked:
		return "locked"
	case PlayerFreeMove:
		return "free-move"
	default:
		return "unknown"
	}
}
