package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundCreak  SoundType = iota // Metal groan while the grate resists
	SoundUnload                  // Latch clank when the hinge pressure releases
	SoundTypeCount
)
