package vmath

// Euler is an orientation as XYZ rotation angles in degrees
// Value type, like the rest of the package: cheap to copy, no aliasing
type Euler struct {
	X, Y, Z float64
}

// EulerBlend interpolates between two orientations along the shortest
// arc per axis. t=0 returns a, t=1 is equivalent to b (possibly wrapped)
// This is the blend primitive the break sequence drives with curve output
func EulerBlend(a, b Euler, t float64) Euler {
	return Euler{
		X: LerpAngle(a.X, b.X, t),
		Y: LerpAngle(a.Y, b.Y, t),
		Z: LerpAngle(a.Z, b.Z, t),
	}
}

// EulerOffsetX returns e rotated by deg around X, other axes unchanged
func EulerOffsetX(e Euler, deg float64) Euler {
	return Euler{X: e.X + deg, Y: e.Y, Z: e.Z}
}
