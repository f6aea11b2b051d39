package vmath

import "math"

// Float64 throughout: the break curve needs Pow/Exp and runs once per
// frame on a single entity, so fixed-point buys nothing here

// Clamp01 clamps x to [0, 1]
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Lerp interpolates between a and b; t=0 returns a, t=1 returns b
// t outside [0,1] extrapolates
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// NormalizeAngle wraps an angle in degrees to (-180, 180]
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}

// LerpAngle interpolates between two angles in degrees along the
// shortest arc. t outside [0,1] extrapolates along that arc
func LerpAngle(a, b, t float64) float64 {
	return a + NormalizeAngle(b-a)*t
}
