package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Round64 will round a float64 to a given precision.
func Round64(val float64, precision int) float64 {
	pwr := math.Pow(10, float64(precision))
	return math.Round(val*pwr) / pwr
}

// RoundVec64 will round a 64-bit vector to a given precision.
func RoundVec64(v mgl64.Vec3, p int) mgl64.Vec3 {
	return mgl64.Vec3{Round64(v.X(), p), Round64(v.Y(), p), Round64(v.Z(), p)}
}

// Vec64To32 converts a 64-bit vector to a 32-bit one.
func Vec64To32(vec3 mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(vec3[0]), float32(vec3[1]), float32(vec3[2])}
}

// DirectionVector returns a direction vector from the given yaw and pitch values, both in radians.
// A yaw of zero looks towards positive Z, and a positive pitch looks downwards.
func DirectionVector(yaw, pitch float64) mgl64.Vec3 {
	m := math.Cos(pitch)

	return mgl64.Vec3{
		-m * math.Sin(yaw),
		-math.Sin(pitch),
		m * math.Cos(yaw),
	}
}

// Vec3HzDist returns the horizontal length of a vector.
func Vec3HzDist(vec3 mgl64.Vec3) float64 {
	return math.Sqrt(vec3.X()*vec3.X() + vec3.Z()*vec3.Z())
}

// Returns -1 if x < y, 0 if x == y, or 1 if x > y
func PHPSpaceshipOp(x, y float64) float64 {
	if x < y {
		return -1
	} else if x == y {
		return 0
	}

	return 1
}
