package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RotationToPoint returns the yaw and pitch, in degrees, needed to be aiming at target from origin.
func RotationToPoint(origin, target mgl64.Vec3) (yaw, pitch float64) {
	diff := target.Sub(origin)
	pitch = -math.Atan2(diff.Y(), Vec3HzDist(diff)) / math.Pi * 180
	yaw = math.Atan2(diff.Z(), diff.X())/math.Pi*180 - 90
	if yaw <= -180 {
		yaw += 360
	}
	return yaw, pitch
}
