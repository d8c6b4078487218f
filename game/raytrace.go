package game

import (
	"iter"
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// BlocksBetween yields the positions of every block the segment from start to end passes through,
// in the order the segment enters them. The block containing start is always yielded first.
// https://github.com/pmmp/Math/blob/stable/src/VoxelRayTrace.php#L67
func BlocksBetween(start, end mgl64.Vec3) iter.Seq[cube.Pos] {
	return func(yield func(cube.Pos) bool) {
		currentBlock := cube.PosFromVec3(start)
		radius := end.Sub(start).Len()
		if radius <= 1e-12 {
			yield(currentBlock)
			return
		}
		dirVec := end.Sub(start).Mul(1 / radius)

		stepX := int(PHPSpaceshipOp(dirVec.X(), 0))
		stepY := int(PHPSpaceshipOp(dirVec.Y(), 0))
		stepZ := int(PHPSpaceshipOp(dirVec.Z(), 0))

		tMaxX := rayTraceDistanceToBoundary(start.X(), dirVec.X())
		tMaxY := rayTraceDistanceToBoundary(start.Y(), dirVec.Y())
		tMaxZ := rayTraceDistanceToBoundary(start.Z(), dirVec.Z())

		tDeltaX := 0.0
		if dirVec.X() != 0 {
			tDeltaX = float64(stepX) / dirVec.X()
		}

		tDeltaY := 0.0
		if dirVec.Y() != 0 {
			tDeltaY = float64(stepY) / dirVec.Y()
		}

		tDeltaZ := 0.0
		if dirVec.Z() != 0 {
			tDeltaZ = float64(stepZ) / dirVec.Z()
		}

		for {
			if !yield(currentBlock) {
				return
			}

			if tMaxX < tMaxY && tMaxX < tMaxZ {
				if tMaxX > radius {
					return
				}
				currentBlock[0] += stepX
				tMaxX += tDeltaX
			} else if tMaxY < tMaxZ {
				if tMaxY > radius {
					return
				}
				currentBlock[1] += stepY
				tMaxY += tDeltaY
			} else {
				if tMaxZ > radius {
					return
				}
				currentBlock[2] += stepZ
				tMaxZ += tDeltaZ
			}
		}
	}
}

// https://github.com/pmmp/Math/blob/stable/src/VoxelRayTrace.php#L134
func rayTraceDistanceToBoundary(s, ds float64) float64 {
	if ds == 0 {
		return math.MaxFloat64
	}

	if ds < 0 {
		s = -s
		ds = -ds

		if math.Floor(s) == s {
			return 0
		}
	}

	return (1 - (s - math.Floor(s))) / ds
}
