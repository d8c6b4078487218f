package game

import (
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// RelativeBox converts a dragonfly bounding box to a float32-cube bounding box relative to origin.
func RelativeBox(b df_cube.BBox, origin mgl64.Vec3) cube.BBox {
	minPos, maxPos := b.Min().Sub(origin), b.Max().Sub(origin)
	return cube.Box(
		float32(minPos.X()), float32(minPos.Y()), float32(minPos.Z()),
		float32(maxPos.X()), float32(maxPos.Y()), float32(maxPos.Z()),
	)
}

// RelativeVec converts a position to a float32 vector relative to origin.
func RelativeVec(v, origin mgl64.Vec3) mgl32.Vec3 {
	return Vec64To32(v.Sub(origin))
}

// BoxEdges returns the 12 edges of a bounding box as pairs of corners.
func BoxEdges(b cube.BBox) [12][2]mgl32.Vec3 {
	lo, hi := b.Min(), b.Max()
	c := [8]mgl32.Vec3{
		{lo.X(), lo.Y(), lo.Z()},
		{hi.X(), lo.Y(), lo.Z()},
		{hi.X(), lo.Y(), hi.Z()},
		{lo.X(), lo.Y(), hi.Z()},
		{lo.X(), hi.Y(), lo.Z()},
		{hi.X(), hi.Y(), lo.Z()},
		{hi.X(), hi.Y(), hi.Z()},
		{lo.X(), hi.Y(), hi.Z()},
	}
	return [12][2]mgl32.Vec3{
		// Bottom.
		{c[0], c[1]}, {c[1], c[2]}, {c[2], c[3]}, {c[3], c[0]},
		// Top.
		{c[4], c[5]}, {c[5], c[6]}, {c[6], c[7]}, {c[7], c[4]},
		// Vertical.
		{c[0], c[4]}, {c[1], c[5]}, {c[2], c[6]}, {c[3], c[7]},
	}
}
