package trajectory

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// World bridges the static geometry of the host world. Implementations must be read-only for the
// duration of a simulation.
type World interface {
	// FirstBlockingSurface returns the first intersection of the segment from start to end with the
	// collision shape of a block. Fluids never block the segment.
	FirstBlockingSurface(start, end mgl64.Vec3) (BlockHit, bool)
	// IsWater returns true if the block at the position passed holds water.
	IsWater(pos cube.Pos) bool
}

// EntitySource bridges the entity spatial queries of the host world.
type EntitySource interface {
	// EntitiesWithin returns all entities whose bounding box intersects box and for which filter
	// returns true.
	EntitiesWithin(box cube.BBox, filter func(Entity) bool) []Entity
}

// Entity is a non-owning reference to an entity of the host world.
type Entity interface {
	RuntimeID() uint64
	// BBox returns the current bounding box of the entity in world space.
	BBox() cube.BBox
	Attackable() bool
	Spectator() bool
	// Intercept returns the first point at which the segment from start to end enters the hit box of
	// the entity.
	Intercept(start, end mgl64.Vec3) (mgl64.Vec3, bool)
}

// BlockHit is the result of a segment hitting the collision shape of a block.
type BlockHit struct {
	// Position is the exact point of impact.
	Position mgl64.Vec3
	// Face is the face of the collision box that was hit.
	Face cube.Face
	// Block is the position of the block that was hit.
	Block cube.Pos
}
