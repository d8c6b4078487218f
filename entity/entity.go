package entity

import (
	"sync"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/block/cube/trace"
	"github.com/go-gl/mathgl/mgl64"
)

// HitMargin is how far the bounding box of an entity is grown when testing whether a projectile hits it.
const HitMargin = 0.3

// Entity represents an entity in a world that projectiles may collide with.
type Entity struct {
	// mu protects all the following fields.
	mu sync.Mutex
	// runtimeID is the unique runtime ID of the entity.
	runtimeID uint64
	// name is a human-readable name used for logging.
	name string
	// position is the current position of the feet of the entity.
	position mgl64.Vec3
	// lastPosition is the previous position of the entity.
	lastPosition mgl64.Vec3
	// aabb represents the bounding box of the entity, relative to its position.
	aabb cube.BBox
	// attackable is true if the entity can be hit by projectiles at all.
	attackable bool
	// spectator is true if the entity is a player in spectator mode.
	spectator bool
}

// defaultAABB is the default AABB for newly created entities.
var defaultAABB = AABBFromDimensions(0.6, 1.8)

// AABBFromDimensions returns a bounding box with its bottom centred on the origin.
func AABBFromDimensions(width, height float64) cube.BBox {
	h := width / 2
	return cube.Box(
		-h, 0, -h,
		h, height, h,
	)
}

// New creates a new attackable entity with the default bounding box of a player.
func New(runtimeID uint64, name string, position mgl64.Vec3) *Entity {
	return &Entity{
		runtimeID:    runtimeID,
		name:         name,
		position:     position,
		lastPosition: position,
		aabb:         defaultAABB,
		attackable:   true,
	}
}

// RuntimeID returns the runtime ID of the entity.
func (e *Entity) RuntimeID() uint64 {
	return e.runtimeID
}

// Name returns the name of the entity.
func (e *Entity) Name() string {
	return e.name
}

// Position returns the position of the entity.
func (e *Entity) Position() mgl64.Vec3 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.position
}

// LastPosition returns the last position of the entity.
func (e *Entity) LastPosition() mgl64.Vec3 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastPosition
}

// Move moves the entity to the provided position. An entity held by a world.World is not re-indexed
// by Move, so it must be moved through World.MoveEntity instead.
func (e *Entity) Move(pos mgl64.Vec3) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastPosition = e.position
	e.position = pos
}

// AABB returns the AABB of the entity, relative to its position.
func (e *Entity) AABB() cube.BBox {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.aabb
}

// SetAABB updates the AABB of the entity. An entity held by a world.World is not re-indexed by
// SetAABB, so it must be resized through World.SetEntityAABB instead.
func (e *Entity) SetAABB(aabb cube.BBox) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.aabb = aabb
}

// BBox returns the bounding box of the entity translated to its current position.
func (e *Entity) BBox() cube.BBox {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.aabb.Translate(e.position)
}

// Attackable returns true if projectiles can hit the entity.
func (e *Entity) Attackable() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.attackable
}

// SetAttackable updates whether projectiles can hit the entity.
func (e *Entity) SetAttackable(attackable bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.attackable = attackable
}

// Spectator returns true if the entity is spectating.
func (e *Entity) Spectator() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.spectator
}

// SetSpectator updates whether the entity is spectating.
func (e *Entity) SetSpectator(spectator bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.spectator = spectator
}

// Intercept returns the point at which the segment from start to end first enters the hit box of the
// entity, which is its bounding box grown by HitMargin.
func (e *Entity) Intercept(start, end mgl64.Vec3) (mgl64.Vec3, bool) {
	res, ok := trace.BBoxIntercept(e.BBox().Grow(HitMargin), start, end)
	if !ok {
		return mgl64.Vec3{}, false
	}
	return res.Position(), true
}
