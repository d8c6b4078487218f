package trajectory

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// StopReason describes why a simulated path ended.
type StopReason uint8

const (
	// StopEmpty means the launch velocity was too small to be worth predicting.
	StopEmpty StopReason = iota
	// StopCollision means the path ended on a block or an entity.
	StopCollision
	// StopVelocity means the projectile slowed down until it was considered stopped.
	StopVelocity
	// StopTickLimit means the path reached the configured amount of ticks.
	StopTickLimit
	// StopPointLimit means the path reached the hard sample limit without resolving.
	StopPointLimit
)

func (r StopReason) String() string {
	switch r {
	case StopEmpty:
		return "empty"
	case StopCollision:
		return "collision"
	case StopVelocity:
		return "velocity"
	case StopTickLimit:
		return "tick_limit"
	case StopPointLimit:
		return "point_limit"
	default:
		return "unknown"
	}
}

// Collision is the terminal collision of a path. It is either a BlockCollision or an EntityCollision.
type Collision interface {
	// Position returns the exact point of impact.
	Position() mgl64.Vec3
	collision()
}

// BlockCollision is a Collision with the collision shape of a block.
type BlockCollision struct {
	Pos   mgl64.Vec3
	Face  cube.Face
	Block cube.Pos
}

func (c BlockCollision) Position() mgl64.Vec3 { return c.Pos }
func (BlockCollision) collision()             {}

// EntityCollision is a Collision with the hit box of an entity.
type EntityCollision struct {
	Pos    mgl64.Vec3
	Entity Entity
}

func (c EntityCollision) Position() mgl64.Vec3 { return c.Pos }
func (EntityCollision) collision()             {}

// Path is the result of a single simulation. It is built once and must not be modified afterwards.
type Path struct {
	// Points holds the sampled positions in the order they were reached. If the path ended on a
	// collision, the last point is the point of impact.
	Points []mgl64.Vec3
	// Collision is the terminal collision of the path, or nil if there was none.
	Collision Collision
	// Entity is the entity struck by the projectile, or nil.
	Entity Entity
	// Velocity is the velocity of the projectile after the last integrated substep.
	Velocity mgl64.Vec3
	Stop     StopReason
}

// Empty returns true if the path holds no samples.
func (p Path) Empty() bool {
	return len(p.Points) == 0
}

// End returns the last point of the path.
func (p Path) End() (mgl64.Vec3, bool) {
	if len(p.Points) == 0 {
		return mgl64.Vec3{}, false
	}
	return p.Points[len(p.Points)-1], true
}
