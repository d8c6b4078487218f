package trajectory

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/aimtrace/assert"
	"github.com/oomph-ac/aimtrace/game"
	"github.com/oomph-ac/aimtrace/item"
)

const (
	// DefaultSubsteps is the amount of integration substeps per tick.
	DefaultSubsteps = 4
	// DefaultPointLimit is the hard limit of samples per path.
	DefaultPointLimit = 20000

	// EntitySearchMargin is how far the bounding box of a substep segment is grown when searching
	// for entities that may be hit.
	EntitySearchMargin = 1.0

	muzzleOffset = 0.16
	muzzleDrop   = 0.1

	waterDragFactor = 0.6

	minLaunchSpeedSqr = 1e-10
	minSpeedSqr       = 1e-8
)

// Launcher is a read-only snapshot of the entity about to launch a projectile.
type Launcher struct {
	// Position is the position of the feet of the launcher.
	Position  mgl64.Vec3
	EyeHeight float64
	// Yaw and Pitch are in degrees. A positive pitch looks downwards.
	Yaw, Pitch float64
	// UseTicks is the amount of ticks the held item has been in use.
	UseTicks int
	// Shooter is the runtime ID of the launcher, which can never be hit by its own projectile.
	Shooter uint64
}

// spawnPosition returns the position a projectile leaves the held item at, which is slightly behind
// and below the eyes of the launcher.
func (l Launcher) spawnPosition(yaw float64) mgl64.Vec3 {
	return mgl64.Vec3{
		l.Position.X() - math.Cos(yaw)*muzzleOffset,
		l.Position.Y() + l.EyeHeight - muzzleDrop,
		l.Position.Z() - math.Sin(yaw)*muzzleOffset,
	}
}

// Options define the integration and termination behaviour of a Simulator. The zero value is valid
// and uses the defaults.
type Options struct {
	// Substeps is the amount of integration substeps per tick.
	Substeps int
	// PointLimit is the hard limit of samples a single path may hold.
	PointLimit int
	// MaxTicks limits the amount of simulated ticks. Zero means no limit other than PointLimit.
	MaxTicks int
	// Physics overrides the physical constants of each item class.
	Physics *item.Table

	// Debugf receives a trace line for every simulated path.
	Debugf func(format string, args ...any)
}

func (o Options) resolve() Options {
	if o.Substeps <= 0 {
		o.Substeps = DefaultSubsteps
	}
	if o.PointLimit <= 0 {
		o.PointLimit = DefaultPointLimit
	}
	if o.Physics == nil {
		table := item.DefaultTable()
		o.Physics = &table
	}
	return o
}

// Simulator predicts the path of projectiles using the provided world adapters. A Simulator keeps no
// state between calls to Simulate.
type Simulator struct {
	World    World
	Entities EntitySource
	Options  Options
}

// Simulate predicts the path of a projectile of the item class passed, launched by l with its yaw
// offset by yawOffset degrees. The path is empty if there is no world, the class is not eligible or
// the launch velocity is too small.
func (s *Simulator) Simulate(l Launcher, class item.Class, yawOffset float64) Path {
	if s.World == nil || !class.Eligible() {
		return Path{Stop: StopEmpty}
	}
	opts := s.Options.resolve()
	physics := opts.Physics.Of(class)

	yaw, pitch := mgl64.DegToRad(l.Yaw), mgl64.DegToRad(l.Pitch)
	pos := l.spawnPosition(yaw)
	vel := game.DirectionVector(yaw+mgl64.DegToRad(yawOffset), pitch).Normalize().Mul(class.Speed(l.UseTicks))
	if vel.LenSqr() < minLaunchSpeedSqr {
		return Path{Stop: StopEmpty}
	}

	dt := 1.0 / float64(opts.Substeps)
	path := Path{Points: make([]mgl64.Vec3, 0, min(opts.PointLimit, 256)), Stop: StopTickLimit}

outer:
	for tick := 0; opts.MaxTicks <= 0 || tick < opts.MaxTicks; tick++ {
		for range opts.Substeps {
			path.Points = append(path.Points, pos)
			if len(path.Points) >= opts.PointLimit {
				path.Stop = StopPointLimit
				break outer
			}

			next := pos.Add(vel.Mul(dt))
			if c, e := s.collide(l.Shooter, pos, next); c != nil {
				path.Points = append(path.Points, c.Position())
				path.Collision, path.Entity = c, e
				path.Stop = StopCollision
				break outer
			}

			vel = applyPhysics(vel, physics, dt, s.segmentInWater(pos, next))
			pos = next

			if vel.LenSqr() < minSpeedSqr {
				path.Stop = StopVelocity
				break outer
			}
		}
	}
	path.Velocity = vel

	assert.IsTrue(len(path.Points) <= opts.PointLimit, "path holds %d points, limit is %d", len(path.Points), opts.PointLimit)
	if opts.Debugf != nil {
		opts.Debugf("simulated %v path (yaw offset %.1f): points=%d stop=%v", class, yawOffset, len(path.Points), path.Stop)
	}
	return path
}

// collide returns the collision closest to start on the segment from start to end, if any. A block
// hit is preferred unless an entity is hit strictly closer to start.
func (s *Simulator) collide(shooter uint64, start, end mgl64.Vec3) (Collision, Entity) {
	var (
		closest     Collision
		closestDist = math.MaxFloat64
	)
	if hit, ok := s.World.FirstBlockingSurface(start, end); ok {
		closest = BlockCollision{Pos: hit.Position, Face: hit.Face, Block: hit.Block}
		closestDist = start.Sub(hit.Position).LenSqr()
	}

	if e, hitPos, ok := s.closestEntity(shooter, start, end); ok && start.Sub(hitPos).LenSqr() < closestDist {
		return EntityCollision{Pos: hitPos, Entity: e}, e
	}
	return closest, nil
}

// closestEntity returns the attackable, non-spectator entity whose hit box the segment enters first.
func (s *Simulator) closestEntity(shooter uint64, start, end mgl64.Vec3) (Entity, mgl64.Vec3, bool) {
	if s.Entities == nil {
		return nil, mgl64.Vec3{}, false
	}

	var (
		closest     Entity
		closestPos  mgl64.Vec3
		closestDist = math.MaxFloat64
	)
	box := segmentBox(start, end).Grow(EntitySearchMargin)
	for _, e := range s.Entities.EntitiesWithin(box, func(e Entity) bool {
		return e.RuntimeID() != shooter && e.Attackable() && !e.Spectator()
	}) {
		hitPos, ok := e.Intercept(start, end)
		if !ok {
			continue
		}
		if dist := start.Sub(hitPos).LenSqr(); dist < closestDist {
			closest, closestPos, closestDist = e, hitPos, dist
		}
	}
	return closest, closestPos, closest != nil
}

// segmentInWater samples three evenly spaced points of the segment and returns true if any of them
// lies in a block holding water.
func (s *Simulator) segmentInWater(a, b mgl64.Vec3) bool {
	delta := b.Sub(a)
	for i := 0; i <= 2; i++ {
		if s.World.IsWater(cube.PosFromVec3(a.Add(delta.Mul(float64(i) / 2)))) {
			return true
		}
	}
	return false
}

// applyPhysics applies gravity and then drag over a substep of length dt. Drag is compounded over dt
// so that the decay over a full tick does not depend on the amount of substeps.
func applyPhysics(vel mgl64.Vec3, p item.Physics, dt float64, inWater bool) mgl64.Vec3 {
	vel[1] -= p.Gravity * dt

	medium := 1.0
	if inWater {
		medium = waterDragFactor
	}
	return vel.Mul(math.Pow(p.Drag*medium, dt))
}

func segmentBox(a, b mgl64.Vec3) cube.BBox {
	return cube.Box(
		math.Min(a.X(), b.X()), math.Min(a.Y(), b.Y()), math.Min(a.Z(), b.Z()),
		math.Max(a.X(), b.X()), math.Max(a.Y(), b.Y()), math.Max(a.Z(), b.Z()),
	)
}
