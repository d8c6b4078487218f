package aimtrace

import (
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/aimtrace/entity"
	"github.com/oomph-ac/aimtrace/launch"
	"github.com/oomph-ac/aimtrace/render"
	"github.com/oomph-ac/aimtrace/settings"
	"github.com/oomph-ac/aimtrace/trajectory"
	"github.com/oomph-ac/aimtrace/world"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingTarget struct {
	lines, points int
}

func (c *countingTarget) Line(mgl32.Vec3, mgl32.Vec3, mgl32.Vec4)   { c.lines++ }
func (c *countingTarget) Point(mgl32.Vec3, float32, mgl32.Vec4) { c.points++ }

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.Level = logrus.TraceLevel
	return log
}

// groundWorld returns a world with a flat floor with its top at y = 64.
func groundWorld() *world.World {
	w := world.New()
	w.Fill(cube.Pos{-64, 63, -64}, cube.Pos{64, 63, 200}, world.Solid())
	return w
}

func holderWith(hand launch.Hand) *launch.Holder {
	return &launch.Holder{
		RuntimeID: 1,
		Position:  mgl64.Vec3{0.5, 64, 0.5},
		EyeHeight: 1.62,
		MainHand:  hand,
	}
}

func TestFrameNilInputs(t *testing.T) {
	w := groundWorld()
	p := New(testLogger(), settings.DefaultSettings(), w, w)
	h := holderWith(launch.Hand{Item: "minecraft:snowball"})
	cam := &render.Camera{}
	target := &countingTarget{}

	assert.Zero(t, p.Frame(nil, cam, target))
	assert.Zero(t, p.Frame(h, nil, target))
	assert.Zero(t, p.Frame(h, cam, nil))
	assert.Zero(t, target.lines)

	noWorld := New(nil, settings.DefaultSettings(), nil, nil)
	assert.Zero(t, noWorld.Frame(h, cam, target))
	assert.Empty(t, noWorld.Paths())
	assert.Zero(t, target.lines)
}

func TestFrameIneligibleItem(t *testing.T) {
	w := groundWorld()
	p := New(testLogger(), settings.DefaultSettings(), w, w)
	target := &countingTarget{}

	h := holderWith(launch.Hand{Item: "minecraft:stick"})
	h.OffHand = launch.Hand{Item: "minecraft:snowball"}
	assert.Zero(t, p.Frame(h, &render.Camera{}, target))
	assert.Empty(t, p.Paths())
	assert.Zero(t, target.lines)
}

func TestFrameSinglePath(t *testing.T) {
	w := groundWorld()
	p := New(testLogger(), settings.DefaultSettings(), w, w)
	target := &countingTarget{}

	h := holderWith(launch.Hand{Item: "minecraft:bow"})
	h.Using, h.UseTicks = true, 20
	require.Equal(t, 1, p.Frame(h, &render.Camera{Position: h.Position}, target))

	paths := p.Paths()
	require.Len(t, paths, 1)
	assert.Equal(t, trajectory.StopCollision, paths[0].Stop)
	bc, ok := paths[0].Collision.(trajectory.BlockCollision)
	require.True(t, ok)
	assert.Equal(t, cube.FaceUp, bc.Face)
	// One line per consecutive pair of samples plus the four sides of the impact square.
	assert.Equal(t, len(paths[0].Points)-1+4, target.lines)
}

func TestFrameMultishot(t *testing.T) {
	w := groundWorld()
	p := New(testLogger(), settings.DefaultSettings(), w, w)
	h := holderWith(launch.Hand{Item: "minecraft:crossbow", Charged: true, Multishot: true})

	require.Equal(t, 3, p.Frame(h, &render.Camera{}, &countingTarget{}))
	paths := p.Paths()
	require.Len(t, paths, 3)

	spawnX := h.Position.X() - 0.16
	ends := make([]mgl64.Vec3, 3)
	for i, path := range paths {
		require.Equal(t, trajectory.StopCollision, path.Stop)
		ends[i], _ = path.End()
	}
	assert.InDelta(t, spawnX, ends[0].X(), 1e-9)
	// The side projectiles spread to opposite sides of the centre one by the same amount.
	assert.Greater(t, ends[2].X()-spawnX, 1.0)
	assert.Less(t, ends[1].X()-spawnX, -1.0)
	assert.InDelta(t, ends[2].X()-spawnX, spawnX-ends[1].X(), 1e-6)
	assert.InDelta(t, ends[1].Z(), ends[2].Z(), 1e-6)

	// Every path holds its own samples.
	assert.NotSame(t, &paths[0].Points[0], &paths[1].Points[0])
	assert.NotSame(t, &paths[1].Points[0], &paths[2].Points[0])
}

func TestFrameResetsPaths(t *testing.T) {
	w := groundWorld()
	p := New(testLogger(), settings.DefaultSettings(), w, w)
	cam := &render.Camera{}

	h := holderWith(launch.Hand{Item: "minecraft:crossbow", Charged: true, Multishot: true})
	require.Equal(t, 3, p.Frame(h, cam, &countingTarget{}))

	h.MainHand.Charged = false
	assert.Zero(t, p.Frame(h, cam, &countingTarget{}))
	assert.Empty(t, p.Paths())

	h.MainHand = launch.Hand{Item: "minecraft:ender_pearl"}
	assert.Equal(t, 1, p.Frame(h, cam, &countingTarget{}))
	assert.Len(t, p.Paths(), 1)
}

func TestFrameHitsEntity(t *testing.T) {
	w := groundWorld()
	target := entity.New(world.RuntimeID("target"), "target", mgl64.Vec3{0.34, 64, 8})
	w.AddEntity(target)
	// The holder itself is in the world too and must never be hit.
	w.AddEntity(entity.New(1, "holder", mgl64.Vec3{0.5, 64, 0.5}))

	s := settings.DefaultSettings()
	s.Render.Style = "particles"
	p := New(testLogger(), s, w, w)
	rec := &countingTarget{}

	h := holderWith(launch.Hand{Item: "minecraft:snowball"})
	require.Equal(t, 1, p.Frame(h, &render.Camera{}, rec))

	path := p.Paths()[0]
	require.NotNil(t, path.Entity)
	assert.Equal(t, target.RuntimeID(), path.Entity.RuntimeID())
	assert.Equal(t, 12, rec.lines)
	assert.Positive(t, rec.points)
}

func TestFrameMaxTicks(t *testing.T) {
	w := world.New()
	s := settings.DefaultSettings()
	s.Simulation.MaxTicks = 5
	p := New(testLogger(), s, w, w)

	h := holderWith(launch.Hand{Item: "minecraft:snowball"})
	require.Equal(t, 1, p.Frame(h, &render.Camera{}, &countingTarget{}))
	path := p.Paths()[0]
	assert.Equal(t, trajectory.StopTickLimit, path.Stop)
	assert.Len(t, path.Points, 5*trajectory.DefaultSubsteps)
}
