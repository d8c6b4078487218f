package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityBBoxFollowsPosition(t *testing.T) {
	e := New(7, "zombie", mgl64.Vec3{1, 2, 3})
	bb := e.BBox()
	assert.InDelta(t, 0.7, bb.Min().X(), 1e-9)
	assert.InDelta(t, 2.0, bb.Min().Y(), 1e-9)
	assert.InDelta(t, 3.8, bb.Max().Y(), 1e-9)

	e.Move(mgl64.Vec3{5, 2, 3})
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, e.LastPosition())
	assert.InDelta(t, 4.7, e.BBox().Min().X(), 1e-9)
}

func TestEntityInterceptUsesHitMargin(t *testing.T) {
	e := New(1, "target", mgl64.Vec3{0, 0, 5})

	// The segment passes 0.2 blocks beside the bounding box, which is inside the hit margin.
	hit, ok := e.Intercept(mgl64.Vec3{0.5, 1, 0}, mgl64.Vec3{0.5, 1, 10})
	require.True(t, ok)
	assert.InDelta(t, 5-0.3-HitMargin, hit.Z(), 1e-9)

	_, ok = e.Intercept(mgl64.Vec3{1, 1, 0}, mgl64.Vec3{1, 1, 10})
	assert.False(t, ok)

	_, ok = e.Intercept(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 1, 3})
	assert.False(t, ok, "segment ends before the hit box")
}

func TestEntityFlags(t *testing.T) {
	e := New(1, "armor_stand", mgl64.Vec3{})
	assert.True(t, e.Attackable())
	assert.False(t, e.Spectator())

	e.SetAttackable(false)
	e.SetSpectator(true)
	assert.False(t, e.Attackable())
	assert.True(t, e.Spectator())

	e.SetAABB(AABBFromDimensions(1, 1))
	assert.InDelta(t, 1.0, e.BBox().Max().Y(), 1e-9)
}
