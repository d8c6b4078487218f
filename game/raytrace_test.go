package game

import (
	"math"
	"slices"
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

func TestBlocksBetweenStraight(t *testing.T) {
	got := slices.Collect(BlocksBetween(mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{0.5, 0.5, 3.5}))
	want := []cube.Pos{{0, 0, 0}, {0, 0, 1}, {0, 0, 2}, {0, 0, 3}}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBlocksBetweenNegative(t *testing.T) {
	got := slices.Collect(BlocksBetween(mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{-1.5, 0.5, 0.5}))
	want := []cube.Pos{{0, 0, 0}, {-1, 0, 0}, {-2, 0, 0}}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBlocksBetweenZeroLength(t *testing.T) {
	got := slices.Collect(BlocksBetween(mgl64.Vec3{1.2, 3.4, -5.6}, mgl64.Vec3{1.2, 3.4, -5.6}))
	if len(got) != 1 || got[0] != (cube.Pos{1, 3, -6}) {
		t.Fatalf("expected only the start block, got %v", got)
	}
}

func TestBlocksBetweenAdjacent(t *testing.T) {
	prev := cube.PosFromVec3(mgl64.Vec3{0.2, 0.7, 0.1})
	first := true
	for pos := range BlocksBetween(mgl64.Vec3{0.2, 0.7, 0.1}, mgl64.Vec3{6.3, -2.2, 4.9}) {
		if first {
			first = false
			continue
		}
		d := pos.Sub(prev)
		if abs(d[0])+abs(d[1])+abs(d[2]) != 1 {
			t.Fatalf("blocks %v and %v are not adjacent", prev, pos)
		}
		prev = pos
	}
	if prev != (cube.Pos{6, -3, 4}) {
		t.Fatalf("expected the walk to end in the block holding the end, got %v", prev)
	}
}

func TestBlocksBetweenStops(t *testing.T) {
	n := 0
	for range BlocksBetween(mgl64.Vec3{}, mgl64.Vec3{100, 0, 0}) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("expected iteration to stop after 3 blocks, got %d", n)
	}
}

func TestDirectionVector(t *testing.T) {
	cases := []struct {
		yaw, pitch float64
		want       mgl64.Vec3
	}{
		{0, 0, mgl64.Vec3{0, 0, 1}},
		{90, 0, mgl64.Vec3{-1, 0, 0}},
		{-90, 0, mgl64.Vec3{1, 0, 0}},
		{180, 0, mgl64.Vec3{0, 0, -1}},
		{0, 90, mgl64.Vec3{0, -1, 0}},
		{0, -90, mgl64.Vec3{0, 1, 0}},
	}
	for _, tc := range cases {
		got := DirectionVector(mgl64.DegToRad(tc.yaw), mgl64.DegToRad(tc.pitch))
		if !vecNear(got, tc.want, 1e-9) {
			t.Fatalf("yaw %v pitch %v: expected %v, got %v", tc.yaw, tc.pitch, tc.want, got)
		}
		if math.Abs(got.Len()-1) > 1e-9 {
			t.Fatalf("expected a unit vector, got %v", got)
		}
	}
}

// vecNear compares two vectors component-wise with an absolute tolerance.
func vecNear(a, b mgl64.Vec3, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestRotationToPoint(t *testing.T) {
	origin := mgl64.Vec3{3, 65, -2}
	for _, target := range []mgl64.Vec3{{3, 65, 10}, {-5, 70, -2}, {8, 60, -9}, {3.5, 64, -40}} {
		yaw, pitch := RotationToPoint(origin, target)
		dir := DirectionVector(mgl64.DegToRad(yaw), mgl64.DegToRad(pitch))
		want := target.Sub(origin).Normalize()
		if !vecNear(dir, want, 1e-9) {
			t.Fatalf("rotation (%v, %v) looks along %v, expected %v", yaw, pitch, dir, want)
		}
		if yaw <= -180 || yaw > 180 {
			t.Fatalf("yaw %v out of range", yaw)
		}
	}
}
