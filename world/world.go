package world

import (
	"math"
	"slices"
	"sync"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/block/cube/trace"
	"github.com/dhconnelly/rtreego"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/aimtrace/entity"
	"github.com/oomph-ac/aimtrace/game"
	"github.com/oomph-ac/aimtrace/trajectory"
)

// World is an in-memory world holding blocks and entities. It implements both trajectory.World and
// trajectory.EntitySource.
type World struct {
	mu sync.RWMutex

	blocks map[cube.Pos]Block

	entities *rtreego.Rtree
	byID     map[uint64]*spatialEntity
}

// spatialEntity stores an entity in the R-tree. bounds is the bounding box the entity had when it
// was inserted, and must not change while the entity is in the tree.
type spatialEntity struct {
	e      *entity.Entity
	bounds rtreego.Rect
}

func (s *spatialEntity) Bounds() rtreego.Rect {
	return s.bounds
}

// New returns an empty World.
func New() *World {
	return &World{
		blocks:   make(map[cube.Pos]Block),
		entities: rtreego.NewTree(3, 25, 50),
		byID:     make(map[uint64]*spatialEntity),
	}
}

// SetBlock sets the block at the position passed. Setting air removes the block.
func (w *World) SetBlock(pos cube.Pos, b Block) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.setBlock(pos, b)
}

// Fill sets every block in the cuboid spanned by the two corners passed, both inclusive.
func (w *World) Fill(from, to cube.Pos, b Block) {
	w.mu.Lock()
	defer w.mu.Unlock()

	minPos := cube.Pos{min(from[0], to[0]), min(from[1], to[1]), min(from[2], to[2])}
	maxPos := cube.Pos{max(from[0], to[0]), max(from[1], to[1]), max(from[2], to[2])}
	for x := minPos[0]; x <= maxPos[0]; x++ {
		for y := minPos[1]; y <= maxPos[1]; y++ {
			for z := minPos[2]; z <= maxPos[2]; z++ {
				w.setBlock(cube.Pos{x, y, z}, b)
			}
		}
	}
}

func (w *World) setBlock(pos cube.Pos, b Block) {
	if b.Air() {
		delete(w.blocks, pos)
		return
	}
	w.blocks[pos] = b
}

// Block returns the block at the position passed.
func (w *World) Block(pos cube.Pos) Block {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.blocks[pos]
}

// IsWater returns true if the block at the position passed holds water.
func (w *World) IsWater(pos cube.Pos) bool {
	return w.Block(pos).Water
}

// FirstBlockingSurface walks the blocks along the segment in order and returns the closest hit on
// the collision boxes of the first block that the segment hits. Water never blocks the segment.
func (w *World) FirstBlockingSurface(start, end mgl64.Vec3) (trajectory.BlockHit, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for pos := range game.BlocksBetween(start, end) {
		b, ok := w.blocks[pos]
		if !ok || len(b.Boxes) == 0 {
			continue
		}

		var (
			hit     trajectory.BlockHit
			found   bool
			minDist = math.MaxFloat64
		)
		for _, bb := range b.Boxes {
			res, ok := trace.BBoxIntercept(bb.Translate(pos.Vec3()), start, end)
			if !ok {
				continue
			}
			if dist := res.Position().Sub(start).LenSqr(); dist < minDist {
				minDist, found = dist, true
				hit = trajectory.BlockHit{Position: res.Position(), Face: res.Face(), Block: pos}
			}
		}
		if found {
			return hit, true
		}
	}
	return trajectory.BlockHit{}, false
}

// AddEntity adds an entity to the world. An entity with the same runtime ID is replaced.
func (w *World) AddEntity(e *entity.Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.removeEntity(e.RuntimeID())
	s := &spatialEntity{e: e, bounds: rectFromBBox(e.BBox())}
	w.byID[e.RuntimeID()] = s
	w.entities.Insert(s)
}

// RemoveEntity removes the entity with the runtime ID passed, if present.
func (w *World) RemoveEntity(id uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.removeEntity(id)
}

func (w *World) removeEntity(id uint64) {
	s, ok := w.byID[id]
	if !ok {
		return
	}
	w.entities.Delete(s)
	delete(w.byID, id)
}

// MoveEntity moves the entity with the runtime ID passed and updates its place in the spatial index.
// Entities in a World must only be moved through MoveEntity.
func (w *World) MoveEntity(id uint64, pos mgl64.Vec3) bool {
	return w.updateEntity(id, func(e *entity.Entity) {
		e.Move(pos)
	})
}

// SetEntityAABB changes the AABB of the entity with the runtime ID passed and updates its place in
// the spatial index. Entities in a World must only be resized through SetEntityAABB.
func (w *World) SetEntityAABB(id uint64, aabb cube.BBox) bool {
	return w.updateEntity(id, func(e *entity.Entity) {
		e.SetAABB(aabb)
	})
}

// updateEntity removes the entity from the spatial index, calls f and inserts the entity again with
// its new bounding box.
func (w *World) updateEntity(id uint64, f func(e *entity.Entity)) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	s, ok := w.byID[id]
	if !ok {
		return false
	}
	w.entities.Delete(s)
	f(s.e)
	s.bounds = rectFromBBox(s.e.BBox())
	w.entities.Insert(s)
	return true
}

// Entity returns the entity with the runtime ID passed.
func (w *World) Entity(id uint64) (*entity.Entity, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	s, ok := w.byID[id]
	if !ok {
		return nil, false
	}
	return s.e, true
}

// EntityCount returns the amount of entities in the world.
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.byID)
}

// EntitiesWithin returns every entity whose bounding box intersects box and that passes filter,
// ordered by runtime ID.
func (w *World) EntitiesWithin(box cube.BBox, filter func(trajectory.Entity) bool) []trajectory.Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var found []*entity.Entity
	for _, obj := range w.entities.SearchIntersect(rectFromBBox(box)) {
		e := obj.(*spatialEntity).e
		if !e.BBox().IntersectsWith(box) {
			continue
		}
		if filter != nil && !filter(e) {
			continue
		}
		found = append(found, e)
	}
	slices.SortFunc(found, func(a, b *entity.Entity) int {
		switch {
		case a.RuntimeID() < b.RuntimeID():
			return -1
		case a.RuntimeID() > b.RuntimeID():
			return 1
		}
		return 0
	})

	entities := make([]trajectory.Entity, len(found))
	for i, e := range found {
		entities[i] = e
	}
	return entities
}

// rectFromBBox converts a bounding box to an R-tree rectangle. Flat boxes are given a tiny
// thickness, as the R-tree does not accept rectangles without volume.
func rectFromBBox(bb cube.BBox) rtreego.Rect {
	const minLength = 1e-6

	lengths := make([]float64, 3)
	for i := range lengths {
		lengths[i] = max(bb.Max()[i]-bb.Min()[i], minLength)
	}
	r, _ := rtreego.NewRect(rtreego.Point{bb.Min().X(), bb.Min().Y(), bb.Min().Z()}, lengths)
	return r
}
