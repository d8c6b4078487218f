package world

import "github.com/df-mc/dragonfly/server/block/cube"

// Block is a block in a World. Its collision boxes are relative to the block position.
type Block struct {
	Boxes []cube.BBox
	Water bool
}

// Air returns true if the block has neither collision nor water.
func (b Block) Air() bool {
	return len(b.Boxes) == 0 && !b.Water
}

// Solid returns a full, solid block.
func Solid() Block {
	return Block{Boxes: []cube.BBox{cube.Box(0, 0, 0, 1, 1, 1)}}
}

// Water returns a water source block, which has no collision.
func Water() Block {
	return Block{Water: true}
}

// Slab returns a half block occupying the bottom or top half of the block.
func Slab(top bool) Block {
	if top {
		return Block{Boxes: []cube.BBox{cube.Box(0, 0.5, 0, 1, 1, 1)}}
	}
	return Block{Boxes: []cube.BBox{cube.Box(0, 0, 0, 1, 0.5, 1)}}
}

// BlockByName returns the block with the name passed, as used in scene files.
func BlockByName(name string) (Block, bool) {
	switch name {
	case "air":
		return Block{}, true
	case "solid", "stone":
		return Solid(), true
	case "water":
		return Water(), true
	case "slab", "bottom_slab":
		return Slab(false), true
	case "top_slab":
		return Slab(true), true
	default:
		return Block{}, false
	}
}

// Air returns a block without collision or water. Setting it removes the block from a World.
func Air() Block {
	return Block{}
}
