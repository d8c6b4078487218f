package world

import (
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `
[[fill]]
from = [-4, 63, -4]
to = [4, 63, 20]
block = "solid"

[[fill]]
from = [-4, 64, 10]
to = [4, 66, 12]
block = "water"

[[entity]]
name = "zombie"
position = [0.0, 64.0, 8.0]

[[entity]]
name = "ghost"
position = [1.0, 64.0, 8.0]
width = 0.8
height = 2.4
spectator = true

[holder]
position = [0.5, 64.0, 0.5]
yaw = 10.0
pitch = -5.0
main_hand = "crossbow"
charged = true
multishot = true
`

func TestDecodeScene(t *testing.T) {
	w, h, err := DecodeScene([]byte(testScene))
	require.NoError(t, err)

	assert.False(t, w.Block(cube.Pos{0, 63, 0}).Air())
	assert.True(t, w.IsWater(cube.Pos{0, 65, 11}))
	require.Equal(t, 2, w.EntityCount())

	zombie, ok := w.Entity(RuntimeID("zombie"))
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{0, 64, 8}, zombie.Position())
	assert.True(t, zombie.Attackable())

	ghost, ok := w.Entity(RuntimeID("ghost"))
	require.True(t, ok)
	assert.True(t, ghost.Spectator())
	assert.InDelta(t, 2.4, ghost.AABB().Height(), 1e-9)

	assert.Equal(t, RuntimeID(holderName), h.RuntimeID)
	assert.Equal(t, mgl64.Vec3{0.5, 64, 0.5}, h.Position)
	assert.Equal(t, DefaultEyeHeight, h.EyeHeight)
	assert.Equal(t, 10.0, h.Yaw)
	assert.Equal(t, -5.0, h.Pitch)
	assert.Equal(t, "crossbow", h.MainHand.Item)
	assert.True(t, h.MainHand.Charged)
	assert.True(t, h.MainHand.Multishot)
}

func TestDecodeSceneErrors(t *testing.T) {
	for name, data := range map[string]string{
		"malformed":     "[[fill]\n",
		"short corner":  "[[fill]]\nfrom = [0, 0]\nto = [1, 1, 1]\nblock = \"solid\"\n",
		"unknown block": "[[fill]]\nfrom = [0, 0, 0]\nto = [1, 1, 1]\nblock = \"lava\"\n",
		"unnamed":       "[[entity]]\nposition = [0.0, 0.0, 0.0]\n",
		"duplicate":     "[[entity]]\nname = \"a\"\n[[entity]]\nname = \"a\"\n",
		"holder name":   "[[entity]]\nname = \"holder\"\n",
		"bad holder":    "[holder]\nposition = [1.0]\n",
	} {
		_, _, err := DecodeScene([]byte(data))
		assert.Error(t, err, name)
	}
}

func TestLoadSceneMissing(t *testing.T) {
	_, _, err := LoadScene(t.TempDir() + "/missing.toml")
	assert.Error(t, err)
}

func TestBlockByName(t *testing.T) {
	for _, name := range []string{"air", "solid", "stone", "water", "slab", "bottom_slab", "top_slab"} {
		_, ok := BlockByName(name)
		assert.True(t, ok, name)
	}
	top, _ := BlockByName("top_slab")
	require.Len(t, top.Boxes, 1)
	assert.Equal(t, 0.5, top.Boxes[0].Min().Y())

	_, ok := BlockByName("bedrock")
	assert.False(t, ok)
}
