package world

import (
	"os"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/aimtrace/entity"
	"github.com/oomph-ac/aimtrace/launch"
	"github.com/oomph-ac/aimtrace/oerror"
	"github.com/pelletier/go-toml"
	"github.com/zeebo/xxh3"
)

// holderName is the name the runtime ID of the holder of a scene is derived from.
const holderName = "holder"

// Scene is the file representation of a World together with the holder looking at it.
type Scene struct {
	Fill   []FillSpec   `toml:"fill"`
	Entity []EntitySpec `toml:"entity"`
	Holder HolderSpec   `toml:"holder"`
}

// FillSpec fills a cuboid with a block.
type FillSpec struct {
	From  []int  `toml:"from"`
	To    []int  `toml:"to"`
	Block string `toml:"block"`
}

// EntitySpec places an entity.
type EntitySpec struct {
	Name         string    `toml:"name"`
	Position     []float64 `toml:"position"`
	Width        float64   `toml:"width"`
	Height       float64   `toml:"height"`
	Invulnerable bool      `toml:"invulnerable"`
	Spectator    bool      `toml:"spectator"`
}

// HolderSpec describes the holder of the launching item.
type HolderSpec struct {
	Position  []float64 `toml:"position"`
	EyeHeight float64   `toml:"eye_height"`
	Yaw       float64   `toml:"yaw"`
	Pitch     float64   `toml:"pitch"`
	MainHand  string    `toml:"main_hand"`
	OffHand   string    `toml:"off_hand"`
	Charged   bool      `toml:"charged"`
	Multishot bool      `toml:"multishot"`
	Using     bool      `toml:"using"`
	UseTicks  int       `toml:"use_ticks"`
}

// LoadScene reads the scene file at the path passed and builds its World and holder.
func LoadScene(path string) (*World, launch.Holder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, launch.Holder{}, oerror.New("error reading scene: %v", err)
	}
	return DecodeScene(data)
}

// DecodeScene decodes a TOML scene and builds its World and holder.
func DecodeScene(data []byte) (*World, launch.Holder, error) {
	var s Scene
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, launch.Holder{}, oerror.New("error decoding scene: %v", err)
	}
	return s.Build()
}

// Build creates the World and holder described by the scene.
func (s Scene) Build() (*World, launch.Holder, error) {
	w := New()
	for i, f := range s.Fill {
		from, err := posFromSlice(f.From)
		if err != nil {
			return nil, launch.Holder{}, oerror.New("fill #%d: from: %v", i, err)
		}
		to, err := posFromSlice(f.To)
		if err != nil {
			return nil, launch.Holder{}, oerror.New("fill #%d: to: %v", i, err)
		}
		b, ok := BlockByName(f.Block)
		if !ok {
			return nil, launch.Holder{}, oerror.New("fill #%d: unknown block %q", i, f.Block)
		}
		w.Fill(from, to, b)
	}

	for i, spec := range s.Entity {
		if spec.Name == "" || spec.Name == holderName {
			return nil, launch.Holder{}, oerror.New("entity #%d: invalid name %q", i, spec.Name)
		}
		pos, err := vecFromSlice(spec.Position)
		if err != nil {
			return nil, launch.Holder{}, oerror.New("entity %s: position: %v", spec.Name, err)
		}
		id := RuntimeID(spec.Name)
		if _, exists := w.Entity(id); exists {
			return nil, launch.Holder{}, oerror.New("entity %s: duplicate name", spec.Name)
		}

		e := entity.New(id, spec.Name, pos)
		if spec.Width > 0 && spec.Height > 0 {
			e.SetAABB(entity.AABBFromDimensions(spec.Width, spec.Height))
		}
		e.SetAttackable(!spec.Invulnerable)
		e.SetSpectator(spec.Spectator)
		w.AddEntity(e)
	}

	pos, err := vecFromSlice(s.Holder.Position)
	if err != nil {
		return nil, launch.Holder{}, oerror.New("holder: position: %v", err)
	}
	eyeHeight := s.Holder.EyeHeight
	if eyeHeight == 0 {
		eyeHeight = DefaultEyeHeight
	}
	return w, launch.Holder{
		RuntimeID: RuntimeID(holderName),
		Position:  pos,
		EyeHeight: eyeHeight,
		Yaw:       s.Holder.Yaw,
		Pitch:     s.Holder.Pitch,
		MainHand: launch.Hand{
			Item:      s.Holder.MainHand,
			Charged:   s.Holder.Charged,
			Multishot: s.Holder.Multishot,
		},
		OffHand:  launch.Hand{Item: s.Holder.OffHand},
		Using:    s.Holder.Using,
		UseTicks: s.Holder.UseTicks,
	}, nil
}

// DefaultEyeHeight is the eye height of a standing player.
const DefaultEyeHeight = 1.62

// RuntimeID returns the runtime ID of the scene entity with the name passed.
func RuntimeID(name string) uint64 {
	return xxh3.HashString(name)
}

func posFromSlice(s []int) (cube.Pos, error) {
	if len(s) != 3 {
		return cube.Pos{}, oerror.New("expected 3 coordinates, got %d", len(s))
	}
	return cube.Pos{s[0], s[1], s[2]}, nil
}

func vecFromSlice(s []float64) (mgl64.Vec3, error) {
	if len(s) == 0 {
		return mgl64.Vec3{}, nil
	}
	if len(s) != 3 {
		return mgl64.Vec3{}, oerror.New("expected 3 coordinates, got %d", len(s))
	}
	return mgl64.Vec3{s[0], s[1], s[2]}, nil
}
