package launch

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/aimtrace/item"
)

// DefaultSpreadAngle is the yaw offset, in degrees, of the side projectiles of a multishot crossbow.
const DefaultSpreadAngle = 15.0

// Hand is the state of the item held in one hand.
type Hand struct {
	// Item is the identifier of the held item, such as "minecraft:bow".
	Item string
	// Charged is true if the item is a crossbow that is loaded.
	Charged bool
	// Multishot is true if the item is enchanted to fire several projectiles at once.
	Multishot bool
}

// Holder is a read-only snapshot of the entity holding the items, taken once per frame.
type Holder struct {
	RuntimeID uint64
	// Position is the position of the feet of the holder.
	Position  mgl64.Vec3
	EyeHeight float64
	// Yaw and Pitch are in degrees.
	Yaw, Pitch float64

	MainHand Hand
	OffHand  Hand

	// Using is true while the main hand item is being used, such as a bow being drawn.
	Using bool
	// UseTicks is the amount of ticks the main hand item has been in use.
	UseTicks int
}

// Kind is the kind of prediction a Decision asks for.
type Kind uint8

const (
	KindNone Kind = iota
	KindSingle
	KindMulti
)

func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindMulti:
		return "multi"
	default:
		return "none"
	}
}

// Decision is the result of classifying a Holder.
type Decision struct {
	Kind  Kind
	Class item.Class
	// YawOffsets holds the yaw offset in degrees of every path to predict.
	YawOffsets []float64
}

// Classifier decides whether the item held by a Holder should have its path predicted.
type Classifier struct {
	// SpreadAngle is the yaw offset of the side projectiles of a multishot crossbow.
	SpreadAngle float64
}

// NewClassifier returns a Classifier using the default spread angle.
func NewClassifier() Classifier {
	return Classifier{SpreadAngle: DefaultSpreadAngle}
}

// Classify returns the prediction that should run for the holder passed. Only the main hand is
// considered: an item held in the off hand never leads to a prediction.
func (c Classifier) Classify(h Holder) Decision {
	class := item.Lookup(h.MainHand.Item)
	switch class {
	case item.ClassBow, item.ClassTrident:
		if !h.Using {
			return Decision{}
		}
	case item.ClassCrossbow:
		if !h.MainHand.Charged {
			return Decision{}
		}
		if h.MainHand.Multishot {
			return Decision{Kind: KindMulti, Class: class, YawOffsets: []float64{0, c.SpreadAngle, -c.SpreadAngle}}
		}
	case item.ClassThrowable, item.ClassSplash:
	default:
		return Decision{}
	}
	return Decision{Kind: KindSingle, Class: class, YawOffsets: []float64{0}}
}
