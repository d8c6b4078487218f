package item

import "math"

// Class is the physical classification of a held item. The set is closed: every launchable item maps
// to exactly one of the eligible classes, and everything else maps to ClassNone.
type Class uint8

const (
	// ClassNone is the class of any item that cannot launch a projectile.
	ClassNone Class = iota
	ClassBow
	ClassCrossbow
	ClassTrident
	// ClassThrowable covers snowballs, eggs and ender pearls.
	ClassThrowable
	// ClassSplash covers splash and lingering potions and bottles o' enchanting.
	ClassSplash

	classCount
)

const (
	// MinBowPull is the smallest pull progress at which a bow releases an arrow.
	MinBowPull = 0.1

	bowSpeed       = 3.0
	crossbowSpeed  = 3.15
	tridentSpeed   = 2.5
	throwableSpeed = 1.5
	splashSpeed    = 0.75
)

// Eligible returns true if items of the class can launch a projectile at all.
func (c Class) Eligible() bool {
	return c > ClassNone && c < classCount
}

// ChargeGated returns true if the launch speed of the class depends on how long the item has been used.
func (c Class) ChargeGated() bool {
	return c == ClassBow || c == ClassTrident
}

// Charge returns the charge fraction in [0, 1] of an item of the class that has been in use for the
// given amount of ticks. Classes that are not charge gated are always fully charged.
func (c Class) Charge(useTicks int) float64 {
	switch c {
	case ClassBow:
		return BowPull(useTicks)
	case ClassTrident:
		return TridentCharge(useTicks)
	case ClassNone:
		return 0
	default:
		return 1
	}
}

// Speed returns the launch speed, in blocks per tick, of a projectile fired by an item of the class
// after it was used for the given amount of ticks.
func (c Class) Speed(useTicks int) float64 {
	switch c {
	case ClassBow:
		pull := BowPull(useTicks)
		if pull < MinBowPull {
			return 0
		}
		return pull * bowSpeed
	case ClassCrossbow:
		return crossbowSpeed
	case ClassTrident:
		return TridentCharge(useTicks) * tridentSpeed
	case ClassThrowable:
		return throwableSpeed
	case ClassSplash:
		return splashSpeed
	default:
		return 0
	}
}

// BowPull returns the pull progress of a bow drawn for the given amount of ticks.
func BowPull(useTicks int) float64 {
	if useTicks <= 0 {
		return 0
	}
	f := float64(useTicks) / 20
	f = (f*f + f*2) / 3
	return math.Min(f, 1)
}

// TridentCharge returns the charge of a trident wound up for the given amount of ticks. It caps at 1
// once the trident has been wound for 10 ticks.
func TridentCharge(useTicks int) float64 {
	if useTicks <= 0 {
		return 0
	}
	return math.Min(float64(useTicks)/10, 1)
}

func (c Class) String() string {
	switch c {
	case ClassBow:
		return "bow"
	case ClassCrossbow:
		return "crossbow"
	case ClassTrident:
		return "trident"
	case ClassThrowable:
		return "throwable"
	case ClassSplash:
		return "splash"
	default:
		return "none"
	}
}
