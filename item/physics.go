package item

// Physics holds the per-substep physical constants of a projectile class.
type Physics struct {
	// Gravity is subtracted from the vertical velocity once per tick, scaled by the substep length.
	Gravity float64
	// Drag is the fraction of velocity kept after one full tick in air.
	Drag float64
}

// Table maps every Class to its Physics.
type Table [classCount]Physics

// DefaultTable returns the vanilla physical constants of each projectile class.
func DefaultTable() Table {
	var t Table
	t[ClassBow] = Physics{Gravity: 0.05, Drag: 0.99}
	t[ClassCrossbow] = Physics{Gravity: 0.05, Drag: 0.99}
	t[ClassTrident] = Physics{Gravity: 0.05, Drag: 0.98}
	t[ClassThrowable] = Physics{Gravity: 0.03, Drag: 0.99}
	t[ClassSplash] = Physics{Gravity: 0.03, Drag: 0.99}
	return t
}

// Of returns the Physics of the class passed. Unknown classes have zero physics.
func (t *Table) Of(c Class) Physics {
	if c >= classCount {
		return Physics{}
	}
	return t[c]
}

// Set replaces the Physics of the class passed.
func (t *Table) Set(c Class, p Physics) {
	if c >= classCount {
		return
	}
	t[c] = p
}
