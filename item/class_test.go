package item

import (
	"math"
	"testing"
)

func TestBowSpeedBelowDrawThreshold(t *testing.T) {
	if s := ClassBow.Speed(0); s != 0 {
		t.Fatalf("expected zero speed for an undrawn bow, got %v", s)
	}
	// One tick of drawing gives a pull of roughly 0.034, below the release threshold.
	if s := ClassBow.Speed(1); s != 0 {
		t.Fatalf("expected zero speed below the minimal pull, got %v", s)
	}
	if s := ClassBow.Speed(20); math.Abs(s-3.0) > 1e-9 {
		t.Fatalf("expected full speed of 3.0 after 20 ticks, got %v", s)
	}
	if s := ClassBow.Speed(200); math.Abs(s-3.0) > 1e-9 {
		t.Fatalf("expected bow speed to cap at 3.0, got %v", s)
	}
}

func TestTridentChargeCaps(t *testing.T) {
	if c := TridentCharge(5); math.Abs(c-0.5) > 1e-9 {
		t.Fatalf("expected half charge after 5 ticks, got %v", c)
	}
	for _, ticks := range []int{10, 11, 40, 1000} {
		if s := ClassTrident.Speed(ticks); math.Abs(s-2.5) > 1e-9 {
			t.Fatalf("expected trident speed 2.5 after %d ticks, got %v", ticks, s)
		}
	}
}

func TestFixedSpeedClassesIgnoreCharge(t *testing.T) {
	cases := map[Class]float64{
		ClassCrossbow:  3.15,
		ClassThrowable: 1.5,
		ClassSplash:    0.75,
	}
	for c, want := range cases {
		for _, ticks := range []int{0, 3, 72000} {
			if got := c.Speed(ticks); got != want {
				t.Fatalf("%v: expected speed %v at %d ticks, got %v", c, want, ticks, got)
			}
		}
		if c.ChargeGated() {
			t.Fatalf("%v should not be charge gated", c)
		}
	}
}

func TestDefaultTableIsTotal(t *testing.T) {
	table := DefaultTable()
	for c := ClassBow; c < classCount; c++ {
		p := table.Of(c)
		if p.Drag <= 0 || p.Drag > 1 {
			t.Fatalf("%v: drag %v out of range", c, p.Drag)
		}
		if p.Gravity <= 0 {
			t.Fatalf("%v: gravity %v must be positive", c, p.Gravity)
		}
	}
	if p := table.Of(ClassNone); p != (Physics{}) {
		t.Fatalf("expected zero physics for ClassNone, got %+v", p)
	}
	if p := table.Of(Class(200)); p != (Physics{}) {
		t.Fatalf("expected zero physics for an unknown class, got %+v", p)
	}
}

func TestLookup(t *testing.T) {
	cases := map[string]Class{
		"minecraft:bow":              ClassBow,
		"crossbow":                   ClassCrossbow,
		"Minecraft:Trident":          ClassTrident,
		"minecraft:ender_pearl":      ClassThrowable,
		"minecraft:lingering_potion": ClassSplash,
		"minecraft:stick":            ClassNone,
		"":                           ClassNone,
	}
	for id, want := range cases {
		if got := Lookup(id); got != want {
			t.Fatalf("Lookup(%q) = %v, want %v", id, got, want)
		}
	}

	ids := Identifiers()
	if len(ids) != 9 || ids[0] != "minecraft:bow" {
		t.Fatalf("unexpected identifiers %v", ids)
	}
	for _, id := range ids {
		if !Lookup(id).Eligible() {
			t.Fatalf("registered item %v is not eligible", id)
		}
	}
}
