package item

import (
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

var registry = orderedmap.NewOrderedMap[string, Class]()

func init() {
	register("minecraft:bow", ClassBow)
	register("minecraft:crossbow", ClassCrossbow)
	register("minecraft:trident", ClassTrident)
	register("minecraft:snowball", ClassThrowable)
	register("minecraft:egg", ClassThrowable)
	register("minecraft:ender_pearl", ClassThrowable)
	register("minecraft:splash_potion", ClassSplash)
	register("minecraft:lingering_potion", ClassSplash)
	register("minecraft:experience_bottle", ClassSplash)
}

func register(identifier string, c Class) {
	registry.Set(identifier, c)
}

// Lookup returns the Class of the item with the identifier passed. The "minecraft:" namespace may be
// omitted. Unknown items are of ClassNone.
func Lookup(identifier string) Class {
	identifier = strings.ToLower(strings.TrimSpace(identifier))
	if !strings.Contains(identifier, ":") {
		identifier = "minecraft:" + identifier
	}
	if c, ok := registry.Get(identifier); ok {
		return c
	}
	return ClassNone
}

// Identifiers returns the identifiers of all launchable items in registration order.
func Identifiers() []string {
	ids := make([]string, 0, registry.Len())
	for el := registry.Front(); el != nil; el = el.Next() {
		ids = append(ids, el.Key)
	}
	return ids
}
