package component

import "math/bits"

// Collision categories. Every body belongs to exactly one.
const (
	CollisionGroupGround uint32 = 1 << iota
	CollisionGroupWheel
	CollisionGroupCarriage

	CollisionGroupAll = CollisionGroupGround | CollisionGroupWheel | CollisionGroupCarriage
)

// CollisionLayer allows entities to declare a collision category and mask
// so the physics system can selectively enable/disable collisions between
// groups of objects.
type CollisionLayer struct {
	// Category is the bit of this entity's collision category.
	Category uint32
	// Mask is a bitmask of categories this entity may collide with.
	Mask uint32
}

// Collides reports whether two layers produce contacts. Both sides must
// accept the other's category.
func (l CollisionLayer) Collides(other CollisionLayer) bool {
	return l.Category&other.Mask != 0 && other.Category&l.Mask != 0
}

// SingleCategory reports whether the layer names exactly one category.
func (l CollisionLayer) SingleCategory() bool {
	return bits.OnesCount32(l.Category) == 1
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
