package core

import "fmt"

// Entity is a generational handle into the world arena
// Low 32 bits hold the slot index, high 32 bits hold the slot generation
// Zero is never issued and reads as "no entity"
type Entity uint64

// NewEntity packs a slot index and generation into an Entity
func NewEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the arena slot of the entity
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot generation the handle was issued for
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

func (e Entity) String() string {
	return fmt.Sprintf("%dv%d", e.Index(), e.Generation())
}
