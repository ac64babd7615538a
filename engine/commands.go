package engine

import (
	"sync"

	"github.com/lixenwraith/glade/core"
)

// Insert attaches one component to an entity when a deferred spawn is applied
type Insert func(w *World, e core.Entity)

// Bundle is the set of components a deferred spawn attaches
type Bundle []Insert

// Component wraps a component value as an Insert for its typed store
func Component[T any](val T) Insert {
	return func(w *World, e core.Entity) {
		GetStore[T](w).SetComponent(e, val)
	}
}

// Commands buffers structural changes so systems never create entities mid-iteration
// App applies the buffer at the end of the startup stage and after every frame
type Commands struct {
	mu      sync.Mutex
	world   *World
	pending []Bundle
}

func newCommands(w *World) *Commands {
	return &Commands{world: w}
}

// Spawn queues a single entity with the given components
// An empty call queues an entity with no components
func (c *Commands) Spawn(components ...Insert) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, Bundle(components))
}

// SpawnBatch queues many entities as one submission
func (c *Commands) SpawnBatch(bundles []Bundle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, bundles...)
}

// Apply creates every queued entity in submission order and returns their handles
func (c *Commands) Apply() []core.Entity {
	c.mu.Lock()
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()

	if len(pending) == 0 {
		return nil
	}

	created := make([]core.Entity, 0, len(pending))
	for _, bundle := range pending {
		e := c.world.CreateEntity()
		for _, insert := range bundle {
			insert(c.world, e)
		}
		created = append(created, e)
	}
	return created
}
