package engine

import (
	"reflect"
	"sort"
	"sync"

	"github.com/lixenwraith/glade/core"
)

// World contains all entities and their components using typed stores
// Entities live in an arena keyed by generational index; nothing is destroyed during a run,
// so every slot stays at its first generation and handles never alias
type World struct {
	mu          sync.RWMutex
	generations []uint32 // per slot, current generation

	stores map[reflect.Type]AnyStore

	// Global ResourceStore
	Resources *ResourceStore

	commands *Commands

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a new ECS world with dynamic component store support
func NewWorld() *World {
	w := &World{
		stores:    make(map[reflect.Type]AnyStore),
		Resources: NewResourceStore(),
		systems:   make([]System, 0),
	}
	w.commands = newCommands(w)
	return w
}

// CreateEntity allocates the next arena slot
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	idx := uint32(len(w.generations))
	w.generations = append(w.generations, 1)
	return core.NewEntity(idx, w.generations[idx])
}

// EntityCount returns the number of entities, including ones without components
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.generations)
}

// Commands returns the deferred command buffer applied by the App between stages
func (w *World) Commands() *Commands {
	return w.commands
}

// AddSystem adds a system to the world and sorts by priority
// Stable sort keeps registration order among equal priorities
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// UpdateLocked runs all systems assuming the caller already holds updateMutex
func (w *World) UpdateLocked() {
	for _, system := range w.Systems() {
		system.Update()
	}
}

// GetStore returns the store for component type T, creating it on first use
// Call once during system construction; the pointer stays valid for the world lifetime
func GetStore[T any](w *World) *Store[T] {
	t := reflect.TypeFor[T]()

	w.mu.RLock()
	s, ok := w.stores[t]
	w.mu.RUnlock()
	if ok {
		return s.(*Store[T])
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if s, ok := w.stores[t]; ok {
		return s.(*Store[T])
	}
	store := NewStore[T]()
	w.stores[t] = store
	return store
}
