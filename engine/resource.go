package engine

import (
	"reflect"
	"sync"
	"time"

	"github.com/lixenwraith/glade/event"
)

// ResourceStore is a thread-safe container for global game resources
// It allows systems to access shared data (Time, Input, Events) without
// coupling to the game loop
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces a resource in the store
// Pointer types are recommended so systems can cache and mutate them
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeFor[T]()] = resource
}

// GetResource retrieves a resource of type T from the store
// Returns the zero value of T and false if not found
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	val, ok := rs.resources[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// Used for core resources (Time, Input) that must exist
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		panic("required resource not found: " + reflect.TypeFor[T]().String())
	}
	return res
}

// --- Core Resources ---

// TimeResource wraps frame timing for systems
// Updated by App.Step at the start of every frame
type TimeResource struct {
	// Delta is the frame duration (zero while paused)
	Delta time.Duration

	// Elapsed is the accumulated game time since startup
	Elapsed time.Duration

	// FrameNumber is the current frame count
	FrameNumber int64
}

// DeltaSeconds returns the frame delta as float seconds
func (tr *TimeResource) DeltaSeconds() float32 {
	return float32(tr.Delta.Seconds())
}

// ElapsedSeconds returns the accumulated game time as float seconds
func (tr *TimeResource) ElapsedSeconds() float64 {
	return tr.Elapsed.Seconds()
}

// Update modifies TimeResource fields in-place (zero allocation)
// Must be called under world lock to prevent races with system reads
func (tr *TimeResource) Update(delta, elapsed time.Duration, frameNumber int64) {
	tr.Delta = delta
	tr.Elapsed = elapsed
	tr.FrameNumber = frameNumber
}

// EventQueueResource wraps the event queue for system access
type EventQueueResource struct {
	Queue *event.Queue
}

// CoreResources provides cached pointers to singleton resources
// Initialized once per system to eliminate runtime map lookups
type CoreResources struct {
	Time   *TimeResource
	Events *EventQueueResource
}

// GetCoreResources populates CoreResources from the world's resource store
// Call once during system construction; pointers remain valid for application lifetime
func GetCoreResources(w *World) CoreResources {
	return CoreResources{
		Time:   MustGetResource[*TimeResource](w.Resources),
		Events: MustGetResource[*EventQueueResource](w.Resources),
	}
}
