package engine

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Handle is a typed reference into an Assets registry
// The zero handle is invalid
type Handle[T any] struct {
	ID uint64
}

// IsValid reports whether the handle was issued by a registry
func (h Handle[T]) IsValid() bool {
	return h.ID != 0
}

// Assets is an in-memory registry of asset values of type T, keyed by handle
type Assets[T any] struct {
	mu     sync.RWMutex
	nextID uint64
	items  map[uint64]T
}

// NewAssets creates an empty registry
func NewAssets[T any]() *Assets[T] {
	return &Assets[T]{
		nextID: 1,
		items:  make(map[uint64]T),
	}
}

// Add stores an asset and returns a fresh handle
func (a *Assets[T]) Add(val T) Handle[T] {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.nextID
	a.nextID++
	a.items[id] = val
	return Handle[T]{ID: id}
}

// Get resolves a handle
func (a *Assets[T]) Get(h Handle[T]) (T, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	val, ok := a.items[h.ID]
	return val, ok
}

// Len returns the number of stored assets
func (a *Assets[T]) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.items)
}

// Scene is a path-addressed model reference
// Decoding the file is out of scope; the server records the path and hands out a stable handle
type Scene struct {
	Path string
}

// AssetServer hands out scene handles by path
// Handle IDs are the xxhash of the path, so loading the same path twice yields the same handle
type AssetServer struct {
	mu     sync.RWMutex
	scenes map[uint64]*Scene
}

// NewAssetServer creates an empty asset server
func NewAssetServer() *AssetServer {
	return &AssetServer{
		scenes: make(map[uint64]*Scene),
	}
}

// Load returns the handle for path, queueing it on first request
func (s *AssetServer) Load(path string) Handle[Scene] {
	id := xxhash.Sum64String(path)
	if id == 0 {
		id = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.scenes[id]; !ok {
		s.scenes[id] = &Scene{Path: path}
	}
	return Handle[Scene]{ID: id}
}

// Len returns the number of distinct paths requested
func (s *AssetServer) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.scenes)
}
