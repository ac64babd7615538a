package engine

import (
	"github.com/lixenwraith/glade/core"
)

// AnyStore provides type-erased membership checks
// This interface allows queries to filter on stores without knowing the concrete type
type AnyStore interface {
	// HasEntity checks if an entity has this component
	HasEntity(e core.Entity) bool

	// CountEntities returns the number of entities with this component
	CountEntities() int
}

// QueryableStore extends AnyStore with query operations needed for
// the query builder to efficiently intersect component sets
type QueryableStore interface {
	AnyStore

	// GetAllEntities returns all entities that have this component type
	GetAllEntities() []core.Entity
}
