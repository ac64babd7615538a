package engine

import (
	"sort"

	"github.com/lixenwraith/glade/core"
)

// QueryBuilder provides a fluent interface for querying entities based on component intersection
// The query optimizes by starting with the smallest store and filtering through larger ones
type QueryBuilder struct {
	world    *World
	stores   []QueryableStore
	without  []AnyStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder for finding entities with specific component combinations
//
// Example:
//
//	entities := world.Query().
//	    With(transforms).
//	    With(velocities).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world:  w,
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a component store to the query filter
// Panics if called after Execute()
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Without excludes entities that have a component in the given store
// Panics if called after Execute()
func (qb *QueryBuilder) Without(store AnyStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.without = append(qb.without, store)
	return qb
}

// Execute runs the query and returns all entities present in every With store and no Without store
// Calling Execute() multiple times returns the cached result
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	// Smallest store first minimizes HasEntity checks
	sort.SliceStable(qb.stores, func(i, j int) bool {
		return qb.stores[i].CountEntities() < qb.stores[j].CountEntities()
	})

	candidates := qb.stores[0].GetAllEntities()
	for i := 1; i < len(qb.stores) && len(candidates) > 0; i++ {
		store := qb.stores[i]
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.HasEntity(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
	}

	if len(qb.without) > 0 {
		filtered := candidates[:0]
	next:
		for _, e := range candidates {
			for _, store := range qb.without {
				if store.HasEntity(e) {
					continue next
				}
			}
			filtered = append(filtered, e)
		}
		candidates = filtered
	}

	qb.results = candidates
	return qb.results
}
