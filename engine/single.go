package engine

import (
	"fmt"
	"reflect"

	"github.com/lixenwraith/glade/core"
)

// Single returns the one entity carrying marker component M
// Zero or several matches is a broken scene invariant, not a recoverable error, so it panics
func Single[M any](w *World) core.Entity {
	entities := GetStore[M](w).GetAllEntities()
	if len(entities) != 1 {
		panic(fmt.Sprintf("expected exactly one entity with %s, found %d", reflect.TypeFor[M](), len(entities)))
	}
	return entities[0]
}

// TrySingle is Single without the panic
func TrySingle[M any](w *World) (core.Entity, bool) {
	entities := GetStore[M](w).GetAllEntities()
	if len(entities) != 1 {
		return 0, false
	}
	return entities[0], true
}
