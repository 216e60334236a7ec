package ecs

import "reflect"

// Components are plain Go values attached to entities. Any concrete type can
// act as a component; storage is keyed by the value's reflect.Type, so an
// entity holds at most one component per concrete type and retrieval is by
// exact type identity, never by interface satisfaction.

// componentKey returns the storage key for component type T.
func componentKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Add attaches c to the entity, silently replacing any previous component of
// the same concrete type.
func Add[T any](e *Entity, c T) {
	e.components[componentKey[T]()] = &c
}

// Get returns a pointer to the entity's component of exact type T. The
// pointer stays valid until the component is removed or replaced; mutating
// through it is the mutable-access path.
func Get[T any](e *Entity) (*T, bool) {
	v, ok := e.components[componentKey[T]()]
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// Has reports whether the entity holds a component of exact type T.
func Has[T any](e *Entity) bool {
	_, ok := e.components[componentKey[T]()]
	return ok
}

// Remove detaches the component of type T and returns it by value. The
// second result is false when no such component was attached.
func Remove[T any](e *Entity) (T, bool) {
	key := componentKey[T]()
	v, ok := e.components[key]
	if !ok {
		var zero T
		return zero, false
	}
	delete(e.components, key)
	return *(v.(*T)), true
}
