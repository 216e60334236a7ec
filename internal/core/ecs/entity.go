package ecs

import "reflect"

// EntityID uniquely identifies an entity within one Scene. IDs are assigned
// monotonically and never reused for the lifetime of the Scene, so a stale ID
// held after DestroyEntity can only miss, never alias a newer entity.
type EntityID uint64

// Entity is a named bag of components. Entities are created and owned by a
// Scene; application code addresses them by EntityID and mutates them through
// the pointer returned by Scene.Entity.
type Entity struct {
	id         EntityID
	name       string
	active     bool
	components map[reflect.Type]any
}

func newEntity(id EntityID, name string) *Entity {
	return &Entity{
		id:         id,
		name:       name,
		active:     true,
		components: make(map[reflect.Type]any),
	}
}

// ID returns the identifier assigned at creation. It never changes.
func (e *Entity) ID() EntityID {
	return e.id
}

// Name returns the display name. Names are not unique.
func (e *Entity) Name() string {
	return e.name
}

// SetName replaces the display name.
func (e *Entity) SetName(name string) {
	e.name = name
}

// Active reports whether the entity participates in ActiveEntities queries.
func (e *Entity) Active() bool {
	return e.active
}

// SetActive toggles soft visibility. A deactivated entity keeps its ID and
// components and can be reactivated at any time; this is independent of hard
// removal via Scene.DestroyEntity.
func (e *Entity) SetActive(active bool) {
	e.active = active
}

// ComponentCount returns the number of attached components.
func (e *Entity) ComponentCount() int {
	return len(e.components)
}
