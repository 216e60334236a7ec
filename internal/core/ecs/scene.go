// Package ecs implements the engine's entity/component store: a Scene owning
// named entities, each holding at most one component per concrete Go type.
// The layout is a per-entity type-keyed map rather than an archetype table; it
// trades iteration throughput for open extensibility, since any user-defined
// type is a component without registration.
package ecs

import (
	"iter"
	"slices"

	"github.com/lumen-engine/lumen/internal/core/observability/log"
)

// Scene owns every entity of one application instance. All methods are meant
// to be called from the single frame thread; Scene performs no locking.
type Scene struct {
	name     string
	logger   *log.Logger
	entities map[EntityID]*Entity
	order    []EntityID
	nextID   EntityID
}

// NewScene creates an empty scene. A nil logger is replaced with a no-op one.
func NewScene(name string, logger *log.Logger) *Scene {
	if logger == nil {
		logger = log.Nop()
	}
	logger.Info("scene created", log.String("scene", name))
	return &Scene{
		name:     name,
		logger:   logger,
		entities: make(map[EntityID]*Entity),
	}
}

// Name returns the scene name.
func (s *Scene) Name() string {
	return s.name
}

// CreateEntity allocates the next identifier and stores a new active entity
// with no components. It never fails.
func (s *Scene) CreateEntity(name string) EntityID {
	id := s.nextID
	s.nextID++

	s.entities[id] = newEntity(id, name)
	s.order = append(s.order, id)

	s.logger.Debug("entity created",
		log.String("scene", s.name),
		log.Uint64("entity_id", uint64(id)),
		log.String("name", name),
	)
	return id
}

// Entity returns the entity with the given ID, or (nil, false) when the ID is
// unknown or the entity has been destroyed. The returned pointer is the
// mutable view; it stays valid until DestroyEntity or Clear.
func (s *Scene) Entity(id EntityID) (*Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}

// DestroyEntity removes the entity entirely and reports whether it existed.
// The identifier is retired: it is never assigned again by this scene, so
// copies of the ID held elsewhere go permanently stale instead of aliasing a
// future entity.
func (s *Scene) DestroyEntity(id EntityID) bool {
	if _, ok := s.entities[id]; !ok {
		return false
	}
	delete(s.entities, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	s.logger.Debug("entity destroyed",
		log.String("scene", s.name),
		log.Uint64("entity_id", uint64(id)),
	)
	return true
}

// Len returns the number of stored entities, active or not.
func (s *Scene) Len() int {
	return len(s.entities)
}

// All iterates every stored entity in creation order. The sequence is lazy
// and restartable; it walks a snapshot of the current entity list, so
// structural mutation during a walk does not invalidate it but is also not
// reflected by it.
func (s *Scene) All() iter.Seq[*Entity] {
	snapshot := slices.Clone(s.order)
	return func(yield func(*Entity) bool) {
		for _, id := range snapshot {
			e, ok := s.entities[id]
			if !ok {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// ActiveEntities iterates, in creation order, every entity currently marked
// active. Same snapshot semantics as All.
func (s *Scene) ActiveEntities() iter.Seq[*Entity] {
	snapshot := slices.Clone(s.order)
	return func(yield func(*Entity) bool) {
		for _, id := range snapshot {
			e, ok := s.entities[id]
			if !ok || !e.active {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// FindWith returns the IDs of every stored entity holding a component of
// exact type T, in creation order.
func FindWith[T any](s *Scene) []EntityID {
	var ids []EntityID
	for e := range s.All() {
		if Has[T](e) {
			ids = append(ids, e.id)
		}
	}
	return ids
}

// Clear removes every entity. The ID counter is deliberately not reset:
// identifiers stay unique across the whole scene lifetime, including through
// a Clear.
func (s *Scene) Clear() {
	s.entities = make(map[EntityID]*Entity)
	s.order = s.order[:0]
	s.logger.Info("scene cleared", log.String("scene", s.name))
}
