package ecs

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateEntity is returned when adding an entity that is already live.
	ErrDuplicateEntity = errors.New("ecs: entity already registered")
	// ErrRetiredEntity is returned when re-adding an entity that was removed.
	ErrRetiredEntity = errors.New("ecs: entity was removed and cannot be re-added")
)

// Registry owns the live entities in insertion order.
//
// All mutations are immediate: a query issued after Remove in the same tick
// no longer sees the entity. Queries return snapshots, so callers may remove
// entities while ranging over a query result. Not safe for concurrent use;
// the runtime is single-threaded.
type Registry struct {
	entities []*Entity
	live     map[ID]*Entity
	retired  map[ID]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		live:    make(map[ID]*Entity),
		retired: make(map[ID]struct{}),
	}
}

// Add registers an entity.
func (r *Registry) Add(e *Entity) error {
	if e == nil {
		return errors.New("ecs: nil entity")
	}
	if _, ok := r.live[e.id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateEntity, e)
	}
	if _, ok := r.retired[e.id]; ok {
		return fmt.Errorf("%w: %s", ErrRetiredEntity, e)
	}
	r.entities = append(r.entities, e)
	r.live[e.id] = e
	return nil
}

// All returns a snapshot of the live entities in insertion order.
func (r *Registry) All() []*Entity {
	out := make([]*Entity, len(r.entities))
	copy(out, r.entities)
	return out
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return len(r.entities)
}

// Get returns the live entity with the given id.
func (r *Registry) Get(id ID) (*Entity, bool) {
	e, ok := r.live[id]
	return e, ok
}

// Contains reports whether the id is live.
func (r *Registry) Contains(id ID) bool {
	_, ok := r.live[id]
	return ok
}

// Remove drops the entity with the given id. Unknown ids are ignored.
func (r *Registry) Remove(id ID) {
	if _, ok := r.live[id]; !ok {
		return
	}
	r.retain(func(e *Entity) bool { return e.id != id })
}

// RemoveAllExcept drops every entity whose id is not listed.
func (r *Registry) RemoveAllExcept(ids ...ID) {
	keep := make(map[ID]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}
	r.retain(func(e *Entity) bool {
		_, ok := keep[e.id]
		return ok
	})
}

// Clear drops every entity.
func (r *Registry) Clear() {
	r.retain(func(*Entity) bool { return false })
}

// Filter returns a snapshot of the entities matching pred.
func (r *Registry) Filter(pred func(*Entity) bool) []*Entity {
	var out []*Entity
	for _, e := range r.entities {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// With returns a snapshot of the entities that have all given kinds.
func (r *Registry) With(kinds ...Kind) []*Entity {
	return r.Filter(func(e *Entity) bool { return e.Has(kinds...) })
}

// OfType returns a snapshot of the entities of type t.
func (r *Registry) OfType(t Type) []*Entity {
	return r.Filter(func(e *Entity) bool { return e.typ == t })
}

// CollisionEnabled returns a snapshot of the entities taking part in collision detection.
func (r *Registry) CollisionEnabled() []*Entity {
	return r.Filter((*Entity).CollisionEnabled)
}

func (r *Registry) retain(keep func(*Entity) bool) {
	kept := r.entities[:0:0]
	for _, e := range r.entities {
		if keep(e) {
			kept = append(kept, e)
			continue
		}
		delete(r.live, e.id)
		r.retired[e.id] = struct{}{}
	}
	r.entities = kept
}
