// Package ecs provides the entity/component data model: entities with one
// optional slot per component kind, and the registry that owns live entities.
package ecs

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrComponentAttached is returned when a component kind is attached twice.
	ErrComponentAttached = errors.New("ecs: component kind already attached")
	// ErrNilComponent is returned when attaching a nil component.
	ErrNilComponent = errors.New("ecs: nil component")
)

// ID is an opaque, never reused entity identity.
type ID uuid.UUID

// NilID is the zero identity; no entity carries it.
var NilID ID

// NewID returns a fresh random identity.
func NewID() ID {
	return ID(uuid.New())
}

// String returns the canonical textual form.
func (id ID) String() string {
	return uuid.UUID(id).String()
}

// Type is the enumerated category of an entity.
type Type int

const (
	TypeGeneric Type = iota
	TypePlayer
	TypeFood
	TypeTile
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeGeneric:
		return "Generic"
	case TypePlayer:
		return "Player"
	case TypeFood:
		return "Food"
	case TypeTile:
		return "Tile"
	default:
		return "Unknown"
	}
}

// Entity is an identity plus at most one component per kind.
type Entity struct {
	id    ID
	typ   Type
	slots [kindCount]Component
}

// NewEntity creates an entity of the given type with a fresh identity.
func NewEntity(t Type) *Entity {
	return &Entity{id: NewID(), typ: t}
}

// ID returns the entity identity.
func (e *Entity) ID() ID {
	return e.id
}

// Type returns the entity category.
func (e *Entity) Type() Type {
	return e.typ
}

// String describes the entity, e.g. "Tile(3f2a...)".
func (e *Entity) String() string {
	return fmt.Sprintf("%s(%s)", e.typ, e.id.String()[:8])
}

// Attach adds a component. A kind may be attached only once.
func (e *Entity) Attach(c Component) error {
	if c == nil {
		return ErrNilComponent
	}
	k := c.Kind()
	if e.slots[k] != nil {
		return fmt.Errorf("%w: %s on %s", ErrComponentAttached, k, e)
	}
	e.slots[k] = c
	return nil
}

// With attaches a component and returns the entity for chaining.
// It panics if the kind is already attached; factories use it for bundles
// whose kinds are fixed at compile time.
func (e *Entity) With(c Component) *Entity {
	if err := e.Attach(c); err != nil {
		panic(err)
	}
	return e
}

// Detach removes the component of the given kind, if present.
func (e *Entity) Detach(k Kind) {
	e.slots[k] = nil
}

// Has reports whether all given kinds are attached.
func (e *Entity) Has(kinds ...Kind) bool {
	for _, k := range kinds {
		if e.slots[k] == nil {
			return false
		}
	}
	return true
}

// Component returns the component of the given kind, if attached.
func (e *Entity) Component(k Kind) (Component, bool) {
	c := e.slots[k]
	return c, c != nil
}

// Graphics returns the Graphics component. Panics if absent.
func (e *Entity) Graphics() *Graphics { return must[*Graphics](e, KindGraphics) }

// Movement returns the Movement component. Panics if absent.
func (e *Entity) Movement() *Movement { return must[*Movement](e, KindMovement) }

// Gravity returns the Gravity component. Panics if absent.
func (e *Entity) Gravity() *Gravity { return must[*Gravity](e, KindGravity) }

// Collision returns the Collision component. Panics if absent.
func (e *Entity) Collision() *Collision { return must[*Collision](e, KindCollision) }

// Player returns the PlayerControlled component. Panics if absent.
func (e *Entity) Player() *PlayerControlled { return must[*PlayerControlled](e, KindPlayer) }

// Consumable returns the Consumable component. Panics if absent.
func (e *Entity) Consumable() *Consumable { return must[*Consumable](e, KindConsumable) }

// Animation returns the AnimatedSprite component. Panics if absent.
func (e *Entity) Animation() *AnimatedSprite { return must[*AnimatedSprite](e, KindAnimation) }

// CollisionEnabled reports whether the entity has a Collision component that
// is not ignoring collisions.
func (e *Entity) CollisionEnabled() bool {
	c, ok := e.slots[KindCollision].(*Collision)
	return ok && !c.Ignored()
}

// must is the contract assertion behind the typed accessors: querying a kind
// the entity was not built with is a programmer error.
func must[T Component](e *Entity, k Kind) T {
	c, ok := e.slots[k].(T)
	if !ok {
		panic(fmt.Sprintf("ecs: %s has no %s component", e, k))
	}
	return c
}
