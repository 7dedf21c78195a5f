package ecs

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-cupcake/internal/core"
)

// ErrUnknownSprite is returned when activating an animation that was never registered.
var ErrUnknownSprite = errors.New("ecs: unknown sprite")

// Kind identifies a component type. Every entity has one slot per kind.
type Kind int

const (
	KindGraphics Kind = iota
	KindMovement
	KindGravity
	KindCollision
	KindPlayer
	KindConsumable
	KindAnimation
	kindCount
)

// String returns the component identifier.
func (k Kind) String() string {
	switch k {
	case KindGraphics:
		return "graphics"
	case KindMovement:
		return "movement"
	case KindGravity:
		return "gravity"
	case KindCollision:
		return "collision"
	case KindPlayer:
		return "player"
	case KindConsumable:
		return "consumable"
	case KindAnimation:
		return "animation"
	default:
		return "unknown"
	}
}

// Component is a plain-data record attached to an entity.
type Component interface {
	Kind() Kind
}

// Graphics positions an entity in the 2D world.
type Graphics struct {
	Position core.Vector2
	Width    float64
	Height   float64
	ImageID  string // Empty when the entity has no visual asset
}

func (*Graphics) Kind() Kind { return KindGraphics }

// SetDimensions sets width and height.
func (g *Graphics) SetDimensions(width, height float64) {
	g.Width = width
	g.Height = height
}

// Scale multiplies width and height by factor.
func (g *Graphics) Scale(factor float64) {
	g.Width *= factor
	g.Height *= factor
}

// Movement carries a velocity in pixels per tick.
type Movement struct {
	Velocity core.Vector2
}

func (*Movement) Kind() Kind { return KindMovement }

// Reset stops the entity.
func (m *Movement) Reset() {
	m.Velocity = core.Vector2{}
}

// Gravity makes an entity fall by Weight pixels per tick while enabled.
type Gravity struct {
	Weight  float64
	Enabled bool
}

func (*Gravity) Kind() Kind { return KindGravity }

// NewGravity creates an enabled gravity component.
func NewGravity(weight float64) *Gravity {
	return &Gravity{Weight: weight, Enabled: true}
}

// Toggle flips the enabled flag.
func (g *Gravity) Toggle() {
	g.Enabled = !g.Enabled
}

// EffectiveWeight returns Weight when enabled, otherwise 0.
func (g *Gravity) EffectiveWeight() float64 {
	if g.Enabled {
		return g.Weight
	}
	return 0
}

// Layer tags a collision component. Informational only.
type Layer int

const (
	LayerBackground Layer = iota
	LayerFood
	LayerMain
	LayerForeground
)

// Collision owns a collider and the list of entities it collided with this tick.
type Collision struct {
	Collider *core.Collider
	Layer    Layer

	colliding []*Entity
	ignore    bool
}

func (*Collision) Kind() Kind { return KindCollision }

// NewCollision creates a collision component around the given collider.
func NewCollision(collider *core.Collider, layer Layer) *Collision {
	return &Collision{Collider: collider, Layer: layer}
}

// Colliding returns a snapshot of the entities collided with this tick.
func (c *Collision) Colliding() []*Entity {
	out := make([]*Entity, len(c.colliding))
	copy(out, c.colliding)
	return out
}

// AddCollision records a collision with e. Repeated records of the same
// entity within a tick are kept once.
func (c *Collision) AddCollision(e *Entity) {
	for _, known := range c.colliding {
		if known == e {
			return
		}
	}
	c.colliding = append(c.colliding, e)
}

// ResetCollisions forgets all recorded collisions.
func (c *Collision) ResetCollisions() {
	c.colliding = c.colliding[:0]
}

// CollidesWith reports whether e was recorded this tick.
func (c *Collision) CollidesWith(e *Entity) bool {
	for _, known := range c.colliding {
		if known == e {
			return true
		}
	}
	return false
}

// CollidesWithType reports whether any recorded entity has type t.
func (c *Collision) CollidesWithType(t Type) bool {
	for _, known := range c.colliding {
		if known.Type() == t {
			return true
		}
	}
	return false
}

// Disable turns off collision detection without removing the component.
func (c *Collision) Disable() { c.ignore = true }

// Enable turns collision detection back on.
func (c *Collision) Enable() { c.ignore = false }

// Ignored reports whether collision detection is disabled.
func (c *Collision) Ignored() bool { return c.ignore }

// MovementState is the player's movement state machine.
type MovementState int

const (
	StateFalling MovementState = iota
	StateJumping
	StateGrounded
)

// String returns the state name.
func (s MovementState) String() string {
	switch s {
	case StateFalling:
		return "falling"
	case StateJumping:
		return "jumping"
	case StateGrounded:
		return "grounded"
	default:
		return "unknown"
	}
}

// PlayerControlled marks the entity steered by input.
type PlayerControlled struct {
	JumpHeight float64
	State      MovementState

	// JumpRemaining counts down the active jump; the jump ends when it reaches zero.
	JumpRemaining time.Duration
	// WalkFrame is the position in the walking animation cycle.
	WalkFrame int
}

func (*PlayerControlled) Kind() Kind { return KindPlayer }

// NewPlayerControlled creates a player component in the Falling state.
func NewPlayerControlled(jumpHeight float64) *PlayerControlled {
	return &PlayerControlled{JumpHeight: jumpHeight, State: StateFalling}
}

func (p *PlayerControlled) IsGrounded() bool { return p.State == StateGrounded }
func (p *PlayerControlled) IsJumping() bool  { return p.State == StateJumping }
func (p *PlayerControlled) IsFalling() bool  { return p.State == StateFalling }

// StartJump enters Jumping for the given duration.
func (p *PlayerControlled) StartJump(d time.Duration) {
	p.State = StateJumping
	p.JumpRemaining = d
}

// SetFalling enters Falling and cancels any jump countdown.
func (p *PlayerControlled) SetFalling() {
	p.State = StateFalling
	p.JumpRemaining = 0
}

// SetGrounded enters Grounded and cancels any jump countdown.
func (p *PlayerControlled) SetGrounded() {
	p.State = StateGrounded
	p.JumpRemaining = 0
}

// Consumable adds Value to the score when picked up.
type Consumable struct {
	Value int
}

func (*Consumable) Kind() Kind { return KindConsumable }

// SpriteSet maps an animation name to an image id.
type SpriteSet struct {
	Name    string
	ImageID string
}

// AnimatedSprite selects one of several images.
type AnimatedSprite struct {
	sprites map[string]string
	active  string
}

func (*AnimatedSprite) Kind() Kind { return KindAnimation }

// NewAnimatedSprite creates the component; the first set becomes active.
func NewAnimatedSprite(sets ...SpriteSet) *AnimatedSprite {
	a := &AnimatedSprite{sprites: make(map[string]string, len(sets))}
	for _, s := range sets {
		a.sprites[s.Name] = s.ImageID
	}
	if len(sets) > 0 {
		a.active = sets[0].Name
	}
	return a
}

// Active returns the active animation name.
func (a *AnimatedSprite) Active() string {
	return a.active
}

// ActiveImageID returns the image id of the active animation.
func (a *AnimatedSprite) ActiveImageID() string {
	return a.sprites[a.active]
}

// Activate switches the active animation. Unknown names leave the
// component unchanged and return ErrUnknownSprite.
func (a *AnimatedSprite) Activate(name string) error {
	if _, ok := a.sprites[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSprite, name)
	}
	a.active = name
	return nil
}
