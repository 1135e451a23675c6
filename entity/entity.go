package entity

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/behavior-engine/common"
)

// Entity is the mutable attribute record for a single game actor. It holds
// no behavior logic of its own; the owning controller (fsm.Machine or
// ai.Selector) decides how it changes over time. Health and mana are clamped
// to [0, max] on every mutation.
type Entity struct {
	name string

	position  cp.Vector
	velocityY float64

	moveSpeed     float64
	baseMoveSpeed float64

	health    float64
	maxHealth float64
	mana      float64
	maxMana   float64

	grounded bool

	target    cp.Vector
	hasTarget bool

	detectionRange float64
	attackRange    float64
}

// Config carries initial attribute values. Zero maxima are bumped to 1 so a
// misconfigured entity can never divide by zero in health-ratio predicates.
type Config struct {
	Name           string
	X, Y           float64
	MoveSpeed      float64
	MaxHealth      float64
	MaxMana        float64
	DetectionRange float64
	AttackRange    float64
}

func New(cfg Config) *Entity {
	if cfg.MaxHealth <= 0 {
		cfg.MaxHealth = 1
	}
	if cfg.MaxMana < 0 {
		cfg.MaxMana = 0
	}
	return &Entity{
		name:           cfg.Name,
		position:       cp.Vector{X: cfg.X, Y: cfg.Y},
		moveSpeed:      cfg.MoveSpeed,
		baseMoveSpeed:  cfg.MoveSpeed,
		health:         cfg.MaxHealth,
		maxHealth:      cfg.MaxHealth,
		mana:           cfg.MaxMana,
		maxMana:        cfg.MaxMana,
		grounded:       true,
		detectionRange: cfg.DetectionRange,
		attackRange:    cfg.AttackRange,
	}
}

func (e *Entity) Name() string { return e.name }

func (e *Entity) Position() cp.Vector { return e.position }

func (e *Entity) X() float64 { return e.position.X }

func (e *Entity) Y() float64 { return e.position.Y }

func (e *Entity) VelocityY() float64 { return e.velocityY }

func (e *Entity) MoveSpeed() float64 { return e.moveSpeed }

func (e *Entity) BaseMoveSpeed() float64 { return e.baseMoveSpeed }

func (e *Entity) Health() float64 { return e.health }

func (e *Entity) MaxHealth() float64 { return e.maxHealth }

func (e *Entity) Mana() float64 { return e.mana }

func (e *Entity) MaxMana() float64 { return e.maxMana }

func (e *Entity) Grounded() bool { return e.grounded }

func (e *Entity) HasTarget() bool { return e.hasTarget }

func (e *Entity) DetectionRange() float64 { return e.detectionRange }

func (e *Entity) AttackRange() float64 { return e.attackRange }

// Target returns the current target position. Only meaningful when
// HasTarget reports true.
func (e *Entity) Target() cp.Vector { return e.target }

// HealthRatio reports health as a fraction of max, used by the AI
// applicability predicates.
func (e *Entity) HealthRatio() float64 {
	return e.health / e.maxHealth
}

func (e *Entity) Alive() bool { return e.health > 0 }

// DistanceToTarget returns the straight-line distance to the target, or -1
// when no target is set.
func (e *Entity) DistanceToTarget() float64 {
	if !e.hasTarget {
		return -1
	}
	return e.target.Distance(e.position)
}

func (e *Entity) SetPosition(x, y float64) {
	e.position = cp.Vector{X: x, Y: y}
}

// Move offsets the position by (dx, dy).
func (e *Entity) Move(dx, dy float64) {
	e.position = e.position.Add(cp.Vector{X: dx, Y: dy})
}

func (e *Entity) SetVelocityY(v float64) { e.velocityY = v }

func (e *Entity) SetGrounded(grounded bool) { e.grounded = grounded }

func (e *Entity) SetMoveSpeed(speed float64) { e.moveSpeed = speed }

// ScaleMoveSpeed sets the move speed to factor times the base speed. It is
// recomputed from the base each call, so repeated scaling never compounds
// across ticks.
func (e *Entity) ScaleMoveSpeed(factor float64) {
	e.moveSpeed = e.baseMoveSpeed * factor
}

// ResetMoveSpeed restores the base move speed.
func (e *Entity) ResetMoveSpeed() { e.moveSpeed = e.baseMoveSpeed }

func (e *Entity) TakeDamage(amount float64) {
	if amount < 0 {
		amount = 0
	}
	e.health = common.Clamp(e.health-amount, 0, e.maxHealth)
}

func (e *Entity) Heal(amount float64) {
	if amount < 0 {
		amount = 0
	}
	e.health = common.Clamp(e.health+amount, 0, e.maxHealth)
}

// SpendMana deducts cost and reports whether the entity could afford it.
// Mana never goes negative; an unaffordable spend deducts nothing.
func (e *Entity) SpendMana(cost float64) bool {
	if cost < 0 {
		return false
	}
	if e.mana < cost {
		return false
	}
	e.mana = common.Clamp(e.mana-cost, 0, e.maxMana)
	return true
}

func (e *Entity) RestoreMana(amount float64) {
	if amount < 0 {
		amount = 0
	}
	e.mana = common.Clamp(e.mana+amount, 0, e.maxMana)
}

func (e *Entity) SetTarget(x, y float64) {
	e.target = cp.Vector{X: x, Y: y}
	e.hasTarget = true
}

func (e *Entity) ClearTarget() { e.hasTarget = false }
