package ai

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/behavior-engine/entity"
)

type patrolBehavior struct {
	t         *Tuning
	waypoints []cp.Vector
	index     int
}

func (patrolBehavior) Name() string { return BehaviorPatrol }

// Evaluate makes patrol the always-eligible fallback for a living entity.
func (b *patrolBehavior) Evaluate(e *entity.Entity) bool {
	return e.Alive()
}

func (b *patrolBehavior) Execute(e *entity.Entity, dt float64) {
	if len(b.waypoints) == 0 {
		return
	}
	wp := b.waypoints[b.index%len(b.waypoints)]
	moveTowards(e, wp, e.MoveSpeed(), dt)
	if wp.Distance(e.Position()) <= b.t.ArriveRadius {
		b.index++
	}
}

type chaseBehavior struct {
	t *Tuning
}

func (chaseBehavior) Name() string { return BehaviorChase }

func (b *chaseBehavior) Evaluate(e *entity.Entity) bool {
	return e.Alive() && e.HasTarget() && e.DistanceToTarget() > e.AttackRange()
}

func (b *chaseBehavior) Execute(e *entity.Entity, dt float64) {
	if !e.HasTarget() {
		return
	}
	moveTowards(e, e.Target(), e.MoveSpeed(), dt)
}

type attackBehavior struct {
	t        *Tuning
	owner    *Catalog
	cooldown float64
}

func (attackBehavior) Name() string { return BehaviorAttack }

func (b *attackBehavior) Evaluate(e *entity.Entity) bool {
	return e.Alive() && e.HasTarget() && e.DistanceToTarget() <= e.AttackRange()
}

// Execute waits out the cooldown between swings; the cooldown counter is
// per activation, reset by fresh construction.
func (b *attackBehavior) Execute(e *entity.Entity, dt float64) {
	b.cooldown += dt
	if b.cooldown >= b.t.AttackCooldown {
		b.owner.attack(e)
		b.cooldown = 0
	}
}

type fleeBehavior struct {
	t *Tuning
}

func (fleeBehavior) Name() string { return BehaviorFlee }

func (b *fleeBehavior) Evaluate(e *entity.Entity) bool {
	return e.Alive() && e.HealthRatio() < b.t.FleeThreshold
}

func (b *fleeBehavior) Execute(e *entity.Entity, dt float64) {
	if !e.HasTarget() {
		return
	}
	moveAway(e, e.Target(), e.MoveSpeed()*b.t.FleeSpeedScale, dt)
}

type defendBehavior struct {
	t       *Tuning
	elapsed float64
}

func (defendBehavior) Name() string { return BehaviorDefend }

func (b *defendBehavior) Evaluate(e *entity.Entity) bool {
	ratio := e.HealthRatio()
	return e.Alive() && ratio >= b.t.DefendLow && ratio <= b.t.DefendHigh
}

// Execute holds position at reduced speed. The speed scale is recomputed
// from the entity's base speed each tick so sustained defending never
// compounds into a standstill.
func (b *defendBehavior) Execute(e *entity.Entity, dt float64) {
	e.ScaleMoveSpeed(b.t.DefendSpeedScale)
	b.elapsed += dt
	if b.elapsed >= b.t.DefendDuration {
		b.elapsed = 0
	}
}

type berserkBehavior struct {
	t     *Tuning
	owner *Catalog
}

func (berserkBehavior) Name() string { return BehaviorBerserk }

func (b *berserkBehavior) Evaluate(e *entity.Entity) bool {
	return e.Alive() && e.HealthRatio() < b.t.BerserkThreshold
}

// Execute rushes the target at boosted speed and swings without cooldown
// whenever the target is in range.
func (b *berserkBehavior) Execute(e *entity.Entity, dt float64) {
	e.ScaleMoveSpeed(b.t.BerserkSpeedScale)
	if !e.HasTarget() {
		return
	}
	moveTowards(e, e.Target(), e.MoveSpeed(), dt)
	if dist := e.DistanceToTarget(); dist >= 0 && dist <= e.AttackRange() {
		b.owner.attack(e)
	}
}
