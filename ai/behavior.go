package ai

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/behavior-engine/entity"
)

// Behavior names known to the default catalog.
const (
	BehaviorPatrol  = "patrol"
	BehaviorChase   = "chase"
	BehaviorAttack  = "attack"
	BehaviorFlee    = "flee"
	BehaviorDefend  = "defend"
	BehaviorBerserk = "berserk"
)

// Behavior is one swappable unit of AI conduct. Evaluate reports whether the
// behavior is applicable to the entity's current condition; Execute runs one
// tick of it. Behaviors with internal timers are constructed fresh by the
// Catalog on every activation.
type Behavior interface {
	Name() string
	Evaluate(e *entity.Entity) bool
	Execute(e *entity.Entity, dt float64)
}

// moveDeadZone stops movement inside this distance to avoid oscillating
// around the target point.
const moveDeadZone = 1.0

func moveTowards(e *entity.Entity, target cp.Vector, speed, dt float64) {
	delta := target.Sub(e.Position())
	dist := delta.Length()
	if dist <= moveDeadZone {
		return
	}
	step := delta.Mult(speed * dt / dist)
	e.Move(step.X, step.Y)
}

func moveAway(e *entity.Entity, from cp.Vector, speed, dt float64) {
	delta := e.Position().Sub(from)
	dist := delta.Length()
	if dist == 0 {
		return
	}
	step := delta.Mult(speed * dt / dist)
	e.Move(step.X, step.Y)
}
