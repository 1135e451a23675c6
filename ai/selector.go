package ai

import (
	"log"

	"github.com/milk9111/behavior-engine/entity"
)

// DefaultDecisionInterval is how often the selector re-ranks behaviors.
const DefaultDecisionInterval = 1.0

// Selector drives one AI entity. On a fixed cadence it evaluates every
// behavior in the catalog against the entity and activates the
// highest-priority applicable one; between decisions the active behavior
// executes every tick. The entity is exclusively owned by the selector.
type Selector struct {
	ent     *entity.Entity
	catalog *Catalog

	interval      float64
	sinceDecision float64

	active Behavior

	// probes are reused for Evaluate only; activation always constructs a
	// fresh instance so internal timers start at zero.
	probes map[string]Behavior
}

// NewSelector builds a selector starting in patrol.
func NewSelector(ent *entity.Entity, catalog *Catalog, interval float64) *Selector {
	if catalog == nil {
		catalog = NewCatalog(nil)
	}
	if interval <= 0 {
		interval = DefaultDecisionInterval
	}
	s := &Selector{
		ent:      ent,
		catalog:  catalog,
		interval: interval,
		probes:   map[string]Behavior{},
	}
	s.active = catalog.New(BehaviorPatrol)
	if s.active == nil {
		log.Printf("ai: catalog has no %q behavior", BehaviorPatrol)
	}
	return s
}

func (s *Selector) Entity() *entity.Entity { return s.ent }

// CurrentBehaviorName reports the active behavior's name for external
// systems.
func (s *Selector) CurrentBehaviorName() string {
	if s == nil || s.active == nil {
		return ""
	}
	return s.active.Name()
}

// SetTarget pushes a target position from the perception layer.
func (s *Selector) SetTarget(x, y float64) {
	if s == nil || s.ent == nil {
		return
	}
	s.ent.SetTarget(x, y)
}

// ClearTarget drops the current target.
func (s *Selector) ClearTarget() {
	if s == nil || s.ent == nil {
		return
	}
	s.ent.ClearTarget()
}

// Update advances the decision clock, re-ranks behaviors when the interval
// elapses, and runs one tick of the active behavior if it still applies.
func (s *Selector) Update(dt float64) {
	if s == nil || s.ent == nil {
		return
	}

	s.sinceDecision += dt
	if s.sinceDecision >= s.interval {
		s.sinceDecision = 0
		s.decide()
	}

	if s.active != nil && s.active.Evaluate(s.ent) {
		s.active.Execute(s.ent, dt)
	}
}

// decide picks the highest-priority applicable behavior and swaps to a fresh
// instance when it differs from the active one. An empty winner or a catalog
// miss means: stay in the current behavior.
func (s *Selector) decide() {
	winner := ""
	for _, name := range s.catalog.Names() {
		probe := s.probes[name]
		if probe == nil {
			probe = s.catalog.New(name)
			if probe == nil {
				continue
			}
			s.probes[name] = probe
		}
		if probe.Evaluate(s.ent) {
			winner = name
			break
		}
	}
	if winner == "" || (s.active != nil && s.active.Name() == winner) {
		return
	}

	next := s.catalog.New(winner)
	if next == nil {
		return
	}

	// Discard the old instance outright; AI behaviors carry no exit hooks.
	// Speed scaling applied by defend/berserk is transient, so the swap
	// restores the base move speed.
	s.ent.ResetMoveSpeed()
	s.active = next
}
