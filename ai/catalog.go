package ai

import (
	"sort"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/behavior-engine/entity"
)

// Tuning holds the numeric constants shared by the built-in behaviors.
type Tuning struct {
	AttackCooldown    float64
	DefendDuration    float64
	DefendSpeedScale  float64
	BerserkSpeedScale float64
	FleeSpeedScale    float64
	FleeThreshold     float64
	DefendLow         float64
	DefendHigh        float64
	BerserkThreshold  float64
	ArriveRadius      float64
	Waypoints         []cp.Vector
}

// DefaultTuning mirrors the original balance numbers, including the default
// rectangular patrol route.
func DefaultTuning() *Tuning {
	return &Tuning{
		AttackCooldown:    1.0,
		DefendDuration:    2.0,
		DefendSpeedScale:  0.5,
		BerserkSpeedScale: 1.5,
		FleeSpeedScale:    1.5,
		FleeThreshold:     0.3,
		DefendLow:         0.3,
		DefendHigh:        0.6,
		BerserkThreshold:  0.2,
		ArriveRadius:      5,
		Waypoints: []cp.Vector{
			{X: 0, Y: 0},
			{X: 100, Y: 0},
			{X: 100, Y: 100},
			{X: 0, Y: 100},
		},
	}
}

// Built-in priority ranks. Survival behaviors outrank combat behaviors,
// which outrank movement behaviors; thresholds overlap (below 20% health
// both flee and berserk apply) so the ordering is load-bearing.
const (
	priorityFlee    = 60
	priorityBerserk = 50
	priorityAttack  = 40
	priorityDefend  = 30
	priorityChase   = 20
	priorityPatrol  = 10
)

type catalogEntry struct {
	name     string
	priority int
	ctor     func() Behavior
}

// Catalog constructs fresh Behavior instances by name and keeps the total
// priority order the Selector arbitrates with. Fresh construction per
// activation resets internal cooldown/duration timers.
type Catalog struct {
	tuning     *Tuning
	entries    map[string]*catalogEntry
	attackFunc func(e *entity.Entity)
}

// NewCatalog returns a catalog over the six built-in behaviors.
func NewCatalog(tuning *Tuning) *Catalog {
	if tuning == nil {
		tuning = DefaultTuning()
	}
	c := &Catalog{
		tuning:  tuning,
		entries: map[string]*catalogEntry{},
	}
	c.Register(BehaviorFlee, priorityFlee, func() Behavior { return &fleeBehavior{t: tuning} })
	c.Register(BehaviorBerserk, priorityBerserk, func() Behavior { return &berserkBehavior{t: tuning, owner: c} })
	c.Register(BehaviorAttack, priorityAttack, func() Behavior { return &attackBehavior{t: tuning, owner: c} })
	c.Register(BehaviorDefend, priorityDefend, func() Behavior { return &defendBehavior{t: tuning} })
	c.Register(BehaviorChase, priorityChase, func() Behavior { return &chaseBehavior{t: tuning} })
	c.Register(BehaviorPatrol, priorityPatrol, func() Behavior { return &patrolBehavior{t: tuning, waypoints: tuning.Waypoints} })
	return c
}

func (c *Catalog) Tuning() *Tuning { return c.tuning }

// SetAttackFunc installs the combat-layer hook invoked when attack or
// berserk swing. Damage application stays outside the engine.
func (c *Catalog) SetAttackFunc(fn func(e *entity.Entity)) {
	if c == nil {
		return
	}
	c.attackFunc = fn
}

func (c *Catalog) attack(e *entity.Entity) {
	if c == nil || c.attackFunc == nil {
		return
	}
	c.attackFunc(e)
}

// Register adds or replaces a behavior constructor under name with the given
// priority rank (higher wins).
func (c *Catalog) Register(name string, priority int, ctor func() Behavior) {
	if c == nil || name == "" || ctor == nil {
		return
	}
	c.entries[name] = &catalogEntry{name: name, priority: priority, ctor: ctor}
}

// New constructs a fresh behavior for name, or nil when the name is unknown.
// Callers may probe speculatively; an unknown name is not an error.
func (c *Catalog) New(name string) Behavior {
	if c == nil {
		return nil
	}
	entry, ok := c.entries[name]
	if !ok {
		return nil
	}
	return entry.ctor()
}

// Names returns every registered name in descending priority order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	entries := make([]*catalogEntry, 0, len(c.entries))
	for _, e := range c.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].name < entries[j].name
	})
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}
