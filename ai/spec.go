package ai

import (
	"log"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/behavior-engine/entity"
	"github.com/milk9111/behavior-engine/prefabs"
)

// TuningFromSpec copies the numeric fields of an enemy prefab into a Tuning,
// keeping defaults for anything the spec leaves at zero.
func TuningFromSpec(spec *prefabs.EnemySpec) *Tuning {
	t := DefaultTuning()
	if spec == nil {
		return t
	}
	if spec.AttackCooldown > 0 {
		t.AttackCooldown = spec.AttackCooldown
	}
	if len(spec.Waypoints) > 0 {
		t.Waypoints = make([]cp.Vector, len(spec.Waypoints))
		for i, wp := range spec.Waypoints {
			t.Waypoints[i] = cp.Vector{X: wp.X, Y: wp.Y}
		}
	}
	return t
}

// NewSelectorFromPrefab assembles an AI entity and selector from the enemy
// prefab, registering any scripted behaviors it lists. A script that fails
// to load or compile is logged and skipped; the built-in set still works.
func NewSelectorFromPrefab(name string, x, y float64) (*Selector, error) {
	spec, err := prefabs.LoadEnemySpec()
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = spec.Name
	}

	tuning := TuningFromSpec(spec)
	catalog := NewCatalog(tuning)
	for _, sc := range spec.Scripts {
		src, err := prefabs.LoadScript(sc.File)
		if err != nil {
			log.Printf("ai: load script %s: %v", sc.File, err)
			continue
		}
		if err := catalog.RegisterScript(sc.Name, sc.Priority, src); err != nil {
			log.Printf("ai: register script %s: %v", sc.Name, err)
		}
	}

	ent := entity.New(entity.Config{
		Name:           name,
		X:              x,
		Y:              y,
		MoveSpeed:      spec.MoveSpeed,
		MaxHealth:      spec.MaxHealth,
		DetectionRange: spec.DetectionRange,
		AttackRange:    spec.AttackRange,
	})
	return NewSelector(ent, catalog, spec.DecisionInterval), nil
}
