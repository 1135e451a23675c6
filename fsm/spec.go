package fsm

import (
	"fmt"

	"github.com/milk9111/behavior-engine/entity"
	"github.com/milk9111/behavior-engine/prefabs"
)

// TuningFromSpec copies the numeric fields of a player prefab into a Tuning,
// keeping defaults for anything the spec leaves at zero.
func TuningFromSpec(spec *prefabs.PlayerSpec) *Tuning {
	t := DefaultTuning()
	if spec == nil {
		return t
	}
	if spec.MoveSpeed > 0 {
		t.WalkSpeed = spec.MoveSpeed
	}
	if spec.AirSpeed > 0 {
		t.AirSpeed = spec.AirSpeed
	}
	if spec.JumpVelocity > 0 {
		t.JumpVelocity = spec.JumpVelocity
	}
	if spec.Gravity != 0 {
		t.Gravity = spec.Gravity
	}
	if spec.AttackDuration > 0 {
		t.AttackDuration = spec.AttackDuration
	}
	if spec.CastDuration > 0 {
		t.CastDuration = spec.CastDuration
	}
	if spec.CastCost > 0 {
		t.CastCost = spec.CastCost
	}
	if spec.ManaRegen > 0 {
		t.ManaRegen = spec.ManaRegen
	}
	return t
}

// GraphFromSpec builds a transition graph from an FSM prefab spec.
func GraphFromSpec(spec prefabs.FSMSpec) (Graph, error) {
	if len(spec.Transitions) == 0 {
		return nil, fmt.Errorf("fsm: spec has no transitions")
	}
	initial := spec.Initial
	if initial == "" {
		initial = StateIdle
	}
	if _, ok := spec.Transitions[initial]; !ok {
		return nil, fmt.Errorf("fsm: initial state %q has no transition entry", initial)
	}
	g := make(Graph, len(spec.Transitions))
	for from, targets := range spec.Transitions {
		g[from] = append([]string(nil), targets...)
	}
	return g, nil
}

// NewMachineFromPrefab assembles a player entity and machine from the player
// prefab. The returned entity is owned by the machine.
func NewMachineFromPrefab() (*Machine, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	graph, err := GraphFromSpec(spec.FSM)
	if err != nil {
		return nil, err
	}
	tuning := TuningFromSpec(spec)
	ent := entity.New(entity.Config{
		Name:      spec.Name,
		MoveSpeed: tuning.WalkSpeed,
		MaxHealth: spec.MaxHealth,
		MaxMana:   spec.MaxMana,
	})
	return NewMachine(ent, NewCatalog(tuning), graph), nil
}
