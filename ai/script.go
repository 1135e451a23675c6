package ai

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/behavior-engine/entity"
)

// Scripted behaviors let an AI set grow without recompiling: a tengo script
// defines evaluate(engine, state) -> bool and execute(engine, state, dt),
// where engine exposes entity accessors and movement/attack effects, and
// state is a script-owned map that lives as long as the activation. The
// dispatch suffix below routes phases to those functions.
const scriptDispatch = `
if __phase == "evaluate" {
	__ok = evaluate(__engine, __state)
} else if __phase == "execute" {
	execute(__engine, __state, __dt)
}
`

type scriptProgram struct {
	name     string
	compiled *tengo.Compiled
}

// compileScript builds the shared program; instances clone it so script
// state never leaks between activations.
func compileScript(name string, src []byte) (*scriptProgram, error) {
	script := tengo.NewScript(append(append([]byte{}, src...), []byte("\n"+scriptDispatch)...))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__dt", 0.0)
	_ = script.Add("__ok", false)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("ai: compile script %s: %w", name, err)
	}
	return &scriptProgram{name: name, compiled: compiled}, nil
}

func (p *scriptProgram) newInstance(owner *Catalog) *scriptedBehavior {
	return &scriptedBehavior{
		name:     p.name,
		owner:    owner,
		compiled: p.compiled.Clone(),
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}
}

type scriptedBehavior struct {
	name     string
	owner    *Catalog
	compiled *tengo.Compiled
	state    *tengo.Map
}

func (b *scriptedBehavior) Name() string { return b.name }

func (b *scriptedBehavior) Evaluate(e *entity.Entity) bool {
	if err := b.run("evaluate", e, 0); err != nil {
		log.Printf("ai: script %s evaluate error: %v", b.name, err)
		return false
	}
	return b.compiled.Get("__ok").Bool()
}

func (b *scriptedBehavior) Execute(e *entity.Entity, dt float64) {
	if err := b.run("execute", e, dt); err != nil {
		log.Printf("ai: script %s execute error: %v", b.name, err)
	}
}

func (b *scriptedBehavior) run(phase string, e *entity.Entity, dt float64) error {
	if b == nil || b.compiled == nil {
		return fmt.Errorf("nil script behavior")
	}
	if err := b.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := b.compiled.Set("__engine", buildScriptEngine(b.owner, e)); err != nil {
		return err
	}
	if err := b.compiled.Set("__state", b.state); err != nil {
		return err
	}
	if err := b.compiled.Set("__dt", dt); err != nil {
		return err
	}
	if err := b.compiled.Set("__ok", false); err != nil {
		return err
	}
	return b.compiled.Run()
}

func buildScriptEngine(owner *Catalog, e *entity.Entity) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["alive"] = &tengo.UserFunction{Name: "alive", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return boolObject(e != nil && e.Alive()), nil
	}}

	values["health_ratio"] = &tengo.UserFunction{Name: "health_ratio", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if e == nil {
			return &tengo.Float{Value: 0}, nil
		}
		return &tengo.Float{Value: e.HealthRatio()}, nil
	}}

	values["has_target"] = &tengo.UserFunction{Name: "has_target", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return boolObject(e != nil && e.HasTarget()), nil
	}}

	values["distance_to_target"] = &tengo.UserFunction{Name: "distance_to_target", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if e == nil {
			return &tengo.Float{Value: -1}, nil
		}
		return &tengo.Float{Value: e.DistanceToTarget()}, nil
	}}

	values["attack_range"] = &tengo.UserFunction{Name: "attack_range", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if e == nil {
			return &tengo.Float{Value: 0}, nil
		}
		return &tengo.Float{Value: e.AttackRange()}, nil
	}}

	values["move_speed"] = &tengo.UserFunction{Name: "move_speed", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if e == nil {
			return &tengo.Float{Value: 0}, nil
		}
		return &tengo.Float{Value: e.MoveSpeed()}, nil
	}}

	values["get_position"] = &tengo.UserFunction{Name: "get_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if e == nil {
			return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: 0}, &tengo.Float{Value: 0}}}, nil
		}
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: e.X()}, &tengo.Float{Value: e.Y()}}}, nil
	}}

	values["get_target"] = &tengo.UserFunction{Name: "get_target", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if e == nil || !e.HasTarget() {
			return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: 0}, &tengo.Float{Value: 0}}}, nil
		}
		t := e.Target()
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: t.X}, &tengo.Float{Value: t.Y}}}, nil
	}}

	values["move"] = &tengo.UserFunction{Name: "move", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if e == nil || len(args) < 2 {
			return tengo.FalseValue, nil
		}
		dx, ok1 := tengo.ToFloat64(args[0])
		dy, ok2 := tengo.ToFloat64(args[1])
		if !ok1 || !ok2 {
			return tengo.FalseValue, nil
		}
		e.Move(dx, dy)
		return tengo.TrueValue, nil
	}}

	values["attack"] = &tengo.UserFunction{Name: "attack", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if owner == nil || e == nil {
			return tengo.FalseValue, nil
		}
		owner.attack(e)
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func boolObject(v bool) tengo.Object {
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

// RegisterScript compiles src and registers it under name with the given
// priority rank. The constructor clones the compiled program per activation.
func (c *Catalog) RegisterScript(name string, priority int, src []byte) error {
	if c == nil {
		return fmt.Errorf("ai: nil catalog")
	}
	program, err := compileScript(name, src)
	if err != nil {
		return err
	}
	c.Register(name, priority, func() Behavior { return program.newInstance(c) })
	return nil
}
