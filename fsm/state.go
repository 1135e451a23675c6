package fsm

import (
	"github.com/milk9111/behavior-engine/entity"
)

// Input codes forwarded by the input layer. The machine itself treats codes
// as opaque integers; these names exist for the states that care.
const (
	InputNone   = 0
	InputJump   = 32 // space
	InputLeft   = 65 // A
	InputRight  = 68 // D
	InputAttack = 74 // J
	InputCast   = 75 // K
)

// State is one mode of player conduct. Each state owns its own enter/exit,
// input handling, and update logic. States carrying per-activation timers are
// constructed fresh by the Catalog every time they become active.
type State interface {
	Name() string
	Enter(ctx *Context)
	Exit(ctx *Context)
	HandleInput(ctx *Context, code int)
	Update(ctx *Context, dt float64)
}

// Context provides controlled access to the entity and the machine for a
// state. It intentionally uses callbacks to avoid coupling states to the
// Machine type.
type Context struct {
	Entity *entity.Entity

	// Request asks the machine to transition to the named state. The request
	// is honored only if the transition graph allows it from the state that
	// is active when the request is processed.
	Request func(name string)

	// Attack notifies the combat layer that an attack started. Damage
	// application stays outside the engine. May be nil.
	Attack func()
}
