package fsm

// frameStep is the fixed per-input positional nudge step used by the
// movement states (assumes a 60 FPS input cadence).
const frameStep = 0.016

type idleState struct {
	t *Tuning
}

func (idleState) Name() string { return StateIdle }

func (s *idleState) Enter(ctx *Context) {
	ctx.Entity.SetMoveSpeed(0)
}

func (s *idleState) Exit(ctx *Context) {}

func (s *idleState) HandleInput(ctx *Context, code int) {
	switch code {
	case InputLeft, InputRight:
		ctx.Request(StateWalking)
	case InputJump:
		if ctx.Entity.Grounded() {
			ctx.Request(StateJumping)
		}
	case InputAttack:
		ctx.Request(StateAttacking)
	case InputCast:
		if ctx.Entity.Mana() >= s.t.CastCost {
			ctx.Request(StateCasting)
		}
	}
}

func (s *idleState) Update(ctx *Context, dt float64) {
	// Mana slowly refills while standing still.
	if ctx.Entity.Mana() < ctx.Entity.MaxMana() {
		ctx.Entity.RestoreMana(s.t.ManaRegen * dt)
	}
}

type walkingState struct {
	t *Tuning
}

func (walkingState) Name() string { return StateWalking }

func (s *walkingState) Enter(ctx *Context) {
	ctx.Entity.SetMoveSpeed(s.t.WalkSpeed)
}

func (s *walkingState) Exit(ctx *Context) {
	ctx.Entity.SetMoveSpeed(0)
}

func (s *walkingState) HandleInput(ctx *Context, code int) {
	switch code {
	case InputLeft:
		ctx.Entity.Move(-s.t.WalkSpeed*frameStep, 0)
	case InputRight:
		ctx.Entity.Move(s.t.WalkSpeed*frameStep, 0)
	case InputJump:
		if ctx.Entity.Grounded() {
			ctx.Request(StateJumping)
		}
	case InputAttack:
		ctx.Request(StateAttacking)
	case InputNone:
		ctx.Request(StateIdle)
	}
}

func (s *walkingState) Update(ctx *Context, dt float64) {}

type jumpingState struct {
	t *Tuning
}

func (jumpingState) Name() string { return StateJumping }

func (s *jumpingState) Enter(ctx *Context) {
	ctx.Entity.SetGrounded(false)
	ctx.Entity.SetVelocityY(s.t.JumpVelocity)
}

func (s *jumpingState) Exit(ctx *Context) {}

func (s *jumpingState) HandleInput(ctx *Context, code int) {
	// Air control is slower than ground movement.
	switch code {
	case InputLeft:
		ctx.Entity.Move(-s.t.AirSpeed*frameStep, 0)
	case InputRight:
		ctx.Entity.Move(s.t.AirSpeed*frameStep, 0)
	case InputAttack:
		ctx.Request(StateAttacking)
	}
}

func (s *jumpingState) Update(ctx *Context, dt float64) {
	v := ctx.Entity.VelocityY() + s.t.Gravity*dt
	ctx.Entity.SetVelocityY(v)
	ctx.Entity.Move(0, v*dt)

	if ctx.Entity.Y() <= s.t.GroundY {
		ctx.Entity.SetPosition(ctx.Entity.X(), s.t.GroundY)
		ctx.Entity.SetGrounded(true)
		ctx.Entity.SetVelocityY(0)
		ctx.Request(StateIdle)
	}
}

type attackingState struct {
	t       *Tuning
	elapsed float64
}

func (attackingState) Name() string { return StateAttacking }

func (s *attackingState) Enter(ctx *Context) {
	s.elapsed = 0
	ctx.Entity.SetMoveSpeed(0)
	if ctx.Attack != nil {
		ctx.Attack()
	}
}

func (s *attackingState) Exit(ctx *Context) {}

// HandleInput ignores input so the attack cannot be interrupted.
func (s *attackingState) HandleInput(ctx *Context, code int) {}

func (s *attackingState) Update(ctx *Context, dt float64) {
	s.elapsed += dt
	if s.elapsed >= s.t.AttackDuration {
		if ctx.Entity.Grounded() {
			ctx.Request(StateIdle)
		} else {
			ctx.Request(StateJumping)
		}
	}
}

type castingState struct {
	t       *Tuning
	elapsed float64
}

func (castingState) Name() string { return StateCasting }

func (s *castingState) Enter(ctx *Context) {
	s.elapsed = 0
	ctx.Entity.SetMoveSpeed(0)
	if ctx.Entity.Mana() < s.t.CastCost {
		// Not enough mana: bail back to idle before the first update.
		ctx.Request(StateIdle)
	}
}

// Exit spends nothing; mana is deducted only when the cast completes, so an
// interrupted cast is free.
func (s *castingState) Exit(ctx *Context) {}

func (s *castingState) HandleInput(ctx *Context, code int) {
	// Movement interrupts the cast.
	if code == InputLeft || code == InputRight {
		ctx.Request(StateWalking)
	}
}

func (s *castingState) Update(ctx *Context, dt float64) {
	s.elapsed += dt
	if s.elapsed >= s.t.CastDuration {
		ctx.Entity.SpendMana(s.t.CastCost)
		ctx.Request(StateIdle)
	}
}
