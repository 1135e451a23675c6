package fsm

import (
	"testing"

	"github.com/milk9111/behavior-engine/entity"
)

func newPlayerEntity() *entity.Entity {
	return entity.New(entity.Config{
		Name:      "player",
		MoveSpeed: 100,
		MaxHealth: 100,
		MaxMana:   50,
	})
}

func newTestMachine() *Machine {
	return NewMachine(newPlayerEntity(), NewCatalog(nil), DefaultGraph())
}

// stubState is a scriptable state for transition-protocol tests.
type stubState struct {
	name    string
	enters  *int
	onEnter func(ctx *Context)
	onInput func(ctx *Context, code int)
}

func (s *stubState) Name() string { return s.name }
func (s *stubState) Enter(ctx *Context) {
	if s.enters != nil {
		*s.enters++
	}
	if s.onEnter != nil {
		s.onEnter(ctx)
	}
}
func (s *stubState) Exit(ctx *Context) {}
func (s *stubState) HandleInput(ctx *Context, code int) {
	if s.onInput != nil {
		s.onInput(ctx, code)
	}
}
func (s *stubState) Update(ctx *Context, dt float64) {}

func TestTransitionsFromIdle(t *testing.T) {
	cases := []struct {
		name string
		code int
		want string
	}{
		{"left_starts_walking", InputLeft, StateWalking},
		{"right_starts_walking", InputRight, StateWalking},
		{"jump_starts_jumping", InputJump, StateJumping},
		{"attack_starts_attacking", InputAttack, StateAttacking},
		{"cast_starts_casting", InputCast, StateCasting},
		{"none_stays_idle", InputNone, StateIdle},
		{"unknown_code_stays_idle", 9999, StateIdle},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := newTestMachine()
			m.HandleInput(c.code)
			if got := m.CurrentStateName(); got != c.want {
				t.Fatalf("expected state %q, got %q", c.want, got)
			}
		})
	}
}

func TestGuardDropsDisallowedTransition(t *testing.T) {
	catalog := NewCatalog(nil)
	// A walking state that asks for targets its graph entry does not allow.
	catalog.Register(StateWalking, func() State {
		return &stubState{
			name: StateWalking,
			onInput: func(ctx *Context, code int) {
				switch code {
				case 1:
					ctx.Request(StateCasting) // not in walking's allowed set
				case 2:
					ctx.Request("shapeshifting") // not in the catalog at all
				case 3:
					ctx.Request(StateIdle)
				}
			},
		}
	})

	m := NewMachine(newPlayerEntity(), catalog, DefaultGraph())
	m.HandleInput(InputLeft)
	if m.CurrentStateName() != StateWalking {
		t.Fatalf("setup failed, expected walking, got %q", m.CurrentStateName())
	}

	m.HandleInput(1)
	if got := m.CurrentStateName(); got != StateWalking {
		t.Fatalf("disallowed transition should be dropped, got %q", got)
	}
	m.HandleInput(2)
	if got := m.CurrentStateName(); got != StateWalking {
		t.Fatalf("unknown target should be dropped, got %q", got)
	}
	m.HandleInput(3)
	if got := m.CurrentStateName(); got != StateIdle {
		t.Fatalf("allowed transition should land in idle, got %q", got)
	}
}

func TestCastingWithoutManaRedirectsToIdle(t *testing.T) {
	castEnters := 0
	catalog := NewCatalog(nil)
	// Bypass the idle gate so the casting state's own mana check is what
	// redirects.
	catalog.Register(StateIdle, func() State {
		return &stubState{
			name: StateIdle,
			onInput: func(ctx *Context, code int) {
				ctx.Request(StateCasting)
			},
		}
	})
	base := catalog.ctors[StateCasting]
	catalog.Register(StateCasting, func() State {
		castEnters++
		return base()
	})

	ent := newPlayerEntity()
	ent.SpendMana(45) // 5 left, below the cast cost of 10
	m := NewMachine(ent, catalog, DefaultGraph())

	m.HandleInput(0)
	if got := m.CurrentStateName(); got != StateIdle {
		t.Fatalf("expected synchronous redirect to idle, got %q", got)
	}
	if castEnters != 1 {
		t.Fatalf("expected casting to be entered exactly once, got %d", castEnters)
	}
	if ent.Mana() != 5 {
		t.Fatalf("aborted cast must not spend mana, got %v", ent.Mana())
	}
}

func TestCastCompletionSpendsMana(t *testing.T) {
	m := newTestMachine()
	m.HandleInput(InputCast)
	if m.CurrentStateName() != StateCasting {
		t.Fatalf("setup failed, expected casting, got %q", m.CurrentStateName())
	}

	m.Update(1.0) // inclusive boundary: exactly the cast duration completes
	if got := m.CurrentStateName(); got != StateIdle {
		t.Fatalf("expected idle after cast completes, got %q", got)
	}
	if got := m.Entity().Mana(); got != 40 {
		t.Fatalf("expected mana 40 after cast, got %v", got)
	}
}

func TestCastInterruptedByMovementIsFree(t *testing.T) {
	m := newTestMachine()
	m.HandleInput(InputCast)
	m.Update(0.5)
	m.HandleInput(InputLeft)
	if got := m.CurrentStateName(); got != StateWalking {
		t.Fatalf("expected walking after interrupt, got %q", got)
	}
	if got := m.Entity().Mana(); got != 50 {
		t.Fatalf("interrupted cast must not spend mana, got %v", got)
	}
}

func TestJumpLanding(t *testing.T) {
	m := newTestMachine()
	m.HandleInput(InputJump)
	if m.CurrentStateName() != StateJumping {
		t.Fatalf("setup failed, expected jumping, got %q", m.CurrentStateName())
	}
	if m.Entity().Grounded() {
		t.Fatal("expected airborne entity after jump start")
	}

	dt := 1.0 / 60
	landed := false
	for i := 0; i < 60*5; i++ {
		m.Update(dt)
		if m.CurrentStateName() == StateIdle {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatal("jump arc never landed")
	}

	e := m.Entity()
	if e.Y() != 0 {
		t.Fatalf("expected ground-clamped y=0, got %v", e.Y())
	}
	if e.VelocityY() != 0 {
		t.Fatalf("expected zeroed velocity, got %v", e.VelocityY())
	}
	if !e.Grounded() {
		t.Fatal("expected grounded entity after landing")
	}
}

func TestAttackTimerResetsOnReentry(t *testing.T) {
	m := newTestMachine()

	// First activation runs 0.3s of the 0.5s attack, then completes.
	m.HandleInput(InputAttack)
	m.Update(0.3)
	if m.CurrentStateName() != StateAttacking {
		t.Fatalf("attack ended early at 0.3s, got %q", m.CurrentStateName())
	}
	m.Update(0.3)
	if m.CurrentStateName() != StateIdle {
		t.Fatalf("expected idle after attack, got %q", m.CurrentStateName())
	}

	// Second activation must start from zero elapsed time: if the first
	// activation's 0.6s leaked in, this 0.3s update would already finish it.
	m.HandleInput(InputAttack)
	m.Update(0.3)
	if got := m.CurrentStateName(); got != StateAttacking {
		t.Fatalf("expected fresh attack timer, got %q", got)
	}
	m.Update(0.2)
	if got := m.CurrentStateName(); got != StateIdle {
		t.Fatalf("expected idle at the inclusive 0.5s boundary, got %q", got)
	}
}

func TestAirborneAttackReturnsToJumping(t *testing.T) {
	m := newTestMachine()
	m.HandleInput(InputJump)
	m.Update(1.0 / 60)
	m.HandleInput(InputAttack)
	if m.CurrentStateName() != StateAttacking {
		t.Fatalf("setup failed, expected attacking, got %q", m.CurrentStateName())
	}

	m.Update(0.5)
	if got := m.CurrentStateName(); got != StateJumping {
		t.Fatalf("airborne attack should resume jumping, got %q", got)
	}
}

func TestCascadeDepthCapped(t *testing.T) {
	catalog := NewCatalog(nil)
	catalog.Register("ping", func() State {
		return &stubState{name: "ping", onEnter: func(ctx *Context) { ctx.Request("pong") }}
	})
	catalog.Register("pong", func() State {
		return &stubState{name: "pong", onEnter: func(ctx *Context) { ctx.Request("ping") }}
	})
	catalog.Register(StateIdle, func() State {
		return &stubState{
			name:    StateIdle,
			onInput: func(ctx *Context, code int) { ctx.Request("ping") },
		}
	})

	graph := Graph{
		StateIdle: {"ping"},
		"ping":    {"pong"},
		"pong":    {"ping"},
	}

	m := NewMachine(newPlayerEntity(), catalog, graph)
	m.HandleInput(0) // must terminate despite the ping/pong loop

	got := m.CurrentStateName()
	if got != "ping" && got != "pong" {
		t.Fatalf("expected machine parked in the loop states, got %q", got)
	}
	// The machine still works after the cap trips.
	m.Update(1.0 / 60)
}

func TestIdleRegeneratesMana(t *testing.T) {
	m := newTestMachine()
	m.Entity().SpendMana(50)

	m.Update(2.0)
	if got := m.Entity().Mana(); got != 10 {
		t.Fatalf("expected 10 mana after 2s of idle regen, got %v", got)
	}

	// Regen stops at the cap.
	for i := 0; i < 20; i++ {
		m.Update(1.0)
	}
	if got := m.Entity().Mana(); got != m.Entity().MaxMana() {
		t.Fatalf("expected mana capped at %v, got %v", m.Entity().MaxMana(), got)
	}
}

func TestZeroDeltaNeverCompletesTimers(t *testing.T) {
	m := newTestMachine()
	m.HandleInput(InputAttack)
	for i := 0; i < 100; i++ {
		m.Update(0)
	}
	if got := m.CurrentStateName(); got != StateAttacking {
		t.Fatalf("zero ticks must not complete the attack, got %q", got)
	}
}
