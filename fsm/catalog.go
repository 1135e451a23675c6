package fsm

// State names known to the default catalog.
const (
	StateIdle      = "idle"
	StateWalking   = "walking"
	StateJumping   = "jumping"
	StateAttacking = "attacking"
	StateCasting   = "casting"
)

// Tuning holds the numeric constants the concrete states share. A single
// Tuning is referenced by every state a catalog constructs, so hot-reloading
// a prefab spec updates live states too.
type Tuning struct {
	WalkSpeed      float64
	AirSpeed       float64
	JumpVelocity   float64
	Gravity        float64
	GroundY        float64
	AttackDuration float64
	CastDuration   float64
	CastCost       float64
	ManaRegen      float64
}

// DefaultTuning mirrors the original balance numbers.
func DefaultTuning() *Tuning {
	return &Tuning{
		WalkSpeed:      100,
		AirSpeed:       50,
		JumpVelocity:   300,
		Gravity:        -500,
		GroundY:        0,
		AttackDuration: 0.5,
		CastDuration:   1.0,
		CastCost:       10,
		ManaRegen:      5,
	}
}

// Catalog constructs fresh State instances by name. A fresh instance per
// activation is required because attacking/casting carry elapsed-time
// counters that must not leak between activations.
type Catalog struct {
	tuning *Tuning
	ctors  map[string]func() State
}

// NewCatalog returns a catalog over the five built-in player states.
func NewCatalog(tuning *Tuning) *Catalog {
	if tuning == nil {
		tuning = DefaultTuning()
	}
	c := &Catalog{
		tuning: tuning,
		ctors:  map[string]func() State{},
	}
	c.Register(StateIdle, func() State { return &idleState{t: tuning} })
	c.Register(StateWalking, func() State { return &walkingState{t: tuning} })
	c.Register(StateJumping, func() State { return &jumpingState{t: tuning} })
	c.Register(StateAttacking, func() State { return &attackingState{t: tuning} })
	c.Register(StateCasting, func() State { return &castingState{t: tuning} })
	return c
}

func (c *Catalog) Tuning() *Tuning { return c.tuning }

// Register adds or replaces a constructor for name.
func (c *Catalog) Register(name string, ctor func() State) {
	if c == nil || name == "" || ctor == nil {
		return
	}
	c.ctors[name] = ctor
}

// New constructs a fresh state for name, or nil when the name is unknown.
// Callers may probe speculatively; an unknown name is not an error.
func (c *Catalog) New(name string) State {
	if c == nil {
		return nil
	}
	ctor, ok := c.ctors[name]
	if !ok {
		return nil
	}
	return ctor()
}
