package ai

// Squad groups selectors so external systems can drive a group of AI
// entities with one call: broadcast a target, tick, damage, count survivors.
type Squad struct {
	selectors []*Selector
}

func NewSquad(selectors ...*Selector) *Squad {
	return &Squad{selectors: selectors}
}

func (s *Squad) Add(sel *Selector) {
	if s == nil || sel == nil {
		return
	}
	s.selectors = append(s.selectors, sel)
}

func (s *Squad) Selectors() []*Selector {
	if s == nil {
		return nil
	}
	return s.selectors
}

// Update ticks every selector.
func (s *Squad) Update(dt float64) {
	if s == nil {
		return
	}
	for _, sel := range s.selectors {
		sel.Update(dt)
	}
}

// SetTarget broadcasts a target position (typically the player) to every
// selector.
func (s *Squad) SetTarget(x, y float64) {
	if s == nil {
		return
	}
	for _, sel := range s.selectors {
		sel.SetTarget(x, y)
	}
}

// ClearTarget drops every selector's target.
func (s *Squad) ClearTarget() {
	if s == nil {
		return
	}
	for _, sel := range s.selectors {
		sel.ClearTarget()
	}
}

// DamageAll applies damage to every entity in the squad.
func (s *Squad) DamageAll(amount float64) {
	if s == nil {
		return
	}
	for _, sel := range s.selectors {
		if sel.Entity() != nil {
			sel.Entity().TakeDamage(amount)
		}
	}
}

// AliveCount reports how many squad entities still have health left.
func (s *Squad) AliveCount() int {
	if s == nil {
		return 0
	}
	count := 0
	for _, sel := range s.selectors {
		if sel.Entity() != nil && sel.Entity().Alive() {
			count++
		}
	}
	return count
}
