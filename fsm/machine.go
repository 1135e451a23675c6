package fsm

import (
	"log"

	"github.com/milk9111/behavior-engine/entity"
)

// maxCascadeDepth bounds transitions triggered from within Enter/Exit hooks.
// Requests past the cap are a logic error in the state set; they are logged
// and dropped rather than crashing the control loop.
const maxCascadeDepth = 4

// Machine owns exactly one active State for an entity and enforces the
// transition graph between named states. Transitions requested during an
// Enter or Exit hook are drained before HandleInput/Update returns, so a
// state like casting can redirect to idle synchronously on entry.
type Machine struct {
	ent     *entity.Entity
	catalog *Catalog
	graph   Graph

	current State
	ctx     *Context
	pending []string
}

// NewMachine builds a machine starting in the idle state. The entity is
// exclusively owned by the machine for its lifetime.
func NewMachine(ent *entity.Entity, catalog *Catalog, graph Graph) *Machine {
	if catalog == nil {
		catalog = NewCatalog(nil)
	}
	if graph == nil {
		graph = DefaultGraph()
	}
	m := &Machine{
		ent:     ent,
		catalog: catalog,
		graph:   graph,
	}
	m.ctx = &Context{
		Entity:  ent,
		Request: m.request,
	}
	m.current = catalog.New(StateIdle)
	if m.current == nil {
		log.Printf("fsm: catalog has no %q state", StateIdle)
		return m
	}
	m.current.Enter(m.ctx)
	m.drain()
	return m
}

// SetAttackFunc installs the combat-layer hook invoked when the attacking
// state starts an attack.
func (m *Machine) SetAttackFunc(fn func()) {
	if m == nil || m.ctx == nil {
		return
	}
	m.ctx.Attack = fn
}

func (m *Machine) Entity() *entity.Entity { return m.ent }

// CurrentStateName reports the active state's name for external systems.
func (m *Machine) CurrentStateName() string {
	if m == nil || m.current == nil {
		return ""
	}
	return m.current.Name()
}

// HandleInput forwards a raw input code to the active state and resolves any
// transitions it requested before returning.
func (m *Machine) HandleInput(code int) {
	if m == nil || m.current == nil {
		return
	}
	m.current.HandleInput(m.ctx, code)
	m.drain()
}

// Update forwards elapsed time to the active state and resolves any
// transitions it requested before returning.
func (m *Machine) Update(dt float64) {
	if m == nil || m.current == nil {
		return
	}
	m.current.Update(m.ctx, dt)
	m.drain()
}

func (m *Machine) request(name string) {
	m.pending = append(m.pending, name)
}

// drain processes queued transition requests, including requests issued from
// the Enter/Exit hooks it runs, until the queue is empty or the cascade cap
// is hit. A target the graph does not permit, or one the catalog does not
// know, is skipped.
func (m *Machine) drain() {
	depth := 0
	for len(m.pending) > 0 {
		name := m.pending[0]
		m.pending = m.pending[1:]

		if m.current != nil && !m.graph.Allowed(m.current.Name(), name) {
			continue
		}
		next := m.catalog.New(name)
		if next == nil {
			continue
		}

		depth++
		if depth > maxCascadeDepth {
			log.Printf("fsm: cascade depth cap reached, dropping transition to %q", name)
			m.pending = m.pending[:0]
			return
		}

		if m.current != nil {
			m.current.Exit(m.ctx)
		}
		m.current = next
		m.current.Enter(m.ctx)
	}
}
