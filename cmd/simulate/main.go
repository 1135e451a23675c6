package main

import (
	"flag"
	"log"

	"github.com/milk9111/behavior-engine/ai"
	"github.com/milk9111/behavior-engine/entity"
	"github.com/milk9111/behavior-engine/fsm"
	"github.com/milk9111/behavior-engine/prefabs"
)

// inputEvent feeds one raw code to the player machine at a fixed time.
type inputEvent struct {
	at   float64
	code int
}

// The scripted session: walk right, jump, attack mid-recovery, cast, stop.
var inputSchedule = []inputEvent{
	{at: 0.5, code: fsm.InputRight},
	{at: 1.5, code: fsm.InputJump},
	{at: 3.0, code: fsm.InputAttack},
	{at: 4.5, code: fsm.InputCast},
	{at: 6.0, code: fsm.InputNone},
}

func main() {
	seconds := flag.Float64("seconds", 12, "simulated session length")
	tps := flag.Int("tps", 60, "simulation ticks per second")
	enemies := flag.Int("enemies", 3, "number of AI enemies")
	watch := flag.Bool("watch", false, "hot-reload prefab specs while running")
	flag.Parse()

	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatal(err)
	}
	graph, err := fsm.GraphFromSpec(playerSpec.FSM)
	if err != nil {
		log.Fatal(err)
	}
	tuning := fsm.TuningFromSpec(playerSpec)
	player := entity.New(entity.Config{
		Name:      playerSpec.Name,
		MoveSpeed: tuning.WalkSpeed,
		MaxHealth: playerSpec.MaxHealth,
		MaxMana:   playerSpec.MaxMana,
	})
	machine := fsm.NewMachine(player, fsm.NewCatalog(tuning), graph)
	machine.SetAttackFunc(func() {
		log.Printf("combat: %s swings", player.Name())
	})

	squad := ai.NewSquad()
	for i := 0; i < *enemies; i++ {
		sel, err := ai.NewSelectorFromPrefab("", float64(i*60), 0)
		if err != nil {
			log.Fatal(err)
		}
		squad.Add(sel)
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Fatal(err)
		}
		defer watcher.Close()
	}

	dt := 1.0 / float64(*tps)
	nextInput := 0
	nextReport := 1.0

	for elapsed := 0.0; elapsed < *seconds; elapsed += dt {
		if watcher != nil {
			select {
			case name := <-watcher.Events:
				log.Printf("simulate: reloading %s", name)
				if spec, err := prefabs.LoadPlayerSpec(); err == nil {
					*tuning = *fsm.TuningFromSpec(spec)
				}
			case err := <-watcher.Errors:
				log.Printf("simulate: watch error: %v", err)
			default:
			}
		}

		for nextInput < len(inputSchedule) && elapsed >= inputSchedule[nextInput].at {
			machine.HandleInput(inputSchedule[nextInput].code)
			nextInput++
		}
		machine.Update(dt)

		squad.SetTarget(player.X(), player.Y())
		squad.Update(dt)

		// Scripted damage so the selectors visibly re-rank: a volley into
		// defend range, then one deep enough for flee to win.
		switch {
		case crossed(elapsed, 5.0, dt):
			log.Print("simulate: squad takes 50 damage")
			squad.DamageAll(50)
		case crossed(elapsed, 8.0, dt):
			log.Print("simulate: squad takes 35 damage")
			squad.DamageAll(35)
		case crossed(elapsed, 10.0, dt):
			log.Print("simulate: squad heals 50")
			for _, sel := range squad.Selectors() {
				sel.Entity().Heal(50)
			}
		}

		if elapsed >= nextReport {
			nextReport++
			report(machine, squad)
		}
	}

	report(machine, squad)
}

// crossed reports whether this tick is the first one at or past the mark.
func crossed(elapsed, at, dt float64) bool {
	return elapsed >= at && elapsed-dt < at
}

func report(machine *fsm.Machine, squad *ai.Squad) {
	p := machine.Entity()
	log.Printf("player %-10s pos=(%6.1f,%6.1f) hp=%3.0f mana=%4.1f", machine.CurrentStateName(), p.X(), p.Y(), p.Health(), p.Mana())
	for _, sel := range squad.Selectors() {
		e := sel.Entity()
		log.Printf("  %s %-8s pos=(%6.1f,%6.1f) hp=%3.0f", e.Name(), sel.CurrentBehaviorName(), e.X(), e.Y(), e.Health())
	}
	log.Printf("  alive: %d", squad.AliveCount())
}
