package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec loads and unmarshals a prefab YAML into the given spec type.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PlayerSpec tunes the player entity and its state machine.
type PlayerSpec struct {
	Name           string  `yaml:"name"`
	MoveSpeed      float64 `yaml:"move_speed"`
	AirSpeed       float64 `yaml:"air_speed"`
	JumpVelocity   float64 `yaml:"jump_velocity"`
	Gravity        float64 `yaml:"gravity"`
	AttackDuration float64 `yaml:"attack_duration"`
	CastDuration   float64 `yaml:"cast_duration"`
	CastCost       float64 `yaml:"cast_cost"`
	ManaRegen      float64 `yaml:"mana_regen"`
	MaxHealth      float64 `yaml:"max_health"`
	MaxMana        float64 `yaml:"max_mana"`
	FSM            FSMSpec `yaml:"fsm"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// FSMSpec describes a transition graph: initial state plus, per state, the
// set of states it may transition into.
type FSMSpec struct {
	Initial     string              `yaml:"initial"`
	Transitions map[string][]string `yaml:"transitions"`
}

// EnemySpec tunes one AI entity and its strategy selector.
type EnemySpec struct {
	Name             string         `yaml:"name"`
	MoveSpeed        float64        `yaml:"move_speed"`
	MaxHealth        float64        `yaml:"max_health"`
	DetectionRange   float64        `yaml:"detection_range"`
	AttackRange      float64        `yaml:"attack_range"`
	DecisionInterval float64        `yaml:"decision_interval"`
	AttackCooldown   float64        `yaml:"attack_cooldown"`
	Waypoints        []WaypointSpec `yaml:"waypoints"`
	Scripts          []ScriptSpec   `yaml:"scripts"`
}

type WaypointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ScriptSpec registers a scripted behavior: the file is looked up via
// LoadScript and ranked by priority against the built-in behaviors.
type ScriptSpec struct {
	Name     string `yaml:"name"`
	File     string `yaml:"file"`
	Priority int    `yaml:"priority"`
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
