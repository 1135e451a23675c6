package prefabs

import "testing"

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	if spec.Name != "player" {
		t.Fatalf("Name = %q, want %q", spec.Name, "player")
	}
	if spec.MoveSpeed != 100 || spec.AirSpeed != 50 {
		t.Fatalf("unexpected speeds: move=%v air=%v", spec.MoveSpeed, spec.AirSpeed)
	}
	if spec.FSM.Initial != "idle" {
		t.Fatalf("FSM.Initial = %q, want idle", spec.FSM.Initial)
	}
	if got := len(spec.FSM.Transitions); got != 5 {
		t.Fatalf("expected 5 transition entries, got %d", got)
	}
	for _, to := range spec.FSM.Transitions["casting"] {
		if to == "jumping" {
			t.Fatal("casting must not transition into jumping")
		}
	}
}

func TestLoadEnemySpec(t *testing.T) {
	spec, err := LoadEnemySpec()
	if err != nil {
		t.Fatalf("LoadEnemySpec: %v", err)
	}
	if spec.AttackRange <= 0 || spec.DetectionRange <= spec.AttackRange {
		t.Fatalf("implausible ranges: attack=%v detection=%v", spec.AttackRange, spec.DetectionRange)
	}
	if len(spec.Waypoints) == 0 {
		t.Fatal("expected a default patrol route")
	}
	for _, s := range spec.Scripts {
		if s.Name == "" || s.File == "" {
			t.Fatalf("script entry missing name or file: %+v", s)
		}
		if _, err := LoadScript(s.File); err != nil {
			t.Fatalf("LoadScript(%s): %v", s.File, err)
		}
	}
}

func TestLoadSpecUnknownFile(t *testing.T) {
	if _, err := LoadSpec[PlayerSpec]("nope.yaml"); err == nil {
		t.Fatal("expected an error for a missing prefab")
	}
}

func TestPathCleaning(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"player.yaml", "player.yaml"},
		{"prefabs/player.yaml", "player.yaml"},
	}
	for _, c := range cases {
		if got := cleanPrefabPath(c.in); got != c.want {
			t.Fatalf("cleanPrefabPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	scriptCases := []struct {
		in, want string
	}{
		{"skirmish.tengo", "scripts/skirmish.tengo"},
		{"scripts/skirmish.tengo", "scripts/skirmish.tengo"},
		{"prefabs/scripts/skirmish.tengo", "scripts/skirmish.tengo"},
	}
	for _, c := range scriptCases {
		if got := cleanScriptPath(c.in); got != c.want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
