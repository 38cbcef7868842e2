package core

import "testing"

func TestActionNames(t *testing.T) {
	seen := make(map[string]Action)
	for a := ActionNone; a <= ActionQuit; a++ {
		name := a.String()
		if name == "Unknown" {
			t.Errorf("Action %d has no name", int(a))
		}
		if prev, ok := seen[name]; ok {
			t.Errorf("Actions %d and %d share the name %q", int(prev), int(a), name)
		}
		seen[name] = a
	}

	if got := (ActionQuit + 1).String(); got != "Unknown" {
		t.Errorf("Out-of-range action = %q, expected Unknown", got)
	}
}
