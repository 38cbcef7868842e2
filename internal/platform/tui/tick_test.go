package tui

import (
	"testing"
	"time"
)

func TestTickLoopGenerations(t *testing.T) {
	var loop tickLoop

	if loop.current(TickMsg{Gen: 0}) {
		t.Error("An unarmed loop should not accept ticks")
	}

	if cmd := loop.arm(100 * time.Millisecond); cmd == nil {
		t.Fatal("arm() should return a command")
	}
	first := TickMsg{Gen: loop.gen}
	if !loop.current(first) {
		t.Error("Tick from the live schedule should be accepted")
	}

	loop.arm(50 * time.Millisecond)
	if loop.current(first) {
		t.Error("Re-arming should invalidate the previous schedule")
	}

	second := TickMsg{Gen: loop.gen}
	loop.stop()
	if loop.current(second) {
		t.Error("Stopping should invalidate the live schedule")
	}
}
