package orchestrator

import "testing"

func TestRepeatGuard_FirstMessageNeverRepeats(t *testing.T) {
	g := NewRepeatGuard()
	if g.Repeated("", "hello") {
		t.Error("first message must not count as a repeat")
	}
}

func TestRepeatGuard_DetectsBackToBackRepeat(t *testing.T) {
	g := NewRepeatGuard()
	g.Repeated("", "hello")
	if !g.Repeated("", "hello") {
		t.Error("expected a repeat on the identical follow-up")
	}
}

func TestRepeatGuard_UpdatesOnEveryCall(t *testing.T) {
	g := NewRepeatGuard()
	g.Repeated("", "one")
	g.Repeated("", "two")
	if g.Repeated("", "one") {
		t.Error("an interleaved message must reset the remembered content")
	}
	if !g.Repeated("", "one") {
		t.Error("expected a repeat after the reset")
	}
}

func TestRepeatGuard_ScopesAreIndependent(t *testing.T) {
	g := NewRepeatGuard()
	g.Repeated("conv-a", "hello")
	if g.Repeated("conv-b", "hello") {
		t.Error("different scopes must not share state")
	}
	if !g.Repeated("conv-a", "hello") {
		t.Error("expected the repeat inside the original scope")
	}
}
