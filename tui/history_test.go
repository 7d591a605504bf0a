package tui

import "testing"

func TestInputHistoryNavigation(t *testing.T) {
	h := newInputHistory(10)
	h.push("look")
	h.push("go north")
	h.push("take key")

	// Up walks backward through entries.
	if got, ok := h.prev(); !ok || got != "take key" {
		t.Errorf("prev = %q, %v", got, ok)
	}
	if got, ok := h.prev(); !ok || got != "go north" {
		t.Errorf("prev = %q, %v", got, ok)
	}
	if got, ok := h.prev(); !ok || got != "look" {
		t.Errorf("prev = %q, %v", got, ok)
	}
	// Past the oldest entry it stays put.
	if got, ok := h.prev(); !ok || got != "look" {
		t.Errorf("prev at oldest = %q, %v", got, ok)
	}

	// Down walks forward and falls off into fresh input.
	if got, ok := h.next(); !ok || got != "go north" {
		t.Errorf("next = %q, %v", got, ok)
	}
	if got, ok := h.next(); !ok || got != "take key" {
		t.Errorf("next = %q, %v", got, ok)
	}
	if _, ok := h.next(); ok {
		t.Error("next past newest should report false")
	}
	// Cursor resets: next without navigation does nothing.
	if _, ok := h.next(); ok {
		t.Error("next while not navigating should report false")
	}
}

func TestInputHistorySkipsConsecutiveDuplicates(t *testing.T) {
	h := newInputHistory(10)
	h.push("look")
	h.push("look")
	h.push("go north")
	h.push("look")

	if len(h.entries) != 3 {
		t.Errorf("entries = %v, want 3 entries", h.entries)
	}
}

func TestInputHistoryBounded(t *testing.T) {
	h := newInputHistory(2)
	h.push("a")
	h.push("b")
	h.push("c")

	if len(h.entries) != 2 || h.entries[0] != "b" || h.entries[1] != "c" {
		t.Errorf("entries = %v, want [b c]", h.entries)
	}
}

func TestInputHistoryReset(t *testing.T) {
	h := newInputHistory(10)
	h.push("look")
	h.prev()
	h.reset()

	// After reset, prev starts from the newest entry again.
	if got, ok := h.prev(); !ok || got != "look" {
		t.Errorf("prev after reset = %q, %v", got, ok)
	}
}
