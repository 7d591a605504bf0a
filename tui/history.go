// Package tui provides a Bubble Tea terminal UI for the advent engine.
package tui

// inputHistory is a bounded command history with cursor navigation,
// driven by the up/down keys.
type inputHistory struct {
	entries []string
	max     int
	cursor  int // -1 = not navigating
}

func newInputHistory(max int) *inputHistory {
	return &inputHistory{max: max, cursor: -1}
}

// push adds a command. Consecutive duplicates are skipped.
func (h *inputHistory) push(cmd string) {
	if n := len(h.entries); n > 0 && h.entries[n-1] == cmd {
		return
	}
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.max {
		h.entries = h.entries[1:]
	}
}

// prev moves to the previous (older) entry.
func (h *inputHistory) prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	switch {
	case h.cursor == -1:
		h.cursor = len(h.entries) - 1
	case h.cursor > 0:
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// next moves to the next (newer) entry, or back to fresh input.
func (h *inputHistory) next() (string, bool) {
	if h.cursor == -1 {
		return "", false
	}
	h.cursor++
	if h.cursor >= len(h.entries) {
		h.cursor = -1
		return "", false
	}
	return h.entries[h.cursor], true
}

func (h *inputHistory) reset() {
	h.cursor = -1
}
