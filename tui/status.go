package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwhitby/advent/engine/state"
)

// renderStatusBar produces a full-width inverted status line showing
// the current room, visible exits, inventory, and turn count. Won and
// ended sessions are flagged on the right.
func (m Model) renderStatusBar() string {
	s := m.state

	roomName := s.CurrentRoomID
	var dirs []string
	if room, ok := state.CurrentRoom(s); ok {
		roomName = room.Title
		for _, e := range room.Exits {
			if !e.IsHidden {
				dirs = append(dirs, e.Direction)
			}
		}
	}

	left := fmt.Sprintf(" %s | Exits: %s", roomName, strings.Join(dirs, ","))
	if s.GameWon {
		left = " WON |" + left
	}

	right := fmt.Sprintf("T:%d ", m.turns)

	// Show inventory item names if they fit, otherwise just the count.
	if len(s.Inventory) > 0 {
		var names []string
		for _, obj := range s.Inventory {
			names = append(names, obj.Name)
		}
		candidate := fmt.Sprintf("Inv: %s | T:%d ", strings.Join(names, ", "), m.turns)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		} else {
			right = fmt.Sprintf("Inv: %d | T:%d ", len(s.Inventory), m.turns)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
