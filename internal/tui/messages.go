package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todo/internal/coordinator"
)

// stateMsg carries a new coordinator state into Update
type stateMsg struct {
	State coordinator.State
}

// subscriptionClosedMsg is sent when the coordinator stream ends
type subscriptionClosedMsg struct{}

// waitForState returns a command that waits for the next coordinator state.
// Update re-arms it after every stateMsg.
func (m Model) waitForState() tea.Cmd {
	states, ctx := m.States, m.Ctx
	return func() tea.Msg {
		select {
		case s, ok := <-states:
			if !ok {
				return subscriptionClosedMsg{}
			}
			return stateMsg{State: s}
		case <-ctx.Done():
			return subscriptionClosedMsg{}
		}
	}
}
