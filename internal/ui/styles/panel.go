package styles

import "github.com/charmbracelet/lipgloss"

// Panel returns the bordered style of a list panel. The focused panel
// takes its border color from the block_active slot.
func (t *Theme) Panel(focused bool) lipgloss.Style {
	border := lipgloss.TerminalColor(t.Border)
	if focused {
		border = t.BlockActive.GetForeground()
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
