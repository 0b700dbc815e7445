package ui

// View renders the UI: exactly the panel's rows, so the program
// occupies a constant number of terminal lines for the whole run.
func (m Model) View() string {
	return m.panel.View() + "\n"
}
