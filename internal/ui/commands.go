package ui

import (
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rahulvramesh/dirscan/internal/scanner"
)

// flushMsg asks the update loop to drain staged updates to the panel.
type flushMsg time.Time

// scanFinishedMsg carries the scan's outcome back to the update loop.
type scanFinishedMsg struct {
	found []string
	err   error
}

// startScan runs the scanner on a background goroutine. Progress goes
// straight into the coalescer; only the final outcome travels as a
// message.
func (m Model) startScan() tea.Cmd {
	return func() tea.Msg {
		found, err := m.scanner.Scan(m.ctx, func(st scanner.Status) {
			m.coalescer.Stage(LabelScanning, st.CurrentDir)
			m.coalescer.Stage(LabelFoundCount, strconv.Itoa(st.Found))
		})
		return scanFinishedMsg{found: found, err: err}
	}
}

// flushTick schedules the next panel refresh.
func flushTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return flushMsg(t)
	})
}
